package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
	"github.com/piresc/wellnest/services/listings"
)

// ListingHandler serves the public wellness-service catalogue
type ListingHandler struct {
	listingsUC listings.ListingsUC
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingsUC listings.ListingsUC) *ListingHandler {
	return &ListingHandler{
		listingsUC: listingsUC,
	}
}

// FetchServices handles GET /services/services-listing/fetch-services
func (h *ListingHandler) FetchServices(c echo.Context) error {
	var (
		filter   models.ServiceFilter
		lat, lng float64
	)
	err := echo.QueryParamsBinder(c).
		String("category", &filter.Category).
		Int("page", &filter.Page).
		Int("limit", &filter.Limit).
		Float64("lat", &lat).
		Float64("lng", &lng).
		Float64("radius_km", &filter.RadiusKm).
		BindError()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if c.QueryParam("lat") != "" {
		if !(lat >= -90 && lat <= 90) {
			return utils.AppErrorResponse(c, apperror.Validation("lat must be between -90 and 90"))
		}
		filter.Latitude = &lat
	}
	if c.QueryParam("lng") != "" {
		if !(lng >= -180 && lng <= 180) {
			return utils.AppErrorResponse(c, apperror.Validation("lng must be between -180 and 180"))
		}
		filter.Longitude = &lng
	}

	page, err := h.listingsUC.ListServices(c.Request().Context(), &filter)
	if err != nil {
		return utils.HandleAppError(c, "Failed to list services", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Services retrieved successfully", page)
}

// GetService handles GET /services/services-listing/:id
func (h *ListingHandler) GetService(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service ID")
	}

	service, err := h.listingsUC.GetService(c.Request().Context(), serviceID)
	if err != nil {
		return utils.HandleAppError(c, "Failed to get service", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service retrieved successfully", service)
}

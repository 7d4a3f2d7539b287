package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
	"github.com/piresc/wellnest/services/reviews"
)

// ReviewHandler handles service reviews
type ReviewHandler struct {
	reviewsUC reviews.ReviewsUC
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewsUC reviews.ReviewsUC) *ReviewHandler {
	return &ReviewHandler{
		reviewsUC: reviewsUC,
	}
}

// CreateReview handles POST /services/:id/reviews
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service ID")
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	review, err := h.reviewsUC.CreateReview(c.Request().Context(), userID, serviceID, &req)
	if err != nil {
		return utils.HandleAppError(c, "Failed to create review", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review created successfully", review)
}

// ListReviews handles GET /services/:id/reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service ID")
	}

	list, err := h.reviewsUC.ListReviews(c.Request().Context(), serviceID)
	if err != nil {
		return utils.HandleAppError(c, "Failed to list reviews", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved successfully", list)
}

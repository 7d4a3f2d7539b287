package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
	"github.com/piresc/wellnest/services/bookings"
)

// BookingHandler handles a user's bookings
type BookingHandler struct {
	bookingsUC bookings.BookingsUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingsUC bookings.BookingsUC) *BookingHandler {
	return &BookingHandler{
		bookingsUC: bookingsUC,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	booking, err := h.bookingsUC.CreateBooking(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.HandleAppError(c, "Failed to create booking", err)
	}

	middleware.AddAttribute(c, "booking_id", booking.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// ListMyBookings handles GET /bookings
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	list, err := h.bookingsUC.ListMyBookings(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleAppError(c, "Failed to list bookings", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingsUC.GetBooking(c.Request().Context(), middleware.IdentityFrom(c), bookingID)
	if err != nil {
		return utils.HandleAppError(c, "Failed to get booking", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// CancelBooking handles POST /bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingsUC.CancelBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return utils.HandleAppError(c, "Failed to cancel booking", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", booking)
}

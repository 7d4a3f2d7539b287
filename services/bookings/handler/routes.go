package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/services/bookings/handler/http"
)

// Handler registers the bookings service routes
type Handler struct {
	bookingHandler *http.BookingHandler
}

// NewHandler creates the bookings route set
func NewHandler(bookingHandler *http.BookingHandler) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
	}
}

// RegisterRoutes mounts the booking endpoints on an authenticated group
func (h *Handler) RegisterRoutes(protected *echo.Group) {
	bookings := protected.Group("/bookings")
	bookings.POST("", h.bookingHandler.CreateBooking)
	bookings.GET("", h.bookingHandler.ListMyBookings)
	bookings.GET("/:id", h.bookingHandler.GetBooking)
	bookings.POST("/:id/cancel", h.bookingHandler.CancelBooking)
}

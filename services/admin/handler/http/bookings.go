package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
)

// ListBookings handles GET /admin/bookings?status=
func (h *AdminHandler) ListBookings(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	page, err := h.bookingsUC.ListBookings(c.Request.Context(), &models.BookingFilter{
		Status: models.BookingStatus(q.Status),
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Bookings retrieved successfully", page)
}

// UpdateBookingStatus handles PUT /admin/bookings/:id/status
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID, ok := paramID(c, "booking")
	if !ok {
		return
	}
	var req models.UpdateBookingStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingsUC.UpdateStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Booking status updated", booking)
}

// DeleteReview handles DELETE /admin/reviews/:id
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := paramID(c, "review")
	if !ok {
		return
	}

	if err := h.reviewsUC.DeleteReview(c.Request.Context(), reviewID); err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Review deleted", nil)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/services/reviews/handler/http"
)

// Handler registers the reviews service routes
type Handler struct {
	reviewHandler *http.ReviewHandler
}

// NewHandler creates the reviews route set
func NewHandler(reviewHandler *http.ReviewHandler) *Handler {
	return &Handler{
		reviewHandler: reviewHandler,
	}
}

// RegisterRoutes mounts review listing on the public group and submission on the authenticated one
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.GET("/services/:id/reviews", h.reviewHandler.ListReviews)
	protected.POST("/services/:id/reviews", h.reviewHandler.CreateReview)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/services/users/handler/http"
)

// Handler registers the users service routes
type Handler struct {
	userHandler *http.UserHandler
}

// NewHandler creates the users route set
func NewHandler(userHandler *http.UserHandler) *Handler {
	return &Handler{
		userHandler: userHandler,
	}
}

// RegisterRoutes mounts the account endpoints on an authenticated group
func (h *Handler) RegisterRoutes(protected *echo.Group) {
	me := protected.Group("/users/me")
	me.GET("", h.userHandler.GetMe)
	me.PUT("", h.userHandler.UpdateMe)
	me.DELETE("", h.userHandler.DeleteMe)
}

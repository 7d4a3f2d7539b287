package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/admin/handler/http"
)

// Handler registers the admin dashboard routes
type Handler struct {
	adminHandler *http.AdminHandler
	verifier     middleware.TokenVerifier
}

// NewHandler creates the admin route set
func NewHandler(adminHandler *http.AdminHandler, verifier middleware.TokenVerifier) *Handler {
	return &Handler{
		adminHandler: adminHandler,
		verifier:     verifier,
	}
}

// RegisterRoutes mounts every admin endpoint behind bearer auth and the ADMIN role
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	admin := r.Group("/admin",
		middleware.GinAuth(h.verifier),
		middleware.GinRequireRoles(models.RoleAdmin),
	)

	services := admin.Group("/services")
	services.GET("", h.adminHandler.ListServices)
	services.POST("", h.adminHandler.CreateService)
	services.PUT("/:id", h.adminHandler.UpdateService)
	services.DELETE("/:id", h.adminHandler.DeleteService)

	users := admin.Group("/users")
	users.GET("", h.adminHandler.ListUsers)
	users.GET("/:id", h.adminHandler.GetUser)
	users.DELETE("/:id", h.adminHandler.DeleteUser)
	users.PUT("/:id/role", h.adminHandler.UpdateRole)

	bookings := admin.Group("/bookings")
	bookings.GET("", h.adminHandler.ListBookings)
	bookings.PUT("/:id/status", h.adminHandler.UpdateBookingStatus)

	admin.DELETE("/reviews/:id", h.adminHandler.DeleteReview)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/services/auth/handler/http"
)

// Handler registers the auth service routes
type Handler struct {
	authHandler  *http.AuthHandler
	otpRateLimit echo.MiddlewareFunc
}

// NewHandler creates the auth route set. otpRateLimit guards the code-sending endpoints.
func NewHandler(authHandler *http.AuthHandler, otpRateLimit echo.MiddlewareFunc) *Handler {
	return &Handler{
		authHandler:  authHandler,
		otpRateLimit: otpRateLimit,
	}
}

// RegisterRoutes mounts the public auth endpoints under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	authGroup := api.Group("/auth")

	otp := []echo.MiddlewareFunc{}
	if h.otpRateLimit != nil {
		otp = append(otp, h.otpRateLimit)
	}

	authGroup.POST("/signup/otp", h.authHandler.RequestSignupOTP, otp...)
	authGroup.POST("/signup/verify", h.authHandler.VerifySignup, otp...)
	authGroup.POST("/signin/otp", h.authHandler.RequestSigninOTP, otp...)
	authGroup.POST("/signin/verify", h.authHandler.VerifySignin, otp...)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
	"github.com/piresc/wellnest/services/auth"
)

// AuthHandler handles the OTP sign-up and sign-in endpoints
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// RequestSignupOTP handles POST /auth/signup/otp
func (h *AuthHandler) RequestSignupOTP(c echo.Context) error {
	var req models.SignupOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.authUC.RequestSignupOTP(c.Request().Context(), &req); err != nil {
		return utils.HandleAppError(c, "sign-up OTP request failed", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", nil)
}

// VerifySignup handles POST /auth/signup/verify
func (h *AuthHandler) VerifySignup(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp, err := h.authUC.VerifySignup(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleAppError(c, "sign-up verification failed", err)
	}

	middleware.AddAttribute(c, "user.id", resp.UserID)
	return utils.SuccessResponse(c, http.StatusCreated, "Account created", resp)
}

// RequestSigninOTP handles POST /auth/signin/otp
func (h *AuthHandler) RequestSigninOTP(c echo.Context) error {
	var req models.SigninOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.authUC.RequestSigninOTP(c.Request().Context(), &req); err != nil {
		return utils.HandleAppError(c, "sign-in OTP request failed", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", nil)
}

// VerifySignin handles POST /auth/signin/verify
func (h *AuthHandler) VerifySignin(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp, err := h.authUC.VerifySignin(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleAppError(c, "sign-in verification failed", err)
	}

	middleware.AddAttribute(c, "user.id", resp.UserID)
	return utils.SuccessResponse(c, http.StatusOK, "Signed in", resp)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
	"github.com/piresc/wellnest/services/users"
)

// UserHandler handles the caller's own account
type UserHandler struct {
	usersUC users.UsersUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(usersUC users.UsersUC) *UserHandler {
	return &UserHandler{
		usersUC: usersUC,
	}
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	user, err := h.usersUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleAppError(c, "Failed to get profile", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateMe handles PUT /users/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	user, err := h.usersUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.HandleAppError(c, "Failed to update profile", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// DeleteMe handles DELETE /users/me
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.usersUC.DeleteAccount(c.Request().Context(), userID); err != nil {
		return utils.HandleAppError(c, "Failed to delete account", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account deleted", nil)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
)

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	page, err := h.usersUC.ListUsers(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Users retrieved successfully", page)
}

// GetUser handles GET /admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, ok := paramID(c, "user")
	if !ok {
		return
	}

	user, err := h.usersUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := paramID(c, "user")
	if !ok {
		return
	}

	if err := h.usersUC.DeleteUser(c.Request.Context(), userID); err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "User deleted", nil)
}

// UpdateRole handles PUT /admin/users/:id/role
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	userID, ok := paramID(c, "user")
	if !ok {
		return
	}
	var req models.UpdateRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.usersUC.UpdateRole(c.Request.Context(), userID, req.Role)
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Role updated", user)
}

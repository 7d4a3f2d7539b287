package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
)

// ListServices handles GET /admin/services
func (h *AdminHandler) ListServices(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	page, err := h.listingsUC.ListAllServices(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Services retrieved successfully", page)
}

// CreateService handles POST /admin/services
func (h *AdminHandler) CreateService(c *gin.Context) {
	var req models.ServiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	service, err := h.listingsUC.CreateService(c.Request.Context(), &req)
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusCreated, "Service created successfully", service)
}

// UpdateService handles PUT /admin/services/:id
func (h *AdminHandler) UpdateService(c *gin.Context) {
	serviceID, ok := paramID(c, "service")
	if !ok {
		return
	}
	var req models.ServiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	service, err := h.listingsUC.UpdateService(c.Request.Context(), serviceID, &req)
	if err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Service updated successfully", service)
}

// DeleteService handles DELETE /admin/services/:id
func (h *AdminHandler) DeleteService(c *gin.Context) {
	serviceID, ok := paramID(c, "service")
	if !ok {
		return
	}

	if err := h.listingsUC.DeleteService(c.Request.Context(), serviceID); err != nil {
		utils.GinAppError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Service deleted", nil)
}

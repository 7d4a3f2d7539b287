package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/utils"
	"github.com/piresc/wellnest/services/notifications"
)

// NotificationHandler serves a user's notification inbox
type NotificationHandler struct {
	notificationsUC notifications.NotificationsUC
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationsUC notifications.NotificationsUC) *NotificationHandler {
	return &NotificationHandler{
		notificationsUC: notificationsUC,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	list, err := h.notificationsUC.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleAppError(c, "Failed to list notifications", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.notificationsUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return utils.HandleAppError(c, "Failed to mark notification read", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

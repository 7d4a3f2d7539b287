package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/services/notifications/handler/http"
)

// Handler registers the notifications service routes
type Handler struct {
	notificationHandler *http.NotificationHandler
	webSocketHandler    *http.WebSocketHandler
}

// NewHandler creates the notifications route set
func NewHandler(notificationHandler *http.NotificationHandler, webSocketHandler *http.WebSocketHandler) *Handler {
	return &Handler{
		notificationHandler: notificationHandler,
		webSocketHandler:    webSocketHandler,
	}
}

// RegisterRoutes mounts the inbox on the authenticated API group and the
// websocket endpoint on its own authenticated group
func (h *Handler) RegisterRoutes(protected, ws *echo.Group) {
	inbox := protected.Group("/notifications")
	inbox.GET("", h.notificationHandler.ListNotifications)
	inbox.POST("/:id/read", h.notificationHandler.MarkRead)

	ws.GET("/notifications", h.webSocketHandler.Connect)
}

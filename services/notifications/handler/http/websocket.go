package http

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/utils"
)

// ConnectionHandler serves a user's live connection
type ConnectionHandler interface {
	HandleConnection(c echo.Context, userID string) error
}

// WebSocketHandler upgrades authenticated callers to the notification channel
type WebSocketHandler struct {
	connections ConnectionHandler
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(connections ConnectionHandler) *WebSocketHandler {
	return &WebSocketHandler{
		connections: connections,
	}
}

// Connect handles GET /ws/notifications
func (h *WebSocketHandler) Connect(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return h.connections.HandleConnection(c, userID.String())
}

package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/metrics"
	"github.com/piresc/wellnest/internal/pkg/models"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// Client is one user's notification connection. Writes are serialized.
type Client struct {
	UserID string
	conn   *websocket.Conn
	mu     sync.Mutex
}

func (c *Client) send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// Manager manages WebSocket connections keyed by user ID
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request for an authenticated user and serves the
// connection until the peer goes away. A newer connection for the same user replaces the old one.
func (m *Manager) HandleConnection(c echo.Context, userID string) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{UserID: userID, conn: ws}
	m.addClient(client)
	defer m.removeClient(client)

	logger.Info("WebSocket client connected", logger.String("user_id", userID))

	ws.SetReadLimit(maxMessageSize)
	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed",
					logger.String("user_id", userID),
					logger.Err(err))
			}
			return nil
		}

		switch msg.Event {
		case constants.EventPing:
			err = client.send(constants.EventPong, map[string]int64{"ts": time.Now().Unix()})
		default:
			err = client.send(constants.EventError, models.WSErrorMessage{
				Code:    "unsupported_event",
				Message: fmt.Sprintf("unsupported event %q", msg.Event),
			})
		}
		if err != nil {
			return nil
		}
	}
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	previous := m.clients[client.UserID]
	m.clients[client.UserID] = client
	m.Unlock()

	if previous != nil {
		_ = previous.conn.Close()
	} else {
		metrics.WebsocketConnected(1)
	}
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	current, ok := m.clients[client.UserID]
	if ok && current == client {
		delete(m.clients, client.UserID)
	}
	m.Unlock()

	if ok && current == client {
		metrics.WebsocketConnected(-1)
	}
	_ = client.conn.Close()
}

// IsConnected reports whether userID has an open connection
func (m *Manager) IsConnected(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// NotifyClient sends an event to userID if connected. It reports whether the message was written.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) bool {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return false
	}

	if err := client.send(event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
		return false
	}
	return true
}

// CloseAll closes every open connection
func (m *Manager) CloseAll() {
	m.Lock()
	defer m.Unlock()
	for userID, client := range m.clients {
		client.mu.Lock()
		_ = client.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(time.Second))
		client.mu.Unlock()
		_ = client.conn.Close()
		delete(m.clients, userID)
		metrics.WebsocketConnected(-1)
	}
}

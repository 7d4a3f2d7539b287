package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification is a message delivered to a user in-app and over the websocket channel
type Notification struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Type      string     `json:"type" db:"type"`
	Title     string     `json:"title" db:"title"`
	Body      string     `json:"body" db:"body"`
	ReadAt    *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// WSMessage is one frame on /ws/notifications, in either direction
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is sent back for frames the server cannot handle
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

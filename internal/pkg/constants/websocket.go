package constants

// WebSocket event types
const (
	EventError        = "error"
	EventPing         = "ping"
	EventPong         = "pong"
	EventNotification = "notification"
)

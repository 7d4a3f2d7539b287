package notifications

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wellnest/services/notifications Pusher

// Pusher delivers a message to a user's live connection, reporting whether it was written
type Pusher interface {
	NotifyClient(userID string, event string, data interface{}) bool
}

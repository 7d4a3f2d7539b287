package usecase

import (
	"time"

	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/notifications"
)

const listLimit = 50

// NotificationsUC implements the notifications usecase interface
type NotificationsUC struct {
	notificationsRepo notifications.NotificationsRepo
	pusher            notifications.Pusher
	cfg               *models.Config
	now               func() time.Time
}

// NewNotificationsUC creates a new notifications usecase instance
func NewNotificationsUC(notificationsRepo notifications.NotificationsRepo, pusher notifications.Pusher, cfg *models.Config) *NotificationsUC {
	return &NotificationsUC{
		notificationsRepo: notificationsRepo,
		pusher:            pusher,
		cfg:               cfg,
		now:               time.Now,
	}
}

package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wellnest/services/notifications NotificationsRepo

// NotificationsRepo defines persistence for notifications
type NotificationsRepo interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID, at time.Time) error
	GetServiceName(ctx context.Context, serviceID uuid.UUID) (string, error)
}

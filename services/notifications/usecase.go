package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wellnest/services/notifications NotificationsUC

// NotificationsUC represents the notifications usecase interface
type NotificationsUC interface {
	HandleBookingEvent(ctx context.Context, event *models.BookingEvent) error
	HandleReviewEvent(ctx context.Context, event *models.ReviewEvent) error

	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

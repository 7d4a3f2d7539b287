package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// CreateNotification stores a notification, assigning its ID and timestamp
func (r *NotificationsRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	notification.ID = uuid.New()
	notification.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO notifications (id, user_id, type, title, body, read_at, created_at)
		VALUES (:id, :user_id, :type, :title, :body, :read_at, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.NotFound("user not found")
		}
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListByUser returns a user's most recent notifications
func (r *NotificationsRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Notification, error) {
	notifications := []*models.Notification{}
	err := r.db.SelectContext(ctx, &notifications, `
		SELECT id, user_id, type, title, body, read_at, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead sets read_at on one of the user's notifications. Marking an
// already read notification keeps its original read time.
func (r *NotificationsRepo) MarkRead(ctx context.Context, userID, notificationID uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET read_at = COALESCE(read_at, $1)
		WHERE id = $2 AND user_id = $3`, at, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.NotFound("notification not found")
	}
	return nil
}

// GetServiceName returns the display name of a service
func (r *NotificationsRepo) GetServiceName(ctx context.Context, serviceID uuid.UUID) (string, error) {
	var name string
	if err := r.db.GetContext(ctx, &name, `SELECT name FROM services WHERE id = $1`, serviceID); err != nil {
		if database.IsNoRows(err) {
			return "", apperror.NotFound("service not found")
		}
		return "", fmt.Errorf("failed to get service name: %w", err)
	}
	return name, nil
}

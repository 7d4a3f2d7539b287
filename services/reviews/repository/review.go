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

// ServiceExists reports whether a service row exists
func (r *ReviewsRepo) ServiceExists(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)`, serviceID); err != nil {
		return false, fmt.Errorf("failed to check service: %w", err)
	}
	return exists, nil
}

// HasCompletedBooking reports whether the user completed at least one booking of the service
func (r *ReviewsRepo) HasCompletedBooking(ctx context.Context, userID, serviceID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM bookings WHERE user_id = $1 AND service_id = $2 AND status = $3
		)`, userID, serviceID, models.BookingStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to check bookings: %w", err)
	}
	return exists, nil
}

// CreateReview inserts a review and refreshes the service rating
func (r *ReviewsRepo) CreateReview(ctx context.Context, review *models.Review) error {
	review.ID = uuid.New()
	review.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO reviews (id, user_id, service_id, rating, comment, created_at)
		VALUES (:id, :user_id, :service_id, :rating, :comment, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, review); err != nil {
		if database.IsUniqueViolation(err) && database.ConstraintName(err) == "reviews_user_service_key" {
			return apperror.Conflict("service already reviewed")
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}

	if _, err := tx.ExecContext(ctx, database.RefreshServiceRatingQuery, review.ServiceID); err != nil {
		return fmt.Errorf("failed to refresh service rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListReviewsByService returns a service's reviews, newest first
func (r *ReviewsRepo) ListReviewsByService(ctx context.Context, serviceID uuid.UUID) ([]*models.Review, error) {
	reviews := []*models.Review{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT id, user_id, service_id, rating, comment, created_at
		FROM reviews WHERE service_id = $1 ORDER BY created_at DESC`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// DeleteReview removes a review and refreshes its service's rating
func (r *ReviewsRepo) DeleteReview(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var serviceID uuid.UUID
	err = tx.GetContext(ctx, &serviceID, `DELETE FROM reviews WHERE id = $1 RETURNING service_id`, reviewID)
	if err != nil {
		if database.IsNoRows(err) {
			return uuid.Nil, apperror.NotFound("review not found")
		}
		return uuid.Nil, fmt.Errorf("failed to delete review: %w", err)
	}

	if _, err := tx.ExecContext(ctx, database.RefreshServiceRatingQuery, serviceID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to refresh service rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return serviceID, nil
}

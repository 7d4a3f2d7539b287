package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wellnest/services/reviews ReviewsRepo

// ReviewsRepo defines persistence for reviews and the rating aggregate they feed
type ReviewsRepo interface {
	ServiceExists(ctx context.Context, serviceID uuid.UUID) (bool, error)
	HasCompletedBooking(ctx context.Context, userID, serviceID uuid.UUID) (bool, error)

	// CreateReview inserts the review and refreshes the service rating in one transaction
	CreateReview(ctx context.Context, review *models.Review) error
	ListReviewsByService(ctx context.Context, serviceID uuid.UUID) ([]*models.Review, error)
	// DeleteReview removes the review and refreshes the service rating, returning the service ID
	DeleteReview(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, error)
}

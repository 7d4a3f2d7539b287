package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wellnest/services/reviews ReviewsUC

// ReviewsUC represents the reviews usecase interface
type ReviewsUC interface {
	CreateReview(ctx context.Context, userID, serviceID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, serviceID uuid.UUID) ([]*models.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
}

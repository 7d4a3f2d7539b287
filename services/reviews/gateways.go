package reviews

import (
	"context"

	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wellnest/services/reviews ReviewsGW,ListingCache

// ReviewsGW publishes review events
type ReviewsGW interface {
	PublishReviewCreated(ctx context.Context, event *models.ReviewEvent) error
}

// ListingCache is invalidated when a rating shown in listings changes
type ListingCache interface {
	InvalidatePrefix(ctx context.Context, prefix string) (int, error)
}

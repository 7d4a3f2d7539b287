package usecase

import (
	"time"

	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/reviews"
)

// ReviewsUC implements the reviews usecase interface
type ReviewsUC struct {
	reviewsRepo reviews.ReviewsRepo
	reviewsGW   reviews.ReviewsGW
	cache       reviews.ListingCache
	cfg         *models.Config
	now         func() time.Time
}

// NewReviewsUC creates a new reviews usecase instance
func NewReviewsUC(reviewsRepo reviews.ReviewsRepo, reviewsGW reviews.ReviewsGW, cache reviews.ListingCache, cfg *models.Config) *ReviewsUC {
	return &ReviewsUC{
		reviewsRepo: reviewsRepo,
		reviewsGW:   reviewsGW,
		cache:       cache,
		cfg:         cfg,
		now:         time.Now,
	}
}

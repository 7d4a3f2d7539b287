package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// CreateReview records the caller's rating of a service they have completed a booking for
func (uc *ReviewsUC) CreateReview(ctx context.Context, userID, serviceID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperror.Validation("rating must be between 1 and 5")
	}

	if err := uc.requireService(ctx, serviceID); err != nil {
		return nil, err
	}

	completed, err := uc.reviewsRepo.HasCompletedBooking(ctx, userID, serviceID)
	if err != nil {
		return nil, apperror.Internal("failed to check bookings", err)
	}
	if !completed {
		return nil, apperror.Forbidden("a completed booking is required to review this service")
	}

	review := &models.Review{
		UserID:    userID,
		ServiceID: serviceID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
	}
	if err := uc.reviewsRepo.CreateReview(ctx, review); err != nil {
		return nil, apperror.Classify(err, "failed to create review")
	}

	logger.InfoCtx(ctx, "Review created",
		logger.String("review_id", review.ID.String()),
		logger.String("service_id", serviceID.String()),
		logger.Int("rating", review.Rating))

	uc.invalidate(ctx, serviceID)

	event := &models.ReviewEvent{
		ReviewID:   review.ID,
		UserID:     userID,
		ServiceID:  serviceID,
		Rating:     review.Rating,
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.reviewsGW.PublishReviewCreated(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish review event",
			logger.String("review_id", review.ID.String()),
			logger.Err(err))
	}

	return review, nil
}

// ListReviews returns the reviews of a service
func (uc *ReviewsUC) ListReviews(ctx context.Context, serviceID uuid.UUID) ([]*models.Review, error) {
	if err := uc.requireService(ctx, serviceID); err != nil {
		return nil, err
	}

	reviews, err := uc.reviewsRepo.ListReviewsByService(ctx, serviceID)
	if err != nil {
		return nil, apperror.Internal("failed to list reviews", err)
	}
	return reviews, nil
}

// DeleteReview removes a review on behalf of an administrator
func (uc *ReviewsUC) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	serviceID, err := uc.reviewsRepo.DeleteReview(ctx, reviewID)
	if err != nil {
		return apperror.Classify(err, "failed to delete review")
	}

	logger.InfoCtx(ctx, "Review deleted",
		logger.String("review_id", reviewID.String()),
		logger.String("service_id", serviceID.String()))

	uc.invalidate(ctx, serviceID)
	return nil
}

func (uc *ReviewsUC) requireService(ctx context.Context, serviceID uuid.UUID) error {
	exists, err := uc.reviewsRepo.ServiceExists(ctx, serviceID)
	if err != nil {
		return apperror.Internal("failed to check service", err)
	}
	if !exists {
		return apperror.NotFound("service not found")
	}
	return nil
}

// invalidate drops cached listings so the refreshed rating is served
func (uc *ReviewsUC) invalidate(ctx context.Context, serviceID uuid.UUID) {
	if _, err := uc.cache.InvalidatePrefix(ctx, constants.CacheFamilyListing); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate listing cache",
			logger.String("service_id", serviceID.String()),
			logger.Err(err))
	}
}

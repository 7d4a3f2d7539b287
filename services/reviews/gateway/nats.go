package gateway

import (
	"context"

	"github.com/piresc/wellnest/internal/pkg/circuitbreaker"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/metrics"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/retry"
)

// Publisher is the subset of the NATS client used to emit events
type Publisher interface {
	Publish(subject string, message interface{}) error
}

// ReviewsGW emits review events on NATS
type ReviewsGW struct {
	publisher Publisher
	retrier   *retry.Retrier
	breaker   *circuitbreaker.Breaker
}

// NewReviewsGW creates a new reviews gateway
func NewReviewsGW(publisher Publisher) *ReviewsGW {
	return &ReviewsGW{
		publisher: publisher,
		retrier:   retry.New("review event publish", retry.PublishConfig()),
		breaker:   circuitbreaker.New("reviews_events", circuitbreaker.PublishConfig()),
	}
}

// PublishReviewCreated sends event on the review.created subject
func (g *ReviewsGW) PublishReviewCreated(ctx context.Context, event *models.ReviewEvent) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Do(ctx, func(ctx context.Context) error {
			return g.publisher.Publish(constants.SubjectReviewCreated, event)
		})
	})
	metrics.RecordEventPublished(constants.SubjectReviewCreated, err == nil)
	return err
}

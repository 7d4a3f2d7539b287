package gateway

import (
	"context"

	"github.com/piresc/wellnest/internal/pkg/circuitbreaker"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/metrics"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/retry"
)

// Publisher is the subset of the NATS client used to emit events
type Publisher interface {
	Publish(subject string, message interface{}) error
}

// BookingsGW emits booking events on NATS
type BookingsGW struct {
	publisher Publisher
	retrier   *retry.Retrier
	breaker   *circuitbreaker.Breaker
}

// NewBookingsGW creates a new bookings gateway
func NewBookingsGW(publisher Publisher) *BookingsGW {
	return &BookingsGW{
		publisher: publisher,
		retrier:   retry.New("booking event publish", retry.PublishConfig()),
		breaker:   circuitbreaker.New("bookings_events", circuitbreaker.PublishConfig()),
	}
}

// PublishBookingEvent sends event to subject
func (g *BookingsGW) PublishBookingEvent(ctx context.Context, subject string, event *models.BookingEvent) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Do(ctx, func(ctx context.Context) error {
			return g.publisher.Publish(subject, event)
		})
	})
	metrics.RecordEventPublished(subject, err == nil)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Booking event published",
		logger.String("subject", subject),
		logger.String("booking_id", event.BookingID.String()))
	return nil
}

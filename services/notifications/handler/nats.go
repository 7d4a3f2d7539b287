package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
	natspkg "github.com/piresc/wellnest/internal/pkg/nats"
	nrpkg "github.com/piresc/wellnest/internal/pkg/newrelic"
	"github.com/piresc/wellnest/services/notifications"
)

// Subscriber is the subset of the NATS client used to consume events
type Subscriber interface {
	QueueSubscribe(subject, queue string, handler natspkg.MessageHandler) error
}

// NatsHandler turns domain events into user notifications
type NatsHandler struct {
	notificationsUC notifications.NotificationsUC
	subscriber      Subscriber
	nrApp           *newrelic.Application
}

// NewNatsHandler creates a new notifications NATS handler
func NewNatsHandler(notificationsUC notifications.NotificationsUC, subscriber Subscriber, nrApp *newrelic.Application) *NatsHandler {
	return &NatsHandler{
		notificationsUC: notificationsUC,
		subscriber:      subscriber,
		nrApp:           nrApp,
	}
}

// InitNATSConsumers subscribes to booking and review events in the notifications queue group
func (h *NatsHandler) InitNATSConsumers() error {
	bookingSubjects := []string{
		constants.SubjectBookingCreated,
		constants.SubjectBookingCancelled,
		constants.SubjectBookingStatusChanged,
	}
	for _, subject := range bookingSubjects {
		if err := h.subscriber.QueueSubscribe(subject, constants.QueueNotifications, h.handleBookingEvent); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
	}

	if err := h.subscriber.QueueSubscribe(constants.SubjectReviewCreated, constants.QueueNotifications, h.handleReviewEvent); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectReviewCreated, err)
	}

	logger.Info("Notification consumers started", logger.Int("subjects", len(bookingSubjects)+1))
	return nil
}

func (h *NatsHandler) handleBookingEvent(subject string, data []byte) (err error) {
	ctx, end := nrpkg.StartMessageTransaction(context.Background(), h.nrApp, "nats "+subject)
	defer func() { end(err) }()

	var event models.BookingEvent
	if err = json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}
	if event.Type == "" {
		event.Type = subject
	}

	return h.notificationsUC.HandleBookingEvent(ctx, &event)
}

func (h *NatsHandler) handleReviewEvent(subject string, data []byte) (err error) {
	ctx, end := nrpkg.StartMessageTransaction(context.Background(), h.nrApp, "nats "+subject)
	defer func() { end(err) }()

	var event models.ReviewEvent
	if err = json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal review event: %w", err)
	}

	return h.notificationsUC.HandleReviewEvent(ctx, &event)
}

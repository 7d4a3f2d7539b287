package bookings

import (
	"context"

	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wellnest/services/bookings BookingsGW

// BookingsGW publishes booking lifecycle events
type BookingsGW interface {
	PublishBookingEvent(ctx context.Context, subject string, event *models.BookingEvent) error
}

package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wellnest/services/bookings BookingsRepo

// BookingsRepo defines persistence for bookings
type BookingsRepo interface {
	GetServiceByID(ctx context.Context, serviceID uuid.UUID) (*models.WellnessService, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error)
	ListBookings(ctx context.Context, filter *models.BookingFilter) ([]*models.Booking, int, error)

	// UpdateStatus moves a booking from one status to another. It fails with a
	// Conflict when the booking is no longer in status from.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) error
}

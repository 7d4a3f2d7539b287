package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wellnest/services/bookings BookingsUC

// BookingsUC represents the booking usecase interface
type BookingsUC interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error)
	GetBooking(ctx context.Context, caller *models.Identity, bookingID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error)

	// Administration
	ListBookings(ctx context.Context, filter *models.BookingFilter) (*models.BookingPage, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}

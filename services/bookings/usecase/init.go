package usecase

import (
	"time"

	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/bookings"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BookingsUC implements the bookings usecase interface
type BookingsUC struct {
	bookingsRepo bookings.BookingsRepo
	bookingsGW   bookings.BookingsGW
	cfg          *models.Config
	now          func() time.Time
}

// NewBookingsUC creates a new bookings usecase instance
func NewBookingsUC(bookingsRepo bookings.BookingsRepo, bookingsGW bookings.BookingsGW, cfg *models.Config) *BookingsUC {
	return &BookingsUC{
		bookingsRepo: bookingsRepo,
		bookingsGW:   bookingsGW,
		cfg:          cfg,
		now:          time.Now,
	}
}

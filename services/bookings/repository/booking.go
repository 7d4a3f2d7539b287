package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/models"
)

const bookingColumns = `id, user_id, service_id, scheduled_at, status, notes, created_at, updated_at`

// GetServiceByID loads the booked service
func (r *BookingsRepo) GetServiceByID(ctx context.Context, serviceID uuid.UUID) (*models.WellnessService, error) {
	var service models.WellnessService
	err := r.db.GetContext(ctx, &service,
		`SELECT id, name, category, is_active FROM services WHERE id = $1`, serviceID)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, apperror.NotFound("service not found")
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

// CreateBooking inserts a booking, assigning its ID and timestamps
func (r *BookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	booking.ID = uuid.New()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `
		INSERT INTO bookings (id, user_id, service_id, scheduled_at, status, notes, created_at, updated_at)
		VALUES (:id, :user_id, :service_id, :scheduled_at, :status, :notes, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.NotFound("service not found")
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by ID
func (r *BookingsRepo) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, apperror.NotFound("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ListBookingsByUser returns a user's bookings, soonest appointment last
func (r *BookingsRepo) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error) {
	bookings := []*models.Booking{}
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY scheduled_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ListBookings returns a page of all bookings, optionally narrowed by status
func (r *BookingsRepo) ListBookings(ctx context.Context, filter *models.BookingFilter) ([]*models.Booking, int, error) {
	where := ""
	args := []interface{}{}
	if filter.Status != "" {
		where = " WHERE status = $1"
		args = append(args, filter.Status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	bookings := []*models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}

// UpdateStatus applies a status change only if the booking is still in status from
func (r *BookingsRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, time.Now().UTC(), bookingID, from)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.Conflict("booking status changed concurrently")
	}
	return nil
}

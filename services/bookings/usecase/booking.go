package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/authz"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/newrelic"
)

// CreateBooking reserves an active service for the caller
func (uc *BookingsUC) CreateBooking(ctx context.Context, userID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error) {
	return newrelic.WithSegmentAndReturn(ctx, "BookingsUC.CreateBooking", func() (*models.Booking, error) {
		serviceID, err := uuid.Parse(req.ServiceID)
		if err != nil {
			return nil, apperror.Validation("invalid service_id")
		}
		if !req.ScheduledAt.After(uc.now()) {
			return nil, apperror.Validation("scheduled_at must be in the future")
		}

		service, err := uc.bookingsRepo.GetServiceByID(ctx, serviceID)
		if err != nil {
			return nil, apperror.Classify(err, "failed to get service")
		}
		if !service.IsActive {
			return nil, apperror.NotFound("service not found")
		}

		booking := &models.Booking{
			UserID:      userID,
			ServiceID:   serviceID,
			ScheduledAt: req.ScheduledAt.UTC(),
			Status:      models.BookingStatusPending,
			Notes:       req.Notes,
		}
		if err := uc.bookingsRepo.CreateBooking(ctx, booking); err != nil {
			return nil, apperror.Classify(err, "failed to create booking")
		}

		logger.InfoCtx(ctx, "Booking created",
			logger.String("booking_id", booking.ID.String()),
			logger.String("service_id", serviceID.String()))

		uc.publish(ctx, constants.SubjectBookingCreated, booking, service.Name)
		return booking, nil
	})
}

// ListMyBookings returns the caller's bookings
func (uc *BookingsUC) ListMyBookings(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error) {
	bookings, err := uc.bookingsRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to list bookings", err)
	}
	return bookings, nil
}

// GetBooking returns a booking visible to caller. Non-owners see NotFound,
// not Forbidden, so booking IDs cannot be probed.
func (uc *BookingsUC) GetBooking(ctx context.Context, caller *models.Identity, bookingID uuid.UUID) (*models.Booking, error) {
	if caller == nil {
		return nil, apperror.Unauthenticated("authentication required")
	}

	booking, err := uc.bookingsRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, apperror.Classify(err, "failed to get booking")
	}
	if !authz.IsOwnerOrAdmin(caller, booking.UserID.String()) {
		return nil, apperror.NotFound("booking not found")
	}
	return booking, nil
}

// CancelBooking cancels one of the caller's open bookings
func (uc *BookingsUC) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingsRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, apperror.Classify(err, "failed to get booking")
	}
	if booking.UserID != userID {
		return nil, apperror.NotFound("booking not found")
	}
	if !booking.Status.CanTransitionTo(models.BookingStatusCancelled) {
		return nil, apperror.Conflict("booking can no longer be cancelled")
	}

	return uc.transition(ctx, booking, models.BookingStatusCancelled)
}

// ListBookings returns a page of all bookings
func (uc *BookingsUC) ListBookings(ctx context.Context, filter *models.BookingFilter) (*models.BookingPage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperror.Validation("invalid status")
	}
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)

	bookings, total, err := uc.bookingsRepo.ListBookings(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("failed to list bookings", err)
	}

	return &models.BookingPage{
		Bookings: bookings,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

// UpdateStatus moves a booking along its lifecycle
func (uc *BookingsUC) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	booking, err := uc.bookingsRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, apperror.Classify(err, "failed to get booking")
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, apperror.Conflict("cannot move booking from " + string(booking.Status) + " to " + string(status))
	}

	return uc.transition(ctx, booking, status)
}

func (uc *BookingsUC) transition(ctx context.Context, booking *models.Booking, next models.BookingStatus) (*models.Booking, error) {
	if err := uc.bookingsRepo.UpdateStatus(ctx, booking.ID, booking.Status, next); err != nil {
		return nil, apperror.Classify(err, "failed to update booking status")
	}

	logger.InfoCtx(ctx, "Booking status changed",
		logger.String("booking_id", booking.ID.String()),
		logger.String("from", string(booking.Status)),
		logger.String("to", string(next)))

	booking.Status = next
	booking.UpdatedAt = uc.now().UTC()

	subject := constants.SubjectBookingStatusChanged
	if next == models.BookingStatusCancelled {
		subject = constants.SubjectBookingCancelled
	}
	uc.publish(ctx, subject, booking, "")
	return booking, nil
}

// publish emits a booking event. The booking is already committed, so a
// failed publish is logged and does not fail the request.
func (uc *BookingsUC) publish(ctx context.Context, subject string, booking *models.Booking, serviceName string) {
	event := &models.BookingEvent{
		Type:        subject,
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ServiceID:   booking.ServiceID,
		ServiceName: serviceName,
		Status:      booking.Status,
		ScheduledAt: booking.ScheduledAt,
		OccurredAt:  uc.now().UTC(),
	}
	if err := uc.bookingsGW.PublishBookingEvent(ctx, subject, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking event",
			logger.String("subject", subject),
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

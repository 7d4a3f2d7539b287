package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
)

func setupBookingsRepoTest(t *testing.T) (*BookingsRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewBookingsRepo(&models.Config{}, sqlxDB), mock
}

var bookingRowColumns = []string{"id", "user_id", "service_id", "scheduled_at", "status", "notes", "created_at", "updated_at"}

func TestGetServiceByID(t *testing.T) {
	repo, mock := setupBookingsRepoTest(t)
	serviceID := uuid.New()

	mock.ExpectQuery(`SELECT id, name, category, is_active FROM services WHERE id = \$1`).
		WithArgs(serviceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "is_active"}).
			AddRow(serviceID.String(), "Vinyasa flow", "yoga", true))

	service, err := repo.GetServiceByID(context.Background(), serviceID)

	require.NoError(t, err)
	assert.Equal(t, "Vinyasa flow", service.Name)
	assert.True(t, service.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetServiceByID_NotFound(t *testing.T) {
	repo, mock := setupBookingsRepoTest(t)

	mock.ExpectQuery(`SELECT (.+) FROM services WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "is_active"}))

	_, err := repo.GetServiceByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateBooking(t *testing.T) {
	repo, mock := setupBookingsRepoTest(t)
	booking := &models.Booking{
		UserID:      uuid.New(),
		ServiceID:   uuid.New(),
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      models.BookingStatusPending,
	}

	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(sqlmock.AnyArg(), booking.UserID, booking.ServiceID, sqlmock.AnyArg(), booking.Status, "",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateBooking(context.Background(), booking)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_ServiceDeleted(t *testing.T) {
	repo, mock := setupBookingsRepoTest(t)

	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "bookings_service_id_fkey"})

	err := repo.CreateBooking(context.Background(), &models.Booking{})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetBookingByID(t *testing.T) {
	repo, mock := setupBookingsRepoTest(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).
			AddRow(id.String(), uuid.NewString(), uuid.NewString(), now, "CONFIRMED", "", now, now))

	booking, err := repo.GetBookingByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))
	_, err = repo.GetBookingByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListBookings(t *testing.T) {
	repo, mock := setupBookingsRepoTest(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status = \$1`).
		WithArgs(models.BookingStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE status = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(models.BookingStatusPending, 2, 2).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).
			AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), now, "PENDING", "", now, now))

	bookings, total, err := repo.ListBookings(context.Background(), &models.BookingFilter{
		Status: models.BookingStatusPending, Page: 2, Limit: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookings_NoStatus(t *testing.T) {
	repo, mock := setupBookingsRepoTest(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT (.+) FROM bookings ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))

	bookings, total, err := repo.ListBookings(context.Background(), &models.BookingFilter{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, bookings)
}

func TestUpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		result   func(*sqlmock.ExpectedExec)
		wantKind apperror.Kind
		wantErr  bool
	}{
		{
			name:   "applied",
			result: func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 1)) },
		},
		{
			name:     "status moved underneath",
			result:   func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) },
			wantErr:  true,
			wantKind: apperror.KindConflict,
		},
		{
			name:     "driver failure",
			result:   func(e *sqlmock.ExpectedExec) { e.WillReturnError(errors.New("connection reset")) },
			wantErr:  true,
			wantKind: apperror.KindInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupBookingsRepoTest(t)
			id := uuid.New()

			exec := mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = \$2 WHERE id = \$3 AND status = \$4`).
				WithArgs(models.BookingStatusCancelled, sqlmock.AnyArg(), id, models.BookingStatusPending)
			tc.result(exec)

			err := repo.UpdateStatus(context.Background(), id, models.BookingStatusPending, models.BookingStatusCancelled)

			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantKind, apperror.KindOf(err))
		})
	}
}

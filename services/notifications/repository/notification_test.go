package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
)

func setupNotificationsRepoTest(t *testing.T) (*NotificationsRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewNotificationsRepo(&models.Config{}, sqlxDB), mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupNotificationsRepoTest(t)
	n := &models.Notification{UserID: uuid.New(), Type: "booking.created", Title: "Booking received", Body: "..."}

	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(sqlmock.AnyArg(), n.UserID, "booking.created", "Booking received", "...", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateNotification(context.Background(), n)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := setupNotificationsRepoTest(t)
	userID := uuid.New()
	readAt := time.Now().Add(-time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM notifications WHERE user_id = \$1\s+ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(userID, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "title", "body", "read_at", "created_at"}).
			AddRow(uuid.NewString(), userID.String(), "review.created", "Thanks", "", readAt, time.Now()).
			AddRow(uuid.NewString(), userID.String(), "booking.created", "Booking received", "", nil, time.Now()))

	list, err := repo.ListByUser(context.Background(), userID, 50)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.NotNil(t, list[0].ReadAt)
	assert.Nil(t, list[1].ReadAt)
}

func TestMarkRead(t *testing.T) {
	repo, mock := setupNotificationsRepoTest(t)
	userID, id := uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectExec(`UPDATE notifications SET read_at = COALESCE\(read_at, \$1\)`).
		WithArgs(at, id, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkRead(context.Background(), userID, id, at))

	mock.ExpectExec(`UPDATE notifications`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.MarkRead(context.Background(), uuid.New(), id, at)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetServiceName(t *testing.T) {
	repo, mock := setupNotificationsRepoTest(t)
	serviceID := uuid.New()

	mock.ExpectQuery(`SELECT name FROM services WHERE id = \$1`).
		WithArgs(serviceID).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Sound bath"))

	name, err := repo.GetServiceName(context.Background(), serviceID)

	require.NoError(t, err)
	assert.Equal(t, "Sound bath", name)
}

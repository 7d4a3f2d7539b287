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

func setupReviewsRepoTest(t *testing.T) (*ReviewsRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewReviewsRepo(&models.Config{}, sqlxDB), mock
}

func TestHasCompletedBooking(t *testing.T) {
	repo, mock := setupReviewsRepoTest(t)
	userID, serviceID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT EXISTS\(\s+SELECT 1 FROM bookings WHERE user_id = \$1 AND service_id = \$2 AND status = \$3`).
		WithArgs(userID, serviceID, models.BookingStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasCompletedBooking(context.Background(), userID, serviceID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview(t *testing.T) {
	// Arrange
	repo, mock := setupReviewsRepoTest(t)
	review := &models.Review{UserID: uuid.New(), ServiceID: uuid.New(), Rating: 4, Comment: "calm"}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(sqlmock.AnyArg(), review.UserID, review.ServiceID, 4, "calm", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`UPDATE services`).
		WithArgs(review.ServiceID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.CreateReview(context.Background(), review)

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_Duplicate(t *testing.T) {
	repo, mock := setupReviewsRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO reviews`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "reviews_user_service_key"})
	mock.ExpectRollback()

	err := repo.CreateReview(context.Background(), &models.Review{Rating: 5})

	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_RatingRefreshFailsRollsBack(t *testing.T) {
	repo, mock := setupReviewsRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO reviews`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`UPDATE services`).WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := repo.CreateReview(context.Background(), &models.Review{ServiceID: uuid.New(), Rating: 2})

	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReviewsByService(t *testing.T) {
	repo, mock := setupReviewsRepoTest(t)
	serviceID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM reviews WHERE service_id = \$1 ORDER BY created_at DESC`).
		WithArgs(serviceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "service_id", "rating", "comment", "created_at"}).
			AddRow(uuid.NewString(), uuid.NewString(), serviceID.String(), 5, "great", time.Now()))

	reviews, err := repo.ListReviewsByService(context.Background(), serviceID)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestDeleteReview(t *testing.T) {
	repo, mock := setupReviewsRepoTest(t)
	reviewID, serviceID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM reviews WHERE id = \$1 RETURNING service_id`).
		WithArgs(reviewID).
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}).AddRow(serviceID.String()))
	mock.ExpectExec(`UPDATE services`).WithArgs(serviceID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.DeleteReview(context.Background(), reviewID)

	require.NoError(t, err)
	assert.Equal(t, serviceID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReview_NotFound(t *testing.T) {
	repo, mock := setupReviewsRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM reviews`).WillReturnRows(sqlmock.NewRows([]string{"service_id"}))
	mock.ExpectRollback()

	_, err := repo.DeleteReview(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

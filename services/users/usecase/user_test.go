package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/users/mocks"
)

func setupUsersUC(t *testing.T) (*UsersUC, *mocks.MockUsersRepo, *mocks.MockListingCache) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepo(ctrl)
	cache := mocks.NewMockListingCache(ctrl)
	return NewUsersUC(repo, cache, &models.Config{}), repo, cache
}

func strPtr(s string) *string { return &s }

func TestGetProfile(t *testing.T) {
	uc, repo, _ := setupUsersUC(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Name: "Alice"}, nil)

	user, err := uc.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestGetProfile_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("not found passes through", func(t *testing.T) {
		uc, repo, _ := setupUsersUC(t)
		repo.EXPECT().GetUserByID(ctx, gomock.Any()).Return(nil, apperror.NotFound("user not found"))

		_, err := uc.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("driver error becomes internal", func(t *testing.T) {
		uc, repo, _ := setupUsersUC(t)
		repo.EXPECT().GetUserByID(ctx, gomock.Any()).Return(nil, errors.New("failed to get user: timeout"))

		_, err := uc.GetProfile(ctx, uuid.New())
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	// Arrange
	uc, repo, _ := setupUsersUC(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &models.User{ID: userID, Name: "Alice", Username: "alice99", Phone: strPtr("+1555")}

	repo.EXPECT().GetUserByID(ctx, userID).Return(existing, nil)
	repo.EXPECT().UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "Alice Smith", user.Name)
			assert.Equal(t, "alice99", user.Username)
			assert.Equal(t, "+15551234", *user.Phone)
			assert.Equal(t, "alice@example.com", *user.Email)
			return nil
		})

	// Act
	user, err := uc.UpdateProfile(ctx, userID, &models.UpdateProfileRequest{
		Name:  " Alice Smith ",
		Phone: strPtr("+1 555-1234"),
		Email: strPtr("Alice@Example.com"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", user.Name)
}

func TestUpdateProfile_Rejections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("email in phone field", func(t *testing.T) {
		uc, repo, _ := setupUsersUC(t)
		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Phone: strPtr("+1555")}, nil)

		_, err := uc.UpdateProfile(ctx, userID, &models.UpdateProfileRequest{Phone: strPtr("a@b.io")})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("duplicate username", func(t *testing.T) {
		uc, repo, _ := setupUsersUC(t)
		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Phone: strPtr("+1555")}, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(apperror.Conflict("username is already taken"))

		_, err := uc.UpdateProfile(ctx, userID, &models.UpdateProfileRequest{Username: "bob"})
		assert.ErrorIs(t, err, apperror.ErrConflict)
	})
}

func TestDeleteAccount_InvalidatesListingsWhenReviewsRemoved(t *testing.T) {
	uc, repo, cache := setupUsersUC(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().DeleteUser(ctx, userID).Return([]uuid.UUID{uuid.New()}, nil)
	cache.EXPECT().InvalidatePrefix(ctx, constants.CacheFamilyListing).Return(3, nil)

	assert.NoError(t, uc.DeleteAccount(ctx, userID))
}

func TestDeleteAccount_NoReviews(t *testing.T) {
	uc, repo, _ := setupUsersUC(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().DeleteUser(ctx, userID).Return(nil, nil)

	assert.NoError(t, uc.DeleteAccount(ctx, userID))
}

func TestDeleteUser_CacheFailureIsNotFatal(t *testing.T) {
	uc, repo, cache := setupUsersUC(t)
	ctx := context.Background()

	repo.EXPECT().DeleteUser(ctx, gomock.Any()).Return([]uuid.UUID{uuid.New()}, nil)
	cache.EXPECT().InvalidatePrefix(ctx, gomock.Any()).Return(0, errors.New("redis down"))

	assert.NoError(t, uc.DeleteUser(ctx, uuid.New()))
}

func TestDeleteUser_NotFound(t *testing.T) {
	uc, repo, _ := setupUsersUC(t)
	ctx := context.Background()

	repo.EXPECT().DeleteUser(ctx, gomock.Any()).Return(nil, apperror.NotFound("user not found"))

	assert.ErrorIs(t, uc.DeleteUser(ctx, uuid.New()), apperror.ErrNotFound)
}

func TestListUsers_ClampsPaging(t *testing.T) {
	uc, repo, _ := setupUsersUC(t)
	ctx := context.Background()

	repo.EXPECT().ListUsers(ctx, 0, 100).Return([]*models.User{{Name: "Alice"}}, 1, nil)

	page, err := uc.ListUsers(ctx, 0, 500)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 1, page.Total)
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("promotes", func(t *testing.T) {
		uc, repo, _ := setupUsersUC(t)
		repo.EXPECT().UpdateRole(ctx, userID, models.RoleAdmin).Return(nil)
		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Role: models.RoleAdmin}, nil)

		user, err := uc.UpdateRole(ctx, userID, models.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		uc, _, _ := setupUsersUC(t)

		_, err := uc.UpdateRole(ctx, userID, models.Role("ROOT"))

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

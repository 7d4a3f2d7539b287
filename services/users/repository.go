package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wellnest/services/users UsersRepo

// UsersRepo defines persistence for accounts
type UsersRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) error
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int, error)

	// DeleteUser removes the account and everything it owns in one transaction.
	// It returns the services whose rating changed because the user's reviews were removed.
	DeleteUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

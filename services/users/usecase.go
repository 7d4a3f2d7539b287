package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wellnest/services/users UsersUC

// UsersUC represents the account management usecase interface
type UsersUC interface {
	// Self service
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// Administration
	ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) (*models.User, error)
}

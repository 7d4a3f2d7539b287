package auth

import (
	"context"
	"time"

	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wellnest/services/auth AuthRepo

// AuthRepo defines the OTP store and the account lookups needed to authenticate
type AuthRepo interface {
	// OTP records (Redis)
	SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	GetOTP(ctx context.Context, flow models.OTPFlow, subject string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, flow models.OTPFlow, subject string) (bool, error)

	// Accounts (PostgreSQL)
	GetUserByContact(ctx context.Context, kind models.ContactKind, contact string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
}

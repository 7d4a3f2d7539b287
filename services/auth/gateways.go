package auth

import (
	"context"
	"time"

	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wellnest/services/auth AuthGW,TokenIssuer

// AuthGW hands issued codes to the delivery channel
type AuthGW interface {
	DispatchOTP(ctx context.Context, dispatch *models.OTPDispatch) error
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	IssueToken(subject string, role models.Role) (string, time.Time, error)
}

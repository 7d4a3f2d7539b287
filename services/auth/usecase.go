package auth

import (
	"context"

	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wellnest/services/auth AuthUC

// AuthUC represents the OTP and sign-up/sign-in usecase interface
type AuthUC interface {
	// OTP challenge primitives
	IssueOTP(ctx context.Context, flow models.OTPFlow, subject string, profile *models.OTPProfile) (string, error)
	VerifyOTP(ctx context.Context, flow models.OTPFlow, subject, code string) (*models.OTPVerification, error)

	// Sign-up
	RequestSignupOTP(ctx context.Context, req *models.SignupOTPRequest) error
	VerifySignup(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error)

	// Sign-in
	RequestSigninOTP(ctx context.Context, req *models.SigninOTPRequest) error
	VerifySignin(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error)
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/models"
)

func otpKey(flow models.OTPFlow, subject string) string {
	return fmt.Sprintf(constants.KeyOTP, flow, subject)
}

// SaveOTP stores otp under its flow/subject key, replacing any active challenge
func (r *AuthRepo) SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	otpJSON, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	if err := r.redisClient.Set(ctx, otpKey(otp.Flow, otp.Subject), otpJSON, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// GetOTP returns the active challenge for flow/subject
func (r *AuthRepo) GetOTP(ctx context.Context, flow models.OTPFlow, subject string) (*models.OTP, error) {
	otpJSON, err := r.redisClient.GetBytes(ctx, otpKey(flow, subject))
	if err != nil {
		if database.IsRedisNil(err) {
			return nil, apperror.NotFound("OTP not found or expired")
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal(otpJSON, &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}
	return &otp, nil
}

// DeleteOTP removes the challenge for flow/subject and reports whether it existed
func (r *AuthRepo) DeleteOTP(ctx context.Context, flow models.OTPFlow, subject string) (bool, error) {
	n, err := r.redisClient.Delete(ctx, otpKey(flow, subject))
	if err != nil {
		return false, fmt.Errorf("failed to delete OTP: %w", err)
	}
	return n > 0, nil
}

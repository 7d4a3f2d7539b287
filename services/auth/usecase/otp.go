package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/metrics"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/newrelic"
	"github.com/piresc/wellnest/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// codeSpace is the number of distinct 4-digit codes
var codeSpace = big.NewInt(10000)

// IssueOTP draws a 4-digit code, stores its hash for flow/subject and returns the code.
// A new challenge replaces any active one for the same key.
func (u *AuthUC) IssueOTP(ctx context.Context, flow models.OTPFlow, subject string, profile *models.OTPProfile) (string, error) {
	return newrelic.WithSegmentAndReturn(ctx, "AuthUC.IssueOTP", func() (string, error) {
		code, err := u.generateCode()
		if err != nil {
			return "", apperror.Internal("failed to generate OTP", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(code), u.hashCost)
		if err != nil {
			return "", apperror.Internal("failed to hash OTP", err)
		}

		now := u.now()
		otp := &models.OTP{
			Flow:      flow,
			Subject:   subject,
			CodeHash:  string(hash),
			Profile:   profile,
			CreatedAt: now,
			ExpiresAt: now.Add(u.otpTTL),
		}

		if err := u.authRepo.SaveOTP(ctx, otp, u.otpTTL); err != nil {
			return "", apperror.Internal("failed to store OTP", err)
		}

		metrics.RecordOTPEvent(string(flow), "issued")
		logger.InfoCtx(ctx, "OTP issued",
			logger.String("flow", string(flow)),
			logger.String("subject", utils.MaskContact(subject)))

		return code, nil
	})
}

// VerifyOTP checks code against the active challenge for flow/subject.
// A matching challenge is deleted before success is returned, so a code verifies once.
func (u *AuthUC) VerifyOTP(ctx context.Context, flow models.OTPFlow, subject, code string) (*models.OTPVerification, error) {
	return newrelic.WithSegmentAndReturn(ctx, "AuthUC.VerifyOTP", func() (*models.OTPVerification, error) {
		otp, err := u.authRepo.GetOTP(ctx, flow, subject)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindNotFound {
				metrics.RecordOTPEvent(string(flow), "not_found")
				return nil, err
			}
			return nil, apperror.Internal("failed to load OTP", err)
		}

		if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
			metrics.RecordOTPEvent(string(flow), "mismatch")
			return nil, apperror.Mismatch("invalid OTP code")
		}

		// a concurrent verify may have consumed the record between GET and DEL
		deleted, err := u.authRepo.DeleteOTP(ctx, flow, subject)
		if err != nil {
			return nil, apperror.Internal("failed to consume OTP", err)
		}
		if !deleted {
			metrics.RecordOTPEvent(string(flow), "not_found")
			return nil, apperror.NotFound("OTP not found or expired")
		}

		metrics.RecordOTPEvent(string(flow), "verified")

		result := &models.OTPVerification{Subject: otp.Subject}
		if flow == models.OTPFlowSignup {
			result.Profile = otp.Profile
		}
		return result, nil
	})
}

func (u *AuthUC) generateCode() (string, error) {
	n, err := rand.Int(u.random, codeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

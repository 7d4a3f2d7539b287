package usecase

import (
	"context"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
)

// RequestSignupOTP validates the new account's details and sends a sign-up code
func (u *AuthUC) RequestSignupOTP(ctx context.Context, req *models.SignupOTPRequest) error {
	kind, contact, err := utils.NormalizeContact(req.Subject)
	if err != nil {
		return apperror.Validation(err.Error())
	}

	dob, err := models.ParseDate(req.DOB)
	if err != nil {
		return apperror.Validation("dob must be a YYYY-MM-DD date")
	}
	if !dob.Before(u.now()) {
		return apperror.Validation("dob must be in the past")
	}

	_, err = u.authRepo.GetUserByContact(ctx, kind, contact)
	switch {
	case err == nil:
		return apperror.Conflict("an account already exists for this " + string(kind))
	case apperror.KindOf(err) != apperror.KindNotFound:
		return apperror.Internal("failed to look up account", err)
	}

	taken, err := u.authRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return apperror.Internal("failed to check username", err)
	}
	if taken {
		return apperror.Conflict("username is already taken")
	}

	profile := &models.OTPProfile{
		Name:     req.Name,
		Username: req.Username,
		DOB:      req.DOB,
	}
	return u.issueAndDispatch(ctx, models.OTPFlowSignup, kind, contact, profile)
}

// VerifySignup consumes the sign-up code, creates the account and signs a session token
func (u *AuthUC) VerifySignup(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error) {
	kind, contact, err := utils.NormalizeContact(req.Subject)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	verification, err := u.VerifyOTP(ctx, models.OTPFlowSignup, contact, req.Code)
	if err != nil {
		return nil, err
	}
	if verification.Profile == nil {
		return nil, apperror.Internal("sign-up challenge has no profile", nil)
	}

	user := &models.User{
		Name:     verification.Profile.Name,
		Username: verification.Profile.Username,
		Role:     models.RoleUser,
	}
	if dob, err := models.ParseDate(verification.Profile.DOB); err == nil {
		user.DateOfBirth = &dob
	}
	if kind == models.ContactEmail {
		user.Email = &contact
	} else {
		user.Phone = &contact
	}

	if err := u.authRepo.CreateUser(ctx, user); err != nil {
		if apperror.KindOf(err) == apperror.KindConflict {
			return nil, err
		}
		return nil, apperror.Internal("failed to create user", err)
	}

	logger.InfoCtx(ctx, "User signed up",
		logger.String("user_id", user.ID.String()),
		logger.String("channel", string(kind)))

	return u.session(user)
}

// RequestSigninOTP sends a sign-in code to an existing account
func (u *AuthUC) RequestSigninOTP(ctx context.Context, req *models.SigninOTPRequest) error {
	kind, contact, err := utils.NormalizeContact(req.Subject)
	if err != nil {
		return apperror.Validation(err.Error())
	}

	if _, err := u.authRepo.GetUserByContact(ctx, kind, contact); err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return err
		}
		return apperror.Internal("failed to look up account", err)
	}

	return u.issueAndDispatch(ctx, models.OTPFlowSignin, kind, contact, nil)
}

// VerifySignin consumes the sign-in code and signs a session token for the account
func (u *AuthUC) VerifySignin(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error) {
	kind, contact, err := utils.NormalizeContact(req.Subject)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	if _, err := u.VerifyOTP(ctx, models.OTPFlowSignin, contact, req.Code); err != nil {
		return nil, err
	}

	user, err := u.authRepo.GetUserByContact(ctx, kind, contact)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, err
		}
		return nil, apperror.Internal("failed to load account", err)
	}

	return u.session(user)
}

func (u *AuthUC) issueAndDispatch(ctx context.Context, flow models.OTPFlow, kind models.ContactKind, contact string, profile *models.OTPProfile) error {
	code, err := u.IssueOTP(ctx, flow, contact, profile)
	if err != nil {
		return err
	}

	dispatch := &models.OTPDispatch{
		Flow:      flow,
		Channel:   kind,
		Recipient: contact,
		Code:      code,
		ExpiresAt: u.now().Add(u.otpTTL),
	}
	if err := u.authGW.DispatchOTP(ctx, dispatch); err != nil {
		return apperror.Internal("failed to dispatch OTP", err)
	}
	return nil
}

func (u *AuthUC) session(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := u.tokens.IssueToken(user.ID.String(), user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}


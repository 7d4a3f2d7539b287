package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
)

// GetProfile returns the caller's account
func (uc *UsersUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.usersRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperror.Classify(err, "failed to get user")
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of req to the caller's account.
// Phone and email are normalized the same way OTP subjects are.
func (uc *UsersUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.usersRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperror.Classify(err, "failed to get user")
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Phone != nil {
		phone, err := normalizeAs(*req.Phone, models.ContactPhone)
		if err != nil {
			return nil, err
		}
		user.Phone = phone
	}
	if req.Email != nil {
		email, err := normalizeAs(*req.Email, models.ContactEmail)
		if err != nil {
			return nil, err
		}
		user.Email = email
	}
	if user.Phone == nil && user.Email == nil {
		return nil, apperror.Validation("an account needs a phone number or an email")
	}

	if err := uc.usersRepo.UpdateUser(ctx, user); err != nil {
		return nil, apperror.Classify(err, "failed to update user")
	}
	return user, nil
}

// DeleteAccount removes the caller's account
func (uc *UsersUC) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return uc.deleteUser(ctx, userID)
}

// ListUsers returns a page of accounts
func (uc *UsersUC) ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error) {
	page, limit = clampPage(page, limit)

	list, total, err := uc.usersRepo.ListUsers(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, apperror.Internal("failed to list users", err)
	}
	return &models.UserPage{Users: list, Total: total, Page: page, Limit: limit}, nil
}

// DeleteUser removes any account
func (uc *UsersUC) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return uc.deleteUser(ctx, userID)
}

// UpdateRole changes an account's role and returns the updated account
func (uc *UsersUC) UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, apperror.Validation("role must be one of [USER ADMIN]")
	}
	if err := uc.usersRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, apperror.Classify(err, "failed to update role")
	}

	logger.InfoCtx(ctx, "User role changed",
		logger.String("user_id", userID.String()),
		logger.String("role", string(role)))

	return uc.GetProfile(ctx, userID)
}

func (uc *UsersUC) deleteUser(ctx context.Context, userID uuid.UUID) error {
	reviewed, err := uc.usersRepo.DeleteUser(ctx, userID)
	if err != nil {
		return apperror.Classify(err, "failed to delete user")
	}

	logger.InfoCtx(ctx, "User deleted",
		logger.String("user_id", userID.String()),
		logger.Int("reviewed_services", len(reviewed)))

	if len(reviewed) > 0 && uc.cache != nil {
		if _, err := uc.cache.InvalidatePrefix(ctx, constants.CacheFamilyListing); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate listing cache", logger.Err(err))
		}
	}
	return nil
}

func normalizeAs(raw string, want models.ContactKind) (*string, error) {
	kind, contact, err := utils.NormalizeContact(raw)
	if err != nil || kind != want {
		return nil, apperror.Validation(string(want) + " is invalid")
	}
	return &contact, nil
}

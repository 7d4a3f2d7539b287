package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/models"
)

const userColumns = `id, name, username, phone, email, date_of_birth, role, created_at, updated_at`

// GetUserByContact retrieves the account registered with a phone number or email
func (r *AuthRepo) GetUserByContact(ctx context.Context, kind models.ContactKind, contact string) (*models.User, error) {
	column := "phone"
	if kind == models.ContactEmail {
		column = "email"
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, column)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, contact); err != nil {
		if database.IsNoRows(err) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UsernameExists reports whether username is taken
func (r *AuthRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a new account, assigning its ID and timestamps
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, username, phone, email, date_of_birth, role, created_at, updated_at)
		VALUES (:id, :name, :username, :phone, :email, :date_of_birth, :role, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.Conflict(conflictMessage(database.ConstraintName(err)))
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func conflictMessage(constraint string) string {
	switch constraint {
	case "users_username_key":
		return "username is already taken"
	case "users_phone_key":
		return "an account already exists for this phone"
	case "users_email_key":
		return "an account already exists for this email"
	default:
		return "account already exists"
	}
}

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

// GetUserByID retrieves a user by ID
func (r *UsersRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if database.IsNoRows(err) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateUser saves the editable profile fields
func (r *UsersRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET name = :name, username = :username, phone = :phone, email = :email, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.Conflict(conflictMessage(database.ConstraintName(err)))
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return requireAffected(result, "user not found")
}

// UpdateRole changes a user's role
func (r *UsersRepo) UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`,
		role, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return requireAffected(result, "user not found")
}

// ListUsers returns a page of users, newest first, and the total count
func (r *UsersRepo) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	users := []*models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &users, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// DeleteUser removes the user's reviews, notifications and bookings, then the user row,
// and recomputes the rating of every service the user had reviewed. Nothing is removed
// unless every step succeeds.
func (r *UsersRepo) DeleteUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reviewed []uuid.UUID
	if err := tx.SelectContext(ctx, &reviewed,
		`SELECT DISTINCT service_id FROM reviews WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to load reviewed services: %w", err)
	}

	for _, stmt := range []struct {
		query string
		what  string
	}{
		{`DELETE FROM reviews WHERE user_id = $1`, "reviews"},
		{`DELETE FROM notifications WHERE user_id = $1`, "notifications"},
		{`DELETE FROM bookings WHERE user_id = $1`, "bookings"},
	} {
		if _, err := tx.ExecContext(ctx, stmt.query, userID); err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", stmt.what, err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if err := requireAffected(result, "user not found"); err != nil {
		return nil, err
	}

	for _, serviceID := range reviewed {
		if _, err := tx.ExecContext(ctx, database.RefreshServiceRatingQuery, serviceID); err != nil {
			return nil, fmt.Errorf("failed to refresh service rating: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reviewed, nil
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func requireAffected(result rowsAffected, notFound string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.NotFound(notFound)
	}
	return nil
}

func conflictMessage(constraint string) string {
	switch constraint {
	case "users_username_key":
		return "username is already taken"
	case "users_phone_key":
		return "phone number is already in use"
	case "users_email_key":
		return "email is already in use"
	default:
		return "profile conflicts with another account"
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role carried by a session token
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a platform account
type User struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Username    string     `json:"username" db:"username"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	Email       *string    `json:"email,omitempty" db:"email"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Role        Role       `json:"role" db:"role"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Identity is the authenticated caller extracted from a verified session token
type Identity struct {
	Subject   string    `json:"subject"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserID parses the token subject as a user ID
func (i *Identity) UserID() (uuid.UUID, error) {
	return uuid.Parse(i.Subject)
}

// UpdateProfileRequest represents a profile update by the account owner
type UpdateProfileRequest struct {
	Name     string  `json:"name" validate:"omitempty,min=1,max=120"`
	Username string  `json:"username" validate:"omitempty,alphanum,min=3,max=32"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// UpdateRoleRequest represents an administrative role change
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=USER ADMIN"`
}

// UserPage is a page of users for the admin dashboard
type UserPage struct {
	Users []*User `json:"users"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

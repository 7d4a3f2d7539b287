package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// UsersRepo implements the users repository interface
type UsersRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUsersRepo creates a new users repository instance
func NewUsersRepo(cfg *models.Config, db *sqlx.DB) *UsersRepo {
	return &UsersRepo{
		cfg: cfg,
		db:  db,
	}
}

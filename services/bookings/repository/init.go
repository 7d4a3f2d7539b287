package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// BookingsRepo implements the bookings repository interface
type BookingsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingsRepo creates a new bookings repository instance
func NewBookingsRepo(cfg *models.Config, db *sqlx.DB) *BookingsRepo {
	return &BookingsRepo{
		cfg: cfg,
		db:  db,
	}
}

package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// ListingsRepo implements the listings repository interface
type ListingsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewListingsRepo creates a new listings repository instance
func NewListingsRepo(cfg *models.Config, db *sqlx.DB) *ListingsRepo {
	return &ListingsRepo{
		cfg: cfg,
		db:  db,
	}
}

package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// ReviewsRepo implements the reviews repository interface
type ReviewsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReviewsRepo creates a new reviews repository instance
func NewReviewsRepo(cfg *models.Config, db *sqlx.DB) *ReviewsRepo {
	return &ReviewsRepo{
		cfg: cfg,
		db:  db,
	}
}

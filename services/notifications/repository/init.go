package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// NotificationsRepo implements the notifications repository interface
type NotificationsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationsRepo creates a new notifications repository instance
func NewNotificationsRepo(cfg *models.Config, db *sqlx.DB) *NotificationsRepo {
	return &NotificationsRepo{
		cfg: cfg,
		db:  db,
	}
}

package usecase

import (
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/users"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UsersUC implements the users usecase interface
type UsersUC struct {
	usersRepo users.UsersRepo
	cache     users.ListingCache
	cfg       *models.Config
}

// NewUsersUC creates a new users usecase instance
func NewUsersUC(usersRepo users.UsersRepo, cache users.ListingCache, cfg *models.Config) *UsersUC {
	return &UsersUC{
		usersRepo: usersRepo,
		cache:     cache,
		cfg:       cfg,
	}
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

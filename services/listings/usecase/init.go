package usecase

import (
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/listings"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	defaultRadiusKm = 5.0
	maxRadiusKm     = 100.0
)

// ListingsUC implements the listings usecase interface
type ListingsUC struct {
	listingsRepo listings.ListingsRepo
	cache        listings.ListingCache
	cfg          *models.Config
}

// NewListingsUC creates a new listings usecase instance
func NewListingsUC(listingsRepo listings.ListingsRepo, cache listings.ListingCache, cfg *models.Config) *ListingsUC {
	return &ListingsUC{
		listingsRepo: listingsRepo,
		cache:        cache,
		cfg:          cfg,
	}
}

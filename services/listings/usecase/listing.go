package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/newrelic"
	"github.com/piresc/wellnest/internal/utils"
)

// ListServices returns a page of active services. With a center point it narrows
// candidates by geohash cell, keeps those within the radius and orders them by distance.
func (uc *ListingsUC) ListServices(ctx context.Context, filter *models.ServiceFilter) (*models.ServicePage, error) {
	return newrelic.WithSegmentAndReturn(ctx, "ListingsUC.ListServices", func() (*models.ServicePage, error) {
		f := *filter
		f.ActiveOnly = true
		if f.Page < 1 {
			f.Page = 1
		}
		if f.Limit < 1 {
			f.Limit = defaultPageSize
		}
		if f.Limit > maxPageSize {
			f.Limit = maxPageSize
		}

		if (f.Latitude == nil) != (f.Longitude == nil) {
			return nil, apperror.Validation("lat and lng must be given together")
		}
		if f.Latitude == nil {
			services, total, err := uc.listingsRepo.ListServices(ctx, &f)
			if err != nil {
				return nil, apperror.Internal("failed to list services", err)
			}
			return &models.ServicePage{Services: services, Total: total, Page: f.Page, Limit: f.Limit}, nil
		}

		return uc.listNearby(ctx, f)
	})
}

func (uc *ListingsUC) listNearby(ctx context.Context, f models.ServiceFilter) (*models.ServicePage, error) {
	// negated comparisons also reject NaN
	if !(*f.Latitude >= -90 && *f.Latitude <= 90) {
		return nil, apperror.Validation("lat must be between -90 and 90")
	}
	if !(*f.Longitude >= -180 && *f.Longitude <= 180) {
		return nil, apperror.Validation("lng must be between -180 and 180")
	}
	if f.RadiusKm <= 0 {
		f.RadiusKm = defaultRadiusKm
	}
	if !(f.RadiusKm <= maxRadiusKm) {
		return nil, apperror.Validation("radius_km must be at most 100")
	}

	center := utils.GeoPoint{Latitude: *f.Latitude, Longitude: *f.Longitude}
	candidates := f
	candidates.GeohashPrefixes = utils.CoveringPrefixes(center, f.RadiusKm)
	candidates.Limit = 0

	services, _, err := uc.listingsRepo.ListServices(ctx, &candidates)
	if err != nil {
		return nil, apperror.Internal("failed to list services", err)
	}

	nearby := make([]*models.WellnessService, 0, len(services))
	for _, s := range services {
		d := utils.CalculateDistance(center, utils.GeoPoint{Latitude: s.Latitude, Longitude: s.Longitude})
		if d <= f.RadiusKm {
			s.DistanceKm = &d
			nearby = append(nearby, s)
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return *nearby[i].DistanceKm < *nearby[j].DistanceKm
	})

	page := &models.ServicePage{Total: len(nearby), Page: f.Page, Limit: f.Limit}
	start := f.Offset()
	if start >= len(nearby) {
		page.Services = []*models.WellnessService{}
		return page, nil
	}
	end := start + f.Limit
	if end > len(nearby) {
		end = len(nearby)
	}
	page.Services = nearby[start:end]
	return page, nil
}

// GetService returns an active service
func (uc *ListingsUC) GetService(ctx context.Context, serviceID uuid.UUID) (*models.WellnessService, error) {
	service, err := uc.listingsRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, apperror.Classify(err, "failed to get service")
	}
	if !service.IsActive {
		return nil, apperror.NotFound("service not found")
	}
	return service, nil
}

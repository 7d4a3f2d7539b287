package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/utils"
)

// ListAllServices returns a page of the whole catalogue, inactive services included
func (uc *ListingsUC) ListAllServices(ctx context.Context, page, limit int) (*models.ServicePage, error) {
	f := &models.ServiceFilter{Page: page, Limit: limit}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	services, total, err := uc.listingsRepo.ListServices(ctx, f)
	if err != nil {
		return nil, apperror.Internal("failed to list services", err)
	}
	return &models.ServicePage{Services: services, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// CreateService adds a service to the catalogue
func (uc *ListingsUC) CreateService(ctx context.Context, req *models.ServiceRequest) (*models.WellnessService, error) {
	service := &models.WellnessService{IsActive: true}
	apply(service, req)

	if err := uc.listingsRepo.CreateService(ctx, service); err != nil {
		return nil, apperror.Internal("failed to create service", err)
	}

	uc.invalidate(ctx, "create", service.ID)
	return service, nil
}

// UpdateService replaces a service's editable fields
func (uc *ListingsUC) UpdateService(ctx context.Context, serviceID uuid.UUID, req *models.ServiceRequest) (*models.WellnessService, error) {
	service, err := uc.listingsRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, apperror.Classify(err, "failed to get service")
	}
	apply(service, req)

	if err := uc.listingsRepo.UpdateService(ctx, service); err != nil {
		return nil, apperror.Classify(err, "failed to update service")
	}

	uc.invalidate(ctx, "update", service.ID)
	return service, nil
}

// DeleteService removes a service from the catalogue
func (uc *ListingsUC) DeleteService(ctx context.Context, serviceID uuid.UUID) error {
	if err := uc.listingsRepo.DeleteService(ctx, serviceID); err != nil {
		return apperror.Classify(err, "failed to delete service")
	}

	uc.invalidate(ctx, "delete", serviceID)
	return nil
}

func apply(service *models.WellnessService, req *models.ServiceRequest) {
	service.Name = req.Name
	service.Description = req.Description
	service.Category = req.Category
	service.PriceCents = req.PriceCents
	service.DurationMinutes = req.DurationMinutes
	service.Address = req.Address
	service.Latitude = req.Latitude
	service.Longitude = req.Longitude
	service.Geohash = utils.EncodePoint(utils.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}, utils.StoredGeohashPrecision)
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
}

// invalidate drops every cached listing after a committed write.
// A failure only delays freshness until the entries expire.
func (uc *ListingsUC) invalidate(ctx context.Context, op string, serviceID uuid.UUID) {
	removed, err := uc.cache.InvalidatePrefix(ctx, constants.CacheFamilyListing)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate listing cache",
			logger.String("op", op),
			logger.String("service_id", serviceID.String()),
			logger.Err(err))
		return
	}
	logger.InfoCtx(ctx, "Listing cache invalidated",
		logger.String("op", op),
		logger.String("service_id", serviceID.String()),
		logger.Int("removed", removed))
}

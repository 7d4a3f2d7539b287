package listings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wellnest/services/listings ListingsRepo

// ListingsRepo defines persistence for wellness services
type ListingsRepo interface {
	// ListServices returns matching services and the total match count.
	// A zero filter.Limit returns every match.
	ListServices(ctx context.Context, filter *models.ServiceFilter) ([]*models.WellnessService, int, error)
	GetServiceByID(ctx context.Context, serviceID uuid.UUID) (*models.WellnessService, error)
	CreateService(ctx context.Context, service *models.WellnessService) error
	UpdateService(ctx context.Context, service *models.WellnessService) error
	DeleteService(ctx context.Context, serviceID uuid.UUID) error
}

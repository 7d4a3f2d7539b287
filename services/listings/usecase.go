package listings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wellnest/services/listings ListingsUC

// ListingsUC represents the wellness-service catalogue usecase interface
type ListingsUC interface {
	ListServices(ctx context.Context, filter *models.ServiceFilter) (*models.ServicePage, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*models.WellnessService, error)

	// Administration; each successful write invalidates cached listings
	ListAllServices(ctx context.Context, page, limit int) (*models.ServicePage, error)
	CreateService(ctx context.Context, req *models.ServiceRequest) (*models.WellnessService, error)
	UpdateService(ctx context.Context, serviceID uuid.UUID, req *models.ServiceRequest) (*models.WellnessService, error)
	DeleteService(ctx context.Context, serviceID uuid.UUID) error
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/models"
)

const serviceColumns = `id, name, description, category, price_cents, duration_minutes, address,
	latitude, longitude, geohash, rating, review_count, is_active, created_at, updated_at`

// whereClause builds the WHERE clause and positional args for filter
func whereClause(filter *models.ServiceFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if filter.Category != "" {
		conds = append(conds, "category = "+arg(filter.Category))
	}
	if len(filter.GeohashPrefixes) > 0 {
		likes := make([]string, 0, len(filter.GeohashPrefixes))
		for _, prefix := range filter.GeohashPrefixes {
			likes = append(likes, "geohash LIKE "+arg(prefix+"%"))
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListServices returns services matching filter, newest first
func (r *ListingsRepo) ListServices(ctx context.Context, filter *models.ServiceFilter) ([]*models.WellnessService, int, error) {
	where, args := whereClause(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM services`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	query := `SELECT ` + serviceColumns + ` FROM services` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset())
	}

	services := []*models.WellnessService{}
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}
	return services, total, nil
}

// GetServiceByID retrieves a service by ID
func (r *ListingsRepo) GetServiceByID(ctx context.Context, serviceID uuid.UUID) (*models.WellnessService, error) {
	var service models.WellnessService
	err := r.db.GetContext(ctx, &service, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, serviceID)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, apperror.NotFound("service not found")
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

// CreateService inserts a service, assigning its ID and timestamps
func (r *ListingsRepo) CreateService(ctx context.Context, service *models.WellnessService) error {
	service.ID = uuid.New()
	now := time.Now().UTC()
	service.CreatedAt = now
	service.UpdatedAt = now

	query := `
		INSERT INTO services (id, name, description, category, price_cents, duration_minutes, address,
			latitude, longitude, geohash, rating, review_count, is_active, created_at, updated_at)
		VALUES (:id, :name, :description, :category, :price_cents, :duration_minutes, :address,
			:latitude, :longitude, :geohash, :rating, :review_count, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, service); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

// UpdateService saves the editable fields of service. Rating aggregates are left alone.
func (r *ListingsRepo) UpdateService(ctx context.Context, service *models.WellnessService) error {
	service.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE services
		SET name = :name, description = :description, category = :category, price_cents = :price_cents,
			duration_minutes = :duration_minutes, address = :address, latitude = :latitude,
			longitude = :longitude, geohash = :geohash, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, service)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.NotFound("service not found")
	}
	return nil
}

// DeleteService removes a service that has no bookings or reviews
func (r *ListingsRepo) DeleteService(ctx context.Context, serviceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, serviceID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.Conflict("service has bookings or reviews; deactivate it instead")
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.NotFound("service not found")
	}
	return nil
}

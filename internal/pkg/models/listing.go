package models

import (
	"time"

	"github.com/google/uuid"
)

// WellnessService is a bookable offering shown in the services listing
type WellnessService struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Category        string    `json:"category" db:"category"`
	PriceCents      int64     `json:"price_cents" db:"price_cents"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Address         string    `json:"address" db:"address"`
	Latitude        float64   `json:"latitude" db:"latitude"`
	Longitude       float64   `json:"longitude" db:"longitude"`
	Geohash         string    `json:"-" db:"geohash"`
	Rating          float64   `json:"rating" db:"rating"`
	ReviewCount     int       `json:"review_count" db:"review_count"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	// DistanceKm is only set for nearby searches
	DistanceKm *float64 `json:"distance_km,omitempty" db:"-"`
}

// ServiceRequest is the admin payload for creating or updating a service
type ServiceRequest struct {
	Name            string  `json:"name" validate:"required,max=160"`
	Description     string  `json:"description" validate:"max=4000"`
	Category        string  `json:"category" validate:"required,max=64"`
	PriceCents      int64   `json:"price_cents" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0,lte=1440"`
	Address         string  `json:"address" validate:"max=255"`
	Latitude        float64 `json:"latitude" validate:"latitude"`
	Longitude       float64 `json:"longitude" validate:"longitude"`
	IsActive        *bool   `json:"is_active"`
}

// ServiceFilter narrows a listing query
type ServiceFilter struct {
	Category   string
	ActiveOnly bool
	Page       int
	Limit      int

	// Nearby search; both must be set together
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64

	// GeohashPrefixes is filled by the usecase for nearby searches
	GeohashPrefixes []string
}

// Offset returns the SQL offset for the filter's page
func (f *ServiceFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ServicePage is a page of services
type ServicePage struct {
	Services []*WellnessService `json:"services"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	Limit    int                `json:"limit"`
}

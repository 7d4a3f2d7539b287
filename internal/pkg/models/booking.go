package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a user's reservation of a wellness service
type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	UserID      uuid.UUID     `json:"user_id" db:"user_id"`
	ServiceID   uuid.UUID     `json:"service_id" db:"service_id"`
	ScheduledAt time.Time     `json:"scheduled_at" db:"scheduled_at"`
	Status      BookingStatus `json:"status" db:"status"`
	Notes       string        `json:"notes" db:"notes"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest represents a booking request from a user
type CreateBookingRequest struct {
	ServiceID   string    `json:"service_id" validate:"required,uuid"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes" validate:"max=1000"`
}

// UpdateBookingStatusRequest represents an administrative status change
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=CONFIRMED COMPLETED CANCELLED"`
}

// BookingFilter narrows an administrative booking query
type BookingFilter struct {
	Status BookingStatus
	Page   int
	Limit  int
}

// Offset returns the SQL offset for the filter's page
func (f *BookingFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// BookingPage is a page of bookings for the admin dashboard
type BookingPage struct {
	Bookings []*Booking `json:"bookings"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}

// CanTransitionTo reports whether an administrator may move a booking from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

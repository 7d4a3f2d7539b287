package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is published whenever a booking is created or changes status
type BookingEvent struct {
	Type        string        `json:"type"`
	BookingID   uuid.UUID     `json:"booking_id"`
	UserID      uuid.UUID     `json:"user_id"`
	ServiceID   uuid.UUID     `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Status      BookingStatus `json:"status"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// ReviewEvent is published when a review is created
type ReviewEvent struct {
	ReviewID   uuid.UUID `json:"review_id"`
	UserID     uuid.UUID `json:"user_id"`
	ServiceID  uuid.UUID `json:"service_id"`
	Rating     int       `json:"rating"`
	OccurredAt time.Time `json:"occurred_at"`
}

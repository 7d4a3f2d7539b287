package constants

// NATS Subjects
const (
	// Booking events
	SubjectBookingCreated       = "booking.created"
	SubjectBookingCancelled     = "booking.cancelled"
	SubjectBookingStatusChanged = "booking.status_changed"

	// Review events
	SubjectReviewCreated = "review.created"

	// Queue group shared by notification consumers
	QueueNotifications = "notifications"
)

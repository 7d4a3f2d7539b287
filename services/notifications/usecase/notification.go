package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
)

const scheduleLayout = "Mon 2 Jan 2006 15:04 MST"

// HandleBookingEvent notifies the booking owner of a booking lifecycle change
func (uc *NotificationsUC) HandleBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	serviceName := event.ServiceName
	if serviceName == "" {
		name, err := uc.notificationsRepo.GetServiceName(ctx, event.ServiceID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to resolve service name",
				logger.String("service_id", event.ServiceID.String()),
				logger.Err(err))
			name = "your wellness service"
		}
		serviceName = name
	}

	when := event.ScheduledAt.Format(scheduleLayout)
	notification := &models.Notification{UserID: event.UserID, Type: event.Type}

	switch event.Type {
	case constants.SubjectBookingCreated:
		notification.Title = "Booking received"
		notification.Body = fmt.Sprintf("Your booking for %s on %s is awaiting confirmation.", serviceName, when)
	case constants.SubjectBookingCancelled:
		notification.Title = "Booking cancelled"
		notification.Body = fmt.Sprintf("Your booking for %s on %s was cancelled.", serviceName, when)
	case constants.SubjectBookingStatusChanged:
		switch event.Status {
		case models.BookingStatusConfirmed:
			notification.Title = "Booking confirmed"
			notification.Body = fmt.Sprintf("See you on %s for %s.", when, serviceName)
		case models.BookingStatusCompleted:
			notification.Title = "How was it?"
			notification.Body = fmt.Sprintf("Your %s session is complete. You can now leave a review.", serviceName)
		default:
			notification.Title = "Booking updated"
			notification.Body = fmt.Sprintf("Your booking for %s is now %s.", serviceName, event.Status)
		}
	default:
		return apperror.Validation("unknown booking event type " + event.Type)
	}

	return uc.deliver(ctx, notification)
}

// HandleReviewEvent thanks the author of a new review
func (uc *NotificationsUC) HandleReviewEvent(ctx context.Context, event *models.ReviewEvent) error {
	serviceName, err := uc.notificationsRepo.GetServiceName(ctx, event.ServiceID)
	if err != nil {
		return fmt.Errorf("failed to resolve reviewed service: %w", err)
	}

	return uc.deliver(ctx, &models.Notification{
		UserID: event.UserID,
		Type:   constants.SubjectReviewCreated,
		Title:  "Thanks for your review",
		Body:   fmt.Sprintf("You rated %s %d/5.", serviceName, event.Rating),
	})
}

// deliver persists the notification, then pushes it to the user if connected
func (uc *NotificationsUC) deliver(ctx context.Context, notification *models.Notification) error {
	if err := uc.notificationsRepo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	pushed := uc.pusher.NotifyClient(notification.UserID.String(), constants.EventNotification, notification)
	logger.InfoCtx(ctx, "Notification delivered",
		logger.String("user_id", notification.UserID.String()),
		logger.String("type", notification.Type),
		logger.Bool("pushed", pushed))
	return nil
}

// ListNotifications returns the caller's recent notifications
func (uc *NotificationsUC) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	list, err := uc.notificationsRepo.ListByUser(ctx, userID, listLimit)
	if err != nil {
		return nil, apperror.Internal("failed to list notifications", err)
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications as read
func (uc *NotificationsUC) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := uc.notificationsRepo.MarkRead(ctx, userID, notificationID, uc.now().UTC()); err != nil {
		if apperror.KindOf(err) != apperror.KindInternal {
			return err
		}
		return apperror.Internal("failed to mark notification read", err)
	}
	return nil
}

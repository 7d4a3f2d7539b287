package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/models"
	nsqpkg "github.com/piresc/wellnest/internal/pkg/nsq"
	"github.com/piresc/wellnest/internal/utils"
)

// Sender delivers a code over SMS or email
type Sender interface {
	Send(ctx context.Context, dispatch *models.OTPDispatch) error
}

// LogSender stands in for a real SMS/email provider and only logs the masked recipient
type LogSender struct{}

// Send implements Sender
func (LogSender) Send(ctx context.Context, dispatch *models.OTPDispatch) error {
	logger.InfoCtx(ctx, "OTP delivered",
		logger.String("flow", string(dispatch.Flow)),
		logger.String("channel", string(dispatch.Channel)),
		logger.String("recipient", utils.MaskContact(dispatch.Recipient)))
	return nil
}

// DispatchHandler consumes the otp.dispatch topic
type DispatchHandler struct {
	sender Sender
	now    func() time.Time
}

// NewDispatchHandler creates a consumer handler that forwards codes to sender
func NewDispatchHandler(sender Sender) *DispatchHandler {
	return &DispatchHandler{sender: sender, now: models.Now}
}

// Handle decodes one NSQ message. Expired codes are dropped; a send failure is
// returned so NSQ requeues the message.
func (h *DispatchHandler) Handle(body []byte) error {
	var dispatch models.OTPDispatch
	if err := nsqpkg.UnmarshalMessage(body, &dispatch); err != nil {
		// a malformed message will never decode, do not requeue it
		logger.Warn("Dropping malformed OTP dispatch", logger.Err(err))
		return nil
	}

	if dispatch.Recipient == "" {
		logger.Warn("Dropping OTP dispatch without recipient", logger.String("flow", string(dispatch.Flow)))
		return nil
	}
	if !dispatch.ExpiresAt.IsZero() && !h.now().Before(dispatch.ExpiresAt) {
		logger.Info("Dropping expired OTP dispatch",
			logger.String("flow", string(dispatch.Flow)),
			logger.String("recipient", utils.MaskContact(dispatch.Recipient)))
		return nil
	}

	if err := h.sender.Send(context.Background(), &dispatch); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

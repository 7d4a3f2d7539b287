package gateway

import (
	"context"

	"github.com/piresc/wellnest/internal/pkg/circuitbreaker"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/metrics"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/retry"
	"github.com/piresc/wellnest/internal/utils"
)

// Publisher is the subset of the NSQ producer used for OTP delivery
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// AuthGW queues issued codes for the SMS/email sender
type AuthGW struct {
	producer Publisher
	retrier  *retry.Retrier
	breaker  *circuitbreaker.Breaker
}

// NewAuthGW creates a new gateway. A nil producer logs dispatches instead of queueing them.
func NewAuthGW(producer Publisher) *AuthGW {
	return &AuthGW{
		producer: producer,
		retrier:  retry.New("otp dispatch", retry.PublishConfig()),
		breaker:  circuitbreaker.New("otp_dispatch", circuitbreaker.PublishConfig()),
	}
}

// DispatchOTP publishes dispatch on the OTP delivery topic
func (g *AuthGW) DispatchOTP(ctx context.Context, dispatch *models.OTPDispatch) error {
	if g.producer == nil {
		logger.WarnCtx(ctx, "No OTP sender configured, dispatch logged only",
			logger.String("flow", string(dispatch.Flow)),
			logger.String("channel", string(dispatch.Channel)),
			logger.String("recipient", utils.MaskContact(dispatch.Recipient)))
		return nil
	}

	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Do(ctx, func(ctx context.Context) error {
			return g.producer.Publish(constants.TopicOTPDispatch, dispatch)
		})
	})
	metrics.RecordEventPublished(constants.TopicOTPDispatch, err == nil)
	return err
}

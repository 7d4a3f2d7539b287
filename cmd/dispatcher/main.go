package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/wellnest/internal/pkg/config"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/logger"
	nsqpkg "github.com/piresc/wellnest/internal/pkg/nsq"
	authHandler "github.com/piresc/wellnest/services/auth/handler"
)

// dispatcher drains the OTP delivery topic. Its LogSender is a development
// stand-in for an SMS/email provider.
func main() {
	appName := "wellnest-dispatcher"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.env"
	}
	configs := config.InitConfig(configPath)
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	if configs.NSQ.Address == "" {
		zapLogger.Fatal("NSQ_ADDRESS is required")
	}

	handler := authHandler.NewDispatchHandler(authHandler.LogSender{})
	consumer, err := nsqpkg.NewConsumer(constants.TopicOTPDispatch, constants.ChannelOTPSender, configs.NSQ.Address, handler.Handle)
	if err != nil {
		zapLogger.Fatal("Failed to start NSQ consumer", logger.Err(err))
	}

	zapLogger.Info("Consuming OTP dispatches",
		logger.String("topic", constants.TopicOTPDispatch),
		logger.String("nsqd", configs.NSQ.Address))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Stopping consumer")
	consumer.Stop()
}

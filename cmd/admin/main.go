package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/piresc/wellnest/internal/pkg/cache"
	"github.com/piresc/wellnest/internal/pkg/config"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/health"
	"github.com/piresc/wellnest/internal/pkg/jwt"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/metrics"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	natspkg "github.com/piresc/wellnest/internal/pkg/nats"
	nrpkg "github.com/piresc/wellnest/internal/pkg/newrelic"
	"github.com/piresc/wellnest/internal/pkg/server"
	"github.com/piresc/wellnest/internal/pkg/validator"

	adminHandler "github.com/piresc/wellnest/services/admin/handler"
	adminHTTP "github.com/piresc/wellnest/services/admin/handler/http"
	bookingsGateway "github.com/piresc/wellnest/services/bookings/gateway"
	bookingsRepository "github.com/piresc/wellnest/services/bookings/repository"
	bookingsUsecase "github.com/piresc/wellnest/services/bookings/usecase"
	listingsRepository "github.com/piresc/wellnest/services/listings/repository"
	listingsUsecase "github.com/piresc/wellnest/services/listings/usecase"
	reviewsGateway "github.com/piresc/wellnest/services/reviews/gateway"
	reviewsRepository "github.com/piresc/wellnest/services/reviews/repository"
	reviewsUsecase "github.com/piresc/wellnest/services/reviews/usecase"
	usersRepository "github.com/piresc/wellnest/services/users/repository"
	usersUsecase "github.com/piresc/wellnest/services/users/usecase"
)

func main() {
	appName := "wellnest-admin"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.env"
	}
	configs := config.InitConfig(configPath)
	if configs.App.Name == "" {
		configs.App.Name = appName
	}
	if !configs.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })

	// status changes made here still reach the notifications consumer
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdownManager.Register("nats", func(context.Context) error { return natsClient.Close() })

	if configs.App.Environment == "local" {
		created, err := jwt.EnsureDevKeyPair(configs.JWT)
		if err != nil {
			zapLogger.Fatal("Failed to prepare development token keys", logger.Err(err))
		}
		if created {
			zapLogger.Warn("Generated development token key pair",
				logger.String("private_key", configs.JWT.PrivateKeyPath),
				logger.String("public_key", configs.JWT.PublicKeyPath))
		}
	}

	tokenService, err := jwt.NewTokenServiceFromConfig(configs.JWT)
	if err != nil {
		zapLogger.Fatal("Failed to load session token keys", logger.Err(err))
	}

	db := postgresClient.GetDB()
	listingCache := cache.NewReadThrough(redisClient, time.Duration(configs.Cache.ListingTTLSeconds)*time.Second)

	listingsUC := listingsUsecase.NewListingsUC(listingsRepository.NewListingsRepo(configs, db), listingCache, configs)
	usersUC := usersUsecase.NewUsersUC(usersRepository.NewUsersRepo(configs, db), listingCache, configs)
	bookingsUC := bookingsUsecase.NewBookingsUC(
		bookingsRepository.NewBookingsRepo(configs, db),
		bookingsGateway.NewBookingsGW(natsClient),
		configs,
	)
	reviewsUC := reviewsUsecase.NewReviewsUC(
		reviewsRepository.NewReviewsRepo(configs, db),
		reviewsGateway.NewReviewsGW(natsClient),
		listingCache,
		configs,
	)

	routes := adminHandler.NewHandler(
		adminHTTP.NewAdminHandler(listingsUC, usersUC, bookingsUC, reviewsUC, validator.New()),
		tokenService,
	)

	router := gin.New()
	if nrApp != nil {
		router.Use(nrgin.Middleware(nrApp))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.GinRequestID())
	router.Use(logger.ZapGinMiddleware(zapLogger))

	healthService := health.NewHealthService(appName)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterGinHealthEndpoints(router, healthService)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.RegisterRoutes(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configs.Admin.Port),
		Handler:      metrics.InstrumentHandler(router),
		ReadTimeout:  time.Duration(configs.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(configs.Server.WriteTimeout) * time.Second,
	}
	gracefulServer := server.NewGracefulHTTPServer(srv, zapLogger).
		WithShutdownTimeout(time.Duration(configs.Server.ShutdownTimeout) * time.Second)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}
}

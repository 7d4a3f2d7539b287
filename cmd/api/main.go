package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/wellnest/internal/pkg/cache"
	"github.com/piresc/wellnest/internal/pkg/config"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/health"
	"github.com/piresc/wellnest/internal/pkg/jwt"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/metrics"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	natspkg "github.com/piresc/wellnest/internal/pkg/nats"
	nrpkg "github.com/piresc/wellnest/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/wellnest/internal/pkg/nsq"
	"github.com/piresc/wellnest/internal/pkg/server"
	"github.com/piresc/wellnest/internal/pkg/validator"
	wspkg "github.com/piresc/wellnest/internal/pkg/websocket"

	authGateway "github.com/piresc/wellnest/services/auth/gateway"
	authHandler "github.com/piresc/wellnest/services/auth/handler"
	authHTTP "github.com/piresc/wellnest/services/auth/handler/http"
	authRepository "github.com/piresc/wellnest/services/auth/repository"
	authUsecase "github.com/piresc/wellnest/services/auth/usecase"

	bookingsGateway "github.com/piresc/wellnest/services/bookings/gateway"
	bookingsHandler "github.com/piresc/wellnest/services/bookings/handler"
	bookingsHTTP "github.com/piresc/wellnest/services/bookings/handler/http"
	bookingsRepository "github.com/piresc/wellnest/services/bookings/repository"
	bookingsUsecase "github.com/piresc/wellnest/services/bookings/usecase"

	listingsHandler "github.com/piresc/wellnest/services/listings/handler"
	listingsHTTP "github.com/piresc/wellnest/services/listings/handler/http"
	listingsRepository "github.com/piresc/wellnest/services/listings/repository"
	listingsUsecase "github.com/piresc/wellnest/services/listings/usecase"

	notificationsHandler "github.com/piresc/wellnest/services/notifications/handler"
	notificationsHTTP "github.com/piresc/wellnest/services/notifications/handler/http"
	notificationsRepository "github.com/piresc/wellnest/services/notifications/repository"
	notificationsUsecase "github.com/piresc/wellnest/services/notifications/usecase"

	reviewsGateway "github.com/piresc/wellnest/services/reviews/gateway"
	reviewsHandler "github.com/piresc/wellnest/services/reviews/handler"
	reviewsHTTP "github.com/piresc/wellnest/services/reviews/handler/http"
	reviewsRepository "github.com/piresc/wellnest/services/reviews/repository"
	reviewsUsecase "github.com/piresc/wellnest/services/reviews/usecase"

	usersHandler "github.com/piresc/wellnest/services/users/handler"
	usersHTTP "github.com/piresc/wellnest/services/users/handler/http"
	usersRepository "github.com/piresc/wellnest/services/users/repository"
	usersUsecase "github.com/piresc/wellnest/services/users/usecase"
)

func main() {
	appName := "wellnest-api"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.env"
	}
	configs := config.InitConfig(configPath)
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	defer zapLogger.Close()

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	if configs.Database.AutoMigrate {
		if err := database.Migrate(postgresClient.GetDB()); err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.Err(err))
		}
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdownManager.Register("nats", func(context.Context) error { return natsClient.Close() })

	// Initialize NSQ producer for OTP delivery; without it codes are only logged
	var otpPublisher authGateway.Publisher
	var nsqPinger health.Pinger
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownManager.Register("nsq", func(context.Context) error { producer.Stop(); return nil })
		otpPublisher = producer
		nsqPinger = producer
	}

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
	wsManager := wspkg.NewManager()
	shutdownManager.Register("websocket", func(context.Context) error { wsManager.CloseAll(); return nil })

	// Auth
	authUC := authUsecase.NewAuthUC(
		authRepository.NewAuthRepo(configs, db, redisClient),
		authGateway.NewAuthGW(otpPublisher),
		tokenService,
		configs,
	)
	otpRateLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Redis:  redisClient,
		Key:    "otp",
		Limit:  configs.RateLimit.OTPPerMinute,
		Period: time.Minute,
	})
	authRoutes := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC), otpRateLimit)

	// Users
	usersUC := usersUsecase.NewUsersUC(usersRepository.NewUsersRepo(configs, db), listingCache, configs)
	usersRoutes := usersHandler.NewHandler(usersHTTP.NewUserHandler(usersUC))

	// Listings
	listingsUC := listingsUsecase.NewListingsUC(listingsRepository.NewListingsRepo(configs, db), listingCache, configs)
	listingsRoutes := listingsHandler.NewHandler(
		listingsHTTP.NewListingHandler(listingsUC),
		middleware.ReadThroughCache(listingCache, constants.CacheFamilyListing),
	)

	// Bookings
	bookingsUC := bookingsUsecase.NewBookingsUC(
		bookingsRepository.NewBookingsRepo(configs, db),
		bookingsGateway.NewBookingsGW(natsClient),
		configs,
	)
	bookingsRoutes := bookingsHandler.NewHandler(bookingsHTTP.NewBookingHandler(bookingsUC))

	// Reviews
	reviewsUC := reviewsUsecase.NewReviewsUC(
		reviewsRepository.NewReviewsRepo(configs, db),
		reviewsGateway.NewReviewsGW(natsClient),
		listingCache,
		configs,
	)
	reviewsRoutes := reviewsHandler.NewHandler(reviewsHTTP.NewReviewHandler(reviewsUC))

	// Notifications
	notificationsUC := notificationsUsecase.NewNotificationsUC(
		notificationsRepository.NewNotificationsRepo(configs, db),
		wsManager,
		configs,
	)
	notificationsRoutes := notificationsHandler.NewHandler(
		notificationsHTTP.NewNotificationHandler(notificationsUC),
		notificationsHTTP.NewWebSocketHandler(wsManager),
	)
	if err := notificationsHandler.NewNatsHandler(notificationsUC, natsClient, nrApp).InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(echo.WrapMiddleware(metrics.InstrumentHandler))
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health and metrics endpoints
	healthService := health.NewHealthService(appName)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	healthService.AddChecker("nsq", health.NewPingHealthChecker(nsqPinger))
	health.RegisterHealthEndpoints(e, healthService)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Register service routes
	auth := middleware.JWTAuth(tokenService)
	api := e.Group("/api/v1")
	protected := api.Group("", auth)

	authRoutes.RegisterRoutes(api)
	listingsRoutes.RegisterRoutes(api)
	reviewsRoutes.RegisterRoutes(api, protected)
	usersRoutes.RegisterRoutes(protected)
	bookingsRoutes.RegisterRoutes(protected)
	notificationsRoutes.RegisterRoutes(protected, e.Group("/ws", auth))

	// Start server
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port).
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

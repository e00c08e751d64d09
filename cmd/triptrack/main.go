package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/triptrack/internal/pkg/config"
	"github.com/piresc/triptrack/internal/pkg/database"
	"github.com/piresc/triptrack/internal/pkg/health"
	"github.com/piresc/triptrack/internal/pkg/logger"
	"github.com/piresc/triptrack/internal/pkg/middleware"
	"github.com/piresc/triptrack/internal/pkg/models"
	natspkg "github.com/piresc/triptrack/internal/pkg/nats"
	nrpkg "github.com/piresc/triptrack/internal/pkg/newrelic"
	"github.com/piresc/triptrack/internal/pkg/retry"
	"github.com/piresc/triptrack/internal/pkg/server"
	"github.com/piresc/triptrack/internal/pkg/validation"
	locationGateway "github.com/piresc/triptrack/services/location/gateway"
	locationHandler "github.com/piresc/triptrack/services/location/handler"
	locationRepository "github.com/piresc/triptrack/services/location/repository"
	locationUsecase "github.com/piresc/triptrack/services/location/usecase"
	tripGateway "github.com/piresc/triptrack/services/trips/gateway"
	tripHandler "github.com/piresc/triptrack/services/trips/handler"
	tripRepository "github.com/piresc/triptrack/services/trips/repository"
	tripUsecase "github.com/piresc/triptrack/services/trips/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := "config/triptrack.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.Bool("enforce_transitions", configs.Trip.EnforceTransitions),
	)

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = configs.App.ConnectRetries
	retrier := retry.New(retryCfg, zapLogger)

	var redisClient *database.RedisClient
	err = retrier.Execute(context.Background(), "redis connect", func(ctx context.Context) error {
		var dialErr error
		redisClient, dialErr = database.NewRedisClient(configs.Redis)
		return dialErr
	})
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// NATS is optional; without it events are not published
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		err = retrier.Execute(context.Background(), "nats connect", func(ctx context.Context) error {
			var dialErr error
			natsClient, dialErr = natspkg.NewClient(configs.NATS.URL, configs.App.Name)
			return dialErr
		})
		if err != nil {
			logger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		logger.Info("NATS client initialized",
			logger.String("url", configs.NATS.URL),
			logger.Bool("connected", natsClient.IsConnected()))
	} else {
		logger.Warn("NATS_URL not set, trip events will not be published")
	}

	e := newServer(configs, zapLogger, nrApp, redisClient, natsClient)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	if natsClient != nil {
		shutdown.Register("nats", func(context.Context) error { return natsClient.Close() })
	}
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		logger.Error("Shutdown finished with errors", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
	_ = zapLogger.Close()
}

// newServer wires repositories, gateways, use cases and handlers onto a new Echo instance
func newServer(
	configs *models.Config,
	zapLogger *logger.ZapLogger,
	nrApp *newrelic.Application,
	redisClient *database.RedisClient,
	natsClient *natspkg.Client,
) *echo.Echo {
	// Initialize repositories
	tripRepo := tripRepository.NewTripRepository(configs, redisClient)
	locationRepo := locationRepository.NewLocationRepository(configs, redisClient)

	// Initialize gateways
	tripGW := tripGateway.NewTripGW(natsClient)
	locationGW := locationGateway.NewLocationGW(natsClient)

	// Initialize usecases
	tripUC := tripUsecase.NewTripUC(configs, tripRepo, tripGW)
	locationUC := locationUsecase.NewLocationUC(configs, locationRepo, locationGW)

	e := echo.New()
	e.HideBanner = true
	e.Debug = configs.App.Debug
	e.Validator = validation.NewEchoValidator()

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestContextMiddleware(configs.App.Name))
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(middleware.MetricsMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.Server.CORSOrigins,
	}))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	if natsClient != nil {
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	}
	health.RegisterEnhancedHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	tripHandler.NewHandler(tripUC).RegisterRoutes(e)
	locationHandler.NewHandler(locationUC).RegisterRoutes(e)

	return e
}

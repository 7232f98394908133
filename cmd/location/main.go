package main

import (
	"context"
	"flag"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/config"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/health"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	nsqpkg "github.com/piresc/fleettrack/internal/pkg/nsq"
	"github.com/piresc/fleettrack/internal/pkg/server"
	nsqgw "github.com/piresc/fleettrack/services/location/gateway/nsq"
	"github.com/piresc/fleettrack/services/location/handler"
	httpHandler "github.com/piresc/fleettrack/services/location/handler/http"
	"github.com/piresc/fleettrack/services/location/repository"
	"github.com/piresc/fleettrack/services/location/usecase"
)

func main() {
	appName := "location-service"
	configPath := flag.String("config", "./config", "directory containing location.yaml")
	flag.Parse()

	configs, err := config.InitConfig("location", *configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewAppLogger(appName, configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	shutdown := server.NewShutdownManager()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return redisClient.Close() })

	// NSQ is optional: without it updates are stored but not announced
	locationRepo := repository.NewLocationRepository(redisClient)
	locationUC := usecase.NewLocationUC(locationRepo, nil)
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Warn("NSQ unavailable, location events disabled", logger.Err(err))
		} else {
			shutdown.Register(func(context.Context) error { producer.Stop(); return nil })
			locationUC = usecase.NewLocationUC(locationRepo, nsqgw.NewLocationGW(producer, configs.NSQ.LocationTopic))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("redis", health.CheckFunc(redisClient.Ping))
	health.RegisterHealthEndpoints(e, healthService)

	mw := handler.Middlewares{
		DriverAuth: middleware.JWTAuthMiddleware(configs.JWT),
		ServiceKey: middleware.ValidateAPIKey(middleware.NewAPIKeyValidator(configs.APIKey.Hashes)),
	}
	if configs.RateLimit.Limit > 0 {
		mw.RateLimit = middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Resource:    "telemetry",
			Limit:       configs.RateLimit.Limit,
			Period:      configs.RateLimit.Period,
		})
	}
	handler.RegisterRoutes(e, httpHandler.NewLocationHandler(locationUC), mw)

	logger.Info("Starting service", logger.String("service", appName), logger.Int("port", configs.Server.Port))
	if err := server.NewGracefulServer(e, configs.Server, shutdown).Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}
	_ = appLogger.Close()
}

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
	"github.com/piresc/fleettrack/internal/pkg/websocket"
	gatewayhttp "github.com/piresc/fleettrack/services/fleet/gateway/http"
	"github.com/piresc/fleettrack/services/fleet/handler"
	httpHandler "github.com/piresc/fleettrack/services/fleet/handler/http"
	nsqHandler "github.com/piresc/fleettrack/services/fleet/handler/nsq"
	"github.com/piresc/fleettrack/services/fleet/repository"
	"github.com/piresc/fleettrack/services/fleet/usecase"
)

func main() {
	appName := "fleet-service"
	configPath := flag.String("config", "./config", "directory containing fleet.yaml")
	flag.Parse()

	configs, err := config.InitConfig("fleet", *configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewAppLogger(appName, configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	shutdown := server.NewShutdownManager()

	// Initialize database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })

	fleetRepo := repository.NewFleetRepo(postgresClient)
	liveFeed := gatewayhttp.NewLiveFeedClient(configs.APIKey.Key, configs.Services)
	bookings := gatewayhttp.NewBookingClient(configs.APIKey.Key, configs.Services)
	fleetUC := usecase.NewFleetUC(fleetRepo, liveFeed, bookings, configs.Fleet)

	hub := websocket.NewManager()
	fleetHandler := httpHandler.NewFleetHandler(fleetUC, hub)
	fleetUC.OnRefresh(fleetHandler.BroadcastView)
	shutdown.Register(func(context.Context) error { hub.CloseAll(); return nil })

	pollCtx, stopPolling := context.WithCancel(context.Background())
	go fleetUC.Run(pollCtx, configs.Fleet.PollInterval)
	shutdown.Register(func(context.Context) error { stopPolling(); return nil })

	// Location events only speed up refreshes; polling works without them
	if configs.NSQ.Address != "" {
		consumer, err := nsqpkg.NewConsumer(configs.NSQ.LocationTopic, configs.NSQ.LocationChannel,
			configs.NSQ.Address, nsqHandler.LocationUpdated(fleetUC))
		if err != nil {
			logger.Warn("NSQ unavailable, relying on polling only", logger.Err(err))
		} else {
			shutdown.Register(func(context.Context) error { consumer.Stop(); return nil })
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("postgres", health.CheckFunc(postgresClient.Ping))
	health.RegisterHealthEndpoints(e, healthService)

	operatorKey := middleware.ValidateAPIKey(middleware.NewAPIKeyValidator(configs.APIKey.Hashes))
	handler.RegisterRoutes(e, fleetHandler, operatorKey)

	logger.Info("Starting service", logger.String("service", appName), logger.Int("port", configs.Server.Port))
	if err := server.NewGracefulServer(e, configs.Server, shutdown).Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}
	_ = appLogger.Close()
}

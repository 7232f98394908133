package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/piresc/fleettrack/internal/pkg/config"
	"github.com/piresc/fleettrack/internal/pkg/health"
	"github.com/piresc/fleettrack/internal/pkg/jwt"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/server"
	"github.com/piresc/fleettrack/services/driver/device"
	gatewayhttp "github.com/piresc/fleettrack/services/driver/gateway/http"
	"github.com/piresc/fleettrack/services/driver/handler"
	httpHandler "github.com/piresc/fleettrack/services/driver/handler/http"
	"github.com/piresc/fleettrack/services/driver/reporter"
	"github.com/piresc/fleettrack/services/driver/trip"
)

func main() {
	appName := "driver-agent"
	configPath := flag.String("config", "./config", "directory containing driver.yaml")
	flag.Parse()

	configs, err := config.InitConfig("driver", *configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewAppLogger(appName, configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)

	driverID := configs.Reporter.DriverID
	if driverID == "" {
		logger.Fatal("reporter.driver_id is required")
	}

	// A configured token wins; otherwise sign one with the shared secret
	token := configs.Reporter.Token
	if token == "" {
		token, _, err = jwt.GenerateToken(driverID, jwt.RoleDriver, configs.JWT)
		if err != nil {
			logger.Fatal("No driver token configured", logger.Err(err))
		}
	}

	locator, err := device.NewSimulator(configs.Device)
	if err != nil {
		logger.Fatal("Failed to initialize device", logger.Err(err))
	}

	locationGW := gatewayhttp.NewLocationClient(configs.Services.LocationServiceURL, token, configs.Services)
	routeGW := gatewayhttp.NewRouteClient(token, configs.Services)

	positionReporter := reporter.NewReporter(configs.Reporter, locator, locationGW)
	lifecycle := trip.NewLifecycle(driverID, routeGW, positionReporter, configs.Trip)

	shutdown := server.NewShutdownManager()
	syncCtx, stopSync := context.WithCancel(context.Background())
	go syncAssignments(syncCtx, lifecycle, configs.Trip.SyncInterval)
	shutdown.Register(func(context.Context) error {
		stopSync()
		positionReporter.Disable()
		return nil
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.GinRequestID())
	r.Use(middleware.GinLogger(appLogger))
	r.Use(middleware.GinPanicRecovery(appLogger))

	health.RegisterGinHealthEndpoints(r, health.NewService(appName, configs.App.Version))
	handler.RegisterRoutes(r, httpHandler.NewTripHandler(lifecycle, positionReporter))

	logger.Info("Starting driver agent",
		logger.String("driver_id", driverID),
		logger.Int("port", configs.Server.Port))
	if err := server.NewGracefulServer(r, configs.Server, shutdown).Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}
	_ = appLogger.Close()
}

// syncAssignments polls the route service for new assignments until ctx is done
func syncAssignments(ctx context.Context, lifecycle *trip.Lifecycle, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		changed, err := lifecycle.SyncAssignment(ctx)
		if err != nil {
			logger.Warn("Failed to sync route assignment", logger.Err(err))
		} else if changed {
			logger.Info("Picked up new route assignment", logger.String("route_id", lifecycle.State().RouteID))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

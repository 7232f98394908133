package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads <name>.yaml from ./config (or configPath) and overlays environment variables.
// Keys are nested with "." in YAML and "_" in the environment, e.g. REDIS_HOST.
func InitConfig(name, configPath string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, name)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("config file %s not found, using defaults and environment", name)
	}

	return load(v)
}

func load(v *viper.Viper) (*models.Config, error) {
	var cfg models.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	for _, section := range []interface{}{cfg.App, cfg.Server, cfg.Reporter, cfg.Fleet} {
		if err := validate.Struct(section); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, name string) {
	v.SetDefault("app.name", name)
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.version", "development")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.location_topic", constants.TopicLocationUpdated)
	v.SetDefault("nsq.location_channel", "fleet")

	v.SetDefault("jwt.expiration", 24*time.Hour)
	v.SetDefault("jwt.issuer", "fleettrack")

	v.SetDefault("services.location_url", "http://localhost:9991")
	v.SetDefault("services.route_url", "http://localhost:9992")
	v.SetDefault("services.booking_url", "http://localhost:9993")
	v.SetDefault("services.timeout", 10*time.Second)

	v.SetDefault("reporter.interval", 30*time.Second)
	v.SetDefault("reporter.high_accuracy", true)
	v.SetDefault("reporter.enabled", true)
	v.SetDefault("reporter.capture_timeout", 10*time.Second)
	v.SetDefault("reporter.maximum_age", 5*time.Second)

	v.SetDefault("trip.report_during_break", true)
	v.SetDefault("trip.sync_interval", 15*time.Second)

	v.SetDefault("fleet.poll_interval", 10*time.Second)
	v.SetDefault("fleet.stale_after", 5*time.Minute)
	v.SetDefault("fleet.default_latitude", 13.0827)
	v.SetDefault("fleet.default_longitude", 80.2707)
	v.SetDefault("fleet.vehicle_spread", 0.1)
	v.SetDefault("fleet.driver_spread", 0.08)

	v.SetDefault("device.waypoints", []string{"13.0827,80.2707", "13.1827,80.2707"})
	v.SetDefault("device.speed_kmh", 40.0)
	v.SetDefault("device.accuracy_meters", 8.0)
	v.SetDefault("device.fix_interval", time.Second)

	v.SetDefault("rate_limit.limit", 120)
	v.SetDefault("rate_limit.period", time.Minute)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}

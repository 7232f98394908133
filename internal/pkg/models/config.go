package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NSQ       NSQConfig       `mapstructure:"nsq"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	APIKey    APIKeyConfig    `mapstructure:"apikey"`
	Services  ServicesConfig  `mapstructure:"services"`
	Reporter  ReporterConfig  `mapstructure:"reporter"`
	Trip      TripConfig      `mapstructure:"trip"`
	Fleet     FleetConfig     `mapstructure:"fleet"`
	Device    DeviceConfig    `mapstructure:"device"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gt=0"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address         string `mapstructure:"address"`
	LocationTopic   string `mapstructure:"location_topic"`
	LocationChannel string `mapstructure:"location_channel"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
	Issuer     string        `mapstructure:"issuer"`
}

// APIKeyConfig holds bcrypt hashes of accepted service keys and the key this service sends
type APIKeyConfig struct {
	Hashes []string `mapstructure:"hashes"`
	Key    string   `mapstructure:"key"`
}

// ServicesConfig contains URLs for collaborating services
type ServicesConfig struct {
	LocationServiceURL string        `mapstructure:"location_url"`
	RouteServiceURL    string        `mapstructure:"route_url"`
	BookingServiceURL  string        `mapstructure:"booking_url"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// ReporterConfig controls the device position reporter
type ReporterConfig struct {
	DriverID       string        `mapstructure:"driver_id"`
	Token          string        `mapstructure:"token"`
	Interval       time.Duration `mapstructure:"interval" validate:"gt=0"`
	HighAccuracy   bool          `mapstructure:"high_accuracy"`
	Enabled        bool          `mapstructure:"enabled"`
	CaptureTimeout time.Duration `mapstructure:"capture_timeout"`
	MaximumAge     time.Duration `mapstructure:"maximum_age"`
}

// TripConfig controls the trip lifecycle
type TripConfig struct {
	ReportDuringBreak bool          `mapstructure:"report_during_break"`
	SyncInterval      time.Duration `mapstructure:"sync_interval"`
}

// FleetConfig controls the fleet dashboard composition
type FleetConfig struct {
	PollInterval     time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
	StaleAfter       time.Duration `mapstructure:"stale_after"`
	DefaultLatitude  float64       `mapstructure:"default_latitude" validate:"gte=-90,lte=90"`
	DefaultLongitude float64       `mapstructure:"default_longitude" validate:"gte=-180,lte=180"`
	VehicleSpread    float64       `mapstructure:"vehicle_spread"`
	DriverSpread     float64       `mapstructure:"driver_spread"`
}

// DeviceConfig configures the simulated GPS hardware
type DeviceConfig struct {
	Waypoints        []string      `mapstructure:"waypoints"`
	SpeedKmh         float64       `mapstructure:"speed_kmh"`
	AccuracyMeters   float64       `mapstructure:"accuracy_meters"`
	FixInterval      time.Duration `mapstructure:"fix_interval"`
	PermissionDenied bool          `mapstructure:"permission_denied"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
	Format   string `mapstructure:"format"`
}

// RateLimitConfig bounds telemetry requests per driver. A zero limit disables it.
type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit"`
	Period time.Duration `mapstructure:"period"`
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage drivers for Sessions and Persisted Collections.
const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	// SessionTTL bounds both the bearer token and the stored Session.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	StorageDriver string `env:"STORAGE_DRIVER, default=redis"`
	SeedCatalog   bool   `env:"SEED_CATALOG,   default=true"`

	Collections CollectionConfig
	Attendance  AttendanceConfig
	Mongo       MongoConfig
	Redis       RedisConfig
}

type CollectionConfig struct {
	AsyncWrites bool `env:"COLLECTION_ASYNC_WRITES, default=false"`
	Workers     int  `env:"COLLECTION_WORKERS,      default=4"`
}

type AttendanceConfig struct {
	// RadiusM is the geofence around each project site, in metres.
	RadiusM float64 `env:"ATTENDANCE_RADIUS_M, default=500"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=plots"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether the process runs with ENV=development.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration from l and checks the values go-envconfig
// cannot express as tags.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverRedis, DriverMemory, c.StorageDriver)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.Collections.Workers < 1 {
		return fmt.Errorf("COLLECTION_WORKERS must be at least 1, got %d", c.Collections.Workers)
	}
	if c.Attendance.RadiusM <= 0 {
		return fmt.Errorf("ATTENDANCE_RADIUS_M must be positive, got %g", c.Attendance.RadiusM)
	}
	return nil
}

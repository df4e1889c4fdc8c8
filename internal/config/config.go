package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Supported rate limit stores.
const (
	RateLimitStoreMemory      = "memory"
	RateLimitStoreRedis       = "redis"
	RateLimitStoreTokenBucket = "token-bucket"
)

type Config struct {
	Port    string `envconfig:"SERVER_PORT" default:"3002"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver          string        `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT" default:"5432"`
	DBUser            string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword        string        `envconfig:"DB_PASSWORD" default:"password"`
	DBName            string        `envconfig:"DB_NAME" default:"test_db"`
	DBSSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBSchema          string        `envconfig:"DB_SCHEMA" default:"test_scheme"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"30s"`
	DBAutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`
	RateLimitStore  string        `envconfig:"RATE_LIMIT_STORE" default:"memory"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	CORSOrigins    []string `envconfig:"CORS_ORIGIN" default:"http://localhost:8080,http://localhost:3001"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	StaticDir      string `envconfig:"STATIC_DIR" default:"./public"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that envconfig cannot express with tags.
func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(c.DBDriver)
	switch c.DBDriver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.RateLimitStore {
	case RateLimitStoreMemory, RateLimitStoreRedis, RateLimitStoreTokenBucket:
	default:
		return fmt.Errorf("unsupported RATE_LIMIT_STORE %q", c.RateLimitStore)
	}

	if c.RateLimitMax <= 0 {
		return errors.New("RATE_LIMIT_MAX_REQUESTS must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Package config loads application settings from the environment, an
// optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	AppPort   string
	AppEnv    string // development, staging, production
	APIPrefix string
	LogLevel  string

	// Store
	StoreDriver string
	MongoURL    string
	DBName      string
	DatabaseDSN string

	// Auth
	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int
	AdminToken     string

	// CORS, comma-separated
	CORSOrigins string

	// RabbitMQ; an empty URL disables events
	RabbitMQURL      string
	RabbitMQExchange string

	// Redis; an empty address keeps limiter state in process
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AuthRateLimit  int
	AuthRateWindow time.Duration

	SeedOnStart bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "kickshop")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_TTL", 30*time.Minute)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("ADMIN_TOKEN", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "kickshop.events")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AUTH_RATE_LIMIT", 20)
	v.SetDefault("AUTH_RATE_WINDOW", time.Minute)
	v.SetDefault("SEED_ON_START", false)
}

// Load reads .env (if present), then CONFIG_FILE (if set), then the environment.
// Environment variables win over file values.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		AppEnv:           v.GetString("APP_ENV"),
		APIPrefix:        v.GetString("API_PREFIX"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		StoreDriver:      strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURL:         v.GetString("MONGO_URL"),
		DBName:           v.GetString("DB_NAME"),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AccessTokenTTL:   v.GetDuration("ACCESS_TOKEN_TTL"),
		BcryptCost:       v.GetInt("BCRYPT_COST"),
		AdminToken:       v.GetString("ADMIN_TOKEN"),
		CORSOrigins:      v.GetString("CORS_ORIGINS"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		AuthRateLimit:    v.GetInt("AUTH_RATE_LIMIT"),
		AuthRateWindow:   v.GetDuration("AUTH_RATE_WINDOW"),
		SeedOnStart:      v.GetBool("SEED_ON_START"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if (c.StoreDriver == DriverPostgres || c.StoreDriver == DriverSQLite) && c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required for the %s driver", c.StoreDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// AllowedOrigins returns CORSOrigins in the form fiber's cors middleware expects.
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

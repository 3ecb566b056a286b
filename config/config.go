package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
// Environment variables win; a .env file in the working directory is loaded first if present.
type Config struct {
	AppPort         string        `env:"APP_PORT" envDefault:"8080"`
	AppMode         string        `env:"APP_MODE" envDefault:"debug"`
	LogMode         string        `env:"LOG_MODE" envDefault:"development"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"SuperSecretKeyForTechHiveSolutions123!"`
	JWTExpiryMin    int           `env:"JWT_EXPIRY_MIN" envDefault:"60"`
	SeedUsers       bool          `env:"SEED_USERS" envDefault:"true"`
	RedisHost       string        `env:"REDIS_HOST"`
	RedisPort       string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	EventsChannel   string        `env:"EVENTS_CHANNEL" envDefault:"users.events"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

var (
	ErrEmptyJWTSecret    = errors.New("JWT_SECRET must not be empty")
	ErrInvalidJWTExpiry  = errors.New("JWT_EXPIRY_MIN must be positive")
	ErrEmptyEventChannel = errors.New("EVENTS_CHANNEL must not be empty")
)

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return Parse()
}

// Parse reads the process environment only; it does not touch .env files.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrEmptyJWTSecret
	}
	if c.JWTExpiryMin <= 0 {
		return ErrInvalidJWTExpiry
	}
	if c.EventsChannel == "" {
		return ErrEmptyEventChannel
	}
	return nil
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryMin) * time.Minute
}

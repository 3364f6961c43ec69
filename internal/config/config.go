package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"siteguard"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"siteguard"`
	DBName     string `env:"DB_NAME" envDefault:"siteguard"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"default-secret-key-change-me"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"siteguard-api"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables, falling back to the
// defaults declared on the struct tags.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSSLMode,
	)
}

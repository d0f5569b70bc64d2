package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"starwarsapi/internal/pkg/validator"
)

type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"dev" validate:"required"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	Port           int           `env:"PORT" envDefault:"3000" validate:"min=1,max=65535"`
	CurrentUserID  int64         `env:"CURRENT_USER_ID" envDefault:"1" validate:"gt=0"`
	AutoMigrate    bool          `env:"AUTO_MIGRATE" envDefault:"true"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	ShutdownGrace  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	SeedReset      bool          `env:"SEED_RESET" envDefault:"false"`
}

// Load reads an optional .env file from the working directory, then the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return parse(env.Options{})
}

// FromMap builds a Config from an explicit environment, ignoring the process one.
func FromMap(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.AllowedOrigins = trimOrigins(cfg.AllowedOrigins)

	if err := validator.Error(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log.Printf("config: env=%s port=%d user_id=%d auto_migrate=%t origins=%v",
		cfg.AppEnv, cfg.Port, cfg.CurrentUserID, cfg.AutoMigrate, cfg.AllowedOrigins)

	return cfg, nil
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func trimOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

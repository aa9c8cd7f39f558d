package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	SQLite SQLiteConfig
	Redis  RedisConfig
	Login  LoginThrottleConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=store_rating.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LoginThrottleConfig tunes the Redis-backed failed-login guard.
type LoginThrottleConfig struct {
	Enabled     bool          `env:"LOGIN_THROTTLE_ENABLED,      default=true"`
	MaxAttempts int           `env:"LOGIN_THROTTLE_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"LOGIN_THROTTLE_WINDOW,       default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return &cfg, nil
}

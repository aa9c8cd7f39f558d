// @title        Store Rating API
// @version      1.0
// @description  Role-based store rating service: accounts, stores, ratings and dashboards.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aqil0709/store-rating-fullstack/internal/api"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/token"
	"github.com/Aqil0709/store-rating-fullstack/internal/infrastructure/config"
	redisdb "github.com/Aqil0709/store-rating-fullstack/internal/infrastructure/db/redis"
	"github.com/Aqil0709/store-rating-fullstack/internal/infrastructure/db/sqlite"
	"github.com/Aqil0709/store-rating-fullstack/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init("info", false)
		bootLog.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	// The login throttle is best-effort: if Redis is unreachable at startup
	// the API still serves, just without lockouts.
	var (
		rdb   *goredis.Client
		guard ports.LoginGuard
	)
	if cfg.Login.Enabled {
		rdb, err = redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, login throttle disabled")
		} else {
			defer rdb.Close()
			guard = redisdb.NewLoginGuard(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
		}
	}

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	e := api.NewRouter(db, rdb, issuer, guard, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

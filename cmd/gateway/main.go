// Grand Horizon booking gateway.
//
// Fronts the remote hotel API for browser clients: it owns the session
// cookie, keeps upstream bearer tokens server-side in Redis, and forwards
// room, booking, client and payment operations with the caller's token.
//
// @title        Grand Horizon Booking Gateway API
// @version      1.0
// @description  Server-side gateway fronting the hotel booking API: sessions, rooms, bookings, clients and checkout.
// @BasePath     /
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/grandhorizon/booking-gateway/docs"
	"github.com/grandhorizon/booking-gateway/internal/api"
	"github.com/grandhorizon/booking-gateway/internal/infrastructure/config"
	redisdb "github.com/grandhorizon/booking-gateway/internal/infrastructure/db/redis"
	"github.com/grandhorizon/booking-gateway/internal/infrastructure/notify"
	"github.com/grandhorizon/booking-gateway/internal/upstream"
	"github.com/grandhorizon/booking-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	base := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)

	notifier := notify.NewLogoutNotifier(upstream.NewAuthClient(base), log)
	notifier.Start(ctx)

	e := api.NewRouter(cfg, rdb, base, notifier, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("booking gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
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

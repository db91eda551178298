package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "tripplanner/internal/adapters/http_server"
	"tripplanner/internal/adapters/observability"
	redisad "tripplanner/internal/adapters/redis"
	"tripplanner/internal/bootstrap"
	"tripplanner/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// deps
	catalog := bootstrap.Catalog(ctx, cfg)
	planner := bootstrap.Planner(cfg, catalog)

	opts := server.Options{Timeout: cfg.RequestTimeout, CORSOrigins: cfg.CORSOrigins}
	if cfg.RedisAddr != "" {
		lim := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RateLimit, cfg.RateLimitWindow)
		defer lim.Close()
		if err := lim.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; rate limiter will fail open")
		}
		opts.Limiter = lim
		log.Info().Int("limit", cfg.RateLimit).Dur("window", cfg.RateLimitWindow).Msg("rate limiting enabled")
	}

	// http
	srv := server.New(opts)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Trips: planner})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Int("attractions", catalog.Len()).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("API stopped")
}

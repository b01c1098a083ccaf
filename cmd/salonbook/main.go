package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"salonbook/internal/api"
	"salonbook/internal/backup"
	"salonbook/internal/config"
	"salonbook/internal/events"
	"salonbook/internal/kv"
	"salonbook/internal/metrics"
	"salonbook/internal/store"
)

func main() {
	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("SALONBOOK_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	backend := kv.NewRedisStore(rdb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := backend.Ping(pingCtx); err != nil {
		cancel()
		logger.Fatal().Err(err).Str("address", cfg.Redis.Address).Msg("redis not reachable")
	}
	cancel()

	metrics.Register()

	bus := events.NewEventBus()
	bus.Subscribe(events.TypeBookingsChanged, func(e events.Event) error {
		logger.Debug().RawJSON("change", e.Payload).Msg("booking list changed")
		return nil
	})

	bookings := store.New(backend, bus, &logger)
	logger.Info().Int("bookings", len(bookings.Load(ctx))).Msg("booking store loaded")

	backupService := backup.NewService(backend, cfg, &logger)
	go backupService.Start(ctx)

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	server := api.NewServer(bookings, backend, &logger)
	logger.Info().Msg("salonbook started")
	if err := server.Run(ctx, cfg.Server.Port); err != nil {
		logger.Fatal().Err(err).Msg("http server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}

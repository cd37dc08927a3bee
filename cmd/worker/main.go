package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wardrobecapital/wardrobe/pkg/app"
	"github.com/wardrobecapital/wardrobe/pkg/cache"
	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/database"
	"github.com/wardrobecapital/wardrobe/pkg/events"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/pkg/telemetry"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/application/subscribers"
	wardrobeEvents "github.com/wardrobecapital/wardrobe/services/wardrobe/domain/events"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// Probes and metrics only; the worker serves no API.
	probes := httpx.NewProbeRouter(metricsHandler,
		httpx.Check{Name: "database", Checker: pool},
		httpx.Check{Name: "redis", Checker: redisClient},
		httpx.Check{Name: "eventBus", Checker: eventBus},
	)
	srv := httpx.NewServer(cfg.WorkerHTTPAddr, probes, 0)
	go func() {
		log.Info("worker probes listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("probe server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	// The worker reads the store directly; it never publishes.
	projector := subscribers.NewCacheProjector(
		postgres.NewItemRepository(a.Db, nil),
		cache.NewItemCache(a.Redis),
		a.Logger,
	)

	handlers := map[string]events.Handler{
		wardrobeEvents.TopicItemAdded:   projector.HandleItemAdded,
		wardrobeEvents.TopicItemDeleted: projector.HandleItemDeleted,
	}

	topics := make([]string, 0, len(handlers))
	for topic, handler := range handlers {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

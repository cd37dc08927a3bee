package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/wardrobecapital/wardrobe/docs/swagger"
	"github.com/wardrobecapital/wardrobe/pkg/app"
	"github.com/wardrobecapital/wardrobe/pkg/auth"
	"github.com/wardrobecapital/wardrobe/pkg/cache"
	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/pkg/database"
	"github.com/wardrobecapital/wardrobe/pkg/errhttp"
	"github.com/wardrobecapital/wardrobe/pkg/events"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/pkg/telemetry"
	accountApi "github.com/wardrobecapital/wardrobe/services/account/application/api"
	wardrobeApi "github.com/wardrobecapital/wardrobe/services/wardrobe/application/api"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/advisor"
)

// @title					Wardrobe Capital API
// @version				1.0
// @description			Wardrobe tracking with portfolio analytics, purchase simulation and investment advice.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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
	errhttp.SetProduction(cfg.Environment == config.EnvProduction)

	money, err := currency.NewFormatter(cfg.Currency)
	if err != nil {
		log.Error("invalid currency", "error", err)
		os.Exit(1)
	}

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	adv, analyzer, err := advisor.New(ctx, cfg, money, log)
	if err != nil {
		log.Error("failed to initialize advisor", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}

	sessionStore := auth.NewSessionStore(redisClient.Client(), auth.SessionOptions{
		AuthKey:       []byte(cfg.SessionAuthKey),
		EncryptionKey: []byte(cfg.SessionEncryptionKey),
		Secure:        cfg.Environment == config.EnvProduction,
		MaxAge:        cfg.SessionMaxAge,
	})
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Config:        cfg,
		Db:            pool,
		Logger:        log,
		EventBus:      eventBus,
		Redis:         redisClient,
		Money:         money,
		Advisor:       adv,
		ImageAnalyzer: analyzer,
		SessionStore:  sessionStore,
	}

	handlerTimeout := cfg.AdvisorTimeout + 10*time.Second
	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			HandlerTimeout:     handlerTimeout,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Otel:     otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	r.Get("/health", httpx.HealthHandler(
		httpx.Check{Name: "database", Checker: pool},
		httpx.Check{Name: "redis", Checker: redisClient},
		httpx.Check{Name: "eventBus", Checker: eventBus},
	))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r, handlerTimeout)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	if !a.Config.SingleTenant() {
		accountApi.AccountRoutes(r, a)
	}
	r.Group(func(r chi.Router) {
		r.Use(ownerMiddleware(a.Config, a.SessionStore, a.Logger))
		wardrobeApi.WardrobeRoutes(r, a)
	})
}

// ownerMiddleware scopes requests to the session's account, or to the
// configured default owner in single-tenant mode.
func ownerMiddleware(cfg *config.Config, store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	if cfg.SingleTenant() {
		return auth.SingleTenant(cfg.OwnerID())
	}
	return auth.RequireAuth(store, log)
}

package app

import (
	"github.com/gorilla/sessions"

	"github.com/wardrobecapital/wardrobe/pkg/cache"
	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/pkg/database"
	"github.com/wardrobecapital/wardrobe/pkg/events"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/gateways"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's route function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item added", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus   // nil disables the outbox
	Redis    *cache.RedisClient // nil disables the item cache
	Money    *currency.Formatter

	// Advisor and ImageAnalyzer are chosen at startup: Gemini when an API
	// key is configured, the offline advisor otherwise.
	Advisor       gateways.Advisor
	ImageAnalyzer gateways.ImageAnalyzer

	SessionStore sessions.Store // Redis-backed session store; nil in worker process
}

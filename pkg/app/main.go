package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/promptregistry/pkg/cache"
	"github.com/ghuser/promptregistry/pkg/config"
	"github.com/ghuser/promptregistry/pkg/events"
	"github.com/ghuser/promptregistry/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, request_id and the authenticated principal
// are injected automatically:
//
//	app.Logger.InfoContext(ctx, "record submitted", "record_id", rec.ID)
//	app.Logger.ErrorContext(ctx, "publish failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Logger       logger.Logger
	EventBus     *events.EventBus   // nil when EVENTS_DATABASE_URL is unset
	Redis        *cache.RedisClient // nil in tests that do not need the read model
	SessionStore sessions.Store     // Redis-backed session store; nil in worker process
}

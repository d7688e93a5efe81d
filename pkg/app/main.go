package app

import (
	"github.com/matiscalella/lms/pkg/database"
	"github.com/matiscalella/lms/pkg/events"
	"github.com/matiscalella/lms/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registrations during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing book", "book_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
}

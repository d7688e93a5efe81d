package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/matiscalella/lms/pkg/app"
	"github.com/matiscalella/lms/pkg/config"
	"github.com/matiscalella/lms/pkg/database"
	"github.com/matiscalella/lms/pkg/events"
	"github.com/matiscalella/lms/pkg/logger"
	"github.com/matiscalella/lms/pkg/telemetry"
	catalogEvents "github.com/matiscalella/lms/services/catalog/domain/events"
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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
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

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		catalogEvents.TopicBookCreated: handleBookCreated(a),
		catalogEvents.TopicBookDeleted: handleBookDeleted(a),
		catalogEvents.TopicRecordMoved: handleRecordMoved(a),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleBookCreated returns a handler for catalog.book.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
func handleBookCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.BookCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "book created",
			"event_id", evt.EventID,
			"book_id", evt.BookID,
			"record_id", evt.RecordID,
			"title", evt.Title,
		)
		return nil
	}
}

// handleBookDeleted returns a handler for catalog.book.deleted events.
func handleBookDeleted(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.BookDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		args := []any{"event_id", evt.EventID, "book_id", evt.BookID}
		if evt.RecordID != nil {
			args = append(args, "record_id", *evt.RecordID)
		}
		a.Logger.InfoContext(ctx, "book deleted", args...)
		return nil
	}
}

// handleRecordMoved returns a handler for catalog.record.moved events.
func handleRecordMoved(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.RecordMovedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		args := []any{"event_id", evt.EventID, "record_id", evt.RecordID, "to_book_id", evt.ToBookID}
		if evt.FromBookID != nil {
			args = append(args, "from_book_id", *evt.FromBookID)
		}
		a.Logger.InfoContext(ctx, "record moved", args...)
		return nil
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/studious/internal/config"
	"github.com/phrazzld/studious/internal/events"
	"github.com/phrazzld/studious/internal/moderation"
	"github.com/phrazzld/studious/internal/service/auth"
	"github.com/phrazzld/studious/internal/store"
	"github.com/phrazzld/studious/internal/timer"
)

// timerFinishedHandler logs completed countdowns.
type timerFinishedHandler struct {
	logger *slog.Logger
}

// HandleEvent implements events.Handler.
func (h *timerFinishedHandler) HandleEvent(_ context.Context, event *events.Event) error {
	var payload timer.FinishedPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		h.logger.Error("failed to unmarshal payload", "error", err, "event_id", event.ID)
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	h.logger.Info("study timer finished",
		"event_id", event.ID,
		"duration_seconds", payload.DurationSeconds)
	return nil
}

// application holds all the shared application dependencies. All state is
// held in memory for the lifetime of the process.
type application struct {
	config *config.Config
	logger *slog.Logger

	collection *store.CollectionStore
	notes      *store.NoteStore
	countdown  *timer.Countdown

	credentials *auth.CredentialChecker
	jwtService  auth.JWTService

	eventEmitter *events.InMemoryEmitter
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.credentials, err = auth.NewCredentialChecker(cfg.Auth, auth.NewBcryptVerifier(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential checker: %w", err)
	}

	validator := moderation.NewDefaultValidator()
	app.collection, err = store.NewCollectionStore(validator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection store: %w", err)
	}
	app.notes, err = store.NewNoteStore(validator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create note store: %w", err)
	}

	app.eventEmitter = events.NewInMemoryEmitter(logger)
	app.eventEmitter.RegisterHandler(events.TypeFilter(timer.EventFinished, &timerFinishedHandler{
		logger: logger.With("component", "timer_event_handler"),
	}))

	app.countdown = timer.NewCountdown(
		time.Duration(cfg.Timer.DefaultSeconds)*time.Second,
		app.eventEmitter,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the countdown driver and the HTTP server, and blocks until the
// server shuts down.
func (app *application) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go app.countdown.Run(ctx, time.Duration(app.config.Timer.TickMillis)*time.Millisecond)

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.countdown.Pause()
	app.logger.Info("Application shutdown completed")
}

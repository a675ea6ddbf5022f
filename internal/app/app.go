// Package app wires the repository, locker and event publisher into the
// services the CLI uses.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thenoetrevino/boardly/internal/config"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/services"
	boardservice "github.com/thenoetrevino/boardly/internal/services/board"
	cardservice "github.com/thenoetrevino/boardly/internal/services/card"
	labelservice "github.com/thenoetrevino/boardly/internal/services/label"
	listservice "github.com/thenoetrevino/boardly/internal/services/list"
)

// eventFlushTimeout bounds how long Close waits for event retries.
const eventFlushTimeout = 2 * time.Second

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	repo   *database.Repository
	events events.EventPublisher
	logger *slog.Logger
	config *config.Config

	// Service layer (business logic)
	BoardService boardservice.Service
	ListService  listservice.Service
	CardService  cardservice.Service
	LabelService labelservice.Service
}

// New creates a new App with all services initialized. Without options the
// app uses an in-process locker and publishes no events.
func New(repo *database.Repository, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	o := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.locker == nil {
		o.locker = locker.NewMemoryLocker()
	}

	deps := &services.Deps{
		Repo:    repo,
		Locker:  o.locker,
		Events:  o.eventClient,
		Limits:  cfg.Limits,
		Reorder: cfg.Reorder,
	}

	return &App{
		repo:         repo,
		events:       o.eventClient,
		logger:       o.logger,
		config:       cfg,
		BoardService: boardservice.NewService(deps),
		ListService:  listservice.NewService(deps),
		CardService:  cardservice.NewService(deps),
		LabelService: labelservice.NewService(deps),
	}
}

// Open connects to the configured database and, when redis.url is set, to
// Redis for cross-process locks and change events.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.Open(ctx, database.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	repo := database.NewRepository(db)

	if cfg.Redis.URL != "" {
		client, err := dialRedis(ctx, cfg.Redis.URL)
		if err != nil {
			_ = repo.Close()
			return nil, err
		}
		opts = append([]Option{
			WithLocker(locker.NewRedisLocker(client, cfg.Reorder.LockTTL)),
			WithEventPublisher(events.NewRedisPublisher(client)),
		}, opts...)
		slog.Debug("redis enabled", "addr", client.Options().Addr)
	}

	return New(repo, cfg, opts...), nil
}

func dialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Events returns the event publisher, or nil when events are disabled.
func (a *App) Events() events.EventPublisher {
	return a.events
}

// Config returns the configuration the app was built with.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the event publisher and the database.
func (a *App) Close() error {
	var errs []error
	if a.events != nil {
		ctx, cancel := context.WithTimeout(context.Background(), eventFlushTimeout)
		if err := events.Flush(ctx); err != nil {
			slog.Warn("dropping unsent events", "error", err)
		}
		cancel()
		errs = append(errs, a.events.Close())
	}
	if a.repo != nil {
		errs = append(errs, a.repo.Close())
	}
	return errors.Join(errs...)
}

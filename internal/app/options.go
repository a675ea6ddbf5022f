package app

import (
	"log/slog"

	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/locker"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	locker      locker.Locker
	logger      *slog.Logger
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLocker sets the locker mutations serialize on
func WithLocker(l locker.Locker) Option {
	return func(cfg *appConfig) {
		cfg.locker = l
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// Package events fans board change notifications out to other processes.
package events

import (
	"context"

	"github.com/thenoetrevino/boardly/internal/types"
)

// EventPublisher sends change notifications. A nil EventPublisher is valid
// wherever one is accepted and drops every event.
type EventPublisher interface {
	// SendEvent publishes event. Implementations must not block for long;
	// callers treat failures as non-fatal.
	SendEvent(event Event) error

	// Close releases the publisher's connection.
	Close() error
}

// Subscriber streams a board's events until ctx ends.
type Subscriber interface {
	Subscribe(ctx context.Context, boardID types.BoardID) (<-chan Event, error)
}

// Compile-time verification that *RedisPublisher implements both sides
var (
	_ EventPublisher = (*RedisPublisher)(nil)
	_ Subscriber     = (*RedisPublisher)(nil)
)

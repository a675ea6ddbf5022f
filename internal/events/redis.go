package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thenoetrevino/boardly/internal/types"
)

const (
	channelPrefix  = "boardly:events:"
	publishTimeout = 2 * time.Second
)

// Channel returns the pub/sub channel events for boardID are sent on.
func Channel(boardID types.BoardID) string {
	return channelPrefix + string(boardID)
}

// RedisPublisher publishes events as JSON over Redis pub/sub, one channel
// per board.
type RedisPublisher struct {
	client   *redis.Client
	sequence atomic.Int64
}

// NewRedisPublisher creates a publisher over a connected client. Closing the
// publisher closes the client.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// SendEvent stamps event with a timestamp and sequence number when unset and
// publishes it on the board's channel.
func (p *RedisPublisher) SendEvent(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.SequenceID == 0 {
		event.SequenceID = p.sequence.Add(1)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := p.client.Publish(ctx, Channel(event.BoardID), payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Subscribe listens for events on boardID until ctx is cancelled. The
// returned channel is closed when the subscription ends. Malformed messages
// are logged and skipped.
func (p *RedisPublisher) Subscribe(ctx context.Context, boardID types.BoardID) (<-chan Event, error) {
	sub := p.client.Subscribe(ctx, Channel(boardID))

	// Wait for the subscription to be confirmed so no event published after
	// Subscribe returns is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to board %s: %w", boardID, err)
	}

	out := make(chan Event, 16)
	go func() {
		defer close(out)
		defer func() {
			if err := sub.Close(); err != nil {
				slog.Debug("closing subscription", "board_id", boardID, "error", err)
			}
		}()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					slog.Warn("dropping malformed event", "channel", msg.Channel, "error", err)
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Close closes the Redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/boardly/internal/types"
)

// retryDelays are the waits before each retry of a failed publish.
var retryDelays = []time.Duration{50 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond}

// pending tracks Notify retries still running in the background.
var pending sync.WaitGroup

// retry resends event after each of delays until a send succeeds or ctx
// ends. err is the failure of the send before it; the last failure is
// returned.
func retry(ctx context.Context, client EventPublisher, event Event, delays []time.Duration, err error) error {
	for i, delay := range delays {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w (gave up: %v)", err, ctx.Err())
		case <-timer.C:
		}

		if err = client.SendEvent(event); err == nil {
			slog.Debug("event published after retry", "retries", i+1, "event_type", event.Type, "board_id", event.BoardID)
			return nil
		}
	}

	slog.Warn("event publish failed",
		"attempts", len(delays)+1,
		"event_type", event.Type,
		"board_id", event.BoardID,
		"error", err)
	return err
}

// Notify publishes an event and never blocks the caller on retries: the
// first send is synchronous, a failed one is retried in the background with
// retryDelays. Mutations call it after their transaction commits; Flush
// waits for the retries before the publisher is closed.
func Notify(client EventPublisher, eventType EventType, boardID types.BoardID) {
	if client == nil {
		return
	}

	event := Event{Type: eventType, BoardID: boardID}
	err := client.SendEvent(event)
	if err == nil {
		return
	}
	slog.Debug("event publish failed, retrying in background", "event_type", eventType, "board_id", boardID, "error", err)

	pending.Add(1)
	go func() {
		defer pending.Done()
		_ = retry(context.Background(), client, event, retryDelays, err)
	}()
}

// Flush waits until background retries started by Notify finish or ctx
// ends.
func Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

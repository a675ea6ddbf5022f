// Package reorder applies the position rules to lists and cards. Each
// operation takes a freshly loaded sibling snapshot and returns the write set
// the caller must persist in a single transaction, together with the primary
// insert or delete. Operations hold no state between calls.
package reorder

import (
	"github.com/thenoetrevino/boardly/internal/position"
)

func onCreate[K comparable, T position.Item[K]](key K, siblings []T) (int, error) {
	c, err := position.NewCollection(key, siblings)
	if err != nil {
		return 0, err
	}
	return position.InsertPosition(c.Items()), nil
}

func onDelete[K comparable, T position.Item[K]](deleted T, siblings []T) (*position.WriteSet[K, T], error) {
	c, err := position.NewCollection(deleted.GetContainer(), siblings)
	if err != nil {
		return nil, err
	}

	remaining := c.Without(deleted.GetID())
	if p := deleted.GetPosition(); p < 0 || p > len(remaining) {
		return nil, &position.RangeError{Position: p, Min: 0, Max: len(remaining)}
	}

	ws := position.NewWriteSet[K, T]()
	ws.ApplyShifts(position.RemovalShift[K](remaining, deleted.GetPosition()))
	return ws, nil
}

func onMove[K comparable, T position.Item[K]](moved T, siblings []T, newPosition int) (*position.WriteSet[K, T], error) {
	key := moved.GetContainer()
	c, err := position.NewCollection(key, siblings)
	if err != nil {
		return nil, err
	}
	if !c.Replace(moved) {
		return nil, &position.MismatchError{ItemID: moved.GetID(), Expected: key}
	}
	if newPosition < 0 || newPosition >= c.Len() {
		return nil, &position.RangeError{Position: newPosition, Min: 0, Max: c.Len() - 1}
	}

	ws := position.NewWriteSet[K, T]()
	if newPosition == moved.GetPosition() {
		return ws, nil
	}

	shifts, err := position.MoveWithin[K](c.Items(), moved.GetPosition(), newPosition)
	if err != nil {
		return nil, err
	}
	ws.ApplyShifts(shifts)
	return ws, nil
}

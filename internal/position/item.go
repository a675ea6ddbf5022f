// Package position keeps sibling entities (lists of a board, cards of a list)
// in a dense, zero-based order and computes the position changes a structural
// edit requires. Nothing in this package performs I/O: callers load a snapshot,
// ask for the shifts, and persist the resulting write set themselves.
package position

// Item is an entity ordered among siblings that share a container.
type Item[K comparable] interface {
	GetID() string
	GetContainer() K
	GetPosition() int
	SetPosition(pos int)
}

// Movable is an Item that can be relocated to another container.
type Movable[K comparable] interface {
	Item[K]
	SetContainer(key K)
}

// Shift records one sibling's position change.
type Shift[T any] struct {
	Item T
	From int
	To   int
}

// Apply writes each shift's target position onto its item.
func Apply[K comparable, T Item[K]](shifts []Shift[T]) {
	for _, s := range shifts {
		s.Item.SetPosition(s.To)
	}
}

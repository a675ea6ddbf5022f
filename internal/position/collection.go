package position

import (
	"cmp"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Collection is an ordered snapshot of the siblings in one container.
// It is built once per operation from freshly loaded rows and never cached.
type Collection[K comparable, T Item[K]] struct {
	key   K
	items []T
}

// NewCollection checks that every item belongs to key and returns the
// items sorted ascending by position. The input slice is not modified.
func NewCollection[K comparable, T Item[K]](key K, items []T) (*Collection[K, T], error) {
	for _, it := range items {
		if it.GetContainer() != key {
			return nil, &MismatchError{ItemID: it.GetID(), Expected: key, Actual: it.GetContainer()}
		}
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(a.GetPosition(), b.GetPosition())
	})

	return &Collection[K, T]{key: key, items: sorted}, nil
}

// Key returns the container key shared by every item.
func (c *Collection[K, T]) Key() K {
	return c.key
}

// Len returns the number of siblings.
func (c *Collection[K, T]) Len() int {
	return len(c.items)
}

// Items returns the siblings in position order.
func (c *Collection[K, T]) Items() []T {
	return c.items
}

// Find looks an item up by ID.
func (c *Collection[K, T]) Find(id string) (T, bool) {
	for _, it := range c.items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Replace swaps the snapshot entry that has the same ID as item for item
// itself, so shifts computed afterwards mutate the caller's instance.
func (c *Collection[K, T]) Replace(item T) bool {
	for i, it := range c.items {
		if it.GetID() == item.GetID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Without returns the siblings minus the item with the given ID.
func (c *Collection[K, T]) Without(id string) []T {
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if it.GetID() != id {
			out = append(out, it)
		}
	}
	return out
}

// Validate reports whether the snapshot satisfies the density invariant.
func (c *Collection[K, T]) Validate() error {
	return CheckDensity[K](c.items)
}

// CheckDensity returns ErrNotDense unless the positions of items are exactly
// {0, 1, ..., len(items)-1}.
func CheckDensity[K comparable, T Item[K]](items []T) error {
	seen := mapset.NewThreadUnsafeSetWithSize[int](len(items))
	for _, it := range items {
		p := it.GetPosition()
		if p < 0 || p >= len(items) {
			return fmt.Errorf("%w: item %s at %d with %d siblings", ErrNotDense, it.GetID(), p, len(items))
		}
		if !seen.Add(p) {
			return fmt.Errorf("%w: duplicate position %d (item %s)", ErrNotDense, p, it.GetID())
		}
	}
	return nil
}

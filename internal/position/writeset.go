package position

// Change is one row the caller must write back: the item's new position and
// container, plus the values the snapshot held so a persistence layer can
// detect that another writer got there first.
type Change[K comparable] struct {
	ID            string `json:"id"`
	Position      int    `json:"position"`
	Container     K      `json:"container"`
	PrevPosition  int    `json:"prev_position"`
	PrevContainer K      `json:"prev_container"`
}

// Moved reports whether the change relocates the item to another container.
func (c Change[K]) Moved() bool {
	return c.Container != c.PrevContainer
}

// WriteSet collects every item an operation touched. It must be persisted as
// one atomic batch; a partial write breaks density for readers.
type WriteSet[K comparable, T Item[K]] struct {
	items []T
	prev  map[string]Change[K]
}

// NewWriteSet returns an empty write set.
func NewWriteSet[K comparable, T Item[K]]() *WriteSet[K, T] {
	return &WriteSet[K, T]{prev: make(map[string]Change[K])}
}

// Record registers item with the position and container it had before the
// operation. Recording the same item twice keeps the first snapshot values.
func (w *WriteSet[K, T]) Record(item T, prevPosition int, prevContainer K) {
	id := item.GetID()
	if _, ok := w.prev[id]; ok {
		return
	}
	w.prev[id] = Change[K]{ID: id, PrevPosition: prevPosition, PrevContainer: prevContainer}
	w.items = append(w.items, item)
}

// ApplyShifts applies shifts to their items and records each of them.
func (w *WriteSet[K, T]) ApplyShifts(shifts []Shift[T]) {
	for _, s := range shifts {
		w.Record(s.Item, s.From, s.Item.GetContainer())
	}
	Apply[K](shifts)
}

// Items returns the touched entities in the order they were recorded.
func (w *WriteSet[K, T]) Items() []T {
	return w.items
}

// Len returns the number of touched entities.
func (w *WriteSet[K, T]) Len() int {
	return len(w.items)
}

// IsEmpty reports a no-op: nothing needs to be written.
func (w *WriteSet[K, T]) IsEmpty() bool {
	return len(w.items) == 0
}

// Changes returns the (id, position, container) tuples to persist.
func (w *WriteSet[K, T]) Changes() []Change[K] {
	out := make([]Change[K], 0, len(w.items))
	for _, it := range w.items {
		c := w.prev[it.GetID()]
		c.Position = it.GetPosition()
		c.Container = it.GetContainer()
		out = append(out, c)
	}
	return out
}

package position

import (
	"cmp"
	"slices"
)

// All functions below expect siblings sorted ascending by position and
// drawn from a single container. They return the shifts to apply and leave
// the items untouched.

// InsertPosition returns the slot a newly created item takes: the end.
func InsertPosition[T any](siblings []T) int {
	return len(siblings)
}

// RemovalShift closes the gap left by the item at removed. Every sibling
// after it moves down by one; the removed item itself, if still present in
// siblings, is not shifted.
func RemovalShift[K comparable, T Item[K]](siblings []T, removed int) []Shift[T] {
	var shifts []Shift[T]
	for _, s := range siblings {
		if p := s.GetPosition(); p > removed {
			shifts = append(shifts, Shift[T]{Item: s, From: p, To: p - 1})
		}
	}
	return shifts
}

// InsertionShift opens a slot at insert. Every sibling at or after it moves
// up by one.
func InsertionShift[K comparable, T Item[K]](siblings []T, insert int) []Shift[T] {
	var shifts []Shift[T]
	for _, s := range siblings {
		if p := s.GetPosition(); p >= insert {
			shifts = append(shifts, Shift[T]{Item: s, From: p, To: p + 1})
		}
	}
	return shifts
}

// MoveWithin moves the item at from to to inside one container. The result
// includes the mover. Both positions must lie in [0, len(siblings)-1];
// from == to yields no shifts.
func MoveWithin[K comparable, T Item[K]](siblings []T, from, to int) ([]Shift[T], error) {
	last := len(siblings) - 1
	if err := checkRange(from, 0, last); err != nil {
		return nil, err
	}
	if err := checkRange(to, 0, last); err != nil {
		return nil, err
	}
	if from == to {
		return nil, nil
	}

	var shifts []Shift[T]
	for _, s := range siblings {
		p := s.GetPosition()
		switch {
		case p == from:
			shifts = append(shifts, Shift[T]{Item: s, From: p, To: to})
		case from < to && p > from && p <= to:
			shifts = append(shifts, Shift[T]{Item: s, From: p, To: p - 1})
		case from > to && p >= to && p < from:
			shifts = append(shifts, Shift[T]{Item: s, From: p, To: p + 1})
		}
	}
	return shifts, nil
}

// CrossMove computes both sides of relocating the item at removed in source
// to insert in target. source still contains the mover; target does not.
// insert may equal len(target), which appends without shifting anything in
// the target. The mover's own shift is left to the caller because it also
// changes container.
func CrossMove[K comparable, T Item[K]](source []T, removed int, target []T, insert int) (src, dst []Shift[T], err error) {
	if err := checkRange(removed, 0, len(source)-1); err != nil {
		return nil, nil, err
	}
	if err := checkRange(insert, 0, len(target)); err != nil {
		return nil, nil, err
	}
	return RemovalShift[K](source, removed), InsertionShift[K](target, insert), nil
}

// Compact renumbers siblings to 0..N-1 in their current order. Ties keep
// their input order. Only items whose position changes are returned.
func Compact[K comparable, T Item[K]](siblings []T) []Shift[T] {
	sorted := slices.Clone(siblings)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(a.GetPosition(), b.GetPosition())
	})

	var shifts []Shift[T]
	for i, s := range sorted {
		if p := s.GetPosition(); p != i {
			shifts = append(shifts, Shift[T]{Item: s, From: p, To: i})
		}
	}
	return shifts
}

package position

import (
	"errors"
	"fmt"
)

var (
	// ErrPositionOutOfRange is returned when a requested position falls
	// outside the bounds the operation allows.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrContainerMismatch is returned when a snapshot mixes items from
	// different containers or does not contain the item being edited.
	ErrContainerMismatch = errors.New("container mismatch")

	// ErrNotDense is returned by CheckDensity when positions are not
	// exactly 0..N-1.
	ErrNotDense = errors.New("positions are not dense")
)

// RangeError describes a rejected position and the bounds it had to satisfy.
type RangeError struct {
	Position int
	Min      int
	Max      int
}

func (e *RangeError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("position %d out of range: container is empty", e.Position)
	}
	return fmt.Sprintf("position %d out of range [%d, %d]", e.Position, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrPositionOutOfRange
}

// MismatchError names the item that broke the single-container contract.
type MismatchError struct {
	ItemID   string
	Expected any
	Actual   any
}

func (e *MismatchError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("item %s not found in container %v", e.ItemID, e.Expected)
	}
	return fmt.Sprintf("item %s belongs to container %v, expected %v", e.ItemID, e.Actual, e.Expected)
}

func (e *MismatchError) Unwrap() error {
	return ErrContainerMismatch
}

func checkRange(pos, lo, hi int) error {
	if pos < lo || pos > hi {
		return &RangeError{Position: pos, Min: lo, Max: hi}
	}
	return nil
}

package smallset

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an element or range bound lies outside
	// the domain [0,31], or when a range's lower bound exceeds its upper
	// bound. Errors carrying the offending value unwrap to this sentinel.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidValue is returned when a floating-point input used as an
	// element is NaN or infinite.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNoSuchElement is returned by Next on an exhausted iterator, by
	// OptionalByte.Get on an empty optional and by Random on an empty set.
	ErrNoSuchElement = errors.New("no such element")

	// ErrNilArgument is returned when a required function or collection
	// argument is nil. It is checked at the boundary, before any
	// computation proceeds.
	ErrNilArgument = errors.New("nil argument")

	// ErrIllegalState is returned by iterator Remove when no element has
	// been returned yet, or the current element was already removed.
	ErrIllegalState = errors.New("iterator has no current element")
)

// ElementOutOfRangeError indicates an element outside the domain [0,31].
//
// It matches ErrOutOfRange via errors.Is.
type ElementOutOfRangeError struct {
	Element int
}

func (e *ElementOutOfRangeError) Error() string {
	return fmt.Sprintf("element out of range [0,31]: %d", e.Element)
}

func (e *ElementOutOfRangeError) Unwrap() error { return ErrOutOfRange }

// RangeBoundsError indicates a range whose lower bound exceeds its upper
// bound.
//
// It matches ErrOutOfRange via errors.Is.
type RangeBoundsError struct {
	From int
	To   int
}

func (e *RangeBoundsError) Error() string {
	return fmt.Sprintf("invalid range: from %d > to %d", e.From, e.To)
}

func (e *RangeBoundsError) Unwrap() error { return ErrOutOfRange }

package smallset

import (
	"iter"
	"math/bits"
)

// log2 returns n for a packed value 2^n. It recovers the single element of
// a singleton set without a full scan.
func log2(v uint32) uint8 {
	return uint8(bits.Len32(v) - 1)
}

// Iterator yields the elements of a Set in ascending order. It keeps the
// remaining elements as a packed value and drops the minimum on each Next,
// so each step costs O(1).
type Iterator struct {
	rest Set
}

// Iterator returns an iterator over the set in ascending order.
func (s Set) Iterator() *Iterator {
	return &Iterator{rest: s}
}

// HasNext reports whether elements remain.
func (it *Iterator) HasNext() bool { return it.rest != 0 }

// Next returns the minimum remaining element and drops it. It fails with
// ErrNoSuchElement once the iterator is exhausted.
func (it *Iterator) Next() (uint8, error) {
	if it.rest == 0 {
		return 0, ErrNoSuchElement
	}
	e := uint8(bits.TrailingZeros32(uint32(it.rest)))
	it.rest = it.rest.removeTrusted(e)
	return e, nil
}

// All returns a lazy sequence over the elements in ascending order. The
// sequence is finite, ordered, distinct and sized; empty and singleton
// sets avoid the general scan.
func (s Set) All() iter.Seq[uint8] {
	switch s.Len() {
	case 0:
		return func(yield func(uint8) bool) {}
	case 1:
		e := log2(uint32(s))
		return func(yield func(uint8) bool) {
			yield(e)
		}
	default:
		return func(yield func(uint8) bool) {
			for rest := s; rest != 0; {
				e := uint8(bits.TrailingZeros32(uint32(rest)))
				if !yield(e) {
					return
				}
				rest = rest.removeTrusted(e)
			}
		}
	}
}

// ForEach calls fn once per element in ascending order. Iteration stops
// early if fn returns false.
func (s Set) ForEach(fn func(e uint8) bool) error {
	if fn == nil {
		return ErrNilArgument
	}
	for rest := s; rest != 0; {
		e := uint8(bits.TrailingZeros32(uint32(rest)))
		if !fn(e) {
			return nil
		}
		rest = rest.removeTrusted(e)
	}
	return nil
}

// Next removes the smallest element, passes it to fn and returns the
// remaining set. fn is not called on an empty set.
//
//	s, _ := smallset.Of(3, 7, 9)
//	for !s.IsEmpty() {
//	    s, _ = s.Next(process)
//	}
//
// ForEach is usually the better choice.
func (s Set) Next(fn func(e uint8)) (Set, error) {
	if fn == nil {
		return s, ErrNilArgument
	}
	if s == 0 {
		return s, nil
	}
	e := uint8(bits.TrailingZeros32(uint32(s)))
	fn(e)
	return s.removeTrusted(e), nil
}

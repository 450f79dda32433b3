package smallset

import (
	"math/bits"
)

// Set is a set of small integers in the range [0,31], packed into a single
// uint32. Bit i is set if and only if i is a member.
//
// Set has value semantics: every mutating-looking operation returns a new
// Set and never alters the receiver. Equality is structural (==), and the
// zero value is the empty set. Every uint32 bit pattern is a legal set, so
// sets are freely shareable across goroutines.
type Set uint32

// MaxElement is the largest value a Set can hold.
const MaxElement = 31

// Empty returns the empty set.
func Empty() Set { return 0 }

// Full returns the set containing every value of the domain [0,31].
func Full() Set { return Set(^uint32(0)) }

// FromBits returns the set equivalent to the given packed value.
// Not to be confused with Singleton or Of.
func FromBits(v uint32) Set { return Set(v) }

// Bits returns the packed uint32 value equivalent to this set.
func (s Set) Bits() uint32 { return uint32(s) }

// checkElement validates an element against the domain [0,31].
func checkElement(e int) error {
	if e < 0 || e > MaxElement {
		return &ElementOutOfRangeError{Element: e}
	}
	return nil
}

// maskLessThan returns a mask with the n lowest bits set, for n in [0,32].
func maskLessThan(n int) uint32 {
	return ^uint32(0) >> (32 - n)
}

// Of builds a set from the given elements. Duplicates are idempotent and
// the empty argument list yields the empty set.
func Of(elems ...int) (Set, error) {
	var v uint32
	for _, e := range elems {
		if err := checkElement(e); err != nil {
			return Empty(), err
		}
		v |= 1 << e
	}
	return Set(v), nil
}

// Singleton returns the set containing only e.
func Singleton(e int) (Set, error) {
	if err := checkElement(e); err != nil {
		return Empty(), err
	}
	return Set(uint32(1) << e), nil
}

// OfRange returns the set of all values in [from, to). from == to yields
// the empty set; from > to fails with a RangeBoundsError.
func OfRange(from, to int) (Set, error) {
	if err := checkElement(from); err != nil {
		return Empty(), err
	}
	if from == to {
		return Empty(), nil
	}
	if from > to {
		return Empty(), &RangeBoundsError{From: from, To: to}
	}
	if err := checkElement(to - 1); err != nil {
		return Empty(), err
	}
	return Set(maskLessThan(to-from) << from), nil
}

// OfRangeClosed returns the set of all values in [a, z], both inclusive.
func OfRangeClosed(a, z int) (Set, error) {
	if err := checkElement(a); err != nil {
		return Empty(), err
	}
	if err := checkElement(z); err != nil {
		return Empty(), err
	}
	if a > z {
		return Empty(), &RangeBoundsError{From: a, To: z}
	}
	return Set(maskLessThan(z-a+1) << a), nil
}

// Len returns the number of elements in the set (its cardinality).
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether the set has no elements.
func (s Set) IsEmpty() bool { return s == 0 }

// Contains reports whether e is a member of the set.
func (s Set) Contains(e int) (bool, error) {
	if err := checkElement(e); err != nil {
		return false, err
	}
	return uint32(s)&(1<<e) != 0, nil
}

// ContainsAll reports whether every given element is a member of the set.
func (s Set) ContainsAll(elems ...int) (bool, error) {
	other, err := Of(elems...)
	if err != nil {
		return false, err
	}
	return s.ContainsSet(other), nil
}

// ContainsSet reports whether other is a subset of s.
func (s Set) ContainsSet(other Set) bool {
	return s&other == other
}

// Add returns the set extended by e.
func (s Set) Add(e int) (Set, error) {
	if err := checkElement(e); err != nil {
		return s, err
	}
	return s | Set(uint32(1)<<e), nil
}

// Remove returns the set without e. Removing an absent element is a no-op.
func (s Set) Remove(e int) (Set, error) {
	if err := checkElement(e); err != nil {
		return s, err
	}
	return s.removeTrusted(uint8(e)), nil
}

// removeTrusted clears a bit known to be in range.
func (s Set) removeTrusted(e uint8) Set {
	return s &^ Set(uint32(1)<<e)
}

// Union returns the union of the two sets.
func (s Set) Union(other Set) Set { return s | other }

// Intersect returns the intersection of the two sets.
func (s Set) Intersect(other Set) Set { return s & other }

// Minus returns the asymmetric difference s \ other.
func (s Set) Minus(other Set) Set { return s &^ other }

// Complement returns the complement over the full domain [0,31].
func (s Set) Complement() Set { return ^s }

// ComplementRange returns the complement over the bounded domain
// [min, max], both inclusive.
func (s Set) ComplementRange(min, max int) (Set, error) {
	domain, err := OfRangeClosed(min, max)
	if err != nil {
		return Empty(), err
	}
	return ^s & domain, nil
}

// Compare orders two sets by the signed difference of their packed values.
// This is a total order useful for sorted containers; it has no
// set-theoretic meaning (it is not a subset relation).
func (s Set) Compare(other Set) int {
	return int(int32(uint32(s) - uint32(other)))
}

// ReplaceAll applies op to every member in ascending order and returns the
// union of the mapped singletons. Each mapped value must lie in [0,31].
func (s Set) ReplaceAll(op func(e uint8) uint8) (Set, error) {
	if op == nil {
		return s, ErrNilArgument
	}
	var v uint32
	for rest := s; rest != 0; {
		e := uint8(bits.TrailingZeros32(uint32(rest)))
		rest = rest.removeTrusted(e)
		mapped := op(e)
		if err := checkElement(int(mapped)); err != nil {
			return Empty(), err
		}
		v |= 1 << mapped
	}
	return Set(v), nil
}

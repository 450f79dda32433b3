package smallset

import (
	"iter"
	"math/bits"
)

// ByteSet is a mutable, collection-shaped view over an immutable Set
// value. Every mutating call replaces the wrapped value wholesale; the
// bits themselves are never mutated in place.
//
// ByteSet is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access externally.
//
// The zero value is an empty, ready-to-use set.
type ByteSet struct {
	set Set
}

// NewByteSet returns a mutable view initialized with the given value.
func NewByteSet(set Set) *ByteSet {
	return &ByteSet{set: set}
}

// Snapshot returns the current underlying Set value. This is the
// fast-path extraction for constructing a Set from a ByteSet: the value
// is already known to be valid, so no per-element validation happens.
func (b *ByteSet) Snapshot() Set { return b.set }

// Len returns the number of elements.
func (b *ByteSet) Len() int { return b.set.Len() }

// IsEmpty reports whether the set has no elements.
func (b *ByteSet) IsEmpty() bool { return b.set.IsEmpty() }

// Clear removes all elements.
func (b *ByteSet) Clear() { b.set = Empty() }

// Clone returns an independent copy.
func (b *ByteSet) Clone() *ByteSet { return &ByteSet{set: b.set} }

// Contains reports whether e is a member. Out-of-range values are simply
// not members; no error is raised.
func (b *ByteSet) Contains(e int) bool {
	if e < 0 || e > MaxElement {
		return false
	}
	ok, _ := b.set.Contains(e)
	return ok
}

// Add inserts e and reports whether the set changed.
func (b *ByteSet) Add(e int) (bool, error) {
	next, err := b.set.Add(e)
	if err != nil {
		return false, err
	}
	changed := next != b.set
	b.set = next
	return changed, nil
}

// AddAll inserts all given elements and reports whether the set changed.
func (b *ByteSet) AddAll(elems ...int) (bool, error) {
	mask, err := Of(elems...)
	if err != nil {
		return false, err
	}
	next := b.set.Union(mask)
	changed := next != b.set
	b.set = next
	return changed, nil
}

// Remove deletes e and reports whether the set changed. Out-of-range
// values were never members, so removing them reports false.
func (b *ByteSet) Remove(e int) bool {
	if e < 0 || e > MaxElement {
		return false
	}
	next, _ := b.set.Remove(e)
	changed := next != b.set
	b.set = next
	return changed
}

// RemoveAll deletes all given elements and reports whether the set
// changed. Out-of-range values are ignored.
func (b *ByteSet) RemoveAll(elems ...int) bool {
	var mask Set
	for _, e := range elems {
		if e < 0 || e > MaxElement {
			continue
		}
		mask |= Set(uint32(1) << e)
	}
	next := b.set.Minus(mask)
	changed := next != b.set
	b.set = next
	return changed
}

// RetainAll keeps only the given elements and reports whether the set
// changed. Out-of-range values cannot be retained and are ignored.
func (b *ByteSet) RetainAll(elems ...int) bool {
	var mask Set
	for _, e := range elems {
		if e < 0 || e > MaxElement {
			continue
		}
		mask |= Set(uint32(1) << e)
	}
	next := b.set.Intersect(mask)
	changed := next != b.set
	b.set = next
	return changed
}

// First returns the minimum element, or the empty optional.
func (b *ByteSet) First() OptionalByte { return b.set.Min() }

// Last returns the maximum element, or the empty optional.
func (b *ByteSet) Last() OptionalByte { return b.set.Max() }

// Lower returns the greatest element strictly less than e.
func (b *ByteSet) Lower(e int) (OptionalByte, error) { return b.set.Lower(e) }

// Floor returns the greatest element less than or equal to e.
func (b *ByteSet) Floor(e int) (OptionalByte, error) { return b.set.Floor(e) }

// Ceiling returns the least element greater than or equal to e.
func (b *ByteSet) Ceiling(e int) (OptionalByte, error) { return b.set.Ceiling(e) }

// Higher returns the least element strictly greater than e.
func (b *ByteSet) Higher(e int) (OptionalByte, error) { return b.set.Higher(e) }

// PollFirst removes and returns the minimum element, or the empty
// optional if the set is empty.
func (b *ByteSet) PollFirst() OptionalByte {
	first := b.set.Min()
	first.IfPresent(func(e uint8) {
		b.set = b.set.removeTrusted(e)
	})
	return first
}

// PollLast removes and returns the maximum element, or the empty optional
// if the set is empty.
func (b *ByteSet) PollLast() OptionalByte {
	last := b.set.Max()
	last.IfPresent(func(e uint8) {
		b.set = b.set.removeTrusted(e)
	})
	return last
}

// All returns a lazy sequence over the elements in ascending order. The
// sequence iterates a snapshot of the current value; mutations during
// iteration are not observed.
func (b *ByteSet) All() iter.Seq[uint8] { return b.set.All() }

// ToArray returns the elements as an ascending slice.
func (b *ByteSet) ToArray() []uint8 { return b.set.ToArray() }

// HashCode returns a hash consistent with the generic set hash contract:
// the sum of the element hashes, which for bytes is the sum of the
// elements themselves.
func (b *ByteSet) HashCode() int { return b.set.Sum() }

// Equal reports whether both views currently hold the same elements.
func (b *ByteSet) Equal(other *ByteSet) bool {
	return other != nil && b.set == other.set
}

// EqualMap compares the view against a generic hash set of bytes. A size
// mismatch short-circuits to false.
func (b *ByteSet) EqualMap(m map[uint8]struct{}) bool {
	if len(m) != b.Len() {
		return false
	}
	for e := range m {
		if !b.Contains(int(e)) {
			return false
		}
	}
	return true
}

// Iterator returns an ascending iterator supporting removal of the
// current element.
func (b *ByteSet) Iterator() *ByteSetIterator {
	return &ByteSetIterator{owner: b, rest: b.set, last: -1}
}

// ByteSetIterator iterates a ByteSet in ascending order. Remove deletes
// the element most recently returned by Next from the owning set.
type ByteSetIterator struct {
	owner *ByteSet
	rest  Set
	last  int
}

// HasNext reports whether elements remain.
func (it *ByteSetIterator) HasNext() bool { return it.rest != 0 }

// Next returns the minimum remaining element. It fails with
// ErrNoSuchElement once exhausted.
func (it *ByteSetIterator) Next() (uint8, error) {
	if it.rest == 0 {
		return 0, ErrNoSuchElement
	}
	e := uint8(bits.TrailingZeros32(uint32(it.rest)))
	it.rest = it.rest.removeTrusted(e)
	it.last = int(e)
	return e, nil
}

// Remove deletes the element most recently returned by Next from the
// owning set. It fails with ErrIllegalState if Next has not been called,
// or if Remove was already called for the current element.
func (it *ByteSetIterator) Remove() error {
	if it.last < 0 {
		return ErrIllegalState
	}
	it.owner.set = it.owner.set.removeTrusted(uint8(it.last))
	it.last = -1
	return nil
}

// SubSet returns a mutable view of the portion of this set whose elements
// range from from (inclusive) to to (exclusive). The view holds a
// reference back to this set plus a fixed range mask; mutations delegate
// to the parent.
func (b *ByteSet) SubSet(from, to int) (*RangeView, error) {
	rangeMask, err := OfRange(from, to)
	if err != nil {
		return nil, err
	}
	return &RangeView{parent: b, mask: rangeMask, from: from, to: to}, nil
}

// HeadSet returns a view of the elements strictly less than to.
func (b *ByteSet) HeadSet(to int) (*RangeView, error) {
	return b.SubSet(0, to)
}

// TailSet returns a view of the elements greater than or equal to from.
func (b *ByteSet) TailSet(from int) (*RangeView, error) {
	return b.SubSet(from, MaxElement+1)
}

// RangeView is a mutable view over the [from, to) portion of a parent
// ByteSet. It caches no elements: reads intersect the parent's current
// value with the range mask, and writes delegate to the parent.
//
// Like ByteSet, a RangeView is not safe for concurrent use.
type RangeView struct {
	parent *ByteSet
	mask   Set
	from   int
	to     int
}

// Snapshot returns the elements of the view as a Set value.
func (v *RangeView) Snapshot() Set { return v.parent.set.Intersect(v.mask) }

// Len returns the number of elements within the view's range.
func (v *RangeView) Len() int { return v.Snapshot().Len() }

// IsEmpty reports whether the view contains no elements.
func (v *RangeView) IsEmpty() bool { return v.Snapshot().IsEmpty() }

// Contains reports whether e is a member within the view's range.
func (v *RangeView) Contains(e int) bool {
	if e < v.from || e >= v.to {
		return false
	}
	return v.parent.Contains(e)
}

// Add inserts e through the parent. Elements outside the view's range
// fail with ErrOutOfRange.
func (v *RangeView) Add(e int) (bool, error) {
	if in, _ := v.mask.Contains(e); !in {
		return false, &ElementOutOfRangeError{Element: e}
	}
	return v.parent.Add(e)
}

// Remove deletes e through the parent. Elements outside the view's range
// fail with ErrOutOfRange.
func (v *RangeView) Remove(e int) (bool, error) {
	if in, _ := v.mask.Contains(e); !in {
		return false, &ElementOutOfRangeError{Element: e}
	}
	return v.parent.Remove(e), nil
}

// All returns a lazy ascending sequence over the view's elements.
func (v *RangeView) All() iter.Seq[uint8] { return v.Snapshot().All() }

// ToArray returns the view's elements as an ascending slice.
func (v *RangeView) ToArray() []uint8 { return v.Snapshot().ToArray() }

// Iterator returns an ascending iterator over the view supporting removal
// through the parent.
func (v *RangeView) Iterator() *ByteSetIterator {
	return &ByteSetIterator{owner: v.parent, rest: v.Snapshot(), last: -1}
}

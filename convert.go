package smallset

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToArray returns the elements as a freshly allocated ascending slice of
// length Len().
func (s Set) ToArray() []uint8 {
	return s.AppendTo(make([]uint8, 0, s.Len()))
}

// AppendTo appends the elements in ascending order to dst and returns the
// extended slice.
func (s Set) AppendTo(dst []uint8) []uint8 {
	for rest := s; rest != 0; {
		e := uint8(bits.TrailingZeros32(uint32(rest)))
		dst = append(dst, e)
		rest = rest.removeTrusted(e)
	}
	return dst
}

// ToMap returns the elements as a hash set.
func (s Set) ToMap() map[uint8]struct{} {
	m := make(map[uint8]struct{}, s.Len())
	for e := range s.All() {
		m[e] = struct{}{}
	}
	return m
}

// OfMap builds a set from the keys of a hash set.
func OfMap(m map[uint8]struct{}) (Set, error) {
	var v uint32
	for e := range m {
		if err := checkElement(int(e)); err != nil {
			return Empty(), err
		}
		v |= 1 << e
	}
	return Set(v), nil
}

// ToRoaring returns the set as a roaring bitmap: bit i is set in the
// result exactly when i is a member.
func (s Set) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for e := range s.All() {
		rb.Add(uint32(e))
	}
	return rb
}

// FromRoaring builds a set from a roaring bitmap. Bits at positions
// beyond 31 fail with ErrOutOfRange.
func FromRoaring(rb *roaring.Bitmap) (Set, error) {
	if rb == nil {
		return Empty(), ErrNilArgument
	}
	var v uint32
	it := rb.Iterator()
	for it.HasNext() {
		b := it.Next()
		if b > MaxElement {
			return Empty(), &ElementOutOfRangeError{Element: int(b)}
		}
		v |= 1 << b
	}
	return Set(v), nil
}

// OfEnums builds a set from integer-ordinal enum values, using each
// value's ordinal as the bit index.
func OfEnums[E ~int](values ...E) (Set, error) {
	var v uint32
	for _, e := range values {
		if err := checkElement(int(e)); err != nil {
			return Empty(), err
		}
		v |= 1 << int(e)
	}
	return Set(v), nil
}

// ToEnums maps each element back to an integer-ordinal enum value.
// numConstants is the number of declared constants of E; elements at or
// beyond it fail with ErrOutOfRange.
func ToEnums[E ~int](s Set, numConstants int) ([]E, error) {
	result := make([]E, 0, s.Len())
	for e := range s.All() {
		if int(e) >= numConstants {
			return nil, &ElementOutOfRangeError{Element: int(e)}
		}
		result = append(result, E(e))
	}
	return result, nil
}

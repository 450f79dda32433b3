package smallset

import "math/bits"

// Navigation queries mirror the ordered-set floor/ceiling/lower/higher
// contract. All run in O(1): the candidates are masked out and the answer
// is the trailing- or leading-zero count of what remains.

// Min returns the minimum element, or the empty optional for the empty set.
func (s Set) Min() OptionalByte {
	tz := bits.TrailingZeros32(uint32(s))
	if tz == 32 {
		return EmptyByte()
	}
	return OfByte(uint8(tz))
}

// Max returns the maximum element, or the empty optional for the empty set.
func (s Set) Max() OptionalByte {
	lz := bits.LeadingZeros32(uint32(s))
	if lz == 32 {
		return EmptyByte()
	}
	return OfByte(uint8(31 - lz))
}

// Lower returns the greatest element strictly less than e, or the empty
// optional if there is none.
func (s Set) Lower(e int) (OptionalByte, error) {
	if err := checkElement(e); err != nil {
		return EmptyByte(), err
	}
	if e == 0 || s == 0 {
		return EmptyByte(), nil
	}
	below := uint32(s) & maskLessThan(e)
	if below == 0 {
		return EmptyByte(), nil
	}
	return OfByte(uint8(31 - bits.LeadingZeros32(below))), nil
}

// Floor returns the greatest element less than or equal to e, or the empty
// optional if there is none.
func (s Set) Floor(e int) (OptionalByte, error) {
	if err := checkElement(e); err != nil {
		return EmptyByte(), err
	}
	below := uint32(s) & maskLessThan(e+1)
	if below == 0 {
		return EmptyByte(), nil
	}
	return OfByte(uint8(31 - bits.LeadingZeros32(below))), nil
}

// Ceiling returns the least element greater than or equal to e, or the
// empty optional if there is none.
func (s Set) Ceiling(e int) (OptionalByte, error) {
	if err := checkElement(e); err != nil {
		return EmptyByte(), err
	}
	above := uint32(s) &^ maskLessThan(e) // elements >= e
	if above == 0 {
		return EmptyByte(), nil
	}
	return OfByte(uint8(bits.TrailingZeros32(above))), nil
}

// Higher returns the least element strictly greater than e, or the empty
// optional if there is none.
func (s Set) Higher(e int) (OptionalByte, error) {
	if err := checkElement(e); err != nil {
		return EmptyByte(), err
	}
	if e == MaxElement || s == 0 {
		return EmptyByte(), nil
	}
	above := uint32(s) &^ maskLessThan(e+1)
	if above == 0 {
		return EmptyByte(), nil
	}
	return OfByte(uint8(bits.TrailingZeros32(above))), nil
}

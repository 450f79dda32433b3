package smallset

import (
	"math/bits"
	"math/rand/v2"
)

// domainSum is the sum over the full domain: 0+1+...+31.
const domainSum = 496

// Sum returns the sum of all elements, 0 for the empty set.
//
// Cardinality-aware fast paths: a singleton is its binary logarithm, a
// pair is its lowest plus its highest bit, and a set with more than 16
// elements is summed through its smaller complement.
func (s Set) Sum() int {
	switch size := s.Len(); size {
	case 0:
		return 0
	case 1:
		return int(log2(uint32(s)))
	case 2:
		return bits.TrailingZeros32(uint32(s)) + (31 - bits.LeadingZeros32(uint32(s)))
	case 32:
		return domainSum
	default:
		if size > 16 {
			return domainSum - s.Complement().Sum()
		}
		sum := 0
		for rest := s; rest != 0; {
			e := bits.TrailingZeros32(uint32(rest))
			sum += e
			rest = rest.removeTrusted(uint8(e))
		}
		return sum
	}
}

// Reduce folds the elements in ascending order with op, starting from
// identity.
func (s Set) Reduce(identity int, op func(acc, e int) int) (int, error) {
	if op == nil {
		return identity, ErrNilArgument
	}
	switch s.Len() {
	case 0:
		return identity, nil
	case 1:
		return op(identity, int(log2(uint32(s)))), nil
	default:
		acc := identity
		for rest := s; rest != 0; {
			e := bits.TrailingZeros32(uint32(rest))
			acc = op(acc, e)
			rest = rest.removeTrusted(uint8(e))
		}
		return acc, nil
	}
}

// ReduceOpt folds the elements in ascending order with op, seeded with the
// minimum element. ok is false for the empty set.
func (s Set) ReduceOpt(op func(acc, e int) int) (result int, ok bool, err error) {
	if op == nil {
		return 0, false, ErrNilArgument
	}
	switch s.Len() {
	case 0:
		return 0, false, nil
	case 1:
		return int(log2(uint32(s))), true, nil
	default:
		first := uint8(bits.TrailingZeros32(uint32(s)))
		acc := int(first)
		for rest := s.removeTrusted(first); rest != 0; {
			e := bits.TrailingZeros32(uint32(rest))
			acc = op(acc, e)
			rest = rest.removeTrusted(uint8(e))
		}
		return acc, true, nil
	}
}

// Random returns a uniformly random element of the set, chosen by rank.
// It fails with ErrNoSuchElement on the empty set.
func (s Set) Random(rng *rand.Rand) (uint8, error) {
	if rng == nil {
		return 0, ErrNilArgument
	}
	if s == 0 {
		return 0, ErrNoSuchElement
	}
	r := rng.IntN(s.Len())
	v := uint32(s)
	for ; r > 0; r-- {
		v &= v - 1 // clear lowest set bit
	}
	return uint8(bits.TrailingZeros32(v)), nil
}

package smallset

import (
	"iter"
	"math/bits"
)

// Powerset returns a lazy sequence of all 2^n subsets of the set, each as
// its own packed Set. Every subset is produced exactly once; the order is
// deterministic but otherwise unspecified.
//
// Complexity is O(2^n). For n approaching 32 the enumeration is
// intractable; no guard is imposed, bounding n is the caller's
// responsibility.
func (s Set) Powerset() iter.Seq[Set] {
	switch s.Len() {
	case 0:
		return func(yield func(Set) bool) {
			yield(Empty())
		}
	case 1:
		return func(yield func(Set) bool) {
			if !yield(Empty()) {
				return
			}
			yield(s)
		}
	default:
		members := s.ToArray()
		total := uint64(1) << len(members)
		return func(yield func(Set) bool) {
			for i := uint64(0); i < total; i++ {
				// Interpret i's bits as a selection mask over the
				// member array.
				var v uint32
				for m := i; m != 0; m &= m - 1 {
					x := bits.TrailingZeros64(m)
					v |= 1 << members[x]
				}
				if !yield(Set(v)) {
					return
				}
			}
		}
	}
}

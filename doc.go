// Package smallset provides immutable sets of small integers (0 to 31),
// packed into a single uint32.
//
// A Set has value semantics: every operation that looks like a mutation
// (Add, Remove, Union, ...) returns a new Set and never alters its
// receiver. Two sets are equal exactly when their packed values are equal,
// so == works. The zero value is the empty set.
//
// # Quick Start
//
//	s, _ := smallset.Of(1, 5, 10)
//	s, _ = s.Add(31)
//	fmt.Println(s)              // (1,5,10,31)
//	fmt.Println(s.Len())        // 4
//	fmt.Println(s.Sum())        // 47
//
//	for e := range s.All() {    // ascending order
//	    fmt.Println(e)
//	}
//
// # Navigation
//
// Min, Max, Lower, Floor, Ceiling and Higher answer ordered-set queries in
// O(1) via masked bit scans and return an OptionalByte:
//
//	if v, ok := s.Floor(7); ok == nil {
//	    if e, present := v.Value(); present {
//	        fmt.Println(e)      // 5
//	    }
//	}
//
// # Mutable view
//
// ByteSet wraps a Set value in a mutable, collection-shaped adapter with
// iterators, poll operations and sub-range views. It is not safe for
// concurrent use.
//
// # Interop
//
// Sets convert to and from slices, maps, integer-ordinal enum types and
// roaring bitmaps (github.com/RoaringBitmap/roaring). CollectParallel folds
// large numeric slices concurrently; partial masks are combined by OR, so
// the fold needs no locks.
//
// # Key Features
//
//   - Single-word representation, all algebra in O(1)
//   - Cardinality-aware fast paths for Sum, Reduce and streaming
//   - Lazy power set enumeration (O(2^n), bound n yourself)
//   - Roaring bitmap and enum interop
package smallset

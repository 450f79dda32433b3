package smallset

import (
	"context"
	"iter"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Number covers the numeric types a set element may be derived from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// numberToElement narrows an arbitrary numeric value to a validated
// element. NaN and infinite inputs fail with ErrInvalidValue; values
// outside [0,31] fail with ErrOutOfRange. Fractional values truncate.
func numberToElement[N Number](n N) (uint8, error) {
	d := float64(n)
	if math.IsNaN(d) {
		return 0, ErrInvalidValue
	}
	if math.IsInf(d, 0) {
		return 0, ErrInvalidValue
	}
	if d < 0 || d > MaxElement {
		// Clamp before converting so extreme floats stay representable.
		clamped := math.Max(math.Min(d, math.MaxInt32), math.MinInt32)
		return 0, &ElementOutOfRangeError{Element: int(clamped)}
	}
	return uint8(d), nil
}

// OfNumbers builds a set from arbitrary numeric values, validating each.
func OfNumbers[N Number](values ...N) (Set, error) {
	var v uint32
	for _, n := range values {
		e, err := numberToElement(n)
		if err != nil {
			return Empty(), err
		}
		v |= 1 << e
	}
	return Set(v), nil
}

// Collect folds a sequence of integers into a set, validating each value.
// Any invalid value fails the whole collection.
func Collect(seq iter.Seq[int]) (Set, error) {
	if seq == nil {
		return Empty(), ErrNilArgument
	}
	var v uint32
	var err error
	for e := range seq {
		if err = checkElement(e); err != nil {
			break
		}
		v |= 1 << e
	}
	if err != nil {
		return Empty(), err
	}
	return Set(v), nil
}

// CollectNumbers folds a sequence of numeric values into a set. NaN and
// infinite values fail with ErrInvalidValue.
func CollectNumbers[N Number](seq iter.Seq[N]) (Set, error) {
	if seq == nil {
		return Empty(), ErrNilArgument
	}
	var v uint32
	var err error
	for n := range seq {
		var e uint8
		if e, err = numberToElement(n); err != nil {
			break
		}
		v |= 1 << e
	}
	if err != nil {
		return Empty(), err
	}
	return Set(v), nil
}

// CollectParallel folds a slice of numeric values into a set concurrently.
// The slice is split into chunks; each worker accumulates a thread-local
// partial mask and the partials are combined by OR, so the fold needs no
// locks. The first invalid value cancels the group and fails the whole
// collection.
//
// parallelism <= 0 selects GOMAXPROCS.
func CollectParallel[N Number](ctx context.Context, values []N, parallelism int) (Set, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	if len(values) == 0 {
		return Empty(), nil
	}

	chunk := (len(values) + parallelism - 1) / parallelism
	numChunks := (len(values) + chunk - 1) / chunk
	partials := make([]uint32, numChunks)

	g, ctx := errgroup.WithContext(ctx)
	for i := range numChunks {
		lo := i * chunk
		hi := min(lo+chunk, len(values))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var local uint32
			for _, n := range values[lo:hi] {
				e, err := numberToElement(n)
				if err != nil {
					return err
				}
				local |= 1 << e
			}
			partials[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Empty(), err
	}

	var v uint32
	for _, p := range partials {
		v |= p
	}
	return Set(v), nil
}

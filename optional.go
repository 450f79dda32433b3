package smallset

import "fmt"

// OptionalByte is a container that may or may not hold a byte value. It is
// the result type of queries that can legitimately find nothing, such as
// Min, Max and the navigation operations.
//
// The zero value is the empty optional.
type OptionalByte struct {
	value   uint8
	present bool
}

// OfByte returns an optional holding value.
func OfByte(value uint8) OptionalByte {
	return OptionalByte{value: value, present: true}
}

// EmptyByte returns the empty optional.
func EmptyByte() OptionalByte { return OptionalByte{} }

// IsPresent reports whether a value is present.
func (o OptionalByte) IsPresent() bool { return o.present }

// IsEmpty reports whether no value is present.
func (o OptionalByte) IsEmpty() bool { return !o.present }

// Value returns the value and whether it is present.
func (o OptionalByte) Value() (uint8, bool) { return o.value, o.present }

// Get returns the value, or ErrNoSuchElement if none is present.
func (o OptionalByte) Get() (uint8, error) {
	if !o.present {
		return 0, ErrNoSuchElement
	}
	return o.value, nil
}

// OrElse returns the value if present, otherwise def.
func (o OptionalByte) OrElse(def uint8) uint8 {
	if o.present {
		return o.value
	}
	return def
}

// OrElseGet returns the value if present, otherwise the result of fn.
func (o OptionalByte) OrElseGet(fn func() uint8) uint8 {
	if o.present {
		return o.value
	}
	return fn()
}

// IfPresent calls fn with the value if one is present.
func (o OptionalByte) IfPresent(fn func(uint8)) {
	if o.present {
		fn(o.value)
	}
}

// IfPresentOrElse calls fn with the value if one is present, otherwise
// calls empty.
func (o OptionalByte) IfPresentOrElse(fn func(uint8), empty func()) {
	if o.present {
		fn(o.value)
	} else {
		empty()
	}
}

// Map returns an optional holding fn applied to the value, or the empty
// optional if none is present.
func (o OptionalByte) Map(fn func(uint8) uint8) OptionalByte {
	if !o.present {
		return EmptyByte()
	}
	return OfByte(fn(o.value))
}

func (o OptionalByte) String() string {
	if !o.present {
		return "OptionalByte.empty"
	}
	return fmt.Sprintf("OptionalByte[%d]", o.value)
}

package descriptor

import "fmt"

// Default is a tri-state default value. The zero value is unset. A default
// that is set may hold nil, meaning the default is literally null.
type Default struct {
	value any
	set   bool
}

// Unset returns a default that was never specified.
func Unset() Default {
	return Default{}
}

// Set returns a default holding value, which may be nil.
func Set(value any) Default {
	return Default{value: value, set: true}
}

// IsSet reports whether a default was specified.
func (d Default) IsSet() bool {
	return d.set
}

// Value returns the default value. It panics when the default is unset.
func (d Default) Value() any {
	if !d.set {
		panic("descriptor: Value called on unset default")
	}

	return d.value
}

// Get returns the value and whether it was set.
func (d Default) Get() (any, bool) {
	return d.value, d.set
}

// Or returns d if it is set, otherwise other.
func (d Default) Or(other Default) Default {
	if d.set {
		return d
	}

	return other
}

// String returns a human-readable representation.
func (d Default) String() string {
	if !d.set {
		return "<unset>"
	}

	if d.value == nil {
		return "null"
	}

	return fmt.Sprintf("%v", d.value)
}

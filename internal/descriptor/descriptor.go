package descriptor

import (
	"errors"
	"fmt"
	"regexp"

	"gqlmeta/internal/common"
	"gqlmeta/internal/schema"
)

// Kind tells which schema construct a descriptor becomes.
type Kind int

const (
	KindArgument Kind = iota
	KindInputField
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindInputField:
		return "input field"
	default:
		return common.UnknownStr
	}
}

var nameRE = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// IsValidName reports whether s is a valid GraphQL name.
func IsValidName(s string) bool {
	return nameRE.MatchString(s)
}

// Descriptor is a fully resolved argument or input object field.
type Descriptor struct {
	Kind Kind
	// Name is the GraphQL name.
	Name string
	// Type resolves to the base (or marker-wrapped) type; Mode wraps it further.
	Type schema.TypeRef
	Mode TypeMode
	// Description is nil when no source supplied one.
	Description *string
	// DeprecationReason is nil when the construct is not deprecated.
	DeprecationReason *string
	Default           Default
	// Element is the qualified name of the element this was resolved from.
	Element string
}

// HasDefault reports whether a default value was specified.
func (d *Descriptor) HasDefault() bool {
	return d.Default.IsSet()
}

// DefaultValue returns the default. It panics when HasDefault is false.
func (d *Descriptor) DefaultValue() any {
	return d.Default.Value()
}

// IsDeprecated reports whether a deprecation reason is present.
func (d *Descriptor) IsDeprecated() bool {
	return d.DeprecationReason != nil
}

// ResolveType forces the type reference and applies Mode.
func (d *Descriptor) ResolveType() (schema.Type, error) {
	t, err := d.Type.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", d.Kind, d.Name, err)
	}

	return d.Mode.Wrap(t), nil
}

// Validate checks the structural invariants of the descriptor.
func (d *Descriptor) Validate() error {
	var errs []error

	if !IsValidName(d.Name) {
		errs = append(errs, fmt.Errorf("invalid name %q", d.Name))
	}

	if d.Type == nil {
		errs = append(errs, errors.New("missing type reference"))
	}

	if !d.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("invalid type mode %d", int(d.Mode)))
	}

	return errors.Join(errs...)
}

// String returns a compact one-line representation.
func (d *Descriptor) String() string {
	typ := "<nil>"
	if d.Type != nil {
		typ = d.Type.String()
	}

	return fmt.Sprintf("%s %s: %s (mode=%s, default=%s)", d.Kind, d.Name, typ, d.Mode, d.Default)
}

package resolve

import (
	"errors"
	"fmt"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/schema"
)

// Source names the strategy that supplied a value.
type Source string

const (
	SourceNone          Source = ""
	SourceAttribute     Source = "attribute"
	SourceDocumentation Source = "documentation"
	SourceStructural    Source = "structural"
)

// Draft is a descriptor under construction. Every slot is fill-if-unset:
// the first strategy to supply a value wins and later attempts are ignored.
type Draft struct {
	Element analyze.Element
	Kind    descriptor.Kind

	name        *string
	typeRef     schema.TypeRef
	typeSource  Source
	mode        descriptor.TypeMode
	description *string
	deprecation *string
	def         descriptor.Default
	defSource   Source
}

// NewDraft creates an empty draft for el. Methods and struct fields become
// input fields; parameters become arguments.
func NewDraft(el analyze.Element) (*Draft, error) {
	switch el.(type) {
	case *analyze.Method, *analyze.FieldInfo:
		return &Draft{Element: el, Kind: descriptor.KindInputField}, nil
	case *analyze.Param:
		return &Draft{Element: el, Kind: descriptor.KindArgument}, nil
	case nil:
		return nil, errors.New("resolve: nil element")
	default:
		return nil, fmt.Errorf("resolve: unsupported element %T", el)
	}
}

// FillName sets the name if none was set.
func (d *Draft) FillName(name string) {
	if d.name == nil {
		d.name = &name
	}
}

// Name returns the name and whether one was set.
func (d *Draft) Name() (string, bool) {
	if d.name == nil {
		return "", false
	}

	return *d.name, true
}

// FillType sets the type reference and its wrapping mode if no type was set.
func (d *Draft) FillType(ref schema.TypeRef, mode descriptor.TypeMode, src Source) {
	if d.typeRef == nil && ref != nil {
		d.typeRef = ref
		d.mode = mode
		d.typeSource = src
	}
}

// HasType reports whether a type reference was set.
func (d *Draft) HasType() bool {
	return d.typeRef != nil
}

// TypeSource reports which strategy supplied the type.
func (d *Draft) TypeSource() Source {
	return d.typeSource
}

// FillDescription sets the description if v is present and none was set.
func (d *Draft) FillDescription(v *string) {
	if d.description == nil && v != nil {
		d.description = v
	}
}

// FillDeprecation sets the deprecation reason if v is present and none was set.
func (d *Draft) FillDeprecation(v *string) {
	if d.deprecation == nil && v != nil {
		d.deprecation = v
	}
}

// FillDefault sets the default if def is set and no default was set.
func (d *Draft) FillDefault(def descriptor.Default, src Source) {
	if !d.def.IsSet() && def.IsSet() {
		d.def = def
		d.defSource = src
	}
}

// Default returns the default collected so far.
func (d *Draft) Default() descriptor.Default {
	return d.def
}

// DefaultSource reports which strategy supplied the default.
func (d *Draft) DefaultSource() Source {
	return d.defSource
}

// Descriptor completes the draft. It fails when the name or type is missing
// or the result is invalid.
func (d *Draft) Descriptor() (*descriptor.Descriptor, error) {
	if d.typeRef == nil {
		return nil, d.failf(ErrUnresolvableType, "no type could be determined")
	}

	if d.name == nil {
		return nil, d.fail(errors.New("no name could be determined"))
	}

	desc := &descriptor.Descriptor{
		Kind:              d.Kind,
		Name:              *d.name,
		Type:              d.typeRef,
		Mode:              d.mode,
		Description:       d.description,
		DeprecationReason: d.deprecation,
		Default:           d.def,
		Element:           d.Element.QualifiedName(),
	}

	if err := desc.Validate(); err != nil {
		return nil, d.fail(fmt.Errorf("invalid %s: %w", d.Kind, err))
	}

	return desc, nil
}

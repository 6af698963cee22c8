package resolve

import (
	"fmt"

	"gqlmeta/internal/attribute"
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/lazy"
)

// AttributeStrategy applies the explicit declaration attached to an element.
type AttributeStrategy struct {
	reader attribute.Reader
	types  lazy.Lookup
}

// NewAttributeStrategy creates an AttributeStrategy.
func NewAttributeStrategy(reader attribute.Reader, types lazy.Lookup) *AttributeStrategy {
	return &AttributeStrategy{reader: reader, types: types}
}

// Process fills the draft from the element's attribute, then continues.
func (s *AttributeStrategy) Process(d *Draft, next Resolver) (*descriptor.Descriptor, error) {
	attr, err := s.reader.FirstMetadataFor(d.Element)
	if err != nil {
		return nil, d.fail(err)
	}

	if attr == nil {
		return next.Resolve(d)
	}

	if err := s.apply(d, attr); err != nil {
		return nil, d.fail(err)
	}

	return next.Resolve(d)
}

func (s *AttributeStrategy) apply(d *Draft, attr *attribute.Attribute) error {
	if err := CheckAttribute(attr); err != nil {
		return err
	}

	if attr.Name != nil {
		d.FillName(*attr.Name)
	}

	ref, mode, err := AttributeType(attr, s.types)
	if err != nil {
		return err
	}

	if ref != nil {
		d.FillType(ref, mode, SourceAttribute)
	}

	d.FillDescription(attr.Description)
	d.FillDeprecation(attr.DeprecationReason)
	d.FillDefault(attr.Default, SourceAttribute)

	return nil
}

// CheckAttribute reports inconsistencies of attr that do not depend on the
// element it is attached to.
func CheckAttribute(attr *attribute.Attribute) error {
	if attr.Name != nil && !descriptor.IsValidName(*attr.Name) {
		return fmt.Errorf("%w %q: invalid name %q", ErrMalformedAttribute, attr.Source, *attr.Name)
	}

	if attr.Type == nil && attr.Mode != nil {
		return fmt.Errorf("%w %q: mode %s given without a type", ErrMalformedAttribute, attr.Source, *attr.Mode)
	}

	return nil
}

// AttributeType parses the type declared by attr. The returned reference is
// nil when attr declares no type.
func AttributeType(attr *attribute.Attribute, types lazy.Lookup) (*lazy.Ref, descriptor.TypeMode, error) {
	mode := attr.TypeMode()
	if attr.Type == nil {
		return nil, mode, nil
	}

	expr, err := lazy.ParseTypeExpr(*attr.Type)
	if err != nil {
		return nil, mode, fmt.Errorf("%w %q: %w", ErrMalformedAttribute, attr.Source, err)
	}

	if expr.IsWrapped() && mode != descriptor.ModePlain {
		return nil, mode, fmt.Errorf("%w %q: type %s already carries wrapping, mode %s conflicts",
			ErrMalformedAttribute, attr.Source, expr, mode)
	}

	return lazy.ByName(expr.String(), types), mode, nil
}

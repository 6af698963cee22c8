package lazy

import (
	"fmt"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/schema"
)

// ResolveAnnotation maps a Go type to a GraphQL type. Non-pointer types are
// non-null, pointers are nullable, slices and arrays become lists of their
// recursively resolved element type.
func ResolveAnnotation(t *analyze.TypeInfo, types Lookup) (schema.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: missing type annotation", ErrUnresolvableType)
	}

	inner, err := resolveNullable(t, types)
	if err != nil {
		return nil, err
	}

	if t.IsNullable() {
		return inner, nil
	}

	return &schema.NonNull{OfType: inner}, nil
}

// resolveNullable resolves t without its own non-null wrapper.
func resolveNullable(t *analyze.TypeInfo, types Lookup) (schema.Type, error) {
	switch t.Kind {
	case analyze.TypeKindPointer:
		if t.ElemType == nil {
			return nil, fmt.Errorf("%w: pointer without element type", ErrUnresolvableType)
		}

		return resolveNullable(t.ElemType, types)

	case analyze.TypeKindSlice, analyze.TypeKindArray:
		elem, err := ResolveAnnotation(t.ElemType, types)
		if err != nil {
			return nil, err
		}

		return &schema.List{OfType: elem}, nil

	case analyze.TypeKindBasic:
		if s, ok := ScalarFor(t.BasicName); ok {
			return s, nil
		}

	case analyze.TypeKindAlias:
		if t.Underlying != nil {
			return resolveNullable(t.Underlying, types)
		}

	case analyze.TypeKindStruct, analyze.TypeKindInterface:
		if t.IsNamed() {
			return types.Type(t.ID.Name)
		}
	}

	return nil, fmt.Errorf("%w %s (%s)", ErrUnsupportedType, t, t.Kind)
}

// CheckAnnotation reports whether t can be mapped to a GraphQL type without
// looking any names up.
func CheckAnnotation(t *analyze.TypeInfo) error {
	_, err := ResolveAnnotation(t, LookupFunc(func(name string) (schema.NamedType, error) {
		return &schema.Scalar{Name: name}, nil
	}))

	return err
}

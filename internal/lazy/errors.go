package lazy

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvableType is returned when no GraphQL type can be determined.
	ErrUnresolvableType = errors.New("cannot resolve GraphQL type")
	// ErrUnsupportedType is returned for Go types with no GraphQL mapping
	// (maps, channels, functions, opaque external types). It wraps
	// ErrUnresolvableType.
	ErrUnsupportedType = fmt.Errorf("%w: unsupported Go type", ErrUnresolvableType)
	// ErrMalformedType is returned for syntactically invalid type expressions.
	ErrMalformedType = errors.New("malformed type expression")
)

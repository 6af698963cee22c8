package resolve

import (
	"fmt"

	"gqlmeta/internal/attribute"
	"gqlmeta/internal/lazy"
)

// Errors surfaced by resolution. They are re-exported so callers only need
// this package to classify failures with errors.Is.
var (
	ErrUnresolvableType   = lazy.ErrUnresolvableType
	ErrUnsupportedType    = lazy.ErrUnsupportedType
	ErrMalformedType      = lazy.ErrMalformedType
	ErrMalformedAttribute = attribute.ErrMalformedAttribute
)

// ElementError attaches the identity of the element being resolved to an
// error.
type ElementError struct {
	Element  string
	Position string
	Err      error
}

func (e *ElementError) Error() string {
	if e.Position != "" {
		return fmt.Sprintf("%s (%s): %v", e.Element, e.Position, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Element, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

func (d *Draft) fail(err error) error {
	return &ElementError{
		Element:  d.Element.QualifiedName(),
		Position: d.Element.Position(),
		Err:      err,
	}
}

func (d *Draft) failf(sentinel error, format string, args ...any) error {
	return d.fail(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}

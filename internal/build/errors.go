package build

import (
	"errors"

	"gqlmeta/internal/diagnostic"
	"gqlmeta/internal/registry"
	"gqlmeta/internal/resolve"
)

var (
	// ErrTypeNotFound is returned when no Go type has the requested name.
	ErrTypeNotFound = errors.New("type not found")
	// ErrAmbiguousType is returned when several Go types share a name.
	ErrAmbiguousType = errors.New("ambiguous type name")
	// ErrDuplicateName is returned when two members of a type share a name.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrNotInputType is returned when an argument or input field refers to
	// an output type.
	ErrNotInputType = errors.New("not an input type")
)

// NotFoundError carries "did you mean" suggestions for an unknown type name.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return "type \"" + e.Name + "\" not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrTypeNotFound
}

// classify maps an error to a diagnostic code.
func classify(err error) string {
	switch {
	case errors.Is(err, resolve.ErrMalformedAttribute):
		return diagnostic.CodeMalformedAttribute
	case errors.Is(err, resolve.ErrMalformedType):
		return diagnostic.CodeMalformedType
	case errors.Is(err, resolve.ErrUnsupportedType):
		return diagnostic.CodeUnsupportedType
	case errors.Is(err, resolve.ErrUnresolvableType):
		return diagnostic.CodeUnresolvableType
	case errors.Is(err, registry.ErrCyclicBuild):
		return diagnostic.CodeCyclicBuild
	case errors.Is(err, ErrTypeNotFound):
		return diagnostic.CodeTypeNotFound
	case errors.Is(err, ErrAmbiguousType):
		return diagnostic.CodeAmbiguousType
	case errors.Is(err, ErrDuplicateName):
		return diagnostic.CodeDuplicateName
	case errors.Is(err, ErrNotInputType):
		return diagnostic.CodeNotInputType
	default:
		return diagnostic.CodeBuildFailed
	}
}

// leaves flattens joined element failures. Errors that carry no element
// failure are returned whole.
func leaves(err error) []error {
	if err == nil {
		return nil
	}

	var elemErr *resolve.ElementError
	if !errors.As(err, &elemErr) {
		return []error{err}
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		switch t := e.(type) {
		case *resolve.ElementError:
			return []error{t}
		case interface{ Unwrap() []error }:
			var out []error
			for _, inner := range t.Unwrap() {
				out = append(out, leaves(inner)...)
			}

			return out
		}
	}

	return []error{err}
}

// diagnose turns one failure into a diagnostic.
func diagnose(typeName string, err error) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     classify(err),
		Message:  err.Error(),
		Type:     typeName,
	}

	var elemErr *resolve.ElementError
	if errors.As(err, &elemErr) {
		d.Element = elemErr.Element
		d.Message = elemErr.Err.Error()
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		d.Suggestions = notFound.Suggestions
	}

	return d
}

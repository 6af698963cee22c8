package lazy

import (
	"fmt"
	"sync"
	"sync/atomic"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/schema"
)

// Lookup returns the canonical named type for a GraphQL type name.
type Lookup interface {
	Type(name string) (schema.NamedType, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(name string) (schema.NamedType, error)

// Type calls f(name).
func (f LookupFunc) Type(name string) (schema.NamedType, error) {
	return f(name)
}

type source int

const (
	sourceName source = iota
	sourceAnnotation
	sourceParam
)

// Ref is a deferred, memoized type reference. It is resolved at most once;
// later calls return the same type (or the same error).
type Ref struct {
	src        source
	expr       string
	annotation *analyze.TypeInfo
	param      *analyze.Param
	types      Lookup

	once     sync.Once
	resolved atomic.Bool
	typ      schema.Type
	err      error
}

// ByName creates a reference from a type expression such as "[Book!]!".
func ByName(expr string, types Lookup) *Ref {
	return &Ref{src: sourceName, expr: expr, types: types}
}

// ByAnnotation creates a reference from a structural Go type.
func ByAnnotation(t *analyze.TypeInfo, types Lookup) *Ref {
	return &Ref{src: sourceAnnotation, annotation: t, types: types}
}

// ByParam creates a reference from a parameter's declared type.
func ByParam(p *analyze.Param, types Lookup) *Ref {
	return &Ref{src: sourceParam, param: p, types: types}
}

// Resolve forces the reference.
func (r *Ref) Resolve() (schema.Type, error) {
	r.once.Do(func() {
		r.typ, r.err = r.force()
		r.resolved.Store(true)
	})

	return r.typ, r.err
}

// IsResolved reports whether Resolve has completed.
func (r *Ref) IsResolved() bool {
	return r.resolved.Load()
}

// String describes the reference without forcing it.
func (r *Ref) String() string {
	switch r.src {
	case sourceName:
		return r.expr
	case sourceAnnotation:
		if r.annotation == nil {
			return "<untyped>"
		}

		return "go:" + r.annotation.String()
	case sourceParam:
		if r.param == nil {
			return "<nil param>"
		}

		return "param:" + r.param.String()
	default:
		return "<invalid ref>"
	}
}

func (r *Ref) force() (schema.Type, error) {
	if r.types == nil {
		return nil, fmt.Errorf("%w: no type lookup for %s", ErrUnresolvableType, r)
	}

	switch r.src {
	case sourceName:
		return resolveExpr(r.expr, r.types)

	case sourceAnnotation:
		return ResolveAnnotation(r.annotation, r.types)

	case sourceParam:
		if r.param == nil || r.param.Type == nil {
			return nil, fmt.Errorf("%w: parameter %s declares no type", ErrUnresolvableType, r.paramName())
		}

		return ResolveAnnotation(r.param.Type, r.types)

	default:
		return nil, fmt.Errorf("%w: invalid reference source", ErrUnresolvableType)
	}
}

func (r *Ref) paramName() string {
	if r.param == nil {
		return "<nil>"
	}

	return r.param.QualifiedName()
}

// resolveExpr strips the wrappers off a type expression, looks up the bare
// name and re-applies the wrappers.
func resolveExpr(s string, types Lookup) (schema.Type, error) {
	expr, err := ParseTypeExpr(s)
	if err != nil {
		return nil, err
	}

	named, err := types.Type(CanonicalName(expr.Name))
	if err != nil {
		return nil, err
	}

	return expr.Wrap(named), nil
}

// Package attribute reads declarative metadata attached to program elements.
//
// In Go source, declarations are written as gql: directive comments:
//
//	//gql:field name=title type=String! description="Book title"
//	func (f *BookFilter) SetTitle(title string) { ... }
//
//	//gql:arg limit type=Int default=20
//	func (q *Query) Books(limit int) []*Book { ... }
//
// Struct fields may also use a tag:
//
//	Author *string `gql:"author,deprecated=use authorId"`
//
// Values are decoded as YAML scalars, so default=10 is an int, default=true
// a bool and default=null an explicit null default.
package attribute

import (
	"errors"
	"fmt"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/descriptor"
)

// ErrMalformedAttribute is returned for attribute records that cannot be
// parsed or whose fields are inconsistent.
var ErrMalformedAttribute = errors.New("malformed attribute")

// Attribute is one parsed declarative record. Nil pointer fields were not
// given.
type Attribute struct {
	Name              *string
	Type              *string
	Mode              *descriptor.TypeMode
	Description       *string
	DeprecationReason *string
	Default           descriptor.Default
	// Source is the raw directive or tag the record was read from.
	Source string
}

// TypeMode returns the declared mode, or ModePlain when none was given.
func (a *Attribute) TypeMode() descriptor.TypeMode {
	if a.Mode == nil {
		return descriptor.ModePlain
	}

	return *a.Mode
}

// Reader returns the first attribute attached to an element, or nil when
// there is none.
type Reader interface {
	FirstMetadataFor(el analyze.Element) (*Attribute, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(el analyze.Element) (*Attribute, error)

// FirstMetadataFor calls f(el).
func (f ReaderFunc) FirstMetadataFor(el analyze.Element) (*Attribute, error) {
	return f(el)
}

// None is a Reader that never finds attributes.
var None Reader = ReaderFunc(func(analyze.Element) (*Attribute, error) { return nil, nil })

func malformed(source string, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrMalformedAttribute, source, fmt.Sprintf(format, args...))
}

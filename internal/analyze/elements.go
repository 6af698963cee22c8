package analyze

import (
	"fmt"
	"strings"

	"gqlmeta/internal/descriptor"
)

// Element is a reflected program element the resolution pipeline can turn
// into a descriptor: a method, a method parameter or a struct field.
type Element interface {
	// Ident is the element's own identifier as written in source.
	Ident() string
	// QualifiedName identifies the element in errors (e.g., "library.BookFilter.SetTitle").
	QualifiedName() string
	// Doc is the prose of the element's documentation comment.
	Doc() string
	// Directives are the gql: directive lines attached to the element.
	Directives() []string
	// Position is a file:line location, or a manifest reference.
	Position() string
}

// Method is a method declared on a named type.
type Method struct {
	Owner  TypeID
	Name   string
	Params []*Param
	// Results are the method's result types.
	Results []*TypeInfo

	Documentation  string
	DirectiveLines []string
	Pos            string
}

func (m *Method) Ident() string         { return m.Name }
func (m *Method) QualifiedName() string { return m.Owner.Short() + "." + m.Name }
func (m *Method) Doc() string           { return m.Documentation }
func (m *Method) Directives() []string  { return m.DirectiveLines }
func (m *Method) Position() string      { return m.Pos }

// Param returns the parameter with the given name, or nil.
func (m *Method) Param(name string) *Param {
	for _, p := range m.Params {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// Signature returns a Go-like rendering of the parameter list.
func (m *Method) Signature() string {
	parts := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		parts = append(parts, p.String())
	}

	return m.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Param is a method parameter. Parameters have no comments of their own;
// their documentation and directives are read from the owning method.
type Param struct {
	Method *Method
	Name   string
	Index  int
	// Type is nil when the signature does not declare one (manifest only).
	Type *TypeInfo
	// Default is the structural default declared by the signature.
	Default descriptor.Default
}

func (p *Param) Ident() string { return p.Name }

func (p *Param) QualifiedName() string {
	if p.Method == nil {
		return p.Name
	}

	return p.Method.QualifiedName() + "(" + p.Name + ")"
}

func (p *Param) Doc() string {
	if p.Method == nil {
		return ""
	}

	return p.Method.Documentation
}

func (p *Param) Directives() []string {
	if p.Method == nil {
		return nil
	}

	return p.Method.DirectiveLines
}

func (p *Param) Position() string {
	if p.Method == nil {
		return ""
	}

	return p.Method.Pos
}

// String renders the parameter as "name type = default".
func (p *Param) String() string {
	s := p.Name
	if p.Type != nil {
		s += " " + p.Type.String()
	}

	if p.Default.IsSet() {
		s += " = " + p.Default.String()
	}

	return s
}

func (f *FieldInfo) Ident() string         { return f.Name }
func (f *FieldInfo) QualifiedName() string { return f.Owner.Short() + "." + f.Name }
func (f *FieldInfo) Doc() string           { return f.Documentation }
func (f *FieldInfo) Directives() []string  { return f.DirectiveLines }
func (f *FieldInfo) Position() string      { return f.Pos }

// Describe renders an element for log and error messages.
func Describe(el Element) string {
	if el == nil {
		return "<nil element>"
	}

	if pos := el.Position(); pos != "" {
		return fmt.Sprintf("%s (%s)", el.QualifiedName(), pos)
	}

	return el.QualifiedName()
}

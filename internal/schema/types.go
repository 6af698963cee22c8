package schema

import (
	"fmt"
	"sync"
)

// Type is any GraphQL type: a named type or a List/NonNull wrapper.
type Type interface {
	String() string
}

// NamedType is a type with a schema-wide unique name.
type NamedType interface {
	Type
	TypeName() string
	Describe() string
}

// TypeRef defers the resolution of a Type until it is first needed.
type TypeRef interface {
	Resolve() (Type, error)
	String() string
}

// List wraps a type in list brackets.
type List struct {
	OfType Type
}

func (l *List) String() string { return "[" + l.OfType.String() + "]" }

// NonNull marks a type as required.
type NonNull struct {
	OfType Type
}

func (n *NonNull) String() string { return n.OfType.String() + "!" }

// Unwrap strips List and NonNull wrappers and returns the named type underneath.
func Unwrap(t Type) NamedType {
	for {
		switch tt := t.(type) {
		case *List:
			t = tt.OfType
		case *NonNull:
			t = tt.OfType
		case NamedType:
			return tt
		default:
			return nil
		}
	}
}

// IsInputType reports whether t may be used for arguments and input fields.
func IsInputType(t Type) bool {
	switch Unwrap(t).(type) {
	case *Scalar, *InputObject:
		return true
	default:
		return false
	}
}

// Scalar is a leaf type.
type Scalar struct {
	Name        string
	Description string
}

func (s *Scalar) String() string   { return s.Name }
func (s *Scalar) TypeName() string { return s.Name }
func (s *Scalar) Describe() string { return s.Description }

// Built-in scalars. They are shared so identity comparisons hold.
var (
	Int     = &Scalar{Name: "Int", Description: "The `Int` scalar type represents non-fractional signed whole numeric values."}
	Float   = &Scalar{Name: "Float", Description: "The `Float` scalar type represents signed double-precision fractional values."}
	String  = &Scalar{Name: "String", Description: "The `String` scalar type represents textual data."}
	Boolean = &Scalar{Name: "Boolean", Description: "The `Boolean` scalar type represents `true` or `false`."}
	ID      = &Scalar{Name: "ID", Description: "The `ID` scalar type represents a unique identifier."}
)

var builtins = map[string]*Scalar{
	Int.Name:     Int,
	Float.Name:   Float,
	String.Name:  String,
	Boolean.Name: Boolean,
	ID.Name:      ID,
}

// Builtin returns the built-in scalar with the given name.
func Builtin(name string) (*Scalar, bool) {
	s, ok := builtins[name]
	return s, ok
}

// IsBuiltin reports whether name is one of the five built-in scalars.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// FieldsThunk produces the fields of a composite type on first use.
type FieldsThunk[T any] func() ([]T, error)

// thunkCache memoizes a FieldsThunk.
type thunkCache[T any] struct {
	once   sync.Once
	thunk  FieldsThunk[T]
	fields []T
	err    error
}

func (c *thunkCache[T]) get() ([]T, error) {
	c.once.Do(func() {
		if c.thunk == nil {
			return
		}
		c.fields, c.err = c.thunk()
	})

	return c.fields, c.err
}

// InputObject is a named input type. Its fields are computed lazily so that
// input objects may refer to themselves.
type InputObject struct {
	Name        string
	Description string

	fields thunkCache[*InputField]
}

// NewInputObject creates an input object whose fields are produced by thunk.
func NewInputObject(name, description string, thunk FieldsThunk[*InputField]) *InputObject {
	return &InputObject{
		Name:        name,
		Description: description,
		fields:      thunkCache[*InputField]{thunk: thunk},
	}
}

func (o *InputObject) String() string   { return o.Name }
func (o *InputObject) TypeName() string { return o.Name }
func (o *InputObject) Describe() string { return o.Description }

// Fields returns the input fields, computing them on first call.
func (o *InputObject) Fields() ([]*InputField, error) {
	fields, err := o.fields.get()
	if err != nil {
		return nil, fmt.Errorf("input object %s: %w", o.Name, err)
	}

	return fields, nil
}

// Object is a named output type.
type Object struct {
	Name        string
	Description string

	fields thunkCache[*Field]
}

// NewObject creates an object whose fields are produced by thunk.
func NewObject(name, description string, thunk FieldsThunk[*Field]) *Object {
	return &Object{
		Name:        name,
		Description: description,
		fields:      thunkCache[*Field]{thunk: thunk},
	}
}

func (o *Object) String() string   { return o.Name }
func (o *Object) TypeName() string { return o.Name }
func (o *Object) Describe() string { return o.Description }

// Fields returns the object fields, computing them on first call.
func (o *Object) Fields() ([]*Field, error) {
	fields, err := o.fields.get()
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", o.Name, err)
	}

	return fields, nil
}

// Static is a TypeRef that is already resolved.
type Static struct {
	T Type
}

func (s Static) Resolve() (Type, error) { return s.T, nil }
func (s Static) String() string         { return s.T.String() }

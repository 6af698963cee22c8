package schema

// InputValueOption configures an InputValue at construction.
type InputValueOption func(*InputValue)

// WithDescription sets the description.
func WithDescription(desc string) InputValueOption {
	return func(v *InputValue) { v.Description = desc }
}

// WithDeprecationReason marks the value as deprecated.
func WithDeprecationReason(reason string) InputValueOption {
	return func(v *InputValue) { v.DeprecationReason = &reason }
}

// WithDefaultValue installs a default value. A nil value is a literal null
// default, which is not the same as having no default.
func WithDefaultValue(value any) InputValueOption {
	return func(v *InputValue) {
		v.defaultValue = value
		v.hasDefault = true
	}
}

// InputValue is the shared shape of arguments and input object fields.
type InputValue struct {
	Name              string
	Description       string
	DeprecationReason *string
	TypeRef           TypeRef

	defaultValue any
	hasDefault   bool
}

func newInputValue(name string, ref TypeRef, opts []InputValueOption) InputValue {
	v := InputValue{Name: name, TypeRef: ref}
	for _, opt := range opts {
		opt(&v)
	}

	return v
}

// Type resolves the value's type.
func (v *InputValue) Type() (Type, error) {
	return v.TypeRef.Resolve()
}

// DefaultValueExists reports whether a default was installed.
func (v *InputValue) DefaultValueExists() bool {
	return v.hasDefault
}

// DefaultValue returns the installed default. It is only meaningful when
// DefaultValueExists is true.
func (v *InputValue) DefaultValue() any {
	return v.defaultValue
}

// IsDeprecated reports whether a deprecation reason is present.
func (v *InputValue) IsDeprecated() bool {
	return v.DeprecationReason != nil
}

// Argument is a field argument.
type Argument struct {
	InputValue
}

// NewArgument creates an argument.
func NewArgument(name string, ref TypeRef, opts ...InputValueOption) *Argument {
	return &Argument{InputValue: newInputValue(name, ref, opts)}
}

// InputField is a field of an input object.
type InputField struct {
	InputValue
}

// NewInputField creates an input object field.
func NewInputField(name string, ref TypeRef, opts ...InputValueOption) *InputField {
	return &InputField{InputValue: newInputValue(name, ref, opts)}
}

// Field is a field of an output object.
type Field struct {
	Name              string
	Description       string
	DeprecationReason *string
	TypeRef           TypeRef
	Args              []*Argument
}

// Type resolves the field's type.
func (f *Field) Type() (Type, error) {
	return f.TypeRef.Resolve()
}

// IsDeprecated reports whether a deprecation reason is present.
func (f *Field) IsDeprecated() bool {
	return f.DeprecationReason != nil
}

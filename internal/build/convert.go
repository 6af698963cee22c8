package build

import (
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/schema"
)

// descriptorRef resolves a descriptor's type with its mode applied.
type descriptorRef struct {
	d *descriptor.Descriptor
}

func (r descriptorRef) Resolve() (schema.Type, error) {
	return r.d.ResolveType()
}

func (r descriptorRef) String() string {
	if r.d.Mode == descriptor.ModePlain {
		return r.d.Type.String()
	}

	return r.d.Type.String() + " (" + r.d.Mode.String() + ")"
}

func inputValueOptions(d *descriptor.Descriptor) []schema.InputValueOption {
	var opts []schema.InputValueOption

	if d.Description != nil {
		opts = append(opts, schema.WithDescription(*d.Description))
	}

	if d.DeprecationReason != nil {
		opts = append(opts, schema.WithDeprecationReason(*d.DeprecationReason))
	}

	if value, ok := d.Default.Get(); ok {
		opts = append(opts, schema.WithDefaultValue(value))
	}

	return opts
}

// NewArgument converts a descriptor to an argument. The default is installed
// only when the descriptor has one, so an unset default stays distinct from
// a null default.
func NewArgument(d *descriptor.Descriptor) *schema.Argument {
	return schema.NewArgument(d.Name, descriptorRef{d: d}, inputValueOptions(d)...)
}

// NewInputField converts a descriptor to an input object field.
func NewInputField(d *descriptor.Descriptor) *schema.InputField {
	return schema.NewInputField(d.Name, descriptorRef{d: d}, inputValueOptions(d)...)
}

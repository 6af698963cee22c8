package build

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/attribute"
	"gqlmeta/internal/common"
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/lazy"
	"gqlmeta/internal/resolve"
	"gqlmeta/internal/schema"
)

// objectFields returns the thunk producing an object's fields.
func (b *Builder) objectFields(info *analyze.TypeInfo) schema.FieldsThunk[*schema.Field] {
	return func() ([]*schema.Field, error) {
		var (
			fields []*schema.Field
			errs   []error
			seen   = make(map[string]string)
		)

		add := func(el analyze.Element, field *schema.Field, err error) {
			if err != nil {
				errs = append(errs, err)
				return
			}

			if prev, ok := seen[field.Name]; ok {
				errs = append(errs, elementError(el, fmt.Errorf("%w %q: also declared by %s", ErrDuplicateName, field.Name, prev)))
				return
			}
			seen[field.Name] = el.QualifiedName()

			b.logger.Debug("resolved field",
				zap.String("element", el.QualifiedName()),
				zap.String("field", field.Name),
				zap.Int("args", len(field.Args)))

			fields = append(fields, field)
		}

		for i := range info.Fields {
			if f := &info.Fields[i]; isTaggedField(f) {
				field, err := b.outputField(f, f.Type)
				add(f, field, err)
			}
		}

		for _, m := range info.Methods {
			if !hasDirective(m, attribute.DirectiveField) {
				continue
			}

			field, err := b.methodField(m)
			add(m, field, err)
		}

		if err := errors.Join(errs...); err != nil {
			return nil, err
		}

		return fields, nil
	}
}

// methodField builds a field from a method. Each parameter becomes an
// argument resolved by the pipeline.
func (b *Builder) methodField(m *analyze.Method) (*schema.Field, error) {
	field, err := b.outputField(m, resultType(m))
	if err != nil {
		return nil, err
	}

	var errs []error
	seen := make(map[string]bool, len(m.Params))

	for _, p := range m.Params {
		d, err := b.pipeline.Resolve(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if seen[d.Name] {
			errs = append(errs, elementError(p, fmt.Errorf("%w: argument %q", ErrDuplicateName, d.Name)))
			continue
		}
		seen[d.Name] = true

		field.Args = append(field.Args, NewArgument(d))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return field, nil
}

// outputField resolves the name, type, description and deprecation of an
// object field. Explicit attributes win over documentation, which wins over
// the Go declaration.
func (b *Builder) outputField(el analyze.Element, result *analyze.TypeInfo) (*schema.Field, error) {
	attr, err := b.attrs.FirstMetadataFor(el)
	if err != nil {
		return nil, elementError(el, err)
	}

	if attr == nil {
		attr = &attribute.Attribute{}
	}

	doc := b.docs.Describe(el)

	if err := resolve.CheckAttribute(attr); err != nil {
		return nil, elementError(el, err)
	}

	if attr.Default.IsSet() {
		return nil, elementError(el, fmt.Errorf("%w %q: output fields take no default", resolve.ErrMalformedAttribute, attr.Source))
	}

	field := &schema.Field{Name: common.LowerFirst(el.Ident())}
	if attr.Name != nil {
		field.Name = *attr.Name
	}

	ref, mode, err := resolve.AttributeType(attr, b.types)
	if err != nil {
		return nil, elementError(el, err)
	}

	switch {
	case ref != nil:
		field.TypeRef = modeRef{ref: ref, mode: mode}

	case result == nil:
		return nil, elementError(el, fmt.Errorf("%w: no result to expose", resolve.ErrUnresolvableType))

	default:
		if err := lazy.CheckAnnotation(result); err != nil {
			return nil, elementError(el, err)
		}

		field.TypeRef = lazy.ByAnnotation(result, b.types)
	}

	if desc := firstPresent(attr.Description, doc.Description); desc != nil {
		field.Description = *desc
	}

	field.DeprecationReason = firstPresent(attr.DeprecationReason, doc.DeprecationReason)

	return field, nil
}

// resultType returns the first result of m that is not an error.
func resultType(m *analyze.Method) *analyze.TypeInfo {
	for _, r := range m.Results {
		if r.Kind == analyze.TypeKindExternal && r.ID.PkgPath == "" && r.ID.Name == "error" {
			continue
		}

		return r
	}

	return nil
}

func firstPresent(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}

// modeRef applies a wrapping mode to a reference.
type modeRef struct {
	ref  schema.TypeRef
	mode descriptor.TypeMode
}

func (r modeRef) Resolve() (schema.Type, error) {
	t, err := r.ref.Resolve()
	if err != nil {
		return nil, err
	}

	return r.mode.Wrap(t), nil
}

func (r modeRef) String() string {
	if r.mode == descriptor.ModePlain {
		return r.ref.String()
	}

	return r.ref.String() + " (" + r.mode.String() + ")"
}

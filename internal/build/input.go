package build

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/attribute"
	"gqlmeta/internal/common"
	"gqlmeta/internal/resolve"
	"gqlmeta/internal/schema"
)

// inputFields returns the thunk producing an input object's fields. Every
// failing element is reported; the object has no fields unless all succeed.
func (b *Builder) inputFields(info *analyze.TypeInfo) schema.FieldsThunk[*schema.InputField] {
	return func() ([]*schema.InputField, error) {
		var (
			fields []*schema.InputField
			errs   []error
			seen   = make(map[string]string)
		)

		add := func(el analyze.Element) {
			d, err := b.pipeline.Resolve(el)
			if err != nil {
				errs = append(errs, err)
				return
			}

			if prev, ok := seen[d.Name]; ok {
				errs = append(errs, elementError(el, fmt.Errorf("%w %q: also declared by %s", ErrDuplicateName, d.Name, prev)))
				return
			}
			seen[d.Name] = el.QualifiedName()

			b.logger.Debug("resolved input field",
				zap.String("element", el.QualifiedName()),
				zap.Stringer("descriptor", d))

			fields = append(fields, NewInputField(d))
		}

		for i := range info.Fields {
			if f := &info.Fields[i]; isTaggedField(f) {
				add(f)
			}
		}

		for _, m := range info.Methods {
			if b.isSetter(m) {
				add(m)
			}
		}

		if err := errors.Join(errs...); err != nil {
			return nil, err
		}

		return fields, nil
	}
}

// isSetter reports whether a method feeds an input object: it carries a
// gql:field directive or its name starts with a mutator prefix.
func (b *Builder) isSetter(m *analyze.Method) bool {
	if hasDirective(m, attribute.DirectiveField) {
		return true
	}

	return resolve.MutatorName(m.Name, b.prefixes) != common.LowerFirst(m.Name)
}

// isTaggedField reports whether a struct field opted into the schema.
func isTaggedField(f *analyze.FieldInfo) bool {
	if !f.Exported || f.Embedded {
		return false
	}

	if hasDirective(f, attribute.DirectiveField) {
		return true
	}

	tag, ok := f.Tag.Lookup(attribute.TagKey)

	return ok && tag != "-"
}

func hasDirective(el analyze.Element, name string) bool {
	for _, line := range el.Directives() {
		directive, _, _ := strings.Cut(strings.TrimPrefix(line, analyze.DirectivePrefix), " ")
		if directive == name {
			return true
		}
	}

	return false
}

func elementError(el analyze.Element, err error) error {
	return &resolve.ElementError{Element: el.QualifiedName(), Position: el.Position(), Err: err}
}

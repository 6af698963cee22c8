package resolve

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/common"
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/lazy"
)

// StructuralStrategy completes a draft from the element's signature. It is
// terminal and never calls next.
type StructuralStrategy struct {
	types    lazy.Lookup
	prefixes []string
}

// NewStructuralStrategy creates a StructuralStrategy that strips prefixes
// from method names.
func NewStructuralStrategy(types lazy.Lookup, prefixes ...string) *StructuralStrategy {
	return &StructuralStrategy{
		types:    types,
		prefixes: append([]string(nil), prefixes...),
	}
}

// Process fills every remaining slot from the structural signature and
// builds the descriptor.
func (s *StructuralStrategy) Process(d *Draft, _ Resolver) (*descriptor.Descriptor, error) {
	switch el := d.Element.(type) {
	case *analyze.Method:
		if !common.IsSingle(el.Params) {
			return nil, d.failf(ErrUnresolvableType,
				"method must accept exactly one parameter, %s accepts %d", el.Signature(), len(el.Params))
		}

		param := el.Params[0]
		d.FillName(MutatorName(el.Name, s.prefixes))
		if err := s.fillParamType(d, param); err != nil {
			return nil, err
		}
		d.FillDefault(param.Default, SourceStructural)

	case *analyze.Param:
		d.FillName(el.Name)
		if err := s.fillParamType(d, el); err != nil {
			return nil, err
		}
		d.FillDefault(el.Default, SourceStructural)

	case *analyze.FieldInfo:
		d.FillName(common.LowerFirst(el.Name))
		if !d.HasType() {
			if err := lazy.CheckAnnotation(el.Type); err != nil {
				return nil, d.fail(err)
			}
			d.FillType(lazy.ByAnnotation(el.Type, s.types), descriptor.ModePlain, SourceStructural)
		}

	default:
		return nil, d.failf(ErrUnresolvableType, "unsupported element %T", d.Element)
	}

	return d.Descriptor()
}

func (s *StructuralStrategy) fillParamType(d *Draft, p *analyze.Param) error {
	if d.HasType() {
		return nil
	}

	if p.Type == nil {
		return d.failf(ErrUnresolvableType, "parameter %q declares no type", p.Name)
	}

	if err := lazy.CheckAnnotation(p.Type); err != nil {
		return d.fail(fmt.Errorf("parameter %q: %w", p.Name, err))
	}

	d.FillType(lazy.ByParam(p, s.types), descriptor.ModePlain, SourceStructural)

	return nil
}

// MutatorName derives a field name from a method name: the first matching
// prefix is stripped (case-insensitively, and only when a capitalized word
// follows) and the first rune is lower-cased.
//
//	SetTitle -> title
//	IsActive -> isActive
//	Settle   -> settle
//	Set_     -> set_
func MutatorName(method string, prefixes []string) string {
	for _, prefix := range prefixes {
		if len(method) <= len(prefix) || !strings.EqualFold(method[:len(prefix)], prefix) {
			continue
		}

		rest := method[len(prefix):]
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) || r == '_' {
			if name := strings.TrimLeft(rest, "_"); name != "" {
				return common.LowerFirst(name)
			}
		}
	}

	return common.LowerFirst(method)
}

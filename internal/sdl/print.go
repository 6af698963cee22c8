// Package sdl renders built types as GraphQL schema definition language and
// validates the result with graphql-go.
package sdl

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gqlmeta/internal/schema"
)

// Option configures printing.
type Option func(*printer)

// WithQuery names the query root type. A schema block is printed when the
// name is not "Query".
func WithQuery(name string) Option {
	return func(p *printer) { p.query = name }
}

// WithMutation names the mutation root type.
func WithMutation(name string) Option {
	return func(p *printer) { p.mutation = name }
}

// WithoutInputDeprecations omits @deprecated on arguments and input fields.
func WithoutInputDeprecations() Option {
	return func(p *printer) { p.inputDeprecations = false }
}

type printer struct {
	b                 strings.Builder
	query             string
	mutation          string
	inputDeprecations bool
}

// Print renders types in name order. Builtin scalars are skipped.
func Print(types []schema.NamedType, opts ...Option) (string, error) {
	p := &printer{inputDeprecations: true}
	for _, opt := range opts {
		opt(p)
	}

	sorted := append([]schema.NamedType(nil), types...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TypeName() < sorted[j].TypeName() })

	p.schemaBlock()

	first := p.b.Len() == 0
	for _, t := range sorted {
		if s, ok := t.(*schema.Scalar); ok && schema.IsBuiltin(s.Name) {
			continue
		}

		if !first {
			p.b.WriteString("\n")
		}
		first = false

		if err := p.namedType(t); err != nil {
			return "", err
		}
	}

	return p.b.String(), nil
}

func (p *printer) schemaBlock() {
	if (p.query == "" || p.query == "Query") && (p.mutation == "" || p.mutation == "Mutation") {
		return
	}

	p.b.WriteString("schema {\n")
	if p.query != "" {
		fmt.Fprintf(&p.b, "  query: %s\n", p.query)
	}
	if p.mutation != "" {
		fmt.Fprintf(&p.b, "  mutation: %s\n", p.mutation)
	}
	p.b.WriteString("}\n")
}

func (p *printer) namedType(t schema.NamedType) error {
	p.description("", t.Describe())

	switch tt := t.(type) {
	case *schema.Scalar:
		fmt.Fprintf(&p.b, "scalar %s\n", tt.Name)

	case *schema.InputObject:
		fields, err := tt.Fields()
		if err != nil {
			return err
		}

		fmt.Fprintf(&p.b, "input %s {\n", tt.Name)
		for _, f := range fields {
			if err := p.inputValue("  ", &f.InputValue); err != nil {
				return fmt.Errorf("%s.%s: %w", tt.Name, f.Name, err)
			}
			p.b.WriteString("\n")
		}
		p.b.WriteString("}\n")

	case *schema.Object:
		fields, err := tt.Fields()
		if err != nil {
			return err
		}

		fmt.Fprintf(&p.b, "type %s {\n", tt.Name)
		for _, f := range fields {
			if err := p.field(f); err != nil {
				return fmt.Errorf("%s.%s: %w", tt.Name, f.Name, err)
			}
		}
		p.b.WriteString("}\n")

	default:
		return fmt.Errorf("cannot print type %s (%T)", t.TypeName(), t)
	}

	return nil
}

func (p *printer) field(f *schema.Field) error {
	p.description("  ", f.Description)

	t, err := f.Type()
	if err != nil {
		return err
	}

	fmt.Fprintf(&p.b, "  %s", f.Name)

	if len(f.Args) > 0 {
		p.b.WriteString("(")
		for i, arg := range f.Args {
			if i > 0 {
				p.b.WriteString(", ")
			}

			if err := p.argument(&arg.InputValue); err != nil {
				return fmt.Errorf("argument %s: %w", arg.Name, err)
			}
		}
		p.b.WriteString(")")
	}

	fmt.Fprintf(&p.b, ": %s", t)
	p.deprecated(f.DeprecationReason)
	p.b.WriteString("\n")

	return nil
}

// argument prints an argument inline; descriptions go in a leading string.
func (p *printer) argument(v *schema.InputValue) error {
	if v.Description != "" {
		p.b.WriteString(quote(v.Description) + " ")
	}

	return p.value(v)
}

func (p *printer) inputValue(indent string, v *schema.InputValue) error {
	p.description(indent, v.Description)
	p.b.WriteString(indent)

	return p.value(v)
}

func (p *printer) value(v *schema.InputValue) error {
	t, err := v.Type()
	if err != nil {
		return err
	}

	fmt.Fprintf(&p.b, "%s: %s", v.Name, t)

	if v.DefaultValueExists() {
		literal, err := Literal(v.DefaultValue())
		if err != nil {
			return err
		}
		p.b.WriteString(" = " + literal)
	}

	if p.inputDeprecations {
		p.deprecated(v.DeprecationReason)
	}

	return nil
}

func (p *printer) deprecated(reason *string) {
	if reason == nil {
		return
	}

	p.b.WriteString(" @deprecated(reason: " + quote(*reason) + ")")
}

func (p *printer) description(indent, desc string) {
	if desc == "" {
		return
	}

	if !strings.Contains(desc, "\n") {
		p.b.WriteString(indent + quote(desc) + "\n")
		return
	}

	p.b.WriteString(indent + `"""` + "\n")
	for _, line := range strings.Split(desc, "\n") {
		if line == "" {
			p.b.WriteString("\n")
			continue
		}
		p.b.WriteString(indent + strings.ReplaceAll(line, `"""`, `\"""`) + "\n")
	}
	p.b.WriteString(indent + `"""` + "\n")
}

// quote renders s as a GraphQL string literal.
func quote(s string) string {
	var b strings.Builder

	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')

	return b.String()
}

// Literal renders a default value as a GraphQL value literal. Nil is null.
func Literal(v any) (string, error) {
	switch vv := v.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(vv), nil
	case string:
		return quote(vv), nil
	case int:
		return strconv.Itoa(vv), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", vv), nil
	case float32:
		return formatFloat(float64(vv))
	case float64:
		return formatFloat(vv)
	case []any:
		parts := make([]string, 0, len(vv))
		for _, item := range vv {
			s, err := Literal(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}

		return "[" + strings.Join(parts, ", ") + "]", nil
	case map[string]any:
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			s, err := Literal(vv[k])
			if err != nil {
				return "", err
			}
			parts = append(parts, k+": "+s)
		}

		return "{" + strings.Join(parts, ", ") + "}", nil
	default:
		return "", fmt.Errorf("unsupported default value %v (%T)", v, v)
	}
}

func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("unsupported default value %v", f)
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s, nil
}

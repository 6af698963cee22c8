package lazy

import (
	"fmt"
	"regexp"
	"strings"

	"gqlmeta/internal/schema"
)

// Wrapper is a List or NonNull marker in a type expression.
type Wrapper int

const (
	WrapList Wrapper = iota
	WrapNonNull
)

var typeNameRE = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// TypeExpr is a parsed type expression: a bare name plus its wrappers,
// innermost first.
type TypeExpr struct {
	Name     string
	Wrappers []Wrapper
}

// ParseTypeExpr parses GraphQL type syntax such as "Int", "[Book!]" or
// "[[ID]!]!".
func ParseTypeExpr(s string) (TypeExpr, error) {
	expr, err := parseTypeExpr(strings.TrimSpace(s))
	if err != nil {
		return TypeExpr{}, fmt.Errorf("%w %q: %w", ErrMalformedType, s, err)
	}

	return expr, nil
}

func parseTypeExpr(s string) (TypeExpr, error) {
	nonNull := strings.HasSuffix(s, "!")
	if nonNull {
		s = strings.TrimSpace(strings.TrimSuffix(s, "!"))
	}

	var expr TypeExpr

	switch {
	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") {
			return TypeExpr{}, fmt.Errorf("unbalanced brackets in %q", s)
		}

		inner, err := parseTypeExpr(strings.TrimSpace(s[1 : len(s)-1]))
		if err != nil {
			return TypeExpr{}, err
		}

		expr = inner
		expr.Wrappers = append(expr.Wrappers, WrapList)

	case typeNameRE.MatchString(s):
		expr.Name = s

	case s == "":
		return TypeExpr{}, fmt.Errorf("empty type name")

	default:
		return TypeExpr{}, fmt.Errorf("invalid type name %q", s)
	}

	if nonNull {
		expr.Wrappers = append(expr.Wrappers, WrapNonNull)
	}

	return expr, nil
}

// IsWrapped reports whether the expression carries any List/NonNull markers.
func (e TypeExpr) IsWrapped() bool {
	return len(e.Wrappers) > 0
}

// Wrap re-applies the wrappers to t in the order they appeared, innermost first.
func (e TypeExpr) Wrap(t schema.Type) schema.Type {
	for _, w := range e.Wrappers {
		switch w {
		case WrapList:
			t = &schema.List{OfType: t}
		case WrapNonNull:
			t = &schema.NonNull{OfType: t}
		}
	}

	return t
}

// String renders the expression back in GraphQL syntax.
func (e TypeExpr) String() string {
	s := e.Name
	for _, w := range e.Wrappers {
		switch w {
		case WrapList:
			s = "[" + s + "]"
		case WrapNonNull:
			s += "!"
		}
	}

	return s
}

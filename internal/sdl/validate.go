package sdl

import (
	"fmt"
	"regexp"

	graphql "github.com/graph-gophers/graphql-go"

	"gqlmeta/internal/schema"
)

// placeholderQuery lets documents without a query root be validated.
const placeholderQuery = "\ntype Query {\n  _placeholder: Boolean\n}\n"

var queryRootRE = regexp.MustCompile(`(?m)^\s*(type\s+Query\b|schema\s*\{)`)

// Validate parses doc with graphql-go, which checks type references,
// input/output positions and default values.
func Validate(doc string) error {
	if !queryRootRE.MatchString(doc) {
		doc += placeholderQuery
	}

	if _, err := graphql.ParseSchema(doc, nil); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	return nil
}

// Check prints types in the form graphql-go accepts and validates them.
// graphql-go only allows @deprecated on fields and enum values, so input
// deprecations are left out of the checked document.
func Check(types []schema.NamedType, opts ...Option) error {
	doc, err := Print(types, append(opts, WithoutInputDeprecations())...)
	if err != nil {
		return err
	}

	return Validate(doc)
}

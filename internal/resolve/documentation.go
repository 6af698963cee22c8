package resolve

import (
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/docs"
	"gqlmeta/internal/lazy"
)

// DocumentationStrategy applies what the element's doc comment states.
type DocumentationStrategy struct {
	parser docs.Parser
	types  lazy.Lookup
}

// NewDocumentationStrategy creates a DocumentationStrategy.
func NewDocumentationStrategy(parser docs.Parser, types lazy.Lookup) *DocumentationStrategy {
	return &DocumentationStrategy{parser: parser, types: types}
}

// Process fills description, deprecation and the declared parameter type,
// then continues.
func (s *DocumentationStrategy) Process(d *Draft, next Resolver) (*descriptor.Descriptor, error) {
	doc := s.parser.Describe(d.Element)

	d.FillDescription(doc.Description)
	d.FillDeprecation(doc.DeprecationReason)

	if doc.DeclaredParamType != nil && !d.HasType() {
		expr, err := lazy.ParseTypeExpr(*doc.DeclaredParamType)
		if err != nil {
			return nil, d.fail(err)
		}

		d.FillType(lazy.ByName(expr.String(), s.types), descriptor.ModePlain, SourceDocumentation)
	}

	return next.Resolve(d)
}

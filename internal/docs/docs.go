// Package docs extracts descriptions, deprecation notices and declared
// parameter types from documentation comments.
//
// The prose before any tag line is the description. A paragraph starting
// with "Deprecated:" marks the element deprecated, following the Go
// convention. Tag lines start with "@":
//
//	@param Int limit
//	@param [String!] tags
package docs

import (
	"strings"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/common"
)

const deprecatedPrefix = "Deprecated:"

// Doc is the parsed documentation of one element. Nil fields are absent.
type Doc struct {
	Description       *string
	DeprecationReason *string
	// DeclaredParamType is the type named by the @param tag that applies to
	// the element: the single parameter of a method, or the parameter itself.
	DeclaredParamType *string
}

// Parser describes elements.
type Parser interface {
	Describe(el analyze.Element) Doc
}

// CommentParser parses Go doc comments.
type CommentParser struct{}

// NewCommentParser creates a CommentParser.
func NewCommentParser() *CommentParser {
	return &CommentParser{}
}

// Describe parses the element's documentation. For parameters only the
// @param type is taken from the owning method's comment; the method
// description does not describe its parameters.
func (p *CommentParser) Describe(el analyze.Element) Doc {
	parsed := Parse(el.Doc())

	switch e := el.(type) {
	case *analyze.Param:
		return Doc{DeclaredParamType: parsed.paramType(e.Name)}

	case *analyze.Method:
		doc := parsed.doc()
		if common.IsSingle(e.Params) {
			doc.DeclaredParamType = parsed.paramType(e.Params[0].Name)
		}

		return doc

	default:
		return parsed.doc()
	}
}

// Parsed is the raw result of parsing one comment.
type Parsed struct {
	Description string
	Deprecation string
	deprecated  bool
	// Params maps parameter names to declared type expressions, in the order
	// the tags appeared.
	Params []ParamTag
}

// ParamTag is one "@param <Type> <name>" line.
type ParamTag struct {
	Type string
	Name string
}

func (p Parsed) doc() Doc {
	var d Doc
	if p.Description != "" {
		d.Description = common.Ptr(p.Description)
	}

	if p.deprecated {
		d.DeprecationReason = common.Ptr(p.Deprecation)
	}

	return d
}

func (p Parsed) paramType(name string) *string {
	for _, tag := range p.Params {
		if tag.Name == name {
			return common.Ptr(tag.Type)
		}
	}

	return nil
}

// Parse splits a comment into description, deprecation and tags.
func Parse(text string) Parsed {
	var (
		parsed      Parsed
		description []string
		deprecation []string
		inDeprecate bool
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, analyze.DirectivePrefix):
			continue

		case strings.HasPrefix(line, "@"):
			inDeprecate = false
			if tag, ok := parseParamTag(line); ok {
				parsed.Params = append(parsed.Params, tag)
			}

		case strings.HasPrefix(line, deprecatedPrefix):
			inDeprecate = true
			parsed.deprecated = true
			deprecation = append(deprecation, strings.TrimSpace(strings.TrimPrefix(line, deprecatedPrefix)))

		case line == "":
			inDeprecate = false
			description = append(description, "")

		case inDeprecate:
			deprecation = append(deprecation, line)

		default:
			description = append(description, line)
		}
	}

	parsed.Description = strings.TrimSpace(joinParagraphs(description))
	parsed.Deprecation = strings.TrimSpace(strings.Join(deprecation, " "))

	return parsed
}

// parseParamTag parses "@param <Type> <name>". The name may carry a leading
// "$" for compatibility with docblock-style comments.
func parseParamTag(line string) (ParamTag, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "@param" {
		return ParamTag{}, false
	}

	return ParamTag{
		Type: fields[1],
		Name: strings.TrimPrefix(fields[2], "$"),
	}, true
}

// joinParagraphs joins lines with spaces and paragraphs with blank lines.
func joinParagraphs(lines []string) string {
	var (
		paragraphs []string
		current    []string
	)

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range lines {
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return strings.Join(paragraphs, "\n\n")
}

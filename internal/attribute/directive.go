package attribute

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/descriptor"
)

// Directive names.
const (
	DirectiveField = "field"
	DirectiveArg   = "arg"
	TagKey         = "gql"
)

// DirectiveReader reads gql: directive comments and gql struct tags.
type DirectiveReader struct{}

// NewDirectiveReader creates a DirectiveReader.
func NewDirectiveReader() *DirectiveReader {
	return &DirectiveReader{}
}

// FirstMetadataFor returns the first matching record for el:
//   - methods: the first gql:field directive
//   - parameters: the first gql:arg directive naming the parameter
//   - struct fields: the first gql:field directive, then the gql tag
func (r *DirectiveReader) FirstMetadataFor(el analyze.Element) (*Attribute, error) {
	switch e := el.(type) {
	case *analyze.Method:
		return firstDirective(e.Directives(), DirectiveField, "")

	case *analyze.Param:
		return firstDirective(e.Directives(), DirectiveArg, e.Name)

	case *analyze.FieldInfo:
		attr, err := firstDirective(e.Directives(), DirectiveField, "")
		if attr != nil || err != nil {
			return attr, err
		}

		if tag, ok := e.Tag.Lookup(TagKey); ok {
			return ParseTag(tag)
		}

		return nil, nil

	default:
		return nil, nil
	}
}

// firstDirective finds the first directive called name. For gql:arg the
// first token must equal target.
func firstDirective(lines []string, name, target string) (*Attribute, error) {
	for _, line := range lines {
		body := strings.TrimPrefix(line, analyze.DirectivePrefix)

		directive, rest, _ := strings.Cut(body, " ")
		if directive != name {
			continue
		}

		tokens, err := shellquote.Split(rest)
		if err != nil {
			return nil, malformed(line, "%v", err)
		}

		if target != "" {
			if len(tokens) == 0 || tokens[0] != target {
				continue
			}
			tokens = tokens[1:]
		}

		return parsePairs(line, tokens)
	}

	return nil, nil
}

// ParseDirective parses the key=value list of a single directive body such
// as `name=bar type=ID default=123`.
func ParseDirective(body string) (*Attribute, error) {
	tokens, err := shellquote.Split(body)
	if err != nil {
		return nil, malformed(body, "%v", err)
	}

	return parsePairs(body, tokens)
}

// ParseTag parses a gql struct tag value: an optional leading name followed
// by comma-separated key=value pairs.
func ParseTag(tag string) (*Attribute, error) {
	if tag == "" {
		return &Attribute{Source: tag}, nil
	}

	parts := strings.Split(tag, ",")

	var tokens []string
	if !strings.Contains(parts[0], "=") {
		if parts[0] != "" {
			tokens = append(tokens, "name="+parts[0])
		}
		parts = parts[1:]
	}

	for _, part := range parts {
		tokens = append(tokens, strings.TrimSpace(part))
	}

	return parsePairs(tag, tokens)
}

func parsePairs(source string, tokens []string) (*Attribute, error) {
	attr := &Attribute{Source: source}

	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return nil, malformed(source, "expected key=value, got %q", token)
		}

		switch key {
		case "name":
			attr.Name = &value
		case "type":
			attr.Type = &value
		case "mode":
			mode, err := descriptor.ParseTypeMode(value)
			if err != nil {
				return nil, malformed(source, "%v", err)
			}
			attr.Mode = &mode
		case "description":
			attr.Description = &value
		case "deprecated", "deprecation":
			attr.DeprecationReason = &value
		case "default":
			v, err := DecodeValue(value)
			if err != nil {
				return nil, malformed(source, "default: %v", err)
			}
			attr.Default = descriptor.Set(v)
		default:
			return nil, malformed(source, "unknown key %q", key)
		}
	}

	return attr, nil
}

// DecodeValue decodes a literal as a YAML scalar or flow collection.
// An empty literal is the empty string.
func DecodeValue(literal string) (any, error) {
	if literal == "" {
		return "", nil
	}

	var v any
	if err := yaml.Unmarshal([]byte(literal), &v); err != nil {
		return nil, err
	}

	return v, nil
}

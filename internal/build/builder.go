package build

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/attribute"
	"gqlmeta/internal/docs"
	"gqlmeta/internal/lazy"
	"gqlmeta/internal/match"
	"gqlmeta/internal/registry"
	"gqlmeta/internal/resolve"
	"gqlmeta/internal/schema"
)

// maxSuggestions bounds the "did you mean" list of a not-found error.
const maxSuggestions = 3

// Builder constructs GraphQL types from a TypeGraph on behalf of a registry.
type Builder struct {
	graph    *analyze.TypeGraph
	types    lazy.Lookup
	attrs    attribute.Reader
	docs     docs.Parser
	pipeline *resolve.Pipeline
	prefixes []string
	logger   *zap.Logger

	// byName indexes candidate Go types by GraphQL name.
	byName map[string][]*analyze.TypeInfo
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithAttributeReader replaces the gql: directive reader.
func WithAttributeReader(r attribute.Reader) Option {
	return func(b *Builder) { b.attrs = r }
}

// WithDocParser replaces the doc comment parser.
func WithDocParser(p docs.Parser) Option {
	return func(b *Builder) { b.docs = p }
}

// WithSetterPrefixes replaces the mutator prefixes that mark setter methods.
func WithSetterPrefixes(prefixes ...string) Option {
	return func(b *Builder) { b.prefixes = append([]string(nil), prefixes...) }
}

// NewBuilder creates a Builder over graph. Deferred lookups (field thunks
// and type references) go through types, normally the registry the builder
// is installed in.
func NewBuilder(graph *analyze.TypeGraph, types lazy.Lookup, opts ...Option) *Builder {
	b := &Builder{
		graph:    graph,
		types:    types,
		attrs:    attribute.NewDirectiveReader(),
		docs:     docs.NewCommentParser(),
		prefixes: resolve.DefaultSetterPrefixes,
		logger:   zap.NewNop(),
		byName:   make(map[string][]*analyze.TypeInfo),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.pipeline = resolve.DefaultPipeline(b.attrs, b.docs, b.types, resolve.WithSetterPrefixes(b.prefixes...))

	for _, info := range graph.Types {
		if isComposite(info) {
			b.byName[info.ID.Name] = append(b.byName[info.ID.Name], info)
		}
	}

	return b
}

// Install creates a Builder over graph and makes it reg's type factory.
func Install(reg *registry.Registry, graph *analyze.TypeGraph, opts ...Option) *Builder {
	b := NewBuilder(graph, reg, opts...)
	reg.SetBuilder(b)

	return b
}

func isComposite(info *analyze.TypeInfo) bool {
	return info.IsNamed() && (info.Kind == analyze.TypeKindStruct || info.Kind == analyze.TypeKindInterface)
}

// Pipeline returns the resolution pipeline used for arguments and input fields.
func (b *Builder) Pipeline() *resolve.Pipeline {
	return b.pipeline
}

// Names returns every name the builder can construct, sorted.
func (b *Builder) Names() []string {
	names := make([]string, 0, len(b.byName)+5)
	for _, s := range []*schema.Scalar{schema.Int, schema.Float, schema.String, schema.Boolean, schema.ID} {
		names = append(names, s.Name)
	}

	for name := range b.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Build implements registry.Builder. It only creates the type shell; fields
// are resolved when first requested.
func (b *Builder) Build(name string, _ lazy.Lookup) (schema.NamedType, error) {
	if s, ok := schema.Builtin(name); ok {
		return s, nil
	}

	info, err := b.lookup(name)
	if err != nil {
		return nil, err
	}

	if info.Role == analyze.RoleObject {
		b.logger.Debug("building object", zap.String("type", name), zap.Stringer("go_type", info.ID))
		return schema.NewObject(name, info.Documentation, b.objectFields(info)), nil
	}

	b.logger.Debug("building input object", zap.String("type", name), zap.Stringer("go_type", info.ID))

	return schema.NewInputObject(name, info.Documentation, b.inputFields(info)), nil
}

func (b *Builder) lookup(name string) (*analyze.TypeInfo, error) {
	candidates := b.byName[name]

	switch len(candidates) {
	case 0:
		return nil, &NotFoundError{Name: name, Suggestions: match.Suggest(name, b.Names(), maxSuggestions)}

	case 1:
		return candidates[0], nil

	default:
		ids := make([]string, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.ID.String())
		}
		sort.Strings(ids)

		return nil, fmt.Errorf("%w %q: declared by %s", ErrAmbiguousType, name, strings.Join(ids, ", "))
	}
}

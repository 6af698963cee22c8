package resolve

import (
	"gqlmeta/internal/analyze"
	"gqlmeta/internal/attribute"
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/docs"
	"gqlmeta/internal/lazy"
)

// Resolver completes a draft. Strategies receive the rest of the chain as a
// Resolver.
type Resolver interface {
	Resolve(d *Draft) (*descriptor.Descriptor, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(d *Draft) (*descriptor.Descriptor, error)

// Resolve calls f(d).
func (f ResolverFunc) Resolve(d *Draft) (*descriptor.Descriptor, error) {
	return f(d)
}

// Strategy is one source of truth in the chain. A strategy with nothing to
// add must call next exactly once and return its result. A terminal
// strategy never calls next.
type Strategy interface {
	Process(d *Draft, next Resolver) (*descriptor.Descriptor, error)
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(d *Draft, next Resolver) (*descriptor.Descriptor, error)

// Process calls f(d, next).
func (f StrategyFunc) Process(d *Draft, next Resolver) (*descriptor.Descriptor, error) {
	return f(d, next)
}

// exhausted ends a chain with no terminal strategy.
var exhausted = ResolverFunc(func(d *Draft) (*descriptor.Descriptor, error) {
	return nil, d.failf(ErrUnresolvableType, "no strategy resolved the element")
})

// Pipeline is an immutable chain of strategies.
type Pipeline struct {
	strategies []Strategy
	head       Resolver
}

// NewPipeline assembles strategies in the given order. The first strategy
// runs first.
func NewPipeline(strategies ...Strategy) *Pipeline {
	p := &Pipeline{strategies: make([]Strategy, len(strategies))}
	copy(p.strategies, strategies)

	// Link in reverse so that strategies added first run first.
	var next Resolver = exhausted
	for i := len(p.strategies) - 1; i >= 0; i-- {
		next = link(p.strategies[i], next)
	}
	p.head = next

	return p
}

func link(s Strategy, next Resolver) Resolver {
	return ResolverFunc(func(d *Draft) (*descriptor.Descriptor, error) {
		return s.Process(d, next)
	})
}

// Len returns the number of strategies.
func (p *Pipeline) Len() int {
	return len(p.strategies)
}

// Resolve runs the chain for el.
func (p *Pipeline) Resolve(el analyze.Element) (*descriptor.Descriptor, error) {
	d, err := NewDraft(el)
	if err != nil {
		return nil, err
	}

	desc, err := p.head.Resolve(d)
	if err != nil {
		return nil, err
	}

	if desc == nil {
		return nil, d.failf(ErrUnresolvableType, "chain returned no descriptor")
	}

	return desc, nil
}

// Options configure the default pipeline.
type Options struct {
	// SetterPrefixes are stripped from method names when deriving a name.
	SetterPrefixes []string
}

// Option configures Options.
type Option func(*Options)

// DefaultSetterPrefixes are used when no prefixes are configured.
var DefaultSetterPrefixes = []string{"set"}

// WithSetterPrefixes replaces the mutator prefixes stripped from method names.
func WithSetterPrefixes(prefixes ...string) Option {
	return func(o *Options) {
		o.SetterPrefixes = append([]string(nil), prefixes...)
	}
}

// DefaultPipeline builds the attribute, documentation and structural chain.
// A nil attribute reader finds nothing; a nil parser reads doc comments.
func DefaultPipeline(attrs attribute.Reader, parser docs.Parser, types lazy.Lookup, opts ...Option) *Pipeline {
	options := Options{SetterPrefixes: DefaultSetterPrefixes}
	for _, opt := range opts {
		opt(&options)
	}

	if attrs == nil {
		attrs = attribute.None
	}

	if parser == nil {
		parser = docs.NewCommentParser()
	}

	return NewPipeline(
		NewAttributeStrategy(attrs, types),
		NewDocumentationStrategy(parser, types),
		NewStructuralStrategy(types, options.SetterPrefixes...),
	)
}

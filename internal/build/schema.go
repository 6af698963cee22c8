package build

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"gqlmeta/internal/common"
	"gqlmeta/internal/diagnostic"
	"gqlmeta/internal/registry"
	"gqlmeta/internal/schema"
)

// Schema builds the set of types reachable from a list of roots.
type Schema struct {
	registry *registry.Registry
	logger   *zap.Logger
	strict   bool
}

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// WithSchemaLogger sets the logger.
func WithSchemaLogger(logger *zap.Logger) SchemaOption {
	return func(s *Schema) { s.logger = logger }
}

// WithStrict makes warnings fail the build.
func WithStrict(strict bool) SchemaOption {
	return func(s *Schema) { s.strict = strict }
}

// NewSchema creates a Schema backed by reg.
func NewSchema(reg *registry.Registry, opts ...SchemaOption) *Schema {
	s := &Schema{registry: reg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result is the outcome of a schema build.
type Result struct {
	Roots []string
	// Types are the reachable types sorted by name, builtins excluded.
	Types       []schema.NamedType
	Diagnostics diagnostic.Diagnostics
}

// Build forces every type reachable from roots: each type, its fields, their
// arguments and all referenced types. Failures are collected per element.
// The returned error is non-nil when the diagnostics contain errors, or
// warnings in strict mode; the result is returned either way.
func (s *Schema) Build(roots ...string) (*Result, error) {
	res := &Result{Roots: roots}

	w := &walker{
		registry: s.registry,
		res:      res,
		visited:  make(map[string]bool),
	}

	for _, root := range roots {
		w.enqueue(root)
	}

	for len(w.queue) > 0 {
		name := w.queue[0]
		w.queue = w.queue[1:]
		w.visit(name)
	}

	sort.Slice(res.Types, func(i, j int) bool {
		return res.Types[i].TypeName() < res.Types[j].TypeName()
	})

	s.logger.Info("schema built",
		zap.Strings("roots", roots),
		zap.Int("types", len(res.Types)),
		zap.Int("errors", len(res.Diagnostics.Errors)),
		zap.Int("warnings", len(res.Diagnostics.Warnings)))

	for _, d := range res.Diagnostics.Errors {
		s.logger.Debug("build error", zap.String("code", d.Code), zap.String("diagnostic", d.String()))
	}

	if err := res.Diagnostics.Error(); err != nil {
		return res, err
	}

	if s.strict && len(res.Diagnostics.Warnings) > 0 {
		return res, fmt.Errorf("strict mode: %d warning(s), first: %s",
			len(res.Diagnostics.Warnings), res.Diagnostics.Warnings[0])
	}

	return res, nil
}

// walker is the breadth-first traversal state of one Build call.
type walker struct {
	registry *registry.Registry
	res      *Result
	visited  map[string]bool
	queue    []string
}

func (w *walker) enqueue(name string) {
	if w.visited[name] {
		return
	}

	w.visited[name] = true
	w.queue = append(w.queue, name)
}

func (w *walker) fail(typeName string, err error) {
	for _, leaf := range leaves(err) {
		w.res.Diagnostics.Add(diagnose(typeName, leaf))
	}
}

func (w *walker) visit(name string) {
	t, err := w.registry.Type(name)
	if err != nil {
		w.fail(name, err)
		return
	}

	switch tt := t.(type) {
	case *schema.Scalar:
		if schema.IsBuiltin(tt.Name) {
			w.res.Diagnostics.AddInfo(diagnostic.CodeBuiltinScalar,
				"builtin scalar, omitted from the schema document", tt.Name, "")
			return
		}

		w.res.Types = append(w.res.Types, tt)

	case *schema.InputObject:
		w.res.Types = append(w.res.Types, tt)
		w.visitInputObject(tt)

	case *schema.Object:
		w.res.Types = append(w.res.Types, tt)
		w.visitObject(tt)
	}
}

func (w *walker) visitInputObject(o *schema.InputObject) {
	fields, err := o.Fields()
	if err != nil {
		w.fail(o.Name, err)
		return
	}

	if common.IsEmpty(fields) {
		w.res.Diagnostics.AddWarning(diagnostic.CodeEmptyType,
			"input object has no fields", o.Name, "")
	}

	for _, f := range fields {
		w.inputValue(o.Name, o.Name+"."+f.Name, &f.InputValue)
	}
}

func (w *walker) visitObject(o *schema.Object) {
	fields, err := o.Fields()
	if err != nil {
		w.fail(o.Name, err)
		return
	}

	if common.IsEmpty(fields) {
		w.res.Diagnostics.AddWarning(diagnostic.CodeEmptyType,
			"object has no fields", o.Name, "")
	}

	for _, f := range fields {
		t, err := f.Type()
		if err != nil {
			w.fail(o.Name, fmt.Errorf("field %s: %w", f.Name, err))
		} else if named := schema.Unwrap(t); named != nil {
			w.enqueue(named.TypeName())
		}

		for _, arg := range f.Args {
			w.inputValue(o.Name, o.Name+"."+f.Name+"("+arg.Name+")", &arg.InputValue)
		}
	}
}

// inputValue forces the type of an argument or input field and checks it
// is an input type.
func (w *walker) inputValue(typeName, path string, v *schema.InputValue) {
	t, err := v.Type()
	if err != nil {
		w.res.Diagnostics.Add(withElement(diagnose(typeName, err), path))
		return
	}

	named := schema.Unwrap(t)
	if named == nil {
		return
	}

	w.enqueue(named.TypeName())

	if !schema.IsInputType(t) {
		w.res.Diagnostics.Add(withElement(diagnose(typeName,
			fmt.Errorf("%w: %s has type %s", ErrNotInputType, path, t)), path))
	}
}

func withElement(d diagnostic.Diagnostic, element string) diagnostic.Diagnostic {
	if d.Element == "" {
		d.Element = element
	}

	return d
}

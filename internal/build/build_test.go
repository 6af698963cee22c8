package build

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/diagnostic"
	"gqlmeta/internal/registry"
	"gqlmeta/internal/resolve"
	"gqlmeta/internal/schema"
)

func TestBuilder_Builtins(t *testing.T) {
	reg := newRegistry(t, catalog)

	for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		typ, err := reg.Type(name)
		require.NoError(t, err)

		builtin, ok := schema.Builtin(name)
		require.True(t, ok)
		assert.Same(t, builtin, typ)
	}
}

func TestBuilder_InputObject(t *testing.T) {
	reg := newRegistry(t, catalog)

	typ, err := reg.Type("ProductFilter")
	require.NoError(t, err)

	filter, ok := typ.(*schema.InputObject)
	require.True(t, ok)
	assert.Equal(t, "Filters products.", filter.Description)

	fields, err := filter.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 4)

	byName := make(map[string]*schema.InputField)
	for _, f := range fields {
		byName[f.Name] = f
	}

	name := byName["name"]
	require.NotNil(t, name)
	assert.Equal(t, "Name fragment.", name.Description)
	assert.False(t, name.DefaultValueExists())
	assertType(t, "String", &name.InputValue)

	minPrice := byName["minPrice"]
	require.NotNil(t, minPrice)
	assert.True(t, minPrice.DefaultValueExists())
	assert.Equal(t, 100, minPrice.DefaultValue())
	assertType(t, "Int!", &minPrice.InputValue)

	category := byName["category"]
	require.NotNil(t, category)
	assert.True(t, category.DefaultValueExists(), "null default is a default")
	assert.Nil(t, category.DefaultValue())
	require.True(t, category.IsDeprecated())
	assert.Equal(t, "use tags.", *category.DeprecationReason)

	parent := byName["parent"]
	require.NotNil(t, parent)
	parentType, err := parent.Type()
	require.NoError(t, err)
	assert.Same(t, filter, parentType, "self reference resolves to the same object")
}

func TestBuilder_Object(t *testing.T) {
	reg := newRegistry(t, catalog)

	typ, err := reg.Type("Product")
	require.NoError(t, err)

	product, ok := typ.(*schema.Object)
	require.True(t, ok)

	fields, err := product.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "id", fields[0].Name)
	assertFieldType(t, "ID!", fields[0])
	assert.Equal(t, "name", fields[1].Name)
	assertFieldType(t, "String!", fields[1])

	similar := fields[2]
	assert.Equal(t, "similar", similar.Name)
	assert.Equal(t, "Products like this one.", similar.Description)
	assertFieldType(t, "[Product]!", similar)

	require.Len(t, similar.Args, 2)
	assert.Equal(t, "filter", similar.Args[0].Name)
	assertType(t, "ProductFilter", &similar.Args[0].InputValue)
	assert.False(t, similar.Args[0].DefaultValueExists())
	assert.Equal(t, "first", similar.Args[1].Name)
	assert.Equal(t, 10, similar.Args[1].DefaultValue())
}

func TestBuilder_Errors(t *testing.T) {
	reg := newRegistry(t, catalog)

	_, err := reg.Type("Prodct")
	require.ErrorIs(t, err, ErrTypeNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Suggestions, "Product")
	assert.False(t, reg.Has("Prodct"), "failed builds are not cached")
}

func TestBuilder_MalformedFieldAttributes(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		wantErr   string
	}{
		{name: "mode without type", directive: "gql:field mode=list", wantErr: "without a type"},
		{name: "default on output field", directive: "gql:field default=3", wantErr: "take no default"},
		{name: "invalid name", directive: "gql:field name=1tags", wantErr: "invalid name"},
		{name: "wrapped type with mode", directive: "gql:field type=[String] mode=non-null", wantErr: "already carries wrapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `
package: shop.example.com/widgets
types:
  - name: Widget
    role: object
    methods:
      - name: Tags
        doc: "` + tt.directive + `"
        returns: ["[]string"]
`
			reg := newRegistry(t, doc)

			typ, err := reg.Type("Widget")
			require.NoError(t, err)

			widget, ok := typ.(*schema.Object)
			require.True(t, ok)

			_, err = widget.Fields()
			require.ErrorIs(t, err, resolve.ErrMalformedAttribute)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "widgets.Widget.Tags")
		})
	}
}

func TestBuilder_AmbiguousName(t *testing.T) {
	graph := analyze.NewTypeGraph()
	for _, pkg := range []string{"a.example.com/x", "b.example.com/x"} {
		graph.AddType(&analyze.TypeInfo{
			ID:   analyze.TypeID{PkgPath: pkg, Name: "Thing"},
			Kind: analyze.TypeKindStruct,
		})
	}

	reg := registry.New(nil)
	Install(reg, graph)

	_, err := reg.Type("Thing")
	require.ErrorIs(t, err, ErrAmbiguousType)
	assert.Contains(t, err.Error(), "a.example.com/x.Thing")
	assert.Contains(t, err.Error(), "b.example.com/x.Thing")
}

func TestConverters_DefaultState(t *testing.T) {
	tests := []struct {
		name       string
		def        descriptor.Default
		wantExists bool
		wantValue  any
	}{
		{"unset", descriptor.Unset(), false, nil},
		{"null", descriptor.Set(nil), true, nil},
		{"value", descriptor.Set("x"), true, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &descriptor.Descriptor{
				Kind:    descriptor.KindArgument,
				Name:    "arg",
				Type:    schema.Static{T: schema.String},
				Mode:    descriptor.ModeNonNull,
				Default: tt.def,
			}

			arg := NewArgument(d)
			assert.Equal(t, tt.wantExists, arg.DefaultValueExists())
			assert.Equal(t, tt.wantValue, arg.DefaultValue())
			assertType(t, "String!", &arg.InputValue)

			d.Kind = descriptor.KindInputField
			field := NewInputField(d)
			assert.Equal(t, tt.wantExists, field.DefaultValueExists())
		})
	}
}

func TestConverters_DescriptionAndDeprecation(t *testing.T) {
	desc, reason := "Page size.", "use first"
	d := &descriptor.Descriptor{
		Name:              "limit",
		Type:              schema.Static{T: schema.Int},
		Description:       &desc,
		DeprecationReason: &reason,
	}

	arg := NewArgument(d)
	assert.Equal(t, desc, arg.Description)
	require.True(t, arg.IsDeprecated())
	assert.Equal(t, reason, *arg.DeprecationReason)

	plain := NewArgument(&descriptor.Descriptor{Name: "n", Type: schema.Static{T: schema.Int}})
	assert.Empty(t, plain.Description)
	assert.False(t, plain.IsDeprecated())
}

func TestSchema_Build(t *testing.T) {
	reg := newRegistry(t, catalog)

	res, err := NewSchema(reg).Build("Query")
	require.NoError(t, err)
	assert.True(t, res.Diagnostics.IsValid())

	names := make([]string, 0, len(res.Types))
	for _, typ := range res.Types {
		names = append(names, typ.TypeName())
	}
	assert.Equal(t, []string{"Product", "ProductFilter", "Query"}, names)

	builtins := make([]string, 0, len(res.Diagnostics.Infos))
	for _, d := range res.Diagnostics.Infos {
		assert.Equal(t, diagnostic.CodeBuiltinScalar, d.Code)
		builtins = append(builtins, d.Type)
	}
	assert.ElementsMatch(t, []string{"ID", "Int", "String"}, builtins)
}

func TestSchema_BuildCollectsDiagnostics(t *testing.T) {
	reg := newRegistry(t, broken)

	res, err := NewSchema(reg).Build("Query")
	require.Error(t, err)
	require.NotNil(t, res)

	assert.ElementsMatch(t,
		[]string{diagnostic.CodeNotInputType, diagnostic.CodeTypeNotFound, diagnostic.CodeUnresolvableType},
		res.Diagnostics.Codes())

	for _, d := range res.Diagnostics.Errors {
		switch d.Code {
		case diagnostic.CodeUnresolvableType:
			assert.Equal(t, "BrokenFilter", d.Type)
			assert.Equal(t, "broken.BrokenFilter.SetRange", d.Element)
			assert.Contains(t, d.Message, "accepts 2")
		case diagnostic.CodeTypeNotFound:
			assert.Equal(t, "Query.search(ref)", d.Element)
			assert.Contains(t, d.Suggestions, "Owner")
		case diagnostic.CodeNotInputType:
			assert.Equal(t, "Query.search(owner)", d.Element)
		}
	}
}

func TestSchema_UnknownRoot(t *testing.T) {
	reg := newRegistry(t, catalog)

	res, err := NewSchema(reg).Build("Querry")
	require.Error(t, err)
	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeTypeNotFound, res.Diagnostics.Errors[0].Code)
	assert.Contains(t, res.Diagnostics.Errors[0].Suggestions, "Query")
}

func TestSchema_StrictMode(t *testing.T) {
	const empty = `
package: shop.example.com/empty
types:
  - name: Nothing
`
	reg := newRegistry(t, empty)

	res, err := NewSchema(reg).Build("Nothing")
	require.NoError(t, err)
	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeEmptyType, res.Diagnostics.Warnings[0].Code)

	_, err = NewSchema(reg, WithStrict(true)).Build("Nothing")
	assert.ErrorContains(t, err, "strict mode")
}

func TestSchema_BuildAll(t *testing.T) {
	reg := newRegistry(t, catalog)
	s := NewSchema(reg)

	rootSets := [][]string{{"Query"}, {"ProductFilter"}, {"Product"}, {"Query", "Product"}}

	results, err := s.BuildAll(context.Background(), rootSets)
	require.NoError(t, err)
	require.Len(t, results, len(rootSets))

	filter, err := reg.Type("ProductFilter")
	require.NoError(t, err)

	for i, res := range results {
		assert.Equal(t, rootSets[i], res.Roots)

		for _, typ := range res.Types {
			if typ.TypeName() == "ProductFilter" {
				assert.Same(t, filter, typ, "all builds share one registry")
			}
		}
	}

	assert.Equal(t, []string{"ID", "Int", "Product", "ProductFilter", "Query", "String"}, reg.Names())
}

func TestSchema_BuildAllFailureDoesNotStopOthers(t *testing.T) {
	reg := newRegistry(t, catalog, broken)

	rootSets := [][]string{{"BrokenFilter"}, {"Product"}, {"ProductFilter"}}

	results, err := NewSchema(reg).BuildAll(context.Background(), rootSets)
	require.Error(t, err)
	require.Len(t, results, len(rootSets))

	for i, res := range results {
		require.NotNil(t, res, "root set %v", rootSets[i])
	}

	assert.Equal(t, []string{diagnostic.CodeUnresolvableType}, results[0].Diagnostics.Codes())
	assert.True(t, results[1].Diagnostics.IsValid())
	assert.True(t, results[2].Diagnostics.IsValid())
	assert.Len(t, results[1].Types, 2)
}

func TestSchema_BuildAllCanceled(t *testing.T) {
	reg := newRegistry(t, catalog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSchema(reg).BuildAll(ctx, [][]string{{"Query"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func assertType(t *testing.T, want string, v *schema.InputValue) {
	t.Helper()

	typ, err := v.Type()
	require.NoError(t, err)
	assert.Equal(t, want, typ.String())
}

func assertFieldType(t *testing.T, want string, f *schema.Field) {
	t.Helper()

	typ, err := f.Type()
	require.NoError(t, err)
	assert.Equal(t, want, typ.String())
}

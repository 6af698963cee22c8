package resolve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/attribute"
	"gqlmeta/internal/descriptor"
	"gqlmeta/internal/docs"
	"gqlmeta/internal/lazy"
	"gqlmeta/internal/schema"
)

var filterID = analyze.TypeID{PkgPath: "gqlmeta/examples/library", Name: "BookFilter"}

var bookFilter = schema.NewInputObject("BookFilter", "", func() ([]*schema.InputField, error) {
	return nil, nil
})

func testTypes() lazy.Lookup {
	return lazy.LookupFunc(func(name string) (schema.NamedType, error) {
		if s, ok := schema.Builtin(name); ok {
			return s, nil
		}

		if name == bookFilter.Name {
			return bookFilter, nil
		}

		return nil, fmt.Errorf("unknown type %q", name)
	})
}

func basic(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindBasic, BasicName: name}
}

func pointerTo(t *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: t}
}

func sliceOf(t *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindSlice, ElemType: t}
}

type paramSpec struct {
	name string
	typ  *analyze.TypeInfo
	def  descriptor.Default
}

// newMethod builds a method on BookFilter. The doc text may contain gql:
// directive lines.
func newMethod(name, doc string, params ...paramSpec) *analyze.Method {
	prose, directives := analyze.SplitDoc(doc)

	m := &analyze.Method{
		Owner:          filterID,
		Name:           name,
		Documentation:  prose,
		DirectiveLines: directives,
		Pos:            "filter.go:10",
	}

	for i, p := range params {
		m.Params = append(m.Params, &analyze.Param{
			Method:  m,
			Name:    p.name,
			Index:   i,
			Type:    p.typ,
			Default: p.def,
		})
	}

	return m
}

func defaultPipeline() *Pipeline {
	return DefaultPipeline(attribute.NewDirectiveReader(), docs.NewCommentParser(), testTypes())
}

func resolvedType(t *testing.T, d *descriptor.Descriptor) string {
	t.Helper()

	typ, err := d.ResolveType()
	require.NoError(t, err)

	return typ.String()
}

func lookupCounting(count *int) lazy.Lookup {
	types := testTypes()

	return lazy.LookupFunc(func(name string) (schema.NamedType, error) {
		*count++
		return types.Type(name)
	})
}

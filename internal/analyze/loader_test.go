package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libraryPkg = "gqlmeta/examples/library"

func loadLibrary(t *testing.T) *TypeGraph {
	t.Helper()

	if testing.Short() {
		t.Skip("loads Go packages")
	}

	graph, err := NewAnalyzer().LoadPackages(libraryPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func libraryType(t *testing.T, graph *TypeGraph, name string) *TypeInfo {
	t.Helper()

	info := graph.GetType(TypeID{PkgPath: libraryPkg, Name: name})
	require.NotNil(t, info, name)

	return info
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadLibrary(t)

	assert.Contains(t, graph.Packages, libraryPkg)
	assert.Equal(t, "library", graph.Packages[libraryPkg].Name)

	for _, name := range []string{"Genre", "BookFilter", "Book", "Author", "Query"} {
		assert.Contains(t, graph.Types, TypeID{PkgPath: libraryPkg, Name: name})
	}
}

func TestAnalyzer_TypeDocsAndRoles(t *testing.T) {
	graph := loadLibrary(t)

	filter := libraryType(t, graph, "BookFilter")
	assert.Equal(t, TypeKindStruct, filter.Kind)
	assert.Equal(t, "BookFilter narrows a book search.", filter.Documentation)
	assert.Equal(t, []string{"gql:input"}, filter.DirectiveLines)
	assert.Equal(t, RoleInput, filter.Role)

	assert.Equal(t, RoleObject, libraryType(t, graph, "Book").Role)
	assert.Equal(t, RoleNone, libraryType(t, graph, "Genre").Role)
}

func TestAnalyzer_StructFields(t *testing.T) {
	graph := loadLibrary(t)
	filter := libraryType(t, graph, "BookFilter")

	names := make([]string, 0, len(filter.Fields))
	for _, f := range filter.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Title", "Author", "Tags"}, names, "unexported fields are skipped")

	author := filter.Fields[1]
	assert.Equal(t, "Author is the author's display name.\n\nDeprecated: use authorId.", author.Documentation)
	assert.Equal(t, "author", author.GetTag("gql"))
	assert.Equal(t, TypeKindPointer, author.Type.Kind)
	assert.Equal(t, TypeKindBasic, author.Type.ElemType.Kind)
	assert.Contains(t, author.Position(), "library.go:")

	tags := filter.Fields[2]
	assert.False(t, tags.HasTag("gql"))
	assert.Equal(t, TypeKindSlice, tags.Type.Kind)
}

func TestAnalyzer_Methods(t *testing.T) {
	graph := loadLibrary(t)
	filter := libraryType(t, graph, "BookFilter")

	setAuthor := filter.Method("SetAuthorID")
	require.NotNil(t, setAuthor)
	assert.Equal(t, "SetAuthorID restricts results to one author.", setAuthor.Documentation)
	assert.Equal(t, []string{"gql:field type=ID"}, setAuthor.DirectiveLines)
	assert.Equal(t, "library.BookFilter.SetAuthorID", setAuthor.QualifiedName())
	require.Len(t, setAuthor.Params, 1)
	assert.Equal(t, "library.BookFilter.SetAuthorID(id)", setAuthor.Params[0].QualifiedName())
	assert.Equal(t, "SetAuthorID(id string)", setAuthor.Signature())

	published := filter.Method("SetPublishedAfter")
	require.NotNil(t, published)
	assert.Contains(t, published.Documentation, "@param Int year")
	assert.Equal(t, published.Documentation, published.Params[0].Doc(), "parameters read the method's comment")

	or := filter.Method("SetOr")
	require.NotNil(t, or)
	elem := or.Params[0].Type.ElemType.ElemType
	assert.Same(t, filter, elem, "recursive types share one TypeInfo")

	genres := filter.Method("SetGenres")
	require.NotNil(t, genres)
	genre := genres.Params[0].Type.ElemType
	assert.Equal(t, TypeKindAlias, genre.Kind)
	assert.Equal(t, TypeKindBasic, genre.Underlying.Kind)
}

func TestAnalyzer_MethodResults(t *testing.T) {
	graph := loadLibrary(t)
	query := libraryType(t, graph, "Query")

	book := query.Method("Book")
	require.NotNil(t, book)
	require.Len(t, book.Results, 2)
	assert.Equal(t, TypeKindPointer, book.Results[0].Kind)
	assert.Equal(t, TypeKindExternal, book.Results[1].Kind)
	assert.Equal(t, TypeID{Name: "error"}, book.Results[1].ID)
	assert.Equal(t, []string{"gql:field type=Book", "gql:arg id type=ID!"}, book.DirectiveLines)
}

func TestSplitDoc(t *testing.T) {
	prose, directives := SplitDoc("Filters books.\n\n  gql:input\nMore text.\ngql:field name=x")
	assert.Equal(t, "Filters books.\n\nMore text.", prose)
	assert.Equal(t, []string{"gql:input", "gql:field name=x"}, directives)

	prose, directives = SplitDoc("")
	assert.Empty(t, prose)
	assert.Empty(t, directives)
}

func TestParseTypeString(t *testing.T) {
	graph := NewTypeGraph()
	filter := &TypeInfo{ID: TypeID{PkgPath: "shop.example.com/catalog", Name: "ProductFilter"}, Kind: TypeKindStruct}
	graph.AddType(filter)

	tests := []struct {
		in   string
		want string
	}{
		{"int", "int"},
		{"*string", "*string"},
		{"[]*ProductFilter", "[]*catalog.ProductFilter"},
		{"catalog.ProductFilter", "catalog.ProductFilter"},
		{"[3]float64", "[]float64"},
		{"map[string]int", "map"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			info, err := ParseTypeString(tt.in, graph.FindByName())
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.String())
		})
	}

	for _, bad := range []string{"Unknown", "*", "func()", "chan int"} {
		_, err := ParseTypeString(bad, graph.FindByName())
		assert.Error(t, err, bad)
	}
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: libraryPkg, Name: "Book"}
	assert.Equal(t, "gqlmeta/examples/library.Book", id.String())
	assert.Equal(t, "library.Book", id.Short())

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
	assert.Equal(t, "int", idNoPkg.Short())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestDescribe(t *testing.T) {
	m := &Method{Owner: TypeID{PkgPath: libraryPkg, Name: "BookFilter"}, Name: "SetOr", Pos: "library.go:50"}
	assert.Equal(t, "library.BookFilter.SetOr (library.go:50)", Describe(m))

	m.Pos = ""
	assert.Equal(t, "library.BookFilter.SetOr", Describe(m))
	assert.Equal(t, "<nil element>", Describe(nil))
}

package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	// loaded maps package paths requested by the caller to their declarations.
	loaded map[string]*declIndex
	dir    string
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithDir sets the directory packages are loaded from.
func WithDir(dir string) AnalyzerOption {
	return func(a *Analyzer) { a.dir = dir }
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		loaded:    make(map[string]*declIndex),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./models", "gqlmeta/examples/library").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Index declarations of every requested package first so that types
	// referenced across loaded packages are not mistaken for external ones.
	for _, pkg := range pkgs {
		a.loaded[pkg.PkgPath] = newDeclIndex(pkg)
		if _, ok := a.graph.Packages[pkg.PkgPath]; !ok {
			a.graph.Packages[pkg.PkgPath] = &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
		}
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("no type information for %s", pkg.PkgPath)
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		// Only process exported types
		if !typeName.Exported() {
			continue
		}

		typeInfo := a.analyzeType(typeName.Type())
		a.graph.AddType(typeInfo)
	}

	return nil
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	t = unalias(t)

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic
		info.BasicName = tt.Name()

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info, nil)

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Map:
		info.Kind = TypeKindMap

	default:
		// Channels, functions, type parameters, etc. are unsupported
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// Universe types such as error.
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindExternal
		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	idx, loaded := a.loaded[obj.Pkg().Path()]
	if !loaded {
		// External/opaque type (e.g., time.Time)
		info.Kind = TypeKindExternal
		return
	}

	info.Documentation, info.DirectiveLines = splitCommentGroup(idx.typeDocs[obj])
	info.Role = roleOf(info.DirectiveLines)

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info, idx)

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		// Named type wrapping something else (e.g., type BookID int)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}

	a.analyzeMethods(named, info, idx)
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo, idx *declIndex) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		// Only process exported fields
		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Owner:    info.ID,
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		if idx != nil {
			fieldInfo.Documentation, fieldInfo.DirectiveLines = splitCommentGroup(idx.fieldDocs[field])
			fieldInfo.Pos = idx.position(field.Pos())
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// analyzeMethods extracts the exported methods declared on a named type.
func (a *Analyzer) analyzeMethods(named *types.Named, info *TypeInfo, idx *declIndex) {
	for i := 0; i < named.NumMethods(); i++ {
		fn := named.Method(i)
		if !fn.Exported() {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		method := &Method{
			Owner: info.ID,
			Name:  fn.Name(),
			Pos:   idx.position(fn.Pos()),
		}

		if decl := idx.funcs[fn]; decl != nil {
			method.Documentation, method.DirectiveLines = splitCommentGroup(decl.Doc)
		}

		params := sig.Params()
		for j := 0; j < params.Len(); j++ {
			p := params.At(j)

			name := p.Name()
			if name == "" || name == "_" {
				name = "arg" + strconv.Itoa(j)
			}

			method.Params = append(method.Params, &Param{
				Method: method,
				Name:   name,
				Index:  j,
				Type:   a.analyzeType(p.Type()),
			})
		}

		results := sig.Results()
		for j := 0; j < results.Len(); j++ {
			method.Results = append(method.Results, a.analyzeType(results.At(j).Type()))
		}

		info.Methods = append(info.Methods, method)
	}
}

// declIndex maps type-checker objects of one package back to their syntax.
type declIndex struct {
	fset      *token.FileSet
	funcs     map[types.Object]*ast.FuncDecl
	typeDocs  map[types.Object]*ast.CommentGroup
	fieldDocs map[types.Object]*ast.CommentGroup
}

func newDeclIndex(pkg *packages.Package) *declIndex {
	idx := &declIndex{
		fset:      pkg.Fset,
		funcs:     make(map[types.Object]*ast.FuncDecl),
		typeDocs:  make(map[types.Object]*ast.CommentGroup),
		fieldDocs: make(map[types.Object]*ast.CommentGroup),
	}

	if pkg.TypesInfo == nil {
		return idx
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil {
					continue
				}

				if obj := pkg.TypesInfo.Defs[d.Name]; obj != nil {
					idx.funcs[obj] = d
				}

			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}

				for _, spec := range d.Specs {
					idx.addTypeSpec(pkg, d, spec.(*ast.TypeSpec))
				}
			}
		}
	}

	return idx
}

func (idx *declIndex) addTypeSpec(pkg *packages.Package, decl *ast.GenDecl, ts *ast.TypeSpec) {
	obj := pkg.TypesInfo.Defs[ts.Name]
	if obj == nil {
		return
	}

	doc := ts.Doc
	if doc == nil && len(decl.Specs) == 1 {
		doc = decl.Doc
	}
	idx.typeDocs[obj] = doc

	st, ok := ts.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return
	}

	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			if fobj := pkg.TypesInfo.Defs[name]; fobj != nil {
				idx.fieldDocs[fobj] = field.Doc
			}
		}
	}
}

func (idx *declIndex) position(pos token.Pos) string {
	if idx == nil || idx.fset == nil || !pos.IsValid() {
		return ""
	}

	p := idx.fset.Position(pos)

	return fmt.Sprintf("%s:%d", filepath.Base(p.Filename), p.Line)
}

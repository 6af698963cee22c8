package analyze

import (
	"go/types"
	"reflect"

	"gqlmeta/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "gqlmeta/examples/library"
	Name    string // e.g., "BookFilter"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the ID qualified by the package alias only (e.g., "library.BookFilter").
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindAlias              // named type wrapping another (e.g., type Status string)
	TypeKindExternal           // external/opaque type (e.g., time.Time)
	TypeKindInterface          // interface type
	TypeKindMap                // map type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindInterface:
		return "interface"
	case TypeKindMap:
		return "map"
	default:
		return common.UnknownStr
	}
}

// Role tells how a named type is exposed in the schema, taken from its
// gql:input or gql:object directive.
type Role int

const (
	RoleNone Role = iota
	RoleInput
	RoleObject
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleInput:
		return "input"
	case RoleObject:
		return "object"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	BasicName  string      // For basic types, the Go name ("int", "float64", ...)
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices and arrays, the element type
	Fields     []FieldInfo // For structs, the list of exported fields
	Methods    []*Method   // For named types in loaded packages, exported methods
	GoType     types.Type  // The original go/types.Type (nil for manifest types)

	// Documentation is the prose of the type's doc comment.
	Documentation string
	// DirectiveLines are the gql: directives attached to the type declaration.
	DirectiveLines []string
	// Role is set from a gql:input or gql:object directive.
	Role Role
	// IsDeclared is true for types declared in a manifest rather than Go source.
	IsDeclared bool
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsNullable reports whether a value of this type may be absent.
func (t *TypeInfo) IsNullable() bool {
	switch t.Kind {
	case TypeKindPointer, TypeKindInterface, TypeKindMap:
		return true
	default:
		return false
	}
}

// Method returns the method with the given Go name, or nil.
func (t *TypeInfo) Method(name string) *Method {
	for _, m := range t.Methods {
		if m.Name == name {
			return m
		}
	}

	return nil
}

// String returns a Go-like spelling of the type.
func (t *TypeInfo) String() string {
	switch t.Kind {
	case TypeKindPointer:
		return "*" + t.elemString()
	case TypeKindSlice, TypeKindArray:
		return "[]" + t.elemString()
	case TypeKindBasic:
		if t.BasicName != "" {
			return t.BasicName
		}
	}

	if t.IsNamed() {
		return t.ID.Short()
	}

	if t.GoType != nil {
		return t.GoType.String()
	}

	return t.Kind.String()
}

func (t *TypeInfo) elemString() string {
	if t.ElemType == nil {
		return "?"
	}

	return t.ElemType.String()
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Owner    TypeID            // Struct the field belongs to
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct

	Documentation  string
	DirectiveLines []string
	Pos            string
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from loaded packages and manifests.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// AddType registers a named type, creating its package entry if needed.
func (g *TypeGraph) AddType(info *TypeInfo) {
	g.Types[info.ID] = info

	pkg, ok := g.Packages[info.ID.PkgPath]
	if !ok {
		pkg = &PackageInfo{Path: info.ID.PkgPath, Name: common.PkgAlias(info.ID.PkgPath)}
		g.Packages[info.ID.PkgPath] = pkg
	}

	pkg.Types = append(pkg.Types, info.ID)
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}

package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
)

// NameResolver looks up a named type by the spelling used in a type string
// ("BookFilter" or "library.BookFilter"). It returns nil when unknown.
type NameResolver func(name string) *TypeInfo

// ParseTypeString converts a Go type expression such as "[]*int" or
// "*library.BookFilter" into a TypeInfo.
func ParseTypeString(s string, resolve NameResolver) (*TypeInfo, error) {
	expr, err := parser.ParseExpr(s)
	if err != nil {
		return nil, fmt.Errorf("invalid type %q: %w", s, err)
	}

	info, err := typeFromExpr(expr, resolve)
	if err != nil {
		return nil, fmt.Errorf("invalid type %q: %w", s, err)
	}

	return info, nil
}

func typeFromExpr(expr ast.Expr, resolve NameResolver) (*TypeInfo, error) {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return typeFromExpr(e.X, resolve)

	case *ast.StarExpr:
		elem, err := typeFromExpr(e.X, resolve)
		if err != nil {
			return nil, err
		}

		return &TypeInfo{Kind: TypeKindPointer, ElemType: elem}, nil

	case *ast.ArrayType:
		elem, err := typeFromExpr(e.Elt, resolve)
		if err != nil {
			return nil, err
		}

		kind := TypeKindSlice
		if e.Len != nil {
			kind = TypeKindArray
		}

		return &TypeInfo{Kind: kind, ElemType: elem}, nil

	case *ast.MapType:
		return &TypeInfo{Kind: TypeKindMap}, nil

	case *ast.InterfaceType:
		return &TypeInfo{Kind: TypeKindInterface}, nil

	case *ast.Ident:
		if basic := universeBasic(e.Name); basic != nil {
			return &TypeInfo{Kind: TypeKindBasic, BasicName: basic.Name(), GoType: basic}, nil
		}

		return resolveNamed(e.Name, resolve)

	case *ast.SelectorExpr:
		pkg, ok := e.X.(*ast.Ident)
		if !ok {
			return nil, errors.New("unsupported qualified name")
		}

		return resolveNamed(pkg.Name+"."+e.Sel.Name, resolve)

	default:
		return nil, fmt.Errorf("unsupported type expression %T", expr)
	}
}

func resolveNamed(name string, resolve NameResolver) (*TypeInfo, error) {
	if resolve != nil {
		if info := resolve(name); info != nil {
			return info, nil
		}
	}

	return nil, fmt.Errorf("unknown type %q", name)
}

func universeBasic(name string) *types.Basic {
	obj, ok := types.Universe.Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	basic, _ := obj.Type().(*types.Basic)

	return basic
}

// FindByName returns a NameResolver over the graph that matches a bare type
// name, a package-alias qualified name, or a full "path.Name" ID.
func (g *TypeGraph) FindByName() NameResolver {
	return func(name string) *TypeInfo {
		for id, t := range g.Types {
			if id.Name == name || id.Short() == name || id.String() == name {
				return t
			}
		}

		return nil
	}
}

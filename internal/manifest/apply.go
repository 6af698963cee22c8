package manifest

import (
	"fmt"
	"path/filepath"
	"reflect"

	"gqlmeta/internal/analyze"
)

// Apply adds the declared types to graph. Declared types may refer to each
// other and to types already in the graph. Every signature is parsed before
// the graph is touched, so a failed Apply leaves graph unchanged.
func (mf *File) Apply(graph *analyze.TypeGraph) error {
	declared := make([]*analyze.TypeInfo, len(mf.Types))

	for i, ts := range mf.Types {
		id := analyze.TypeID{PkgPath: mf.Package, Name: ts.Name}
		if existing := graph.GetType(id); existing != nil {
			return fmt.Errorf("type %s is already defined", id)
		}

		prose, directives := analyze.SplitDoc(ts.Doc)

		declared[i] = &analyze.TypeInfo{
			ID:             id,
			Kind:           analyze.TypeKindStruct,
			Documentation:  prose,
			DirectiveLines: directives,
			Role:           roleOf(ts.Role),
			IsDeclared:     true,
		}
	}

	resolve := mf.resolver(graph, declared)

	for i, ts := range mf.Types {
		if err := mf.fill(declared[i], ts, resolve); err != nil {
			return fmt.Errorf("type %s: %w", ts.Name, err)
		}
	}

	for _, info := range declared {
		graph.AddType(info)
	}

	return nil
}

// resolver prefers the types declared by this manifest, then other types of
// its package.
func (mf *File) resolver(graph *analyze.TypeGraph, declared []*analyze.TypeInfo) analyze.NameResolver {
	fallback := graph.FindByName()

	return func(name string) *analyze.TypeInfo {
		for _, info := range declared {
			if info.ID.Name == name || info.ID.Short() == name || info.ID.String() == name {
				return info
			}
		}

		if info := graph.GetType(analyze.TypeID{PkgPath: mf.Package, Name: name}); info != nil {
			return info
		}

		return fallback(name)
	}
}

func (mf *File) fill(info *analyze.TypeInfo, ts TypeSpec, resolve analyze.NameResolver) error {
	pos := mf.position(ts.Name)

	for i, fs := range ts.Fields {
		typ, err := analyze.ParseTypeString(fs.Type, resolve)
		if err != nil {
			return fmt.Errorf("field %s: %w", fs.Name, err)
		}

		prose, directives := analyze.SplitDoc(fs.Doc)

		info.Fields = append(info.Fields, analyze.FieldInfo{
			Owner:          info.ID,
			Name:           fs.Name,
			Exported:       true,
			Type:           typ,
			Tag:            reflect.StructTag(fs.Tag),
			Index:          i,
			Documentation:  prose,
			DirectiveLines: directives,
			Pos:            pos,
		})
	}

	for _, ms := range ts.Methods {
		method, err := mf.method(info.ID, ms, resolve)
		if err != nil {
			return fmt.Errorf("method %s: %w", ms.Name, err)
		}

		info.Methods = append(info.Methods, method)
	}

	return nil
}

func (mf *File) method(owner analyze.TypeID, ms MethodSpec, resolve analyze.NameResolver) (*analyze.Method, error) {
	prose, directives := analyze.SplitDoc(ms.Doc)

	m := &analyze.Method{
		Owner:          owner,
		Name:           ms.Name,
		Documentation:  prose,
		DirectiveLines: directives,
		Pos:            mf.position(owner.Name + "." + ms.Name),
	}

	for i, ps := range ms.Params {
		param := &analyze.Param{
			Method:  m,
			Name:    ps.Name,
			Index:   i,
			Default: ps.Default,
		}

		if ps.Type != "" {
			typ, err := analyze.ParseTypeString(ps.Type, resolve)
			if err != nil {
				return nil, fmt.Errorf("param %s: %w", ps.Name, err)
			}
			param.Type = typ
		}

		m.Params = append(m.Params, param)
	}

	for _, r := range ms.Returns {
		typ, err := analyze.ParseTypeString(r, resolve)
		if err != nil {
			return nil, fmt.Errorf("result %s: %w", r, err)
		}

		m.Results = append(m.Results, typ)
	}

	return m, nil
}

func (mf *File) position(what string) string {
	source := "manifest"
	if mf.Source != "" {
		source = filepath.Base(mf.Source)
	}

	return source + "#" + what
}

func roleOf(role string) analyze.Role {
	switch role {
	case "input":
		return analyze.RoleInput
	case "object":
		return analyze.RoleObject
	default:
		return analyze.RoleNone
	}
}

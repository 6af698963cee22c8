// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of named types, their fields and
// their methods, together with doc comments and gql: directives.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/external)
//   - FieldInfo: describes field name, type, tags, and embedding
//   - Method, Param: method signatures with their documentation
//   - Element: the common view of fields, methods and parameters used by
//     the resolution pipeline
package analyze

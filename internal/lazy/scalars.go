package lazy

import (
	"gqlmeta/internal/schema"
)

// basicScalars maps Go basic type names to built-in scalars. ID is never
// inferred from a Go type; it must be named explicitly.
var basicScalars = map[string]*schema.Scalar{
	"int":     schema.Int,
	"int8":    schema.Int,
	"int16":   schema.Int,
	"int32":   schema.Int,
	"int64":   schema.Int,
	"uint":    schema.Int,
	"uint8":   schema.Int,
	"uint16":  schema.Int,
	"uint32":  schema.Int,
	"uint64":  schema.Int,
	"float32": schema.Float,
	"float64": schema.Float,
	"string":  schema.String,
	"bool":    schema.Boolean,
}

// scalarAliases lets type expressions in comments and directives use Go or
// common lowercase spellings of the built-in scalars.
var scalarAliases = map[string]string{
	"int":     "Int",
	"integer": "Int",
	"int32":   "Int",
	"int64":   "Int",
	"float":   "Float",
	"float32": "Float",
	"float64": "Float",
	"double":  "Float",
	"string":  "String",
	"bool":    "Boolean",
	"boolean": "Boolean",
}

// ScalarFor returns the built-in scalar for a Go basic type name.
func ScalarFor(basicName string) (*schema.Scalar, bool) {
	s, ok := basicScalars[basicName]
	return s, ok
}

// CanonicalName maps scalar aliases ("int", "bool", ...) to their GraphQL
// names and returns other names unchanged.
func CanonicalName(name string) string {
	if canonical, ok := scalarAliases[name]; ok {
		return canonical
	}

	return name
}

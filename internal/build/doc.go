// Package build materializes GraphQL types from an analyzed type graph.
//
// The Builder is the registry's type factory. Named Go types marked
// gql:object become objects; every other struct becomes an input object.
// Fields are computed lazily on first use, so types may refer to
// themselves and each other:
//
//   - input object fields come from setter methods (one parameter, a
//     mutator prefix or a gql:field directive) and from struct fields with
//     a gql tag or directive
//   - object fields come from methods with a gql:field directive, whose
//     parameters become arguments, and from tagged struct fields
//
// Arguments and input fields are resolved by the resolve pipeline. A Schema
// forces everything reachable from its root types and reports each broken
// element as a diagnostic.
package build

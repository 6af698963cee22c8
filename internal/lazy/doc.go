// Package lazy provides deferred, memoized references to GraphQL types.
//
// A Ref is created while metadata is resolved and forced only when the
// surrounding schema construct is materialized. Deferring the lookup lets a
// type refer to itself, or to a type that has not been built yet, without
// recursing at declaration time.
//
// A Ref is created from one of three sources:
//   - a type expression such as "[Int!]!" (ByName)
//   - a structural Go type annotation (ByAnnotation)
//   - a full method parameter, whose declared type is used (ByParam)
//
// Named types are obtained from a Lookup, normally the type registry, which
// guarantees one object per name.
package lazy

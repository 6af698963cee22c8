// Package descriptor defines the resolved form of a GraphQL argument or
// input object field before it is turned into a schema construct.
//
// A Descriptor is produced exactly once per reflected element by the
// resolution pipeline and is treated as read-only afterwards.
//
// Key types:
//   - Descriptor: name, lazy type reference, wrapping mode, description,
//     deprecation reason and default value
//   - TypeMode: how the base type is wrapped in List/NonNull
//   - Default: a tri-state default value (unset, set to a value, set to null)
package descriptor

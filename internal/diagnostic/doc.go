// Package diagnostic provides structured errors and warnings collected while
// building a schema.
//
// Key capabilities:
//   - Per-element failures with a stable code
//   - "Did you mean" suggestions for unknown type names
//   - Strict and lenient handling of the same result
package diagnostic

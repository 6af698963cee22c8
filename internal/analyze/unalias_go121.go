//go:build !go1.22

package analyze

import "go/types"

// unalias is the identity before Go 1.22: go/types has no *types.Alias
// there, so alias types are already resolved to their targets.
func unalias(t types.Type) types.Type { return t }

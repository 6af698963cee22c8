//go:build go1.22

package analyze

import "go/types"

// unalias forwards to types.Unalias, which exists from Go 1.22 onward.
func unalias(t types.Type) types.Type { return types.Unalias(t) }

package descriptor

import (
	"fmt"

	"gqlmeta/internal/common"
	"gqlmeta/internal/schema"
)

// TypeMode describes how a base type is wrapped.
type TypeMode int

const (
	ModeRequired     TypeMode = 1 << iota // outermost type is non-null
	ModeList                              // base type is wrapped in a list
	ModeItemRequired                      // list items are non-null

	modeMask = ModeRequired | ModeList | ModeItemRequired
)

// Named wrapping modes.
const (
	ModePlain                TypeMode = 0
	ModeNonNull                       = ModeRequired
	ModeNonNullList                   = ModeRequired | ModeList
	ModeListOfNonNull                 = ModeList | ModeItemRequired
	ModeNonNullListOfNonNull          = ModeRequired | ModeList | ModeItemRequired
)

var modeNames = map[TypeMode]string{
	ModePlain:                "plain",
	ModeNonNull:              "non-null",
	ModeList:                 "list",
	ModeNonNullList:          "non-null-list",
	ModeListOfNonNull:        "list-of-non-null",
	ModeNonNullListOfNonNull: "non-null-list-of-non-null",
}

// ParseTypeMode parses a mode name as produced by TypeMode.String.
func ParseTypeMode(s string) (TypeMode, error) {
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}

	return ModePlain, fmt.Errorf("unknown type mode %q", s)
}

// IsValid reports whether m is one of the named modes.
func (m TypeMode) IsValid() bool {
	if m&^modeMask != 0 {
		return false
	}

	return m&ModeItemRequired == 0 || m&ModeList != 0
}

// IsRequired reports whether the outermost type is non-null.
func (m TypeMode) IsRequired() bool { return m&ModeRequired != 0 }

// IsList reports whether the base type is wrapped in a list.
func (m TypeMode) IsList() bool { return m&ModeList != 0 }

// String returns the mode name.
func (m TypeMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return common.UnknownStr
}

// Wrap applies the mode to t, innermost wrapper first.
func (m TypeMode) Wrap(t schema.Type) schema.Type {
	if m&ModeList != 0 {
		if m&ModeItemRequired != 0 {
			t = &schema.NonNull{OfType: t}
		}

		t = &schema.List{OfType: t}
	}

	if m&ModeRequired != 0 {
		t = &schema.NonNull{OfType: t}
	}

	return t
}

package common

import (
	"unicode"
	"unicode/utf8"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

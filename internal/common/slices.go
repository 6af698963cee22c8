package common

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether s has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

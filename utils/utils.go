package utils

// CheckDuplicates reports whether any element's key equals value. It is a
// pure O(n) scan and never mutates items; the entity store uses it to keep
// the one-line-per-product invariant.
func CheckDuplicates[T any](items []T, key func(T) string, value string) bool {
	for _, item := range items {
		if key(item) == value {
			return true
		}
	}
	return false
}

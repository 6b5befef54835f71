package utils

// Ptr returns a pointer to v; a helper for optional fixture fields.
func Ptr[T any](v T) *T {
	return &v
}

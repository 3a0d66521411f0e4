package ptr

// Ptr returns a pointer to the given value.
// Useful for building optional fields in request and filter structs.
func Ptr[T any](v T) *T {
	return &v
}

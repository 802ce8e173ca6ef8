package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Ptr returns a pointer to v. Handy for building TaskPatch values.
func Ptr[T any](v T) *T {
	return &v
}

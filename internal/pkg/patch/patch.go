// Package patch helps apply partial updates where a nil pointer means
// "leave unchanged".
package patch

func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}

// Changed is false for a nil ptr and for a value equal to current, so a
// resubmitted form counts as no change.
func Changed[T comparable](ptr *T, current T) bool {
	if ptr == nil {
		return false
	}
	return *ptr != current
}

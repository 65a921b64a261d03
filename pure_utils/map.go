package pure_utils

import "slices"

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// MapErr returns a new slice with the same length as src, but with values transformed by f
// If f returns an error, the function stops and returns the error.
func MapErr[T, U any](src []T, f func(T) (U, error)) ([]U, error) {
	us := make([]U, len(src))
	for i := range src {
		var err error
		us[i], err = f(src[i])
		if err != nil {
			return nil, err
		}
	}
	return us, nil
}

// Filter returns a new slice holding the elements of src for which f is true.
func Filter[T any](src []T, f func(T) bool) []T {
	out := make([]T, 0, len(src))
	for _, item := range src {
		if f(item) {
			out = append(out, item)
		}
	}
	return slices.Clip(out)
}

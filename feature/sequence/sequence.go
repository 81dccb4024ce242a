package sequence

import "github.com/samber/lo"

// ConcatenateArrays returns the elements of every slice in argument order,
// keeping the order inside each slice. No arguments yield an empty slice.
func ConcatenateArrays[T any](arrays ...[]T) []T {
	return lo.Flatten(arrays)
}

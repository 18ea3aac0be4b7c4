package utils

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Returns an array with all the keys of a map, sorted in ascending order
func Keys[Key constraints.Ordered, Value any](input map[Key]Value) []Key {
	keys := make([]Key, 0, len(input))

	for key := range input {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	return keys
}

// Package utils implements generic helper functions shared across the module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// MinSlice returns the smallest element of slice.
// The slice must be non-empty.
func MinSlice[V constraints.Ordered](slice []V) (min V) {
	min = slice[0]
	for _, v := range slice[1:] {
		if v < min {
			min = v
		}
	}
	return
}

// MaxSlice returns the largest element of slice.
// The slice must be non-empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	max = slice[0]
	for _, v := range slice[1:] {
		if v > max {
			max = v
		}
	}
	return
}

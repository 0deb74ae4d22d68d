// Package util provides a collection of domain-agnostic utility functions.
package util

import (
	"golang.org/x/exp/constraints"
)

// Max returns the largest of the given values.
func Max[T constraints.Ordered](values ...T) T {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](values ...T) T {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

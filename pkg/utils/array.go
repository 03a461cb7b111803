package utils

import (
	"golang.org/x/exp/constraints"
)

// Reduces a sequence to a value given an accumulation function
func Reduce[T any, U any](input []T, foldFunc func(T, U) U) U {
	var result U

	for _, value := range input {
		result = foldFunc(value, result)
	}

	return result
}

// Reduces a sequence by adding up the value returned by a function applied to each item
func Accumulate[T any, U constraints.Integer | constraints.Float](input []T, value func(T) U) U {
	return Reduce(input, func(item T, current U) U {
		return value(item) + current
	})
}

// Returns a sequence of references to the items of an slice
func Refs[T any](input []T) []*T {
	output := make([]*T, len(input))

	for i := range input {
		output[i] = &input[i]
	}

	return output
}

// Returns a sequence of references to the items of an slice in reverse order
func ReversedRefs[T any](input []T) []*T {
	output := make([]*T, len(input))

	for i := range input {
		output[len(input)-i-1] = &input[i]
	}

	return output
}

// Returns a sequence of references to the items on an slice, reversed or not based on a condition
func ConditionallyReversedRefs[T any](input []T, reversed bool) []*T {
	if reversed {
		return ReversedRefs(input)
	} else {
		return Refs(input)
	}
}

// Returns the biggest item of a sequence
func Max[T constraints.Ordered](input []T) T {
	max := input[0]

	for _, item := range input {
		if item > max {
			max = item
		}
	}

	return max
}

// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with order-preserving
filtering leveraging generics.
*/
package slice

// Filter returns the elements for which predicate is true, in their original
// relative order. The input is never modified.
//
// The result is always non-nil so that an empty match encodes as [] in JSON.
func Filter[T any](input []T, predicate func(T) bool) []T {
	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	result := make([]T, 0)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

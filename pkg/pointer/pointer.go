// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Partial updates model "field not supplied" as a nil pointer; these helpers keep
that pattern free of boilerplate.

Assign overwrites a destination only when the source is set.
*/
package pointer

// Assign copies *src into *dst when src is non-nil and reports whether it did.
func Assign[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}

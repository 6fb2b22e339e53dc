// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

/*
Package pointer converts between values and the optional (pointer) fields
used by the catalog row types.

Nullable columns scan into pointers; API payloads flatten most of them back
to plain values with "" or 0 standing in for NULL.
*/
package pointer

// To returns a pointer to a copy of value.
func To[T any](value T) *T {
	return &value
}

// Val dereferences p, returning the zero value of T when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

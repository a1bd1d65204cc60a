// Package slicesx carries the generic list helpers the standard slices
// package stops short of.
package slicesx

import "github.com/osteele/go-extras/pkg/maybe"

// Filter returns the elements of list for which keep returns true.
func Filter[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// MapTo applies f to every element of list.
func MapTo[T any, U any](list []T, f func(T) U) []U {
	out := make([]U, len(list))
	for i, v := range list {
		out[i] = f(v)
	}
	return out
}

// Chunk splits list into runs of at most size elements. The chunks alias
// the backing array of list. A non-positive size yields nil.
func Chunk[T any](list []T, size int) [][]T {
	if size <= 0 {
		return nil
	}

	out := make([][]T, 0, (len(list)+size-1)/size)
	for start := 0; start < len(list); start += size {
		end := min(start+size, len(list))
		out = append(out, list[start:end:end])
	}
	return out
}

// Uniq keeps the first occurrence of each element, preserving order.
func Uniq[T comparable](list []T) []T {
	seen := make(map[T]struct{}, len(list))
	out := make([]T, 0, len(list))

	for _, v := range list {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Find returns the first element for which match returns true.
func Find[T any](list []T, match func(T) bool) maybe.Maybe[T] {
	for _, v := range list {
		if match(v) {
			return maybe.Some(v)
		}
	}
	return maybe.None[T]()
}

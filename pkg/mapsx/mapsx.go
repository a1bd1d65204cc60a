// Package mapsx carries small generic helpers for built-in maps.
package mapsx

import (
	"cmp"
	"slices"

	"github.com/osteele/go-extras/pkg/maybe"
)

// GetOr returns m[k], or def when the key is absent.
func GetOr[K comparable, V any](m map[K]V, k K, def V) V {
	if v, ok := m[k]; ok {
		return v
	}
	return def
}

// Lookup wraps map access in a Maybe.
func Lookup[K comparable, V any](m map[K]V, k K) maybe.Maybe[V] {
	if v, ok := m[k]; ok {
		return maybe.Some(v)
	}
	return maybe.None[V]()
}

// Merge copies the entries of each src into dst in argument order, later
// sources winning on key collisions, and returns dst. A nil dst is
// allocated first.
func Merge[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Package maybe provides an optional value type for code where a nil
// pointer or a (value, bool) pair is too easy to misuse.
package maybe

import "github.com/pkg/errors"

// Maybe holds either a T or nothing. The zero value is None.
type Maybe[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr wraps a possibly nil pointer; nil becomes None.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (m Maybe[T]) IsSome() bool {
	return m.ok
}

func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// OrElse returns the held value, or def when there is none.
func (m Maybe[T]) OrElse(def T) T {
	if !m.ok {
		return def
	}
	return m.value
}

// Ptr returns a pointer to a copy of the held value, or nil when none.
func (m Maybe[T]) Ptr() *T {
	if !m.ok {
		return nil
	}
	v := m.value
	return &v
}

// MustGet returns the held value and panics on None.
func (m Maybe[T]) MustGet() T {
	if !m.ok {
		panic(errors.New("maybe: MustGet on None"))
	}
	return m.value
}

// Map transforms the held value, preserving None.
func Map[T any, U any](m Maybe[T], f func(T) U) Maybe[U] {
	v, ok := m.Get()
	if !ok {
		return None[U]()
	}
	return Some(f(v))
}

// Bind chains a computation that may itself come up empty.
func Bind[T any, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	v, ok := m.Get()
	if !ok {
		return None[U]()
	}
	return f(v)
}

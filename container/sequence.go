// Package container provides the from-scratch storage primitives the
// graph model is built on: a growable indexable sequence, an
// append-only singly linked list and a LIFO stack.
//
// None of the containers are safe for concurrent use.
package container

import "errors"

// ErrOutOfRange is returned by index-based access outside [0, Len).
var ErrOutOfRange = errors.New("container: index out of range")

// ErrEmptyContainer is returned when popping an empty stack.
var ErrEmptyContainer = errors.New("container: container is empty")

const minCapacity = 2

// Sequence is an indexable buffer with amortized O(1) append. The
// backing storage doubles whenever an append would exceed its
// capacity, preserving element order. The zero value is an empty
// sequence ready for use.
type Sequence[T any] struct {
	data []T
	size int
}

// NewSequence returns an empty sequence with the minimum capacity
// pre-allocated.
func NewSequence[T any]() *Sequence[T] {
	return &Sequence[T]{data: make([]T, minCapacity)}
}

// Len returns the number of stored elements.
func (s *Sequence[T]) Len() int { return s.size }

// Cap returns the capacity of the backing storage.
func (s *Sequence[T]) Cap() int { return len(s.data) }

// Append stores v behind the last element, doubling the backing
// storage first if it is full.
func (s *Sequence[T]) Append(v T) {
	if s.size == len(s.data) {
		n := 2 * len(s.data)
		if n < minCapacity {
			n = minCapacity
		}
		s.resize(n)
	}
	s.data[s.size] = v
	s.size++
}

// Get returns the element at index i. It returns ErrOutOfRange unless
// 0 <= i < Len().
func (s *Sequence[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.size {
		var none T
		return none, ErrOutOfRange
	}
	return s.data[i], nil
}

// Set replaces the element at index i. It returns ErrOutOfRange unless
// 0 <= i < Len().
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.size {
		return ErrOutOfRange
	}
	s.data[i] = v
	return nil
}

// Slice returns a copy of the stored elements in order.
func (s *Sequence[T]) Slice() []T {
	out := make([]T, s.size)
	copy(out, s.data[:s.size])
	return out
}

func (s *Sequence[T]) resize(n int) {
	data := make([]T, n)
	copy(data, s.data[:s.size])
	s.data = data
}

// shrink drops the last element by reducing the logical length. The
// vacated slot keeps its old value but cannot be reached through
// bounds-checked access. Used by Stack.
func (s *Sequence[T]) shrink() { s.size-- }

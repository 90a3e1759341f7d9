// Package api
// Author: momentics@gmail.com
//
// Bounded double-ended queue contract.

package api

// Deque is a fixed-capacity double-ended queue contract.
// Implementations are single-threaded; callers sequence all operations.
type Deque[T any] interface {
	// PushFront inserts at the front; fails with ErrCapacityExceeded when full.
	PushFront(item T) error
	// PushBack inserts at the back; fails with ErrCapacityExceeded when full.
	PushBack(item T) error
	// PopFront removes and returns the front element.
	PopFront() (T, error)
	// PopBack removes and returns the back element.
	PopBack() (T, error)
	// Front returns the front element without removing it.
	Front() (T, error)
	// Back returns the back element without removing it.
	Back() (T, error)
	// Len returns current number of elements.
	Len() int
	// Cap returns allocated slot capacity.
	Cap() int
	// IsEmpty reports whether the deque holds no elements.
	IsEmpty() bool
	// IsFull reports whether no further insertion can succeed.
	IsFull() bool
}

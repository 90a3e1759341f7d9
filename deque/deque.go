// File: deque/deque.go
// Package deque implements a fixed-capacity double-ended queue over a
// single contiguous slot block allocated once at construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The logical sequence lives between the head and tail cursors and wraps
// from the last slot back to the first. head == -1 is the canonical empty
// marker; one slot is permanently sacrificed so that a completely full
// buffer is distinguishable from an empty one.
//
// Deque is not safe for concurrent use; callers sequence all operations.

package deque

import (
	"fmt"

	"github.com/momentics/ringdeque/api"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Deque[any])(nil)

// Deque is a bounded double-ended queue backed by a circular slot block.
type Deque[T any] struct {
	slots    []T
	capacity int // even, fixed at construction
	head     int // index of the front element, -1 when empty
	tail     int // index of the back element, meaningful only when head != -1
	declared int // frozen at capacity; diagnostics only, never updated
}

// Option configures construction of a Deque.
type Option[T any] func(*Deque[T])

// WithSlots supplies a preallocated backing block, e.g. a region obtained
// from package alloc. The block must hold at least the rounded capacity.
func WithSlots[T any](slots []T) Option[T] {
	return func(d *Deque[T]) {
		d.slots = slots
	}
}

// New allocates a deque for at least the requested number of elements.
// The capacity is the requested size rounded up to the nearest even
// number; one slot of it is reserved, so Usable() reports capacity-1.
func New[T any](requested int, opts ...Option[T]) *Deque[T] {
	if requested < 0 {
		panic(fmt.Sprintf("deque: negative size %d", requested))
	}
	capacity := requested + requested%2
	d := &Deque[T]{
		capacity: capacity,
		head:     -1,
		tail:     0,
		declared: capacity,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.slots == nil {
		d.slots = make([]T, capacity)
	} else if len(d.slots) < capacity {
		panic(fmt.Sprintf("deque: backing block holds %d slots, capacity %d", len(d.slots), capacity))
	}
	return d
}

// FromSlice builds a deque of the requested size and front-inserts each
// element of elems in turn. Every element becomes the new front, so the
// result holds elems in reverse order. Callers needing insertion order
// should push to the back instead.
func FromSlice[T any](requested int, elems []T) (*Deque[T], error) {
	d := New[T](requested)
	for _, v := range elems {
		if err := d.PushFront(v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.head == -1
}

// IsFull reports whether every usable slot is occupied: the free gap
// between the back and front cursors has shrunk to the single reserved
// slot, i.e. head sits two positions past tail going clockwise.
func (d *Deque[T]) IsFull() bool {
	if d.capacity == 0 {
		return true
	}
	if d.head == -1 {
		return false
	}
	return d.head == (d.tail+2)%d.capacity
}

// Len returns the number of live elements, derived from the cursors:
// the straight span when head <= tail, the wrapped span otherwise.
func (d *Deque[T]) Len() int {
	if d.head == -1 {
		return 0
	}
	if d.head <= d.tail {
		return d.tail - d.head + 1
	}
	return d.capacity - d.head + d.tail + 1
}

// Cap returns the allocated slot capacity.
func (d *Deque[T]) Cap() int {
	return d.capacity
}

// Usable returns the number of slots available for elements: the
// allocated capacity minus the one reserved slot.
func (d *Deque[T]) Usable() int {
	if d.capacity == 0 {
		return 0
	}
	return d.capacity - 1
}

// PushBack inserts v behind the current back element.
func (d *Deque[T]) PushBack(v T) error {
	if d.IsFull() {
		return errCapacityExceeded(d)
	}
	if d.head == -1 {
		d.head = 0
		d.tail = 0
	} else if d.tail == d.capacity-1 {
		d.tail = 0
	} else {
		d.tail++
	}
	d.slots[d.tail] = v
	return nil
}

// PushFront inserts v ahead of the current front element.
func (d *Deque[T]) PushFront(v T) error {
	if d.IsFull() {
		return errCapacityExceeded(d)
	}
	if d.head == -1 {
		d.head = 0
		d.tail = 0
	} else if d.head == 0 {
		d.head = d.capacity - 1
	} else {
		d.head--
	}
	d.slots[d.head] = v
	return nil
}

// PopFront removes and returns the front element. Removing the last
// element resets both cursors to the empty sentinel.
func (d *Deque[T]) PopFront() (T, error) {
	v, err := d.Front()
	if err != nil {
		var zero T
		return zero, err
	}
	idx := d.head
	if d.head == d.tail {
		d.head = -1
		d.tail = -1
	} else if d.head == d.capacity-1 {
		d.head = 0
	} else {
		d.head++
	}
	var zero T
	d.slots[idx] = zero // release the vacated slot's reference
	return v, nil
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, error) {
	v, err := d.Back()
	if err != nil {
		var zero T
		return zero, err
	}
	idx := d.tail
	if d.head == d.tail {
		d.head = -1
		d.tail = -1
	} else if d.tail == 0 {
		d.tail = d.capacity - 1
	} else {
		d.tail--
	}
	var zero T
	d.slots[idx] = zero
	return v, nil
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, error) {
	if d.head == -1 {
		var zero T
		return zero, errEmptyAccess(d, "front")
	}
	return d.slots[d.head], nil
}

// Back returns the back element without removing it. tail is checked
// independently, since it also goes negative on the empty reset.
func (d *Deque[T]) Back() (T, error) {
	if d.head == -1 || d.tail < 0 {
		var zero T
		return zero, errEmptyAccess(d, "back")
	}
	return d.slots[d.tail], nil
}

// String renders cursor state for diagnostics.
func (d *Deque[T]) String() string {
	return fmt.Sprintf("deque{len=%d cap=%d head=%d tail=%d declared=%d}",
		d.Len(), d.capacity, d.head, d.tail, d.declared)
}

func errCapacityExceeded[T any](d *Deque[T]) error {
	return api.NewError(api.ErrCodeCapacityExceeded, "deque capacity exceeded").
		WithContext("declared", d.declared).
		WithContext("usable", d.Usable())
}

func errEmptyAccess[T any](d *Deque[T], op string) error {
	return api.NewError(api.ErrCodeEmptyAccess, "access on empty deque").
		WithContext("op", op).
		WithContext("declared", d.declared)
}

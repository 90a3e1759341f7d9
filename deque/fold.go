// File: deque/fold.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Draining consumers layered on the deque primitives.

package deque

// Fold drains d from the front, threading acc through f, and returns the
// final accumulator once d is empty. For a deque built by back-insertion
// the elements are visited in insertion order. d is consumed.
func Fold[T, A any](d *Deque[T], acc A, f func(A, T) A) A {
	for {
		v, err := d.PopFront()
		if err != nil {
			return acc
		}
		acc = f(acc, v)
	}
}

// FlatMap expands every element of d through f and back-inserts the
// produced elements, in order, into a fresh deque preallocated at d's
// declared capacity. The result capacity is NOT grown: total output
// beyond the input's usable capacity fails with ErrCapacityExceeded.
// d is consumed, even on failure.
func FlatMap[T, U any](d *Deque[T], f func(T) []U) (*Deque[U], error) {
	out := New[U](d.declared)
	for {
		v, err := d.PopFront()
		if err != nil {
			return out, nil
		}
		for _, u := range f(v) {
			if err := out.PushBack(u); err != nil {
				return nil, err
			}
		}
	}
}

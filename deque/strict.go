// File: deque/strict.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Abort-on-violation variants. Callers ported from environments where a
// precondition violation terminates the process use these instead of
// handling error returns.

package deque

// fatal handles contract violations raised by the Must variants.
var fatal = func(err error) {
	panic(err)
}

// SetFatalHandler replaces the handler invoked by the Must variants on
// contract violation. The default panics. Intended for embedders that
// log-and-abort, and for tests.
func SetFatalHandler(f func(error)) {
	if f == nil {
		f = func(err error) { panic(err) }
	}
	fatal = f
}

// MustPushBack inserts at the back or aborts when the deque is full.
func (d *Deque[T]) MustPushBack(v T) {
	if err := d.PushBack(v); err != nil {
		fatal(err)
	}
}

// MustPushFront inserts at the front or aborts when the deque is full.
func (d *Deque[T]) MustPushFront(v T) {
	if err := d.PushFront(v); err != nil {
		fatal(err)
	}
}

// MustPopFront removes the front element or aborts when the deque is empty.
func (d *Deque[T]) MustPopFront() T {
	v, err := d.PopFront()
	if err != nil {
		fatal(err)
	}
	return v
}

// MustPopBack removes the back element or aborts when the deque is empty.
func (d *Deque[T]) MustPopBack() T {
	v, err := d.PopBack()
	if err != nil {
		fatal(err)
	}
	return v
}

// MustFront returns the front element or aborts when the deque is empty.
func (d *Deque[T]) MustFront() T {
	v, err := d.Front()
	if err != nil {
		fatal(err)
	}
	return v
}

// MustBack returns the back element or aborts when the deque is empty.
func (d *Deque[T]) MustBack() T {
	v, err := d.Back()
	if err != nil {
		fatal(err)
	}
	return v
}

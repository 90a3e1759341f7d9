// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/momentics/ringdeque/deque"
)

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// Ensure compile-time interface compliance.
var _ ObjectPool[any] = (*FreeList[any])(nil)

// FreeList is a bounded object pool. Released objects sit on a
// fixed-capacity deque; Get prefers the most recently released object
// so hot objects stay cache-warm. The deque itself is single-threaded,
// so a mutex guards it here.
type FreeList[T any] struct {
	mu      sync.Mutex
	free    *deque.Deque[T]
	limit   int
	creator func() T
}

// NewFreeList creates a pool bounded to size retained objects, using
// creator when the freelist is empty. The deque is sized one slot past
// the bound to cover its reserved slot; Put enforces the bound itself.
func NewFreeList[T any](size int, creator func() T) *FreeList[T] {
	return &FreeList[T]{
		free:    deque.New[T](size + 1),
		limit:   size,
		creator: creator,
	}
}

// Get returns a pooled object, or a fresh one when none is retained.
func (p *FreeList[T]) Get() T {
	p.mu.Lock()
	v, err := p.free.PopBack()
	p.mu.Unlock()
	if err != nil {
		return p.creator()
	}
	return v
}

// Put retains obj for reuse. Once the bound is reached the object is
// dropped and left to the garbage collector.
func (p *FreeList[T]) Put(obj T) {
	p.mu.Lock()
	if p.free.Len() < p.limit {
		_ = p.free.PushBack(obj)
	}
	p.mu.Unlock()
}

// Retained returns the number of objects currently held.
func (p *FreeList[T]) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Len()
}

// Package alloc provides the raw-block allocator used for deque backing
// storage. The default platform allocator hands out anonymous mapped
// pages on Linux and plain heap slices elsewhere.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The contract is intentionally small: Alloc returns at least n
// contiguous addressable bytes with no zero-initialization promise
// beyond what the platform gives, and Free returns a block obtained
// from the same allocator. See alloc_linux.go and alloc_stub.go.
package alloc

// Allocator obtains and releases contiguous byte blocks.
type Allocator interface {
	// Alloc returns a block of at least n bytes.
	Alloc(n int) ([]byte, error)
	// Free releases a block previously returned by Alloc.
	Free(block []byte) error
}

// Default returns the platform allocator.
func Default() Allocator {
	return platformAllocator{}
}

// Heap is an Allocator backed by ordinary Go slices. Free is a no-op;
// the garbage collector reclaims released blocks.
type Heap struct{}

func (Heap) Alloc(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

func (Heap) Free(block []byte) error {
	return nil
}

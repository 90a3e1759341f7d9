// File: deque/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package deque

import (
	"github.com/momentics/ringdeque/alloc"
	"github.com/momentics/ringdeque/api"
)

// NewBytes builds a byte deque whose slot block comes from the given
// allocator instead of the Go heap. The block is requested once, at the
// rounded capacity, and is never released by the deque itself; callers
// that want it back hand the block to alloc.Free after the deque's last
// use.
func NewBytes(requested int, a alloc.Allocator) (*Deque[byte], error) {
	if requested < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative deque size").
			WithContext("requested", requested)
	}
	capacity := requested + requested%2
	block, err := a.Alloc(capacity)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocFailed, "backing block allocation failed").
			WithContext("bytes", capacity)
	}
	return New[byte](requested, WithSlots[byte](block)), nil
}

//go:build !linux
// +build !linux

// File: alloc/alloc_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback block allocator for platforms without the mmap path.

package alloc

// platformAllocator falls back to heap slices.
type platformAllocator = Heap

//go:build linux
// +build linux

// File: alloc/alloc_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux mmap(2)-based block allocator. Blocks live outside the Go heap
// and stay resident until explicitly unmapped.

package alloc

import (
	"golang.org/x/sys/unix"
)

// platformAllocator maps anonymous private pages.
type platformAllocator struct{}

func (platformAllocator) Alloc(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	block, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	return block[:n], nil
}

func (platformAllocator) Free(block []byte) error {
	if len(block) == 0 {
		return nil
	}
	return unix.Munmap(block[:cap(block)])
}

// Package pool
// Author: momentics <momentics@gmail.com>
//
// Bounded object pooling for ringdeque.
// A FreeList keeps released objects on a fixed-capacity deque so reuse
// never grows memory past the configured bound.
// See freelist.go for implementation details.
package pool

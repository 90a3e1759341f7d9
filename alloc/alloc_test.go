// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package alloc

import "testing"

func TestDefaultAllocRoundTrip(t *testing.T) {
	a := Default()
	block, err := a.Alloc(4096)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(block) < 4096 {
		t.Fatalf("block holds %d bytes, want at least 4096", len(block))
	}
	for i := range block {
		block[i] = byte(i)
	}
	for i := range block {
		if block[i] != byte(i) {
			t.Fatalf("byte %d corrupted", i)
		}
	}
	if err := a.Free(block); err != nil {
		t.Fatalf("Free: %v", err)
	}
}

func TestAllocZero(t *testing.T) {
	a := Default()
	block, err := a.Alloc(0)
	if err != nil {
		t.Fatalf("Alloc(0): %v", err)
	}
	if len(block) != 0 {
		t.Fatalf("Alloc(0) returned %d bytes", len(block))
	}
	if err := a.Free(block); err != nil {
		t.Fatalf("Free(nil): %v", err)
	}
}

func TestHeapAllocator(t *testing.T) {
	var h Heap
	block, err := h.Alloc(64)
	if err != nil || len(block) != 64 {
		t.Fatalf("Heap.Alloc: block=%d err=%v", len(block), err)
	}
	if err := h.Free(block); err != nil {
		t.Fatalf("Heap.Free: %v", err)
	}
}

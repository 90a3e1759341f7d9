// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go — randomized operation sequences checked against an
// independent deque as oracle.

package deque

import (
	"math/rand"
	"testing"

	edeque "github.com/edwingeng/deque/v2"
)

func TestDequeRandomOpsAgainstOracle(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		d := New[int](64)
		oracle := edeque.NewDeque[int]()

		for i := 0; i < 5000; i++ {
			val := rng.Intn(100000)
			switch rng.Intn(4) {
			case 0:
				if err := d.PushBack(val); err == nil {
					oracle.PushBack(val)
				} else if oracle.Len() != d.Usable() {
					t.Fatalf("seed %d op %d: PushBack failed at len %d, usable %d", seed, i, oracle.Len(), d.Usable())
				}
			case 1:
				if err := d.PushFront(val); err == nil {
					oracle.PushFront(val)
				} else if oracle.Len() != d.Usable() {
					t.Fatalf("seed %d op %d: PushFront failed at len %d, usable %d", seed, i, oracle.Len(), d.Usable())
				}
			case 2:
				got, err := d.PopFront()
				want, ok := oracle.TryPopFront()
				if (err == nil) != ok {
					t.Fatalf("seed %d op %d: PopFront disagreement (err=%v ok=%v)", seed, i, err, ok)
				}
				if ok && got != want {
					t.Fatalf("seed %d op %d: PopFront got %d, want %d", seed, i, got, want)
				}
			case 3:
				got, err := d.PopBack()
				want, ok := oracle.TryPopBack()
				if (err == nil) != ok {
					t.Fatalf("seed %d op %d: PopBack disagreement (err=%v ok=%v)", seed, i, err, ok)
				}
				if ok && got != want {
					t.Fatalf("seed %d op %d: PopBack got %d, want %d", seed, i, got, want)
				}
			}

			if d.Len() != oracle.Len() {
				t.Fatalf("seed %d op %d: Len=%d, oracle=%d", seed, i, d.Len(), oracle.Len())
			}
			if d.IsEmpty() != oracle.IsEmpty() {
				t.Fatalf("seed %d op %d: IsEmpty=%v, oracle=%v", seed, i, d.IsEmpty(), oracle.IsEmpty())
			}
			if d.Len() < 0 || d.Len() > d.Usable() {
				t.Fatalf("seed %d op %d: Len %d out of bounds", seed, i, d.Len())
			}
		}
	}
}

// Peeks must agree with the oracle's ends without mutating anything.
func TestDequePeekAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := New[int](16)
	oracle := edeque.NewDeque[int]()

	for i := 0; i < 2000; i++ {
		val := rng.Intn(1000)
		if rng.Intn(3) == 0 {
			if _, err := d.PopFront(); err == nil {
				oracle.PopFront()
			}
		} else {
			if err := d.PushBack(val); err == nil {
				oracle.PushBack(val)
			}
		}
		if oracle.Len() == 0 {
			continue
		}
		front, err := d.Front()
		ofront, _ := oracle.Front()
		if err != nil || front != ofront {
			t.Fatalf("op %d: Front=%d err=%v, oracle=%d", i, front, err, ofront)
		}
		back, err := d.Back()
		oback, _ := oracle.Back()
		if err != nil || back != oback {
			t.Fatalf("op %d: Back=%d err=%v, oracle=%d", i, back, err, oback)
		}
	}
}

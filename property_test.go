// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownref_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/ownref"
)

const propertyN = 1000

// TestPropertyStackLIFO: Stack agrees with a plain slice model under a
// random sequence of push/pop/top operations.
func TestPropertyStackLIFO(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))

	var s ownref.Stack[payload]
	var model []int

	for i := range propertyN {
		switch op := rng.IntN(3); {
		case op == 0 || len(model) == 0: // push
			s.Push(ownref.New(payload{n: i}))
			model = append(model, i)
		case op == 1: // pop
			o := s.Pop()
			want := model[len(model)-1]
			model = model[:len(model)-1]
			if got := o.Deref().n; got != want {
				t.Fatalf("pop = %d, want %d (step %d)", got, want, i)
			}
			o.Drop()
		default: // top
			if got, want := s.Top().Deref().n, model[len(model)-1]; got != want {
				t.Fatalf("top = %d, want %d (step %d)", got, want, i)
			}
		}
		if s.Len() != len(model) {
			t.Fatalf("Len = %d, model has %d (step %d)", s.Len(), len(model), i)
		}
	}
	s.Drop()
}

// TestPropertyMoveChainPreservesValue: any chain of moves preserves the
// content and leaves every intermediate handle empty.
func TestPropertyMoveChainPreservesValue(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))

	for range 100 {
		want := rng.IntN(2001) - 1000
		hops := rng.IntN(8) + 1

		o := ownref.New(payload{n: want})
		chain := []*ownref.Owned[payload]{o}
		for range hops {
			chain = append(chain, chain[len(chain)-1].Move())
		}

		for _, h := range chain[:len(chain)-1] {
			if !h.Empty() {
				t.Fatal("intermediate handle must be empty after move")
			}
		}
		last := chain[len(chain)-1]
		if got := last.Deref().n; got != want {
			t.Fatalf("after %d moves content = %d, want %d", hops, got, want)
		}
		last.Drop()
	}
}

// TestPropertyDropAccounting: across a random interleaving of allocation,
// moves, stack traffic, and drops, every allocation is destroyed exactly
// once — no leaks, no double-frees.
func TestPropertyDropAccounting(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))

	var drops, allocs int
	var s ownref.Stack[payload]
	var held []*ownref.Owned[payload]

	for range propertyN {
		switch rng.IntN(4) {
		case 0:
			held = append(held, ownref.New(payload{n: allocs, drops: &drops}))
			allocs++
		case 1:
			if len(held) > 0 {
				s.Push(held[len(held)-1])
				held = held[:len(held)-1]
			}
		case 2:
			if s.Len() > 0 {
				held = append(held, s.Pop())
			}
		default:
			if len(held) > 0 {
				held[len(held)-1].Drop()
				held = held[:len(held)-1]
			}
		}
	}
	for _, o := range held {
		o.Drop()
	}
	s.Drop()

	if drops != allocs {
		t.Fatalf("drops = %d, allocs = %d; every allocation must be destroyed exactly once", drops, allocs)
	}
}

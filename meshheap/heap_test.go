package meshheap_test

import (
	"testing"

	"github.com/r-silveira/xbimgeometry/meshheap"
)

// TestHeap_PeekIsMinimum locks in the min-heap invariant: Peek always
// returns the minimum priority currently held.
func TestHeap_PeekIsMinimum(t *testing.T) {
	h := meshheap.New(4)
	h.Push(1, 5.0)
	h.Push(2, 1.0)
	h.Push(3, 3.0)

	id, ok := h.Peek()
	if !ok || id != 2 {
		t.Fatalf("Peek() = (%d, %v), want (2, true)", id, ok)
	}
}

// TestHeap_UpdateThenPop locks in decrease-key behavior: Update after a
// strict decrease, then PopMin, returns that element.
func TestHeap_UpdateThenPop(t *testing.T) {
	h := meshheap.New(4)
	h.Push(1, 5.0)
	h.Push(2, 4.0)
	h.Push(3, 3.0)

	h.Update(1, 0.5)

	id, ok := h.PopMin()
	if !ok || id != 1 {
		t.Fatalf("PopMin() after decrease-key = (%d, %v), want (1, true)", id, ok)
	}
}

func TestHeap_PopOrderAscending(t *testing.T) {
	h := meshheap.New(8)
	priorities := map[int]float32{10: 3.3, 20: 1.1, 30: 2.2, 40: 0.5}
	for id, p := range priorities {
		h.Push(id, p)
	}

	var last float32 = -1
	for h.Len() > 0 {
		id, ok := h.PopMin()
		if !ok {
			t.Fatalf("PopMin() reported empty while Len()>0")
		}
		p := priorities[id]
		if p < last {
			t.Fatalf("pop order not ascending: got priority %v after %v", p, last)
		}
		last = p
	}
}

func TestHeap_TieBreakByInsertionOrder(t *testing.T) {
	h := meshheap.New(4)
	h.Push(1, 1.0)
	h.Push(2, 1.0)
	h.Push(3, 1.0)

	var order []int
	for h.Len() > 0 {
		id, _ := h.PopMin()
		order = append(order, id)
	}

	want := []int{1, 2, 3}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("pop order = %v, want %v (insertion order for ties)", order, want)
		}
	}
}

func TestHeap_DuplicatePushPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on duplicate Push")
		}
	}()

	h := meshheap.New(2)
	h.Push(1, 1.0)
	h.Push(1, 2.0)
}

func TestHeap_UpdateAbsentIsNoOp(t *testing.T) {
	h := meshheap.New(2)
	h.Push(1, 1.0)
	h.Update(99, 0.0) // no panic, no effect

	if !h.Contains(1) {
		t.Fatalf("Contains(1) = false after unrelated Update")
	}
	if h.Contains(99) {
		t.Fatalf("Update on an absent id must not insert it")
	}
}

func TestHeap_EmptyPopAndPeek(t *testing.T) {
	h := meshheap.New(0)
	if _, ok := h.Peek(); ok {
		t.Fatalf("Peek() on empty heap reported ok=true")
	}
	if _, ok := h.PopMin(); ok {
		t.Fatalf("PopMin() on empty heap reported ok=true")
	}
}

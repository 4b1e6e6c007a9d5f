// Package meshheap implements a binary min-heap keyed by an external
// integer id, with O(log n) Push/PopMin and O(log n) Update (decrease-key)
// backed by a parallel id→slot lookup table for O(1) Contains/slot lookup.
//
// This generalizes the lazy-decrease-key priority queues used elsewhere in
// this module's ancestry (a plain container/heap.Interface that pushes a
// fresh entry on every priority change and discards stale pops) into a true
// indexed heap: the simplifier recomputes an edge's cost every time its
// neighbourhood changes, so a stale-tolerant lazy heap would leak entries
// across thousands of contractions; Update overwrites the existing slot in
// place instead.
//
// Determinism:
//   - Ties (equal priority) are broken by ascending insertion sequence, so
//     pop order is stable for equal-cost edges.
//
// Concurrency: not safe for concurrent use; one heap is owned by one
// simplification run.
package meshheap

import "fmt"

// node is one entry of the heap: an external id, its current priority, and
// the insertion sequence used to break ties deterministically.
type node struct {
	id       int
	priority float32
	seq      uint64
}

// Heap is a 1-indexed binary min-heap over (id, priority) pairs.
//
// Contract:
//   - Push panics if id is already present — duplicate push is a
//     programming error, not a recoverable condition.
//   - Update is a no-op if id is absent; callers that want "push-or-update"
//     semantics should check Contains first (the simplifier's contraction
//     loop does exactly this when re-pricing edges around a contraction).
type Heap struct {
	nodes   []node      // 1-indexed; nodes[0] is unused
	slotOf  map[int]int // id -> index into nodes
	nextSeq uint64
}

// New returns an empty heap with room for capacityHint entries.
func New(capacityHint int) *Heap {
	return &Heap{
		nodes:  make([]node, 1, capacityHint+1),
		slotOf: make(map[int]int, capacityHint),
	}
}

// Len returns the number of entries currently in the heap.
func (h *Heap) Len() int {
	return len(h.nodes) - 1
}

// Contains reports whether id currently has an entry in the heap.
func (h *Heap) Contains(id int) bool {
	_, ok := h.slotOf[id]
	return ok
}

// Push inserts id with the given priority.
//
// Complexity: O(log n).
func (h *Heap) Push(id int, priority float32) {
	if h.Contains(id) {
		panic(fmt.Sprintf("meshheap: duplicate push for id %d", id))
	}

	h.nodes = append(h.nodes, node{id: id, priority: priority, seq: h.nextSeq})
	h.nextSeq++
	slot := len(h.nodes) - 1
	h.slotOf[id] = slot
	h.siftUp(slot)
}

// Update changes the priority of an existing id and restores heap order.
// It is a no-op if id is not present.
//
// Complexity: O(log n).
func (h *Heap) Update(id int, priority float32) {
	slot, ok := h.slotOf[id]
	if !ok {
		return
	}

	old := h.nodes[slot].priority
	h.nodes[slot].priority = priority
	// Sequence is not touched on Update: ties break by original insertion
	// order, not by the most recent re-price.
	if priority < old {
		h.siftUp(slot)
	} else if priority > old {
		h.siftDown(slot)
	}
}

// Peek returns the id with the minimum priority without removing it, and
// false if the heap is empty.
func (h *Heap) Peek() (id int, ok bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return h.nodes[1].id, true
}

// PopMin removes and returns the id with the minimum priority, and false if
// the heap is empty.
//
// Complexity: O(log n).
func (h *Heap) PopMin() (id int, ok bool) {
	if h.Len() == 0 {
		return 0, false
	}

	min := h.nodes[1]
	last := len(h.nodes) - 1
	h.swap(1, last)
	h.nodes = h.nodes[:last]
	delete(h.slotOf, min.id)
	if len(h.nodes) > 1 {
		h.siftDown(1)
	}

	return min.id, true
}

// less reports whether the entry at slot i sorts before the entry at slot
// j: lower priority first, ties broken by earlier insertion sequence.
func (h *Heap) less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (h *Heap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.slotOf[h.nodes[i].id] = i
	h.slotOf[h.nodes[j].id] = j
}

func (h *Heap) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.nodes) - 1
	for {
		left, right := 2*i, 2*i+1
		smallest := i
		if left <= n && h.less(left, smallest) {
			smallest = left
		}
		if right <= n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// SPDX-License-Identifier: MIT
// Package fibheap: node/state types, constants and panic messages.

package fibheap

// None is the sentinel arena index meaning "no node" — the arena's null.
const None = -1

// MaxRank bounds the consolidation bucket table. A root of rank r has at
// least 2^r descendants under the merge rule, so rank 100 would require a
// graph beyond any addressable size; the fixed table therefore never
// overflows.
const MaxRank = 100

// State is the lifecycle position of a node within one search.
//
// The only legal transitions are NotInHeap → InHeap (Insert) and
// InHeap → Scanned (ExtractMin); Reset returns every node to NotInHeap.
type State uint8

const (
	// NotInHeap marks a node not yet inserted in the current search.
	NotInHeap State = iota

	// InHeap marks a node currently enqueued with a tentative value.
	InHeap

	// Scanned marks a node extracted as minimum; its value is final.
	Scanned
)

// Internal panic messages (no magic strings). These signal contract
// violations by the caller, never data-dependent failures.
const (
	panicInsertState   = "fibheap: Insert: node already in heap"
	panicDecreaseState = "fibheap: DecreaseValue: node not in heap"
	panicDecreaseUp    = "fibheap: DecreaseValue: new value exceeds current value"
	panicEmptyExtract  = "fibheap: ExtractMin: heap is empty"
)

// node is one arena slot: a vertex's heap bookkeeping for one search.
// Siblings form a None-terminated doubly-linked list; child points at one
// child, the rest reachable via that child's sibling chain.
type node struct {
	val    float64 // tentative distance from the search source
	rank   int     // number of children
	state  State   // lifecycle position
	parent int     // arena index of parent, None for roots
	child  int     // arena index of first child, None if leaf
	left   int     // previous sibling, None at list head
	right  int     // next sibling, None at list tail
}

// Heap is the decrease-key priority queue over a fixed arena of n nodes.
// The node at arena index i always represents vertex i; identity is
// positional, so no index field is stored per node.
//
// Invariant: outside ExtractMin's consolidation phase, every parentless
// InHeap node sits on one doubly-linked root list and min points at the
// root with minimal value (None iff the heap is empty); every roots bucket
// is None.
type Heap struct {
	nodes []node       // arena, index == vertex id
	min   int          // arena index of the minimum root, None if empty
	roots [MaxRank]int // rank buckets, used only during consolidation
}

// New allocates a heap over n vertices and resets it, ready for a search.
// Complexity: O(n).
func New(n int) *Heap {
	h := &Heap{nodes: make([]node, n)}
	for i := range h.roots {
		h.roots[i] = None
	}
	h.Reset()

	return h
}

// Len returns the arena size n (vertex count), not the number of enqueued
// nodes. Complexity: O(1).
func (h *Heap) Len() int { return len(h.nodes) }

// Empty reports whether no node is currently enqueued.
// Complexity: O(1).
func (h *Heap) Empty() bool { return h.min == None }

// State returns the lifecycle position of vertex i in the current search.
// Complexity: O(1).
func (h *Heap) State(i int) State { return h.nodes[i].state }

// Value returns vertex i's current value: tentative while InHeap, final
// once Scanned, stale (previous search or zero) otherwise.
// Complexity: O(1).
func (h *Heap) Value(i int) float64 { return h.nodes[i].val }

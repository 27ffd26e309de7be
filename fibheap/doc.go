// SPDX-License-Identifier: MIT

// Package fibheap implements the decrease-key priority queue driving the
// lvlpath sparse shortest-path search.
//
// The heap is a forest of multi-way trees linked through parent, child and
// sibling relations. Nodes live in a flat arena indexed by vertex id —
// allocated once, reset per search — and every link is an integer index
// into that arena, with None (−1) standing in for "no node". There are no
// pointers to dangle and no per-operation allocations.
//
// Operation costs (amortized over a sequence with O(n) total insertions):
//
//	– Insert:        O(1)
//	– DecreaseValue: O(1)
//	– ExtractMin:    O(log n) via rank-bucket consolidation
//
// Each node tracks a State (NotInHeap → InHeap → Scanned) so the search
// can classify neighbors without side tables. ExtractMin marks the removed
// node Scanned; a Scanned node never re-enters the heap until Reset.
//
// DecreaseValue performs a single cut on heap-order violation, with no
// cascading-cut bookkeeping: the search never decreases the same node twice
// without an intervening ExtractMin, so one cut preserves the rank bound in
// practice and heap order unconditionally.
//
// Contract violations — inserting a node already in the heap, decreasing a
// value upward, extracting from an empty heap — are programmer errors and
// panic with stable messages; they are not recoverable conditions.
package fibheap

// Package lvlpath computes shortest-path distances on weighted graphs,
// automatically choosing between a dense all-pairs algorithm and a sparse
// per-source search based on edge density.
//
// 🚀 What is lvlpath?
//
//	A small, deterministic, pure-Go engine that brings together:
//		• Dense inputs: row-major N×N distance matrices ("0 = no edge")
//		• Sparse inputs: compressed-row (values / columns / row-pointers) graphs
//		• A decrease-key heap: arena-backed, integer-linked, allocation-free per op
//		• Density dispatch: sparse below N²/4 edges, dense above, or forced
//
// ✨ Why choose lvlpath?
//
//   - Predictable – fixed loop orders, no randomness, no global state
//   - Fail-fast – shape, value and configuration errors before any work
//   - Pure Go – no cgo, the only dependency is the test stack
//   - Parallel-ready – opt-in per-source fan-out with zero shared mutable state
//
// Everything is organized under four subpackages:
//
//	matrix/   — dense row-major distance matrix + shape validators
//	csr/      — immutable compressed-row graph view + transpose
//	fibheap/  — the decrease-key priority queue driving the sparse search
//	shortest/ — the engine: per-source search, all-pairs relaxation, dispatcher
//
// Quick ASCII example:
//
//	    0 ──1── 1
//	     \      │
//	      5     2
//	       \    │
//	        `── 2
//
//	dist(0,2) = 3: the direct edge (5) loses to the path through vertex 1.
//
// Start with shortest.ShortestPaths for dense inputs, or build a csr.Graph
// and call shortest.SparseSingleSource to skip dense normalization.
package lvlpath

// SPDX-License-Identifier: MIT

// Package csr provides the immutable compressed-row graph view consumed by
// the lvlpath sparse shortest-path search.
//
// A Graph holds three parallel arrays — edge weights, destination-column
// indices, and a row-pointer array of length N+1 — such that the edges
// leaving row i occupy the half-open slice [indptr[i], indptr[i+1]) of the
// first two arrays. All weights must be non-negative; a negative weight is
// a hard input error rejected at construction, before any search runs.
//
// Two constructors exist: New, which validates a caller-supplied triple,
// and FromDense, which ingests a dense distance matrix under the engine's
// "0 = no edge" convention. Transpose derives the reversed-edge view the
// undirected search needs for its incoming-edge expansion phase.
//
// A Graph never mutates after construction, so it may be shared read-only
// across concurrent per-source searches.
//
// Complexity:
//
//	– New:       O(N + E) validation
//	– FromDense: O(N²) scan
//	– Transpose: O(N + E) counting pass
//	– Row:       O(1) slice view
package csr

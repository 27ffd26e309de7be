// SPDX-License-Identifier: MIT
// Package csr: sentinel error set and the Graph type.
// Sentinels are prefixed "csr: ..." and matched by callers via errors.Is.

package csr

import "errors"

var (
	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("csr: graph is nil")

	// ErrNilMatrix indicates that a nil dense matrix was passed to FromDense.
	ErrNilMatrix = errors.New("csr: dense matrix is nil")

	// ErrBadIndptr indicates a malformed row-pointer array: too short,
	// not starting at 0, decreasing, or not ending at len(weights).
	ErrBadIndptr = errors.New("csr: malformed row-pointer array")

	// ErrLengthMismatch indicates that the weights and column arrays
	// disagree in length.
	ErrLengthMismatch = errors.New("csr: weights/cols length mismatch")

	// ErrColumnOutOfRange indicates a destination column index outside [0, N).
	ErrColumnOutOfRange = errors.New("csr: column index out of range")

	// ErrNegativeWeight indicates a negative edge weight. Negative weights
	// break the label-setting invariant of the sparse search and are
	// rejected here, before any computation begins.
	ErrNegativeWeight = errors.New("csr: negative edge weight")
)

// Graph is an immutable compressed-row adjacency view over N vertices.
//
// Edges leaving vertex i occupy weights[indptr[i]:indptr[i+1]] and
// cols[indptr[i]:indptr[i+1]]. The invariant len(indptr) == n+1 and
// indptr[n] == len(weights) == len(cols) holds for every constructed Graph.
type Graph struct {
	weights []float64 // edge weights, all ≥ 0
	cols    []int     // destination vertex per edge
	indptr  []int     // row pointers, length n+1, indptr[0] == 0
	n       int       // vertex count
}

// Order returns the number of vertices N.
// Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// NumEdges returns the number of stored edges E.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.weights) }

// Row returns the weights and destination columns of the edges leaving
// vertex i, as views into the graph's backing arrays. Callers must treat
// both slices as read-only; the Graph is shared across searches.
// Precondition: 0 ≤ i < Order(); enforced by the engine, not re-checked here.
// Complexity: O(1).
func (g *Graph) Row(i int) ([]float64, []int) {
	lo, hi := g.indptr[i], g.indptr[i+1]

	return g.weights[lo:hi], g.cols[lo:hi]
}

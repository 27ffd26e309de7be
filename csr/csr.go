// SPDX-License-Identifier: MIT

// Package csr: construction, dense ingestion and transposition.

package csr

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/matrix"
)

// New builds a Graph from a caller-supplied compressed-row triple.
// Stage 1 (Validate): indptr shape, parallel lengths, column bounds,
// non-negative weights — in that fixed order, fail fast on the first
// violation.
// Stage 2 (Prepare): copy all three arrays so the Graph owns its storage
// and later caller mutation cannot break immutability.
// Stage 3 (Finalize): return the Graph.
//
// Errors: ErrBadIndptr, ErrLengthMismatch, ErrColumnOutOfRange,
// ErrNegativeWeight (all wrapped with edge context where useful).
// Complexity: O(N + E) time, O(N + E) memory for the defensive copies.
func New(weights []float64, cols, indptr []int) (*Graph, error) {
	// Validate the row-pointer array first: everything else derives from it.
	if len(indptr) < 2 {
		return nil, fmt.Errorf("New: indptr length %d: %w", len(indptr), ErrBadIndptr)
	}
	if indptr[0] != 0 {
		return nil, fmt.Errorf("New: indptr[0]=%d: %w", indptr[0], ErrBadIndptr)
	}
	n := len(indptr) - 1
	var i int
	for i = 0; i < n; i++ {
		// Row slices must be non-decreasing half-open ranges.
		if indptr[i+1] < indptr[i] {
			return nil, fmt.Errorf("New: indptr decreases at row %d: %w", i, ErrBadIndptr)
		}
	}
	if indptr[n] != len(weights) {
		return nil, fmt.Errorf("New: indptr[%d]=%d but %d weights: %w", n, indptr[n], len(weights), ErrBadIndptr)
	}

	// Parallel arrays must agree in length.
	if len(weights) != len(cols) {
		return nil, fmt.Errorf("New: %d weights vs %d cols: %w", len(weights), len(cols), ErrLengthMismatch)
	}

	// Validate every edge: destination in range, weight non-negative.
	var e int
	for e = 0; e < len(weights); e++ {
		if cols[e] < 0 || cols[e] >= n {
			return nil, fmt.Errorf("New: edge %d targets column %d of %d: %w", e, cols[e], n, ErrColumnOutOfRange)
		}
		if weights[e] < 0 {
			return nil, fmt.Errorf("New: edge %d weight %g: %w", e, weights[e], ErrNegativeWeight)
		}
	}

	// Defensive copies: the Graph must stay immutable if the caller
	// recycles its input slices.
	g := &Graph{
		weights: make([]float64, len(weights)),
		cols:    make([]int, len(cols)),
		indptr:  make([]int, len(indptr)),
		n:       n,
	}
	copy(g.weights, weights)
	copy(g.cols, cols)
	copy(g.indptr, indptr)

	return g, nil
}

// FromDense ingests a square dense distance matrix under the engine's
// convention: an off-diagonal non-zero entry d[i][j] is the edge i→j with
// that weight; 0 means "no known edge"; the diagonal carries no edges.
// Negative entries are rejected (ErrNegativeWeight) before any allocation
// of the edge arrays, so a failed ingestion performs no partial work the
// caller can observe.
//
// Errors: ErrNilMatrix, matrix.ErrNonSquare (via ValidateSquare),
// ErrNegativeWeight.
// Complexity: O(N²) time, O(N + E) memory.
func FromDense(d *matrix.Dense) (*Graph, error) {
	if d == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	n := d.Rows()

	// First pass: count edges and reject negative weights up front.
	var (
		i, j  int
		row   []float64
		nnz   int
		total int
	)
	for i = 0; i < n; i++ {
		row, _ = d.Row(i) // safe after shape validation
		for j = 0; j < n; j++ {
			if row[j] < 0 {
				return nil, fmt.Errorf("FromDense: entry (%d,%d)=%g: %w", i, j, row[j], ErrNegativeWeight)
			}
			if i != j && row[j] != 0 {
				total++
			}
		}
	}

	// Second pass: materialize the triple.
	g := &Graph{
		weights: make([]float64, total),
		cols:    make([]int, total),
		indptr:  make([]int, n+1),
		n:       n,
	}
	for i = 0; i < n; i++ {
		row, _ = d.Row(i)
		for j = 0; j < n; j++ {
			if i != j && row[j] != 0 {
				g.weights[nnz] = row[j]
				g.cols[nnz] = j
				nnz++
			}
		}
		g.indptr[i+1] = nnz
	}

	return g, nil
}

// Transpose derives the reversed-edge view: edge i→j (weight w) in g
// becomes edge j→i (weight w) in the result. The undirected search scans
// a vertex's transposed row to expand its incoming edges symmetrically.
// The result shares no mutable state with the receiver.
// Complexity: O(N + E) time and memory (counting pass, no sort).
func (g *Graph) Transpose() *Graph {
	e := len(g.weights)
	t := &Graph{
		weights: make([]float64, e),
		cols:    make([]int, e),
		indptr:  make([]int, g.n+1),
		n:       g.n,
	}

	// Count in-degree per vertex into indptr[1:].
	var k int
	for k = 0; k < e; k++ {
		t.indptr[g.cols[k]+1]++
	}
	// Prefix-sum into row pointers.
	var i int
	for i = 0; i < g.n; i++ {
		t.indptr[i+1] += t.indptr[i]
	}

	// Scatter edges into their transposed rows, tracking a moving write
	// cursor per destination row.
	cursor := make([]int, g.n)
	copy(cursor, t.indptr[:g.n])
	var src, dst, at int
	for src = 0; src < g.n; src++ {
		for k = g.indptr[src]; k < g.indptr[src+1]; k++ {
			dst = g.cols[k]
			at = cursor[dst]
			t.weights[at] = g.weights[k]
			t.cols[at] = src
			cursor[dst] = at + 1
		}
	}

	return t
}

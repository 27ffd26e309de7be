// SPDX-License-Identifier: MIT

// Package shortest: the top-level dispatcher — input validation, density
// estimation, strategy selection and per-source fan-out.

package shortest

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/csr"
	"github.com/katalvlaran/lvlpath/matrix"
)

// ShortestPaths computes shortest-path distances over the dense distance
// matrix d, directed by default (pass WithUndirected() to fold edge
// directions). With no WithSources option the result covers every vertex
// (N×N); with a subset it holds one row per requested source.
//
// Unless WithMethod forces a strategy, the density heuristic applies: the
// sparse per-source search when the off-diagonal edge count is below N²/4,
// the dense all-pairs relaxation otherwise. Either strategy produces
// identical results on valid input; only performance differs.
//
// Under the dense strategy the caller's matrix is consumed in place by
// default (WithCopy() clones first); the sparse strategy reads d only to
// normalize it into a compressed-row view and always returns a fresh
// result.
//
// Errors, all rejected before any relaxation: matrix.ErrNilMatrix,
// matrix.ErrNonSquare, ErrUnknownMethod, ErrSourceOutOfRange,
// ErrNegativeWeight.
func ShortestPaths(d *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	// Resolve options over this entry point's defaults (directed).
	cfg := defaultOptions(true)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Fixed validation order: shape, then configuration, then values
	// (the value scan happens inside the chosen strategy's normalization).
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("ShortestPaths: %w", err)
	}
	if cfg.method > MethodSparse {
		return nil, fmt.Errorf("ShortestPaths: method %d: %w", cfg.method, ErrUnknownMethod)
	}

	n := d.Rows()
	sources, err := resolveSources(cfg.sources, n)
	if err != nil {
		return nil, fmt.Errorf("ShortestPaths: %w", err)
	}

	method := cfg.method
	if method == MethodAuto {
		// Crossover heuristic: sparse below one edge per four cells.
		if 4*countEdges(d) < n*n {
			method = MethodSparse
		} else {
			method = MethodDense
		}
	}

	if method == MethodSparse {
		return sparseDispatch(d, cfg, sources)
	}

	return denseDispatch(d, cfg, sources)
}

// countEdges returns the number of off-diagonal non-zero entries — the
// edge count under the "0 = no edge" convention.
// Complexity: O(N²).
func countEdges(d *matrix.Dense) int {
	n := d.Rows()
	var i, j, edges int
	var row []float64
	for i = 0; i < n; i++ {
		row, _ = d.Row(i)
		for j = 0; j < n; j++ {
			if i != j && row[j] != 0 {
				edges++
			}
		}
	}

	return edges
}

// sparseDispatch normalizes d into a compressed-row view (rejecting
// negative weights in the process) and fans the per-source searches out.
func sparseDispatch(d *matrix.Dense, cfg Options, sources []int) (*matrix.Dense, error) {
	g, err := csr.FromDense(d)
	if err != nil {
		return nil, fmt.Errorf("ShortestPaths: %w", err)
	}

	var gt *csr.Graph
	if !cfg.directed {
		gt = g.Transpose()
	}

	res, err := matrix.NewDense(len(sources), g.Order())
	if err != nil {
		return nil, fmt.Errorf("ShortestPaths: %w", err)
	}

	runSearches(g, gt, sources, cfg.workers, res)

	return res, nil
}

// denseDispatch runs the all-pairs relaxation, then slices out the
// requested rows when a source subset was given. Floyd–Warshall cannot
// restrict its work to a row subset, so the full closure always runs.
func denseDispatch(d *matrix.Dense, cfg Options, sources []int) (*matrix.Dense, error) {
	full, err := denseRun(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("ShortestPaths: %w", err)
	}

	// No subset requested: the closure itself is the result.
	if cfg.sources == nil {
		return full, nil
	}

	res, err := matrix.NewDense(len(sources), full.Cols())
	if err != nil {
		return nil, fmt.Errorf("ShortestPaths: %w", err)
	}
	for r, src := range sources {
		dst, _ := res.Row(r)
		row, _ := full.Row(src)
		copy(dst, row)
	}

	return res, nil
}

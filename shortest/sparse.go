// SPDX-License-Identifier: MIT

// Package shortest: the per-source sparse search (label-setting Dijkstra
// over the csr view and the fibheap decrease-key heap).

package shortest

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlpath/csr"
	"github.com/katalvlaran/lvlpath/fibheap"
	"github.com/katalvlaran/lvlpath/matrix"
)

// searchContext holds the mutable state one search reuses across sources:
// the heap and its node arena. It is created explicitly by the fan-out and
// reset at the start of every per-source call — never hidden global state.
// A context must not be shared across concurrent searches; each worker
// owns exactly one.
type searchContext struct {
	heap *fibheap.Heap
}

// newSearchContext allocates a context for graphs of n vertices.
func newSearchContext(n int) *searchContext {
	return &searchContext{heap: fibheap.New(n)}
}

// runSource fills row with shortest distances from src over g, treating
// gt's edges (the transposed view) as additional symmetric neighbors when
// non-nil. Unreached vertices keep the value 0 — ambiguous with "no edge"
// by the inherited convention.
//
// Once a vertex is extracted as minimum its distance is final; this
// invariant is what the non-negative weight precondition buys, and why
// negative weights are rejected before any search begins rather than
// detected here.
func (sc *searchContext) runSource(g, gt *csr.Graph, src int, row []float64) {
	h := sc.heap
	h.Reset()

	// Result row starts all-zero: source distance and unreachable share 0.
	var j int
	for j = range row {
		row[j] = 0
	}

	h.Insert(src, 0)
	var v int
	var dv float64
	for !h.Empty() {
		// Extract the closest frontier vertex; the heap marks it Scanned.
		v, dv = h.ExtractMin()
		row[v] = dv

		// Two-phase expansion: outgoing edges always, incoming edges
		// (via the transpose) only in undirected mode.
		sc.expand(g, v, dv)
		if gt != nil {
			sc.expand(gt, v, dv)
		}
	}
}

// expand relaxes every edge (v → u, w) listed in g's row of v against the
// tentative distance dv of v.
func (sc *searchContext) expand(g *csr.Graph, v int, dv float64) {
	h := sc.heap
	weights, cols := g.Row(v)

	var k, u int
	var cand float64
	for k = range cols {
		u = cols[k]
		switch h.State(u) {
		case fibheap.Scanned:
			// Distance already final under non-negative weights.
		case fibheap.NotInHeap:
			h.Insert(u, dv+weights[k])
		default: // fibheap.InHeap
			if cand = dv + weights[k]; cand < h.Value(u) {
				h.DecreaseValue(u, cand)
			}
		}
	}
}

// runSearches computes one result row per requested source, sequentially
// or fanned out over cfg.workers goroutines. Workers stride the source
// list, so row r is owned exclusively by worker r mod workers; the graph
// views are shared read-only and each worker holds its own context.
func runSearches(g, gt *csr.Graph, sources []int, workers int, res *matrix.Dense) {
	if workers > len(sources) {
		workers = len(sources)
	}

	if workers <= 1 {
		sc := newSearchContext(g.Order())
		for r, src := range sources {
			row, _ := res.Row(r) // shape fixed by the caller
			sc.runSource(g, gt, src, row)
		}

		return
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			sc := newSearchContext(g.Order())
			for r := w; r < len(sources); r += workers {
				row, _ := res.Row(r)
				sc.runSource(g, gt, sources[r], row)
			}
		}(w)
	}
	wg.Wait()
}

// SparseSingleSource computes shortest distances from each requested
// source over the compressed-row graph g, one row per source. It treats g
// as undirected by default; pass WithDirected() for one-way edges. With no
// WithSources option every vertex is a source, yielding the full N×N
// result.
//
// Negative weights cannot occur here: both csr constructors reject them,
// so a *csr.Graph is valid by construction and no re-scan runs per call.
//
// Errors: csr.ErrNilGraph, ErrSourceOutOfRange.
// Complexity: O(|sources| · (E + N log N)), edge work doubled when
// undirected; optionally fanned out via WithWorkers.
func SparseSingleSource(g *csr.Graph, opts ...Option) (*matrix.Dense, error) {
	// Resolve options over this entry point's defaults (undirected).
	cfg := defaultOptions(false)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, fmt.Errorf("SparseSingleSource: %w", csr.ErrNilGraph)
	}

	sources, err := resolveSources(cfg.sources, g.Order())
	if err != nil {
		return nil, fmt.Errorf("SparseSingleSource: %w", err)
	}

	// Undirected mode derives the reversed-edge view once per call.
	var gt *csr.Graph
	if !cfg.directed {
		gt = g.Transpose()
	}

	res, err := matrix.NewDense(len(sources), g.Order())
	if err != nil {
		return nil, fmt.Errorf("SparseSingleSource: %w", err)
	}

	runSearches(g, gt, sources, cfg.workers, res)

	return res, nil
}

// resolveSources validates a requested subset against the vertex count,
// or expands nil into the full 0..n-1 range.
func resolveSources(requested []int, n int) ([]int, error) {
	if requested == nil {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}

	for _, s := range requested {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("source %d of %d vertices: %w", s, n, ErrSourceOutOfRange)
		}
	}

	return requested, nil
}

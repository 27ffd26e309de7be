// SPDX-License-Identifier: MIT
// Package shortest: method enum, sentinel errors, functional options and
// their documented defaults.

package shortest

import (
	"errors"

	"github.com/katalvlaran/lvlpath/csr"
)

// Method selects the shortest-path strategy run by ShortestPaths.
type Method uint8

const (
	// MethodAuto picks the strategy from edge density: sparse single-source
	// when the edge count is below N²/4, dense all-pairs otherwise. The
	// threshold is a performance crossover, not a correctness boundary —
	// both strategies agree on valid input.
	MethodAuto Method = iota

	// MethodDense forces the dense all-pairs relaxation.
	MethodDense

	// MethodSparse forces the per-source sparse search.
	MethodSparse
)

// Sentinel errors returned at the engine's boundary.
var (
	// ErrUnknownMethod indicates an unrecognized Method selector — a
	// configuration error, rejected before any computation.
	ErrUnknownMethod = errors.New("shortest: unknown method selector")

	// ErrSourceOutOfRange indicates a requested source index outside [0, N).
	ErrSourceOutOfRange = errors.New("shortest: source index out of range")

	// ErrNegativeWeight aliases the csr sentinel so callers match one
	// identity via errors.Is regardless of which strategy rejected the
	// input.
	ErrNegativeWeight = csr.ErrNegativeWeight
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultWorkers keeps per-source fan-out strictly sequential, so
	// default runs are deterministic and allocate one search context.
	DefaultWorkers = 1
)

// Internal panic messages (no magic strings).
const panicWorkersInvalid = "shortest: WithWorkers: workers must be >= 1"

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept ...Option and resolve them internally. Each entry point carries
// its own directedness default (ShortestPaths: directed; DenseAllPairs and
// SparseSingleSource: undirected), so Options is always seeded per call.
type Options struct {
	directed  bool   // treat edges as one-way
	method    Method // strategy selector (ShortestPaths only)
	sources   []int  // requested source subset; nil means every vertex
	copyInput bool   // force a private copy instead of overwriting input
	workers   int    // per-source fan-out width, ≥ 1
}

// Option mutates Options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// defaultOptions seeds Options with the given directedness default and the
// documented defaults for everything else.
func defaultOptions(directed bool) Options {
	return Options{
		directed: directed,
		method:   MethodAuto,
		workers:  DefaultWorkers,
	}
}

// WithDirected treats every edge as one-way (i→j only).
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected treats every edge as traversable both ways. For the
// sparse search this expands each vertex's incoming edges symmetrically
// via the transposed view; for the dense relaxation the input is
// symmetrized by taking the smaller direction of each pair. When the two
// directions genuinely differ the input is assumed to represent one
// underlying undirected cost — a documented limitation, not detected.
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithMethod forces a strategy instead of the density heuristic.
// Validation happens at the entry point: an unrecognized value yields
// ErrUnknownMethod before any computation.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithSources restricts computation to the given source vertices; the
// result then holds one row per requested source, in the given order.
// Indices are copied, so the caller keeps ownership of the slice.
func WithSources(sources ...int) Option {
	return func(o *Options) {
		o.sources = make([]int, len(sources))
		copy(o.sources, sources)
	}
}

// WithCopy makes the dense relaxation work on a private clone instead of
// overwriting the caller's matrix. Without it the engine consumes the
// input buffer in place (the documented default, matching the explicit
// copy-or-consume contract; nothing is ever decided silently).
func WithCopy() Option {
	return func(o *Options) { o.copyInput = true }
}

// WithWorkers fans the per-source sparse searches out over k goroutines.
// Distinct sources share no mutable state — each worker owns one heap and
// node arena and writes disjoint result rows — so any k ≥ 1 is safe.
// Panics on k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

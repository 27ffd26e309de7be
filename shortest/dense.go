// SPDX-License-Identifier: MIT

// Package shortest: dense all-pairs relaxation (Floyd–Warshall) with the
// engine's 0 ↔ +Inf sentinel round trip.
//
// Contract:
//   - Square matrix; off-diagonal 0 means "no edge" on input and
//     "unreachable" on output; +Inf is used only internally.

package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/matrix"
)

// DenseAllPairs computes all-pairs shortest distances on the dense matrix
// d, undirected by default (pass WithDirected() for one-way edges). By
// default the caller's matrix is consumed and relaxed in place; WithCopy()
// makes the engine work on a private clone instead — an explicit
// copy-or-consume choice, never inferred from storage layout (the only
// accepted layout is *matrix.Dense, already row-major float64).
//
// Steps: off-diagonal zeros become the +Inf "no path yet" sentinel, the
// diagonal is forced to 0, undirected inputs are symmetrized by taking the
// smaller direction of each pair (+Inf ordering applies — see the package
// doc for the asymmetric-weights limitation), the k→i→j relaxation runs in
// place, and surviving +Inf entries return to 0 so the output restores the
// "0 = unreachable" convention.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNegativeWeight.
// Complexity: O(N³) time; O(N) extra space for the row index, O(N²) more
// only under WithCopy.
func DenseAllPairs(d *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	// Resolve options over this entry point's defaults (undirected).
	cfg := defaultOptions(false)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	out, err := denseRun(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("DenseAllPairs: %w", err)
	}

	return out, nil
}

// denseRun is the shared dense strategy behind DenseAllPairs and the
// dispatcher: validate, honor copy-or-consume, run the sentinel round trip
// around the in-place relaxation.
func denseRun(d *matrix.Dense, cfg Options) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, err
	}

	// Value validation runs before any mutation or cloning: a rejected call
	// leaves the caller's matrix exactly as it was, no partial result.
	if err := validateNonNegative(d); err != nil {
		return nil, err
	}

	out := d
	if cfg.copyInput {
		out = d.Clone()
	}

	rows := denseRows(out)

	if !cfg.directed {
		symmetrize(rows)
	}

	relaxInPlace(rows)
	restoreZeros(rows)

	return out, nil
}

// validateNonNegative scans the whole matrix for negative entries without
// mutating anything. All weights ≥ 0 is a hard input invariant on both
// representations.
// Complexity: O(N²).
func validateNonNegative(m *matrix.Dense) error {
	n := m.Rows()
	var i, j int
	var row []float64
	for i = 0; i < n; i++ {
		row, _ = m.Row(i) // safe after shape validation
		for j = 0; j < n; j++ {
			if row[j] < 0 {
				return fmt.Errorf("entry (%d,%d)=%g: %w", i, j, row[j], ErrNegativeWeight)
			}
		}
	}

	return nil
}

// denseRows captures one live row view per row and performs the input leg
// of the sentinel round trip: diagonal forced to 0, off-diagonal zeros
// replaced by +Inf.
// Complexity: O(N²).
func denseRows(m *matrix.Dense) [][]float64 {
	n := m.Rows()
	rows := make([][]float64, n)

	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i], _ = m.Row(i)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				// Self-distance is exactly zero, whatever the input held.
				rows[i][j] = 0
			case rows[i][j] == 0:
				// No known edge: +Inf until relaxation proves otherwise.
				rows[i][j] = inf
			}
		}
	}

	return rows
}

// symmetrize folds each unordered pair onto the smaller of its two
// directions; +Inf (no edge) loses to any real edge. Assumes a
// direction-dependent input still encodes one undirected cost.
// Complexity: O(N²/2).
func symmetrize(rows [][]float64) {
	n := len(rows)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[j][i] < rows[i][j] {
				rows[i][j] = rows[j][i]
			} else {
				rows[j][i] = rows[i][j]
			}
		}
	}
}

// relaxInPlace runs the triple relaxation with a fixed k→i→j loop order
// for deterministic accumulation. Rows with no path to k are skipped
// wholesale — the pruning that makes sparse-but-dense-represented inputs
// tolerable. No allocations inside the hot loops.
// Complexity: O(N³) worst case.
func relaxInPlace(rows [][]float64) {
	n := len(rows)

	// Predeclare loop counters and temporaries outside the hot loops.
	var (
		k, i, j    int       // loop indices
		rowK, rowI []float64 // row views for k and i
		ik, cand   float64   // distance i→k and candidate via k
	)

	for k = 0; k < n; k++ { // outer: intermediate vertex k
		rowK = rows[k]

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = rows[i][k]
			if math.IsInf(ik, 1) { // i cannot reach k:
				continue // no path via k can improve row i
			}
			rowI = rows[i]

			for j = 0; j < n; j++ { // inner: destination vertex j
				cand = ik + rowK[j] // +Inf propagates and never wins
				if cand < rowI[j] { // strict improvement only
					rowI[j] = cand // relax i→j in place
				}
			}
		}
	}
}

// restoreZeros is the output leg of the sentinel round trip: every
// surviving +Inf (unreachable) becomes 0 again.
// Complexity: O(N²).
func restoreZeros(rows [][]float64) {
	var i, j int
	for i = range rows {
		for j = range rows[i] {
			if math.IsInf(rows[i][j], 1) {
				rows[i][j] = 0
			}
		}
	}
}

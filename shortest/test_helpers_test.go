// Package shortest_test contains shared fixtures and assertion helpers.
//
// Purpose:
//   - Keep per-property tests short by centralizing matrix construction.
//   - All fixtures are deterministic (fixed seeds) and non-negative.
package shortest_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/matrix"
)

// floatTol is the comparison tolerance for dense-vs-sparse agreement.
const floatTol = 1e-9

// mustDense allocates an r×c matrix filled with the given row-major values.
func mustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()

	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	if len(vals) > 0 {
		require.NoError(t, m.Fill(vals))
	}

	return m
}

// triangleDense is scenario fixture A/B: a 3-vertex graph with edges
// 0→1 (1), 1→2 (2), 0→2 (5) in the dense "0 = no edge" convention.
func triangleDense(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustDense(t, 3, 3,
		0, 1, 5,
		0, 0, 2,
		0, 0, 0,
	)
}

// randomDense builds an n×n non-negative distance matrix with roughly
// density·n² directed edges, weights in [0.1, 10).
func randomDense(t *testing.T, n int, density float64, seed int64) *matrix.Dense {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	m := mustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < density {
				require.NoError(t, m.Set(i, j, 0.1+rng.Float64()*9.9))
			}
		}
	}

	return m
}

// distAt reads result[i][j] and reports whether it denotes a reachable
// pair: under the inherited convention, 0 off the diagonal means
// unreachable (all fixture weights are strictly positive, so a genuine
// zero-cost path between distinct vertices cannot occur).
func distAt(t *testing.T, res *matrix.Dense, i, j int) (float64, bool) {
	t.Helper()

	v, err := res.At(i, j)
	require.NoError(t, err)

	return v, i == j || v != 0
}

// requireSameMatrix asserts entry-wise equality within floatTol.
func requireSameMatrix(t *testing.T, want, got *matrix.Dense) {
	t.Helper()

	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, _ := want.At(i, j)
			g, _ := got.At(i, j)
			require.InDelta(t, w, g, floatTol, "entry (%d,%d)", i, j)
		}
	}
}

package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/matrix"
	"github.com/katalvlaran/lvlpath/shortest"
)

func TestDenseAllPairs_ScenarioA_Directed(t *testing.T) {
	t.Parallel()

	res, err := shortest.DenseAllPairs(triangleDense(t), shortest.WithDirected())
	require.NoError(t, err)

	want := mustDense(t, 3, 3,
		0, 1, 3, // 0→2 shortens via 1 (1+2 < 5)
		0, 0, 2, // 1→0 unreachable, stays 0
		0, 0, 0, // 2 reaches nothing
	)
	requireSameMatrix(t, want, res)
}

func TestDenseAllPairs_ScenarioB_Undirected(t *testing.T) {
	t.Parallel()

	// Undirected is the default for DenseAllPairs.
	res, err := shortest.DenseAllPairs(triangleDense(t))
	require.NoError(t, err)

	want := mustDense(t, 3, 3,
		0, 1, 3,
		1, 0, 2,
		3, 2, 0,
	)
	requireSameMatrix(t, want, res)
}

func TestDenseAllPairs_ScenarioC_Isolated(t *testing.T) {
	t.Parallel()

	res, err := shortest.DenseAllPairs(mustDense(t, 4, 4))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := res.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v, "isolated vertices yield an all-zero result")
		}
	}
}

func TestDenseAllPairs_OverwritesByDefault(t *testing.T) {
	t.Parallel()

	d := triangleDense(t)
	res, err := shortest.DenseAllPairs(d, shortest.WithDirected())
	require.NoError(t, err)

	// Consume semantics: the result is the caller's matrix, relaxed.
	require.Same(t, d, res)
}

func TestDenseAllPairs_WithCopy_PreservesInput(t *testing.T) {
	t.Parallel()

	d := triangleDense(t)
	res, err := shortest.DenseAllPairs(d, shortest.WithDirected(), shortest.WithCopy())
	require.NoError(t, err)
	require.NotSame(t, d, res)

	// The caller's matrix still holds the raw adjacency.
	requireSameMatrix(t, triangleDense(t), d)
}

func TestDenseAllPairs_DiagonalForcedZero(t *testing.T) {
	t.Parallel()

	d := mustDense(t, 2, 2,
		9, 1,
		1, 9,
	)
	res, err := shortest.DenseAllPairs(d)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		v, _ := res.At(i, i)
		require.Zero(t, v, "diagonal is forced to 0 whatever the input held")
	}
}

func TestDenseAllPairs_SymmetrizeTakesSmallerDirection(t *testing.T) {
	t.Parallel()

	// Asymmetric input under undirected mode: the smaller direction wins
	// for the unordered pair (documented limitation).
	d := mustDense(t, 2, 2,
		0, 7,
		3, 0,
	)
	res, err := shortest.DenseAllPairs(d)
	require.NoError(t, err)

	a, _ := res.At(0, 1)
	b, _ := res.At(1, 0)
	require.Equal(t, 3.0, a)
	require.Equal(t, 3.0, b)
}

func TestDenseAllPairs_Errors(t *testing.T) {
	t.Parallel()

	_, err := shortest.DenseAllPairs(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = shortest.DenseAllPairs(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	neg := mustDense(t, 2, 2,
		0, -1,
		0, 0,
	)
	_, err = shortest.DenseAllPairs(neg)
	require.ErrorIs(t, err, shortest.ErrNegativeWeight)

	// Rejection happens before any mutation: the input is untouched even
	// though overwrite is the default.
	requireSameMatrix(t, mustDense(t, 2, 2, 0, -1, 0, 0), neg)
}

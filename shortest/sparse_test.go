package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/csr"
	"github.com/katalvlaran/lvlpath/shortest"
)

// triangleCSR mirrors the dense triangle fixture as a compressed-row
// triple: 0→1 (1), 0→2 (5), 1→2 (2).
func triangleCSR(t *testing.T) *csr.Graph {
	t.Helper()

	g, err := csr.New(
		[]float64{1, 5, 2},
		[]int{1, 2, 2},
		[]int{0, 2, 3, 3},
	)
	require.NoError(t, err)

	return g
}

func TestSparseSingleSource_ScenarioA_Directed(t *testing.T) {
	t.Parallel()

	res, err := shortest.SparseSingleSource(triangleCSR(t), shortest.WithDirected())
	require.NoError(t, err)

	want := mustDense(t, 3, 3,
		0, 1, 3,
		0, 0, 2,
		0, 0, 0,
	)
	requireSameMatrix(t, want, res)
}

func TestSparseSingleSource_ScenarioB_Undirected(t *testing.T) {
	t.Parallel()

	// Undirected is the default for SparseSingleSource.
	res, err := shortest.SparseSingleSource(triangleCSR(t))
	require.NoError(t, err)

	want := mustDense(t, 3, 3,
		0, 1, 3,
		1, 0, 2,
		3, 2, 0,
	)
	requireSameMatrix(t, want, res)

	// Symmetry property in undirected mode.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a, _ := res.At(i, j)
			b, _ := res.At(j, i)
			require.Equal(t, a, b, "undirected result must be symmetric")
		}
	}
}

func TestSparseSingleSource_SourceSubset(t *testing.T) {
	t.Parallel()

	res, err := shortest.SparseSingleSource(triangleCSR(t),
		shortest.WithDirected(),
		shortest.WithSources(2, 0),
	)
	require.NoError(t, err)

	// One row per requested source, in request order.
	want := mustDense(t, 2, 3,
		0, 0, 0, // from 2: nothing reachable
		0, 1, 3, // from 0
	)
	requireSameMatrix(t, want, res)
}

func TestSparseSingleSource_UnreachableStaysZero(t *testing.T) {
	t.Parallel()

	// Two components: 0→1 (2); vertex 2 isolated.
	g, err := csr.New([]float64{2}, []int{1}, []int{0, 1, 1, 1})
	require.NoError(t, err)

	res, err := shortest.SparseSingleSource(g, shortest.WithDirected())
	require.NoError(t, err)

	v, _ := res.At(0, 2)
	require.Zero(t, v, "unreachable vertices keep the 0 sentinel")
	v, _ = res.At(2, 0)
	require.Zero(t, v)
	v, _ = res.At(0, 1)
	require.Equal(t, 2.0, v)
}

func TestSparseSingleSource_ZeroWeightEdge(t *testing.T) {
	t.Parallel()

	// A genuine zero-weight edge is representable in CSR (unlike dense):
	// 0→1 (0), 1→2 (4). The 0→1 distance collapses onto the unreachable
	// sentinel — the documented ambiguity, preserved rather than fixed.
	g, err := csr.New([]float64{0, 4}, []int{1, 2}, []int{0, 1, 2, 2})
	require.NoError(t, err)

	res, err := shortest.SparseSingleSource(g, shortest.WithDirected())
	require.NoError(t, err)

	v, _ := res.At(0, 1)
	require.Zero(t, v)
	v, _ = res.At(0, 2)
	require.Equal(t, 4.0, v, "paths through the zero-weight edge still accumulate")
}

func TestSparseSingleSource_Errors(t *testing.T) {
	t.Parallel()

	_, err := shortest.SparseSingleSource(nil)
	require.ErrorIs(t, err, csr.ErrNilGraph)

	_, err = shortest.SparseSingleSource(triangleCSR(t), shortest.WithSources(3))
	require.ErrorIs(t, err, shortest.ErrSourceOutOfRange)

	_, err = shortest.SparseSingleSource(triangleCSR(t), shortest.WithSources(-1))
	require.ErrorIs(t, err, shortest.ErrSourceOutOfRange)
}

func TestSparseSingleSource_NegativeWeightRejectedAtConstruction(t *testing.T) {
	t.Parallel()

	// Negative values error out before any computation: csr constructors
	// are the only way to obtain a Graph, so the search itself can never
	// observe one.
	_, err := csr.New([]float64{-1}, []int{1}, []int{0, 1, 1})
	require.ErrorIs(t, err, shortest.ErrNegativeWeight)
}

func TestSparseSingleSource_WorkersMatchSequential(t *testing.T) {
	t.Parallel()

	d := randomDense(t, 40, 0.2, 7)
	g, err := csr.FromDense(d)
	require.NoError(t, err)

	seq, err := shortest.SparseSingleSource(g, shortest.WithDirected())
	require.NoError(t, err)

	par, err := shortest.SparseSingleSource(g,
		shortest.WithDirected(),
		shortest.WithWorkers(4),
	)
	require.NoError(t, err)

	// Each row is computed by exactly one search either way, so the
	// results agree bit for bit.
	requireSameMatrix(t, seq, par)
}

func TestWithWorkers_PanicsBelowOne(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { shortest.WithWorkers(0) })
}

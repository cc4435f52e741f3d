package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hampath/backtrack"
	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/core"
)

func TestSolve_NilGraph(t *testing.T) {
	res, err := backtrack.Solve(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, backtrack.ErrGraphNil)
}

func TestSolve_Degenerate(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	res, err := backtrack.Solve(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Calls)

	g, err = core.NewGraph(1)
	require.NoError(t, err)
	res, err = backtrack.Solve(g)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Zero(t, res.Calls)
}

func TestSolve_IsolatedVertexShortCircuit(t *testing.T) {
	// triangle plus a degree-0 vertex
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	res, err := backtrack.Solve(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Calls)
}

func TestSolve_DisconnectedShortCircuit(t *testing.T) {
	// two disjoint edges: every degree ≥ 1 but two components
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	res, err := backtrack.Solve(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Calls)
}

func TestSolve_SingleEdge(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)

	res, err := backtrack.Solve(g)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Positive(t, res.Calls)
}

func TestSolve_PathGraphs(t *testing.T) {
	for n := 2; n <= 10; n++ {
		g, err := builder.Path(n)
		require.NoError(t, err)
		res, err := backtrack.Solve(g)
		require.NoError(t, err)
		assert.True(t, res.Found, "P_%d", n)
	}
}

func TestSolve_CycleGraphs(t *testing.T) {
	for n := 3; n <= 10; n++ {
		g, err := builder.Cycle(n)
		require.NoError(t, err)
		res, err := backtrack.Solve(g)
		require.NoError(t, err)
		assert.True(t, res.Found, "C_%d", n)
	}
}

func TestSolve_StarGraphs(t *testing.T) {
	// S_2 and S_3 are paths; from S_4 on, at most two leaves can be
	// endpoints and the rest would need leaf-to-leaf edges.
	for n := 4; n <= 9; n++ {
		g, err := builder.Star(n)
		require.NoError(t, err)
		res, err := backtrack.Solve(g)
		require.NoError(t, err)
		assert.False(t, res.Found, "S_%d", n)
		assert.Positive(t, res.Calls, "S_%d is connected, so the search must run", n)
	}
}

func TestSolve_CompleteGraphs(t *testing.T) {
	for n := 2; n <= 8; n++ {
		g, err := builder.Complete(n)
		require.NoError(t, err)
		res, err := backtrack.Solve(g)
		require.NoError(t, err)
		assert.True(t, res.Found, "K_%d", n)
		// K_n succeeds on the first start greedily: exactly n calls.
		assert.Equal(t, uint64(n), res.Calls, "K_%d", n)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g, err := builder.Random(12, builder.Sparse, 99)
	require.NoError(t, err)

	first, err := backtrack.Solve(g)
	require.NoError(t, err)
	second, err := backtrack.Solve(g)
	require.NoError(t, err)

	assert.Equal(t, first.Found, second.Found)
	assert.Equal(t, first.Calls, second.Calls)
}

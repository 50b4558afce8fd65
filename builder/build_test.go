// SPDX-License-Identifier: MIT

package builder_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrpath/builder"
	"github.com/katalvlaran/csrpath/core"
)

func vs(xs ...int) []core.VertexIndex {
	out := make([]core.VertexIndex, len(xs))
	for i, x := range xs {
		out[i] = core.VertexIndex(x)
	}

	return out
}

func TestBuild_Directed(t *testing.T) {
	g, err := builder.Build(3, vs(0, 0, 1), vs(1, 2, 2), builder.WithWeights([]float64{1, 4, 2}))
	require.NoError(t, err)

	offsets, nbrs, ws := g.Arrays()
	assert.Equal(t, []uint64{0, 2, 3, 3}, offsets)
	assert.Equal(t, vs(1, 2, 2), nbrs)
	assert.Equal(t, []float64{1, 4, 2}, ws)
	assert.True(t, g.Directed())
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	require.NoError(t, g.Validate())
}

func TestBuild_RowKeepsInputOrder(t *testing.T) {
	g, err := builder.Build(4, vs(0, 1, 0, 0), vs(3, 2, 1, 2))
	require.NoError(t, err)

	nbrs, ws, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, vs(3, 1, 2), nbrs)
	assert.Equal(t, []float64{1, 1, 1}, ws, "default weight is core.DefaultWeight")
}

func TestBuild_Undirected(t *testing.T) {
	g, err := builder.Build(3, vs(0, 1), vs(1, 2),
		builder.WithUndirected(), builder.WithWeights([]float64{5, 7}))
	require.NoError(t, err)

	offsets, nbrs, ws := g.Arrays()
	assert.Equal(t, []uint64{0, 1, 3, 4}, offsets)
	assert.Equal(t, vs(1, 0, 2, 1), nbrs)
	assert.Equal(t, []float64{5, 5, 7, 7}, ws)
	assert.False(t, g.Directed())
	assert.Equal(t, 4, g.NumEdges(), "every undirected edge is stored twice")
}

func TestBuild_UndirectedSelfLoopStoredTwice(t *testing.T) {
	g, err := builder.Build(1, vs(0), vs(0), builder.WithUndirected())
	require.NoError(t, err)
	nbrs, _, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, vs(0, 0), nbrs)
}

func TestBuild_ParallelEdgesAndSelfLoopsKept(t *testing.T) {
	g, err := builder.Build(2, vs(0, 0, 1), vs(1, 1, 1), builder.WithWeights([]float64{3, 2, 9}))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumEdges())
	w, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w, "EdgeWeight reports the lightest parallel edge")
}

func TestBuild_IsolatedVerticesHaveEmptyRows(t *testing.T) {
	g, err := builder.Build(4, vs(1), vs(2))
	require.NoError(t, err)
	for _, v := range vs(0, 2, 3) {
		d, err := g.OutDegree(v)
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestBuild_Empty(t *testing.T) {
	g, err := builder.Build(0, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, g.NumVertices())
	assert.Zero(t, g.NumEdges())
}

func TestBuild_NegativeWeightsStored(t *testing.T) {
	g, err := builder.Build(2, vs(0), vs(1), builder.WithWeights([]float64{-3}))
	require.NoError(t, err)
	w, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, -3.0, w)
}

func TestBuild_DefaultWeight(t *testing.T) {
	g, err := builder.Build(2, vs(0), vs(1), builder.WithDefaultWeight(2.5))
	require.NoError(t, err)
	w, _ := g.EdgeWeight(0, 1)
	assert.Equal(t, 2.5, w)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		src  []core.VertexIndex
		dst  []core.VertexIndex
		opts []builder.Option
		want error
	}{
		{"negative n", -1, nil, nil, nil, builder.ErrVertexCount},
		{"column mismatch", 2, vs(0, 1), vs(1), nil, builder.ErrLengthMismatch},
		{"weight mismatch", 2, vs(0), vs(1), []builder.Option{builder.WithWeights([]float64{1, 2})}, builder.ErrLengthMismatch},
		{"source out of range", 2, vs(2), vs(1), nil, builder.ErrVertexOutOfRange},
		{"destination out of range", 2, vs(0), vs(5), nil, core.ErrVertexOutOfRange},
		{"NaN weight", 2, vs(0), vs(1), []builder.Option{builder.WithWeights([]float64{math.NaN()})}, builder.ErrInvalidWeight},
		{"Inf weight", 2, vs(0), vs(1), []builder.Option{builder.WithWeights([]float64{math.Inf(1)})}, builder.ErrInvalidWeight},
		{"parallelism", 2, nil, nil, []builder.Option{builder.WithParallelism(0)}, builder.ErrOptionViolation},
		{"NaN default", 2, nil, nil, []builder.Option{builder.WithDefaultWeight(math.NaN())}, builder.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.n, tc.src, tc.dst, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_ReportsLowestFailingEdge(t *testing.T) {
	src := vs(0, 0, 0, 0, 0, 0, 0, 0)
	dst := vs(1, 1, 1, 9, 1, 1, 7, 1)
	for _, k := range []int{1, 2, 4, 8} {
		_, err := builder.Build(2, src, dst, builder.WithParallelism(k))
		require.ErrorIs(t, err, builder.ErrVertexOutOfRange)
		assert.Contains(t, err.Error(), "edge 3:", "k=%d", k)
	}
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := builder.Build(2, vs(0), vs(1), builder.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBuild_ParallelismDoesNotChangeResult(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n, m = 500, 20000
	src := make([]core.VertexIndex, m)
	dst := make([]core.VertexIndex, m)
	ws := make([]float64, m)
	for i := range src {
		src[i] = core.VertexIndex(rng.Intn(n))
		dst[i] = core.VertexIndex(rng.Intn(n))
		ws[i] = float64(rng.Intn(10))
	}

	for _, undirected := range []bool{false, true} {
		opts := []builder.Option{builder.WithWeights(ws)}
		if undirected {
			opts = append(opts, builder.WithUndirected())
		}
		want, err := builder.Build(n, src, dst, opts...)
		require.NoError(t, err)
		wo, wn, ww := want.Arrays()

		for _, k := range []int{2, 7, 16} {
			got, err := builder.Build(n, src, dst, append(opts, builder.WithParallelism(k))...)
			require.NoError(t, err)
			o, nb, w := got.Arrays()
			if diff := cmp.Diff(wo, o); diff != "" {
				t.Errorf("undirected=%v k=%d offsets (-want +got):\n%s", undirected, k, diff)
			}
			if diff := cmp.Diff(wn, nb); diff != "" {
				t.Errorf("undirected=%v k=%d neighbors (-want +got):\n%s", undirected, k, diff)
			}
			if diff := cmp.Diff(ww, w); diff != "" {
				t.Errorf("undirected=%v k=%d weights (-want +got):\n%s", undirected, k, diff)
			}
		}
	}
}

// TestBuild_EveryInputEdgeIsStored checks the multiset of stored edges
// equals the input multiset.
func TestBuild_EveryInputEdgeIsStored(t *testing.T) {
	src := vs(2, 0, 2, 1, 2)
	dst := vs(0, 1, 0, 1, 1)
	ws := []float64{1, 2, 1, 3, 4}
	g, err := builder.Build(3, src, dst, builder.WithWeights(ws))
	require.NoError(t, err)

	type edge struct {
		u, v core.VertexIndex
		w    float64
	}
	want := map[edge]int{}
	for i := range src {
		want[edge{src[i], dst[i], ws[i]}]++
	}
	got := map[edge]int{}
	g.ForEachEdge(func(u, v core.VertexIndex, w float64) bool {
		got[edge{u, v, w}]++
		return true
	})
	assert.Equal(t, want, got)
}

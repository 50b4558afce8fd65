// SPDX-License-Identifier: MIT

package sssp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrpath/builder"
	"github.com/katalvlaran/csrpath/core"
)

// karateEdges is Zachary's karate club (78 undirected edges) with zero-based
// vertex indices 0..33.
var karateEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8}, {0, 10}, {0, 11},
	{0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31}, {1, 2}, {1, 3}, {1, 7}, {1, 13},
	{1, 17}, {1, 19}, {1, 21}, {1, 30}, {2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27},
	{2, 28}, {2, 32}, {3, 7}, {3, 12}, {3, 13}, {4, 6}, {4, 10}, {5, 6}, {5, 10}, {5, 16},
	{6, 16}, {8, 30}, {8, 32}, {8, 33}, {9, 33}, {13, 33}, {14, 32}, {14, 33}, {15, 32}, {15, 33},
	{18, 32}, {18, 33}, {19, 33}, {20, 32}, {20, 33}, {22, 32}, {22, 33}, {23, 25}, {23, 27}, {23, 29},
	{23, 32}, {23, 33}, {24, 25}, {24, 27}, {24, 31}, {25, 31}, {26, 29}, {26, 33}, {27, 33}, {28, 31},
	{28, 33}, {29, 32}, {29, 33}, {30, 32}, {30, 33}, {31, 32}, {31, 33}, {32, 33},
}

// karate returns the undirected unit-weight karate graph.
func karate(t testing.TB) *core.CSRGraph {
	t.Helper()
	src := make([]core.VertexIndex, len(karateEdges))
	dst := make([]core.VertexIndex, len(karateEdges))
	for i, e := range karateEdges {
		src[i], dst[i] = core.VertexIndex(e[0]), core.VertexIndex(e[1])
	}
	g, err := builder.Build(34, src, dst, builder.WithUndirected())
	require.NoError(t, err)

	return g
}

// directed builds a directed graph from (u, v, w) triples.
func directed(t testing.TB, n int, edges ...[3]float64) *core.CSRGraph {
	t.Helper()
	src := make([]core.VertexIndex, len(edges))
	dst := make([]core.VertexIndex, len(edges))
	ws := make([]float64, len(edges))
	for i, e := range edges {
		src[i], dst[i], ws[i] = core.VertexIndex(e[0]), core.VertexIndex(e[1]), e[2]
	}
	g, err := builder.Build(n, src, dst, builder.WithWeights(ws))
	require.NoError(t, err)

	return g
}

// randomGraph returns a seeded G(n,p) with integral weights in [1,20].
func randomGraph(t testing.TB, n int, p float64, seed int64, undirected bool) *core.CSRGraph {
	t.Helper()
	el, err := builder.Generate(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 20), builder.WithOrderedPairs()},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)
	var opts []builder.Option
	if undirected {
		opts = append(opts, builder.WithUndirected())
	}
	g, err := builder.FromEdgeList(el, opts...)
	require.NoError(t, err)

	return g
}

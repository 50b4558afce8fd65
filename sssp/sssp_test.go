// SPDX-License-Identifier: MIT

package sssp_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/path"
	"github.com/katalvlaran/csrpath/sssp"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPaths_Validation(t *testing.T) {
	g := directed(t, 2, [3]float64{0, 1, 1})

	_, err := sssp.ShortestPaths(nil, 0)
	assert.ErrorIs(t, err, sssp.ErrNilGraph)

	_, err = sssp.ShortestPaths(g, 2)
	assert.ErrorIs(t, err, sssp.ErrInvalidSource)

	_, err = sssp.ShortestPaths(g, core.NoVertex)
	assert.ErrorIs(t, err, sssp.ErrInvalidSource)

	for _, opt := range []sssp.Option{
		sssp.WithMaxDistance(-1),
		sssp.WithMaxDistance(math.NaN()),
		sssp.WithInfEdgeThreshold(0),
		sssp.WithFrontier(sssp.Frontier(7)),
	} {
		_, err = sssp.ShortestPaths(g, 0, opt)
		assert.ErrorIs(t, err, sssp.ErrOptionViolation)
	}
}

func TestParseFrontier(t *testing.T) {
	f, err := sssp.ParseFrontier("indexed")
	require.NoError(t, err)
	assert.Equal(t, sssp.FrontierIndexed, f)
	f, err = sssp.ParseFrontier("")
	require.NoError(t, err)
	assert.Equal(t, sssp.FrontierBinaryHeap, f)
	assert.Equal(t, "binary-heap", f.String())
	_, err = sssp.ParseFrontier("fibonacci")
	assert.ErrorIs(t, err, sssp.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Correctness
// ------------------------------------------------------------------------

func TestShortestPaths_Basic(t *testing.T) {
	g := directed(t, 5,
		[3]float64{0, 1, 4},
		[3]float64{0, 2, 1},
		[3]float64{2, 1, 2},
		[3]float64{1, 3, 1},
		[3]float64{2, 3, 5},
	)
	da, err := sssp.ShortestPaths(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 3, 1, 4, math.Inf(1)}, da.Distances)
	assert.Equal(t, []core.VertexIndex{core.NoVertex, 2, 0, 1, core.NoVertex}, da.Predecessors)
	assert.Equal(t, core.VertexIndex(0), da.Source)
	require.NoError(t, sssp.Verify(g, da))
}

func TestShortestPaths_ZeroWeightsAndSelfLoops(t *testing.T) {
	g := directed(t, 3,
		[3]float64{0, 0, 0},
		[3]float64{0, 1, 0},
		[3]float64{1, 2, 0},
		[3]float64{2, 2, 3},
	)
	da, err := sssp.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, da.Distances)
	assert.Equal(t, core.NoVertex, da.Predecessors[0], "a self-loop never becomes the source's predecessor")
	require.NoError(t, sssp.Verify(g, da))
}

func TestShortestPaths_TieBreakSmallerIndexSettlesFirst(t *testing.T) {
	// Diamond: 0→1→3 and 0→2→3 with equal weights, edges listed so that
	// vertex 2 is relaxed first from 0.
	g := directed(t, 4,
		[3]float64{0, 2, 1},
		[3]float64{0, 1, 1},
		[3]float64{2, 3, 1},
		[3]float64{1, 3, 1},
	)
	da, err := sssp.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, core.VertexIndex(1), da.Predecessors[3])
}

func TestShortestPaths_TieBreakFirstSettledWins(t *testing.T) {
	// Both 1 and 2 reach 3 at distance 3; 2 settles first (distance 1 < 2),
	// so it stays the predecessor despite the larger index.
	g := directed(t, 4,
		[3]float64{0, 1, 2},
		[3]float64{0, 2, 1},
		[3]float64{2, 3, 2},
		[3]float64{1, 3, 1},
	)
	da, err := sssp.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, da.Distances[3])
	assert.Equal(t, core.VertexIndex(2), da.Predecessors[3])
}

func TestShortestPaths_Deterministic(t *testing.T) {
	g := randomGraph(t, 200, 0.03, 9, true)
	a, err := sssp.ShortestPaths(g, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		b, err := sssp.ShortestPaths(g, 5)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestShortestPaths_RandomGraphsVerify(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := randomGraph(t, 120, 0.04, seed, seed%2 == 0)
		for _, src := range []core.VertexIndex{0, 17, 119} {
			heapRes, err := sssp.ShortestPaths(g, src)
			require.NoError(t, err)
			require.NoError(t, sssp.Verify(g, heapRes), "seed %d source %d", seed, src)

			idxRes, err := sssp.ShortestPaths(g, src, sssp.WithFrontier(sssp.FrontierIndexed))
			require.NoError(t, err)
			require.NoError(t, sssp.Verify(g, idxRes))
			if diff := cmp.Diff(heapRes.Distances, idxRes.Distances); diff != "" {
				t.Fatalf("seed %d source %d: frontiers disagree (-heap +indexed):\n%s", seed, src, diff)
			}
		}
	}
}

func TestShortestPaths_PathWeightMatchesDistance(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		g := randomGraph(t, 90, 0.05, seed, seed%2 == 1)
		e, err := sssp.NewEngine(g)
		require.NoError(t, err)
		for _, f := range []sssp.Frontier{sssp.FrontierBinaryHeap, sssp.FrontierIndexed} {
			for _, src := range []core.VertexIndex{0, 45, 89} {
				fresh, err := sssp.ShortestPaths(g, src, sssp.WithFrontier(f))
				require.NoError(t, err)
				pooled, err := e.ShortestPaths(src, sssp.WithFrontier(f))
				require.NoError(t, err)

				for _, da := range []*core.DistanceArray{fresh, pooled} {
					require.Equal(t, fresh.Distances, da.Distances, "seed %d frontier %v source %d", seed, f, src)
					for v := 0; v < g.NumVertices(); v++ {
						target := core.VertexIndex(v)
						if !da.Reachable(target) {
							continue
						}
						p, err := path.Reconstruct(da, target)
						require.NoError(t, err)
						require.Equal(t, src, p[0])
						require.Equal(t, target, p[len(p)-1])
						w, err := path.Weight(g, p)
						require.NoError(t, err)
						require.Equal(t, da.Distances[target], w, "seed %d frontier %v %d→%d", seed, f, src, target)
					}
				}
			}
		}
	}
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g := directed(t, 3,
		[3]float64{0, 1, 1},
		[3]float64{1, 2, -1},
	)
	_, err := sssp.ShortestPaths(g, 0)
	assert.ErrorIs(t, err, sssp.ErrNegativeWeight)

	// Not reachable from 2, so never relaxed.
	da, err := sssp.ShortestPaths(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, da.ReachableCount())
}

func TestShortestPaths_MaxDistance(t *testing.T) {
	g := directed(t, 4,
		[3]float64{0, 1, 1},
		[3]float64{1, 2, 1},
		[3]float64{2, 3, 1},
	)
	da, err := sssp.ShortestPaths(g, 0, sssp.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, da.Distances[2])
	assert.True(t, math.IsInf(da.Distances[3], 1))
	assert.Equal(t, core.NoVertex, da.Predecessors[3])
}

func TestShortestPaths_InfEdgeThreshold(t *testing.T) {
	g := directed(t, 3,
		[3]float64{0, 2, 10},
		[3]float64{0, 1, 6},
		[3]float64{1, 2, 6},
	)
	da, err := sssp.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, da.Distances[2])

	da, err = sssp.ShortestPaths(g, 0, sssp.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	assert.Equal(t, 12.0, da.Distances[2])
	assert.Equal(t, core.VertexIndex(1), da.Predecessors[2])
}

func TestShortestPaths_OnSettle(t *testing.T) {
	g := randomGraph(t, 60, 0.1, 4, true)
	var order []core.VertexIndex
	var last float64
	da, err := sssp.ShortestPaths(g, 0, sssp.WithOnSettle(func(v core.VertexIndex, d float64) error {
		assert.GreaterOrEqual(t, d, last, "settled distances never decrease")
		last = d
		order = append(order, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, da.ReachableCount(), len(order), "every reachable vertex settles exactly once")

	stop := errors.New("stop")
	calls := 0
	_, err = sssp.ShortestPaths(g, 0, sssp.WithOnSettle(func(core.VertexIndex, float64) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestShortestPaths_Cancelled(t *testing.T) {
	g := randomGraph(t, 50, 0.1, 2, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sssp.ShortestPaths(g, 0, sssp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 3. Karate club scenario
// ------------------------------------------------------------------------

func TestShortestPaths_Karate(t *testing.T) {
	g := karate(t)
	require.Equal(t, 34, g.NumVertices())
	require.Equal(t, 2*78, g.NumEdges())

	da, err := sssp.ShortestPaths(g, 1)
	require.NoError(t, err)
	require.NoError(t, sssp.Verify(g, da))

	assert.Equal(t, 1.0, da.Distances[0])
	assert.Equal(t, 2.0, da.Distances[33])
	assert.Equal(t, 34, da.ReachableCount())

	p, err := path.Reconstruct(da, 33)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{1, 13, 33}, p)
	assert.Equal(t, da.Distances[33], float64(len(p)-1), "unit weights: distance equals hop count")
}

// ------------------------------------------------------------------------
// 4. Engine
// ------------------------------------------------------------------------

func TestEngine_PathTo(t *testing.T) {
	e, err := sssp.NewEngine(karate(t))
	require.NoError(t, err)

	p, d, err := e.PathTo(1, 33)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{1, 13, 33}, p)
	assert.Equal(t, 2.0, d)

	p, d, err = e.PathTo(5, 5)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{5}, p)
	assert.Zero(t, d)

	_, _, err = e.PathTo(1, 34)
	assert.ErrorIs(t, err, path.ErrTargetOutOfRange)
	_, _, err = e.PathTo(34, 1)
	assert.ErrorIs(t, err, sssp.ErrInvalidSource)
	_, _, err = e.PathTo(1, 33, sssp.WithMaxDistance(1))
	assert.ErrorIs(t, err, path.ErrUnreachable)
}

func TestEngine_Unreachable(t *testing.T) {
	e, err := sssp.NewEngine(directed(t, 3, [3]float64{0, 1, 1}))
	require.NoError(t, err)
	_, _, err = e.PathTo(0, 2)
	assert.ErrorIs(t, err, path.ErrUnreachable)
}

func TestEngine_WorkspaceResetBetweenQueries(t *testing.T) {
	g := randomGraph(t, 150, 0.05, 21, true)
	e, err := sssp.NewEngine(g)
	require.NoError(t, err)

	// An early-exit query leaves tentative labels behind; the next full
	// query must not see them.
	_, _, _ = e.PathTo(0, 1)
	for _, src := range []core.VertexIndex{3, 0, 149} {
		want, err := sssp.ShortestPaths(g, src)
		require.NoError(t, err)
		for _, f := range []sssp.Frontier{sssp.FrontierBinaryHeap, sssp.FrontierIndexed} {
			got, err := e.ShortestPaths(src, sssp.WithFrontier(f))
			require.NoError(t, err)
			if diff := cmp.Diff(want.Distances, got.Distances); diff != "" {
				t.Fatalf("source %d frontier %v (-want +got):\n%s", src, f, diff)
			}
			_, _, _ = e.PathTo(src, 7, sssp.WithFrontier(f))
		}
	}
}

func TestEngine_RepeatedIndexedQueries(t *testing.T) {
	e, err := sssp.NewEngine(directed(t, 3, [3]float64{0, 1, 1}, [3]float64{1, 2, 1}))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		da, err := e.ShortestPaths(0, sssp.WithFrontier(sssp.FrontierIndexed))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2}, da.Distances, "query %d", i)

		p, d, err := e.PathTo(0, 2, sssp.WithFrontier(sssp.FrontierIndexed))
		require.NoError(t, err)
		assert.Equal(t, []core.VertexIndex{0, 1, 2}, p, "query %d", i)
		assert.Equal(t, 2.0, d)
	}
}

func TestEngine_ConcurrentQueries(t *testing.T) {
	g := randomGraph(t, 300, 0.02, 5, true)
	e, err := sssp.NewEngine(g)
	require.NoError(t, err)

	want := make([]*core.DistanceArray, 32)
	for i := range want {
		want[i], err = sssp.ShortestPaths(g, core.VertexIndex(i*9))
		require.NoError(t, err)
	}

	got := make([]*core.DistanceArray, len(want))
	var eg errgroup.Group
	for i := range got {
		eg.Go(func() error {
			da, err := e.ShortestPaths(core.VertexIndex(i * 9))
			got[i] = da
			return err
		})
	}
	require.NoError(t, eg.Wait())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("concurrent results differ (-sequential +concurrent):\n%s", diff)
	}
}

func TestNewEngine_NilGraph(t *testing.T) {
	_, err := sssp.NewEngine(nil)
	assert.ErrorIs(t, err, sssp.ErrNilGraph)
}

// ------------------------------------------------------------------------
// 5. Verify
// ------------------------------------------------------------------------

func TestVerify_DetectsCorruption(t *testing.T) {
	g := directed(t, 3,
		[3]float64{0, 1, 1},
		[3]float64{1, 2, 1},
		[3]float64{0, 2, 5},
	)
	good, err := sssp.ShortestPaths(g, 0)
	require.NoError(t, err)
	require.NoError(t, sssp.Verify(g, good))

	corrupt := map[string]func(da *core.DistanceArray){
		"source distance":   func(da *core.DistanceArray) { da.Distances[0] = 1 },
		"not optimal":       func(da *core.DistanceArray) { da.Distances[2], da.Predecessors[2] = 5, 0 },
		"wrong pred":        func(da *core.DistanceArray) { da.Predecessors[2] = 0 },
		"orphan pred":       func(da *core.DistanceArray) { da.Distances[2], da.Predecessors[2] = math.Inf(1), 1 },
		"missing pred":      func(da *core.DistanceArray) { da.Predecessors[1] = core.NoVertex },
		"short arrays":      func(da *core.DistanceArray) { da.Distances = da.Distances[:2] },
		"false unreachable": func(da *core.DistanceArray) { da.Distances[2], da.Predecessors[2] = math.Inf(1), core.NoVertex },
	}
	for name, mutate := range corrupt {
		t.Run(name, func(t *testing.T) {
			da := good.Clone()
			mutate(da)
			assert.ErrorIs(t, sssp.Verify(g, da), core.ErrInternalConsistency)
		})
	}
}

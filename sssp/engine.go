// SPDX-License-Identifier: MIT

package sssp

import (
	"fmt"
	"math"
	"sync"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/path"
)

// ShortestPaths computes distances and predecessors from source to every
// vertex of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. source < g.NumVertices() (ErrInvalidSource).
//
// Every weight on a reachable edge must be non-negative; a negative one
// aborts the query with ErrNegativeWeight.
//
// Complexity:
//   - Time:  O((n + m) log n).
//   - Space: O(n + m).
func ShortestPaths(g *core.CSRGraph, source core.VertexIndex, opts ...Option) (*core.DistanceArray, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkSource(g, source); err != nil {
		return nil, err
	}

	ws := newWorkspace(g.NumVertices())
	if err = ws.run(g, source, core.NoVertex, o); err != nil {
		return nil, err
	}

	// The workspace is not reused, so its arrays are handed over as-is.
	return &core.DistanceArray{Source: source, Distances: ws.dist, Predecessors: ws.pred}, nil
}

// Engine answers repeated queries over one immutable graph. It is safe for
// concurrent use; each query borrows a workspace from an internal pool.
type Engine struct {
	g    *core.CSRGraph
	pool sync.Pool
}

// NewEngine returns an Engine over g.
func NewEngine(g *core.CSRGraph) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	e := &Engine{g: g}
	n := g.NumVertices()
	e.pool.New = func() any { return newWorkspace(n) }

	return e, nil
}

// Graph returns the graph the engine queries.
func (e *Engine) Graph() *core.CSRGraph { return e.g }

// ShortestPaths is the pooled equivalent of the package-level ShortestPaths.
// The returned array is a copy owned by the caller.
func (e *Engine) ShortestPaths(source core.VertexIndex, opts ...Option) (*core.DistanceArray, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkSource(e.g, source); err != nil {
		return nil, err
	}

	ws := e.pool.Get().(*workspace)
	defer e.release(ws)
	if err = ws.run(e.g, source, core.NoVertex, o); err != nil {
		return nil, err
	}

	return &core.DistanceArray{
		Source:       source,
		Distances:    append([]float64(nil), ws.dist...),
		Predecessors: append([]core.VertexIndex(nil), ws.pred...),
	}, nil
}

// PathTo returns the shortest path from source to target (both inclusive)
// and its total distance. The search stops as soon as target settles.
//
// Errors:
//   - ErrOptionViolation, ErrInvalidSource, ErrNegativeWeight as for ShortestPaths.
//   - path.ErrTargetOutOfRange if target >= n.
//   - path.ErrUnreachable if no path exists (or it exceeds MaxDistance).
func (e *Engine) PathTo(source, target core.VertexIndex, opts ...Option) ([]core.VertexIndex, float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, 0, err
	}
	if err = checkSource(e.g, source); err != nil {
		return nil, 0, err
	}
	if !e.g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: target %d (n=%d)", path.ErrTargetOutOfRange, target, e.g.NumVertices())
	}

	ws := e.pool.Get().(*workspace)
	defer e.release(ws)
	if err = ws.run(e.g, source, target, o); err != nil {
		return nil, 0, err
	}

	// A read-only view over the workspace; Reconstruct copies what it needs.
	view := &core.DistanceArray{Source: source, Distances: ws.dist, Predecessors: ws.pred}
	p, err := path.Reconstruct(view, target)
	if err != nil {
		return nil, 0, err
	}

	return p, ws.dist[target], nil
}

func (e *Engine) release(ws *workspace) {
	ws.reset()
	e.pool.Put(ws)
}

func checkSource(g *core.CSRGraph, source core.VertexIndex) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: source %d (n=%d)", ErrInvalidSource, source, g.NumVertices())
	}

	return nil
}

// workspace is the mutable per-query state. Between queries every dist is
// +Inf and every pred is NoVertex; touched records which entries a query
// changed so reset only revisits those.
type workspace struct {
	dist    []float64
	pred    []core.VertexIndex
	touched *sparsesets.Set
	settled *sparsesets.Set
	lazy    *lazyHeap
	indexed *indexedHeap // allocated on first FrontierIndexed query
}

func newWorkspace(n int) *workspace {
	ws := &workspace{
		dist:    make([]float64, n),
		pred:    make([]core.VertexIndex, n),
		touched: sparsesets.New(n),
		settled: sparsesets.New(n),
		lazy:    &lazyHeap{},
	}
	inf := math.Inf(1)
	for i := range ws.dist {
		ws.dist[i] = inf
		ws.pred[i] = core.NoVertex
	}

	return ws
}

func (ws *workspace) frontier(kind Frontier) frontier {
	if kind == FrontierIndexed {
		if ws.indexed == nil {
			ws.indexed = newIndexedHeap(len(ws.dist))
		}
		return ws.indexed
	}

	return ws.lazy
}

// label records a tentative distance and predecessor for v.
func (ws *workspace) label(v core.VertexIndex, d float64, p core.VertexIndex) {
	if !ws.touched.Contains(int(v)) {
		ws.touched.Insert(int(v))
	}
	ws.dist[v] = d
	ws.pred[v] = p
}

// reset restores the between-queries state in O(touched).
func (ws *workspace) reset() {
	inf := math.Inf(1)
	for _, v := range ws.touched.Content() {
		ws.dist[v] = inf
		ws.pred[v] = core.NoVertex
	}
	ws.touched.Clear()
	ws.settled.Clear()
	ws.lazy.clear()
	if ws.indexed != nil {
		ws.indexed.clear()
	}
}

// run is the label-setting loop. If target != NoVertex it returns as soon
// as target settles; distances of other vertices may then be tentative.
func (ws *workspace) run(g *core.CSRGraph, source, target core.VertexIndex, o Options) error {
	f := ws.frontier(o.Frontier)
	ws.label(source, 0, core.NoVertex)
	f.push(source, 0)

	for {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		u, d, ok := f.pop()
		if !ok {
			return nil
		}
		// Stale lazy-heap entry.
		if ws.settled.Contains(int(u)) {
			continue
		}
		ws.settled.Insert(int(u))

		if o.OnSettle != nil {
			if err := o.OnSettle(u, d); err != nil {
				return err
			}
		}
		if u == target {
			return nil
		}

		nbrs, wts := g.Row(u)
		for i, v := range nbrs {
			w := wts[i]
			if w < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
			}
			if w >= o.InfEdgeThreshold || ws.settled.Contains(int(v)) {
				continue
			}
			nd := d + w
			// Strict improvement only: the first settled predecessor keeps v.
			if nd > o.MaxDistance || nd >= ws.dist[v] {
				continue
			}
			ws.label(v, nd, u)
			f.push(v, nd)
		}
	}
}

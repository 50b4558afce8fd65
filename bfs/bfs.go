// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     core.VertexIndex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.CSRGraph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrInvalidSource for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// On a hook error or cancellation the partial result is returned with it.
func BFS(g *core.CSRGraph, source core.VertexIndex, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrInvalidSource, source, g.NumVertices())
	}

	n := g.NumVertices()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order: make([]core.VertexIndex, 0, n),
			Hops:  core.NewDistanceArray(n, source),
		},
	}

	w.enqueue(source, 0, core.NoVertex)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(v core.VertexIndex, d int, parent core.VertexIndex) {
	w.visited[v] = true
	w.res.Hops.Distances[v] = float64(d)
	w.res.Hops.Predecessors[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in row order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	nbrs, ws := w.graph.Row(item.v)
	for i, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr, ws[i]) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}

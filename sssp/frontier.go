// SPDX-License-Identifier: MIT

package sssp

import (
	"container/heap"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/csrpath/core"
)

// frontier is the priority queue of tentatively labelled vertices.
// push either inserts v or, for indexed frontiers, lowers its key.
type frontier interface {
	push(v core.VertexIndex, d float64)
	pop() (v core.VertexIndex, d float64, ok bool)
	clear()
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	dist float64
	v    core.VertexIndex
}

// nodePQ is a min-heap of nodeItem ordered by (dist, v). Stale entries for
// already-settled vertices stay in the heap and are skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// lazyHeap adapts nodePQ to frontier.
type lazyHeap struct{ pq nodePQ }

func (h *lazyHeap) push(v core.VertexIndex, d float64) {
	heap.Push(&h.pq, nodeItem{dist: d, v: v})
}

func (h *lazyHeap) pop() (core.VertexIndex, float64, bool) {
	if len(h.pq) == 0 {
		return core.NoVertex, 0, false
	}
	it := heap.Pop(&h.pq).(nodeItem)

	return it.v, it.dist, true
}

// clear keeps the backing array for the next query.
func (h *lazyHeap) clear() { h.pq = h.pq[:0] }

// indexedHeap adapts yagh.IntMap to frontier. Put both inserts and
// decreases, so the heap never holds more than n entries.
type indexedHeap struct {
	m    *yagh.IntMap[float64]
	n    int
	used bool
}

func newIndexedHeap(n int) *indexedHeap {
	return &indexedHeap{m: yagh.New[float64](n), n: n}
}

func (h *indexedHeap) push(v core.VertexIndex, d float64) {
	h.used = true
	h.m.Put(int(v), d)
}

func (h *indexedHeap) pop() (core.VertexIndex, float64, bool) {
	if h.m.Size() == 0 {
		return core.NoVertex, 0, false
	}
	e := h.m.Pop()

	return core.VertexIndex(e.Elem), e.Cost, true
}

// clear replaces a used map. IntMap keeps the stale slot of every popped
// element, so a drained map would treat those elements as still queued.
func (h *indexedHeap) clear() {
	if !h.used {
		return
	}
	h.m = yagh.New[float64](h.n)
	h.used = false
}

// SPDX-License-Identifier: MIT

package renumber

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/csrpath/core"
)

// ctxCheckStride is how many input pairs a sequential loop processes between
// two context checks.
const ctxCheckStride = 1 << 16

// Renumber assigns dense indices to the distinct identifiers of the two
// columns and rewrites both columns with them.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. len(sources) == len(destinations) (ErrLengthMismatch).
//  3. Distinct identifiers must fit the cap (ErrIdentifierOverflow).
//
// The operation is pure: identical input and options yield identical output.
//
// Complexity:
//   - Time:  O(m + n log n) sorted, O(m) first-seen.
//   - Space: O(n + m).
func Renumber(sources, destinations []core.Identifier, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(sources) != len(destinations) {
		return nil, fmt.Errorf("%w: %d sources, %d destinations", ErrLengthMismatch, len(sources), len(destinations))
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	if o.Order == OrderFirstSeen {
		return renumberFirstSeen(sources, destinations, o)
	}

	return renumberSorted(sources, destinations, o)
}

// RenumberEdges splits raw edges into columns, renumbers them and carries
// the weight column through unchanged into Result.Weights.
func RenumberEdges(edges []core.RawEdge, opts ...Option) (*Result, error) {
	src := make([]core.Identifier, len(edges))
	dst := make([]core.Identifier, len(edges))
	ws := make([]float64, len(edges))
	for i, e := range edges {
		src[i], dst[i], ws[i] = e.Source, e.Destination, e.Weight
	}

	res, err := Renumber(src, dst, opts...)
	if err != nil {
		return nil, err
	}
	res.Weights = ws

	return res, nil
}

// span is a half-open range [lo, hi) of input positions.
type span struct{ lo, hi int }

// split cuts [0, n) into at most k contiguous spans of near-equal size.
func split(n, k int) []span {
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	size := (n + k - 1) / k
	spans := make([]span, 0, k)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, n)})
	}

	return spans
}

func overflowError(limit int64) error {
	return fmt.Errorf("%w: more than %d distinct identifiers", ErrIdentifierOverflow, limit)
}

// renumberSorted is the fork-join path: per-chunk distinct sets, sequential
// merge and sort, then per-chunk column rewrite into disjoint ranges.
func renumberSorted(src, dst []core.Identifier, o Options) (*Result, error) {
	spans := split(len(src), o.Parallelism)

	// Fork: distinct identifiers per chunk.
	sets := make([]map[core.Identifier]struct{}, len(spans))
	g, ctx := errgroup.WithContext(o.Ctx)
	for i, sp := range spans {
		g.Go(func() error {
			set := make(map[core.Identifier]struct{})
			for k := sp.lo; k < sp.hi; k++ {
				if (k-sp.lo)%ctxCheckStride == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				set[src[k]] = struct{}{}
				set[dst[k]] = struct{}{}
			}
			// The union is at least as large as any part.
			if int64(len(set)) > o.MaxVertices {
				return overflowError(o.MaxVertices)
			}
			sets[i] = set

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Join: merge and sort.
	merged := make(map[core.Identifier]struct{})
	if len(sets) > 0 {
		merged = sets[0]
	}
	for _, set := range sets[min(1, len(sets)):] {
		for id := range set {
			merged[id] = struct{}{}
		}
		if int64(len(merged)) > o.MaxVertices {
			return nil, overflowError(o.MaxVertices)
		}
	}
	originals := make([]core.Identifier, 0, len(merged))
	for id := range merged {
		originals = append(originals, id)
	}
	slices.Sort(originals)

	index := make(map[core.Identifier]core.VertexIndex, len(originals))
	for i, id := range originals {
		index[id] = core.VertexIndex(i)
	}

	res := &Result{
		Sources:      make([]core.VertexIndex, len(src)),
		Destinations: make([]core.VertexIndex, len(dst)),
		Mapping:      &Mapping{originals: originals, order: OrderSorted},
	}

	// Fork again: rewrite columns; every chunk owns its output range.
	g, ctx = errgroup.WithContext(o.Ctx)
	for _, sp := range spans {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for k := sp.lo; k < sp.hi; k++ {
				res.Sources[k] = index[src[k]]
				res.Destinations[k] = index[dst[k]]
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// renumberFirstSeen assigns indices during a single sequential scan.
func renumberFirstSeen(src, dst []core.Identifier, o Options) (*Result, error) {
	index := make(map[core.Identifier]core.VertexIndex)
	var originals []core.Identifier

	assign := func(id core.Identifier) (core.VertexIndex, error) {
		if v, ok := index[id]; ok {
			return v, nil
		}
		if int64(len(originals)) >= o.MaxVertices {
			return core.NoVertex, overflowError(o.MaxVertices)
		}
		v := core.VertexIndex(len(originals))
		index[id] = v
		originals = append(originals, id)

		return v, nil
	}

	res := &Result{
		Sources:      make([]core.VertexIndex, len(src)),
		Destinations: make([]core.VertexIndex, len(dst)),
	}
	var err error
	for k := range src {
		if k%ctxCheckStride == 0 {
			if err = o.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		if res.Sources[k], err = assign(src[k]); err != nil {
			return nil, err
		}
		if res.Destinations[k], err = assign(dst[k]); err != nil {
			return nil, err
		}
	}
	res.Mapping = &Mapping{originals: originals, index: index, order: OrderFirstSeen}

	return res, nil
}

// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/csrpath/builder"
	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/renumber"
	"github.com/katalvlaran/csrpath/sssp"
)

// ErrUnknownIdentifier is returned when a query names an identifier that
// does not occur in the edge list.
var ErrUnknownIdentifier = errors.New("pipeline: unknown identifier")

// Config controls how raw edges become a graph.
type Config struct {
	// Order selects the dense numbering policy.
	Order renumber.Order

	// Undirected stores every edge in both directions.
	Undirected bool

	// Parallelism for renumbering and degree counting; 0 uses the package defaults.
	Parallelism int

	// MaxVertices caps distinct identifiers; 0 means core.MaxVertices.
	MaxVertices int64
}

// Snapshot is an immutable renumbered graph ready for queries. It is safe
// for concurrent use.
type Snapshot struct {
	Mapping *renumber.Mapping
	Graph   *core.CSRGraph

	// Fingerprint is a hex SHA-256 over the graph arrays and the mapping.
	Fingerprint string

	engine *sssp.Engine
}

// Build renumbers edges and constructs the CSR graph.
func Build(ctx context.Context, edges []core.RawEdge, cfg Config) (*Snapshot, error) {
	ropts := []renumber.Option{renumber.WithContext(ctx), renumber.WithOrder(cfg.Order)}
	bopts := []builder.Option{builder.WithContext(ctx)}
	if cfg.Parallelism > 0 {
		ropts = append(ropts, renumber.WithParallelism(cfg.Parallelism))
		bopts = append(bopts, builder.WithParallelism(cfg.Parallelism))
	}
	if cfg.MaxVertices > 0 {
		ropts = append(ropts, renumber.WithMaxVertices(cfg.MaxVertices))
	}
	if cfg.Undirected {
		bopts = append(bopts, builder.WithUndirected())
	}

	res, err := renumber.RenumberEdges(edges, ropts...)
	if err != nil {
		return nil, fmt.Errorf("renumber: %w", err)
	}
	bopts = append(bopts, builder.WithWeights(res.Weights))
	g, err := builder.Build(res.NumVertices(), res.Sources, res.Destinations, bopts...)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	return NewSnapshot(res.Mapping, g)
}

// NewSnapshot wraps an existing mapping and graph of equal size.
func NewSnapshot(m *renumber.Mapping, g *core.CSRGraph) (*Snapshot, error) {
	if m == nil || g == nil {
		return nil, fmt.Errorf("%w: nil mapping or graph", core.ErrInternalConsistency)
	}
	if m.Len() != g.NumVertices() {
		return nil, fmt.Errorf("%w: mapping covers %d identifiers, graph has %d vertices",
			core.ErrInternalConsistency, m.Len(), g.NumVertices())
	}
	e, err := sssp.NewEngine(g)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Mapping: m, Graph: g, Fingerprint: fingerprint(m, g), engine: e}, nil
}

// fingerprint hashes directedness, offsets, neighbors, weight bits and the
// original identifiers in dense order.
func fingerprint(m *renumber.Mapping, g *core.CSRGraph) string {
	h := sha256.New()
	buf := make([]byte, 0, 64)
	var dir uint64
	if g.Directed() {
		dir = 1
	}
	buf = binary.LittleEndian.AppendUint64(buf, dir)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.NumVertices()))
	h.Write(buf)

	offsets, neighbors, weights := g.Arrays()
	for _, off := range offsets {
		h.Write(binary.LittleEndian.AppendUint64(buf[:0], off))
	}
	for i, v := range neighbors {
		buf = binary.LittleEndian.AppendUint32(buf[:0], uint32(v))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(weights[i]))
		h.Write(buf)
	}
	for _, id := range m.Originals() {
		h.Write(binary.LittleEndian.AppendUint64(buf[:0], uint64(id)))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Engine exposes the pooled query engine.
func (s *Snapshot) Engine() *sssp.Engine { return s.engine }

// Resolve maps an identifier to its dense index.
func (s *Snapshot) Resolve(id core.Identifier) (core.VertexIndex, error) {
	v, ok := s.Mapping.ToDense(id)
	if !ok {
		return core.NoVertex, fmt.Errorf("%w: %d", ErrUnknownIdentifier, uint64(id))
	}

	return v, nil
}

// ShortestPaths runs a full query from sourceID.
func (s *Snapshot) ShortestPaths(ctx context.Context, sourceID core.Identifier, q Query) (*core.DistanceArray, error) {
	src, err := s.Resolve(sourceID)
	if err != nil {
		return nil, err
	}

	return s.engine.ShortestPaths(src, q.options(ctx)...)
}

// Path returns the shortest path between two identifiers. The search stops
// once targetID settles.
func (s *Snapshot) Path(ctx context.Context, sourceID, targetID core.Identifier, q Query) (*PathResult, error) {
	src, err := s.Resolve(sourceID)
	if err != nil {
		return nil, err
	}
	dst, err := s.Resolve(targetID)
	if err != nil {
		return nil, err
	}
	p, w, err := s.engine.PathTo(src, dst, q.options(ctx)...)
	if err != nil {
		return nil, err
	}

	return s.pathResult(p, w)
}

func (s *Snapshot) pathResult(p []core.VertexIndex, w float64) (*PathResult, error) {
	ids, err := s.Mapping.Translate(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInternalConsistency, err)
	}

	return &PathResult{Vertices: ids, Weight: w, Hops: len(ids) - 1}, nil
}

// Entries converts a dense result into per-identifier rows in dense order.
func (s *Snapshot) Entries(da *core.DistanceArray) []Entry {
	out := make([]Entry, da.Len())
	for i := range out {
		v := core.VertexIndex(i)
		id, _ := s.Mapping.ToOriginal(v)
		out[i].ID = id
		if !da.Reachable(v) {
			continue
		}
		d := da.Distances[v]
		out[i].Distance = &d
		if p, ok := da.Predecessor(v); ok {
			pid, _ := s.Mapping.ToOriginal(p)
			out[i].Predecessor = &pid
		}
	}

	return out
}

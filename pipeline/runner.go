// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/csrpath/cache"
	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/path"
)

// Runner answers queries over one Snapshot with result caching.
//
// The Runner holds no per-query state; multiple goroutines can safely use
// the same Runner.
type Runner struct {
	Snapshot *Snapshot
	Cache    cache.Cache
	TTL      time.Duration
	Logger   *log.Logger
}

// NewRunner creates a runner. If c is nil, a NullCache is used (caching
// disabled). If logger is nil, log.Default() is used.
func NewRunner(s *Snapshot, c cache.Cache, ttl time.Duration, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Runner{Snapshot: s, Cache: c, TTL: ttl, Logger: logger}
}

// cacheKey identifies a full query result.
func (r *Runner) cacheKey(sourceID core.Identifier, q Query) string {
	parts := append([]any{r.Snapshot.Fingerprint, uint64(sourceID)}, q.keyParts()...)

	return cache.Key("sssp", parts...)
}

// ShortestPaths returns the full result for sourceID and whether it came
// from the cache. Cache failures are logged and never fail the query.
func (r *Runner) ShortestPaths(ctx context.Context, sourceID core.Identifier, q Query) (*core.DistanceArray, bool, error) {
	key := r.cacheKey(sourceID, q)
	if da, ok := r.lookup(ctx, key); ok {
		r.Logger.Debug("sssp cache hit", "source", sourceID)
		return da, true, nil
	}

	start := time.Now()
	da, err := r.Snapshot.ShortestPaths(ctx, sourceID, q)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("sssp computed",
		"source", sourceID,
		"reachable", da.ReachableCount(),
		"duration", time.Since(start))

	if data, err := encodeResult(da); err != nil {
		r.Logger.Warn("sssp encode failed", "err", err)
	} else if err = r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("sssp cache store failed", "err", err)
	}

	return da, false, nil
}

// Path answers from a cached full result when one exists, and otherwise
// runs an early-exit query.
func (r *Runner) Path(ctx context.Context, sourceID, targetID core.Identifier, q Query) (*PathResult, error) {
	if da, ok := r.lookup(ctx, r.cacheKey(sourceID, q)); ok {
		dst, err := r.Snapshot.Resolve(targetID)
		if err != nil {
			return nil, err
		}
		p, err := path.Reconstruct(da, dst)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("path served from cache", "source", sourceID, "target", targetID)

		return r.Snapshot.pathResult(p, da.Distances[dst])
	}

	return r.Snapshot.Path(ctx, sourceID, targetID, q)
}

// lookup fetches and decodes a cached result. Undecodable entries are
// deleted and treated as misses.
func (r *Runner) lookup(ctx context.Context, key string) (*core.DistanceArray, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("sssp cache lookup failed", "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}
	da, err := decodeResult(data, r.Snapshot.Graph.NumVertices())
	if err != nil {
		r.Logger.Warn("discarding cached result", "err", err)
		_ = r.Cache.Delete(ctx, key)
		return nil, false
	}

	return da, true
}

// encodedResult lists reachable vertices only, so every encoded distance
// is finite and JSON-safe.
type encodedResult struct {
	Source       uint32    `json:"source"`
	N            int       `json:"n"`
	Reached      []uint32  `json:"reached"`
	Distances    []float64 `json:"distances"`
	Predecessors []uint32  `json:"predecessors"`
}

func encodeResult(da *core.DistanceArray) ([]byte, error) {
	enc := encodedResult{Source: uint32(da.Source), N: da.Len()}
	for i, d := range da.Distances {
		if math.IsInf(d, 1) {
			continue
		}
		enc.Reached = append(enc.Reached, uint32(i))
		enc.Distances = append(enc.Distances, d)
		enc.Predecessors = append(enc.Predecessors, uint32(da.Predecessors[i]))
	}

	return json.Marshal(enc)
}

func decodeResult(data []byte, n int) (*core.DistanceArray, error) {
	var enc encodedResult
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, err
	}
	if enc.N != n || int(enc.Source) >= n {
		return nil, fmt.Errorf("cached result covers %d vertices (source %d), graph has %d", enc.N, enc.Source, n)
	}
	if len(enc.Distances) != len(enc.Reached) || len(enc.Predecessors) != len(enc.Reached) {
		return nil, fmt.Errorf("cached result has ragged columns")
	}

	da := core.NewDistanceArray(n, core.VertexIndex(enc.Source))
	for i, v := range enc.Reached {
		p := core.VertexIndex(enc.Predecessors[i])
		if int(v) >= n || (p != core.NoVertex && int(p) >= n) {
			return nil, fmt.Errorf("cached result references vertex out of range")
		}
		da.Distances[v] = enc.Distances[i]
		da.Predecessors[v] = p
	}

	return da, nil
}

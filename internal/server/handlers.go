// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/edgelist"
	"github.com/katalvlaran/csrpath/pipeline"
	"github.com/katalvlaran/csrpath/sssp"
)

var errBadQuery = errors.New("server: bad query parameter")

type graphResponse struct {
	Vertices    int    `json:"vertices"`
	Edges       int    `json:"edges"`
	Directed    bool   `json:"directed"`
	Order       string `json:"order"`
	Fingerprint string `json:"fingerprint"`
}

type vertexResponse struct {
	ID        core.Identifier  `json:"id"`
	Index     core.VertexIndex `json:"index"`
	OutDegree int              `json:"out_degree"`
}

type ssspResponse struct {
	Source    core.Identifier  `json:"source"`
	Cached    bool             `json:"cached"`
	Reachable int              `json:"reachable"`
	Entries   []pipeline.Entry `json:"entries"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	snap := s.runner.Snapshot
	writeJSON(w, http.StatusOK, graphResponse{
		Vertices:    snap.Graph.NumVertices(),
		Edges:       snap.Graph.NumEdges(),
		Directed:    snap.Graph.Directed(),
		Order:       snap.Mapping.Order().String(),
		Fingerprint: snap.Fingerprint,
	})
}

func (s *Server) handleVertex(w http.ResponseWriter, r *http.Request) {
	id, err := edgelist.ParseAuto(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.runner.Snapshot.Resolve(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	deg, err := s.runner.Snapshot.Graph.OutDegree(v)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vertexResponse{ID: id, Index: v, OutDegree: deg})
}

func (s *Server) handleSSSP(w http.ResponseWriter, r *http.Request) {
	src, err := edgelist.ParseAuto(chi.URLParam(r, "source"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q, err := parseQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ctx, cancel := s.queryContext(r.Context())
	defer cancel()

	da, cached, err := s.shortestPaths(ctx, src, q)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	entries := s.runner.Snapshot.Entries(da)
	if r.URL.Query().Get("reachable_only") == "true" {
		kept := entries[:0]
		for _, e := range entries {
			if e.Distance != nil {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	writeJSON(w, http.StatusOK, ssspResponse{
		Source:    src,
		Cached:    cached,
		Reachable: da.ReachableCount(),
		Entries:   entries,
	})
}

// ssspResult is the value shared between singleflight callers; it is read-only.
type ssspResult struct {
	da     *core.DistanceArray
	cached bool
}

// shortestPaths collapses identical concurrent queries. The computation runs
// under the first caller's context; if that caller goes away, a follower
// whose own context is still live retries alone.
func (s *Server) shortestPaths(ctx context.Context, src core.Identifier, q pipeline.Query) (*core.DistanceArray, bool, error) {
	key := fmt.Sprintf("%d|%s|%g|%g", uint64(src), q.Frontier, q.MaxDistance, q.InfEdgeThreshold)
	v, err, shared := s.flight.Do(key, func() (any, error) {
		da, cached, err := s.runner.ShortestPaths(ctx, src, q)
		if err != nil {
			return nil, err
		}
		return ssspResult{da: da, cached: cached}, nil
	})
	if err != nil && shared && ctx.Err() == nil &&
		(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return s.runner.ShortestPaths(ctx, src, q)
	}
	if err != nil {
		return nil, false, err
	}
	res := v.(ssspResult)

	return res.da, res.cached, nil
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	src, err := edgelist.ParseAuto(chi.URLParam(r, "source"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	dst, err := edgelist.ParseAuto(chi.URLParam(r, "target"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q, err := parseQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ctx, cancel := s.queryContext(r.Context())
	defer cancel()

	p, err := s.runner.Path(ctx, src, dst, q)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout > 0 {
		return context.WithTimeout(ctx, s.queryTimeout)
	}

	return context.WithCancel(ctx)
}

// parseQuery reads frontier, max_distance and inf_edge_threshold; absent
// parameters keep their defaults.
func parseQuery(r *http.Request) (pipeline.Query, error) {
	q := pipeline.DefaultQuery()
	vals := r.URL.Query()

	if f := vals.Get("frontier"); f != "" {
		fr, err := sssp.ParseFrontier(f)
		if err != nil {
			return q, err
		}
		q.Frontier = fr
	}
	for name, dst := range map[string]*float64{
		"max_distance":       &q.MaxDistance,
		"inf_edge_threshold": &q.InfEdgeThreshold,
	} {
		raw := vals.Get(name)
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, fmt.Errorf("%w: %s=%q", errBadQuery, name, raw)
		}
		*dst = f
	}

	return q, nil
}

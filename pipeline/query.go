// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"math"
	"strconv"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/sssp"
)

// Query holds the serializable parameters of a shortest-path query. Start
// from DefaultQuery; the zero value is rejected with sssp.ErrOptionViolation
// because its InfEdgeThreshold of 0 is not positive.
type Query struct {
	Frontier         sssp.Frontier
	MaxDistance      float64
	InfEdgeThreshold float64
}

// DefaultQuery uses the binary-heap frontier with no cap and no impassable edges.
func DefaultQuery() Query {
	return Query{
		Frontier:         sssp.FrontierBinaryHeap,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

func (q Query) options(ctx context.Context) []sssp.Option {
	return []sssp.Option{
		sssp.WithContext(ctx),
		sssp.WithFrontier(q.Frontier),
		sssp.WithMaxDistance(q.MaxDistance),
		sssp.WithInfEdgeThreshold(q.InfEdgeThreshold),
	}
}

// keyParts renders the query for cache keys; infinities format as "+Inf".
func (q Query) keyParts() []any {
	return []any{
		q.Frontier.String(),
		strconv.FormatFloat(q.MaxDistance, 'g', -1, 64),
		strconv.FormatFloat(q.InfEdgeThreshold, 'g', -1, 64),
	}
}

// Entry is one vertex of a query result in original identifiers.
// Distance and Predecessor are nil when the vertex is unreachable;
// Predecessor is also nil for the source.
type Entry struct {
	ID          core.Identifier  `json:"id"`
	Distance    *float64         `json:"distance"`
	Predecessor *core.Identifier `json:"predecessor"`
}

// PathResult is a source-to-target path in original identifiers.
type PathResult struct {
	Vertices []core.Identifier `json:"vertices"`
	Weight   float64           `json:"weight"`
	Hops     int               `json:"hops"`
}

// SPDX-License-Identifier: MIT

package sssp_test

import (
	"testing"

	"github.com/katalvlaran/csrpath/sssp"
)

// BenchmarkShortestPaths compares the two frontiers on a sparse random graph.
func BenchmarkShortestPaths(b *testing.B) {
	g := randomGraph(b, 5000, 0.002, 1, true)
	for _, f := range []sssp.Frontier{sssp.FrontierBinaryHeap, sssp.FrontierIndexed} {
		b.Run(f.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.NumVertices() + g.NumEdges()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = sssp.ShortestPaths(g, 0, sssp.WithFrontier(f))
			}
		})
	}
}

// BenchmarkEngine_PathTo measures pooled point-to-point queries.
func BenchmarkEngine_PathTo(b *testing.B) {
	g := randomGraph(b, 5000, 0.002, 1, true)
	e, err := sssp.NewEngine(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = e.PathTo(0, 4999)
	}
}

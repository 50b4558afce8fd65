// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/csrpath/bfs"
	"github.com/katalvlaran/csrpath/builder"
)

func BenchmarkBFS_Grid100x100(b *testing.B) {
	el, err := builder.Generate(nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	g, err := builder.FromEdgeList(el, builder.WithUndirected())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

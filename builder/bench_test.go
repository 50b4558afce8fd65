// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/csrpath/builder"
)

// BenchmarkBuild_RandomSparse measures CSR construction of G(n,p) across
// degree-count chunk counts.
func BenchmarkBuild_RandomSparse(b *testing.B) {
	el, err := builder.Generate(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithIntegerWeight(1, 100)},
		builder.RandomSparse(3000, 0.01),
	)
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range []int{1, 4} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(el.N + el.Len()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = builder.FromEdgeList(el, builder.WithUndirected(), builder.WithParallelism(k))
			}
		})
	}
}

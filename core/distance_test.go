// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/csrpath/core"
)

func TestNewDistanceArray(t *testing.T) {
	da := core.NewDistanceArray(4, 2)
	assert.Equal(t, 4, da.Len())
	assert.Equal(t, core.VertexIndex(2), da.Source)
	assert.Equal(t, 0.0, da.Distance(2))
	assert.True(t, da.Reachable(2))
	assert.Equal(t, 1, da.ReachableCount())

	for _, v := range []core.VertexIndex{0, 1, 3} {
		assert.True(t, math.IsInf(da.Distance(v), 1), "vertex %d", v)
		assert.False(t, da.Reachable(v))
		_, ok := da.Predecessor(v)
		assert.False(t, ok)
	}
	_, ok := da.Predecessor(2)
	assert.False(t, ok, "source has no predecessor")
}

func TestDistanceArray_OutOfRange(t *testing.T) {
	da := core.NewDistanceArray(1, 0)
	assert.True(t, math.IsInf(da.Distance(5), 1))
	assert.False(t, da.Reachable(5))
	p, ok := da.Predecessor(5)
	assert.False(t, ok)
	assert.Equal(t, core.NoVertex, p)
}

func TestDistanceArray_Clone(t *testing.T) {
	da := core.NewDistanceArray(3, 0)
	da.Distances[1] = 2
	da.Predecessors[1] = 0

	cp := da.Clone()
	assert.Equal(t, da, cp)

	cp.Distances[1] = 7
	assert.Equal(t, 2.0, da.Distances[1])
}

func TestVertexIndexString(t *testing.T) {
	assert.Equal(t, "none", core.NoVertex.String())
	assert.Equal(t, "42", core.VertexIndex(42).String())
	assert.Equal(t, "18446744073709551615", core.Identifier(math.MaxUint64).String())
}

// SPDX-License-Identifier: MIT

package renumber

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/csrpath/core"
)

// Mapping is the bijection between observed identifiers and 0..n-1 produced
// by one renumbering run. It is immutable and safe for concurrent use.
type Mapping struct {
	originals []core.Identifier                    // dense → original
	index     map[core.Identifier]core.VertexIndex // original → dense; nil for OrderSorted
	order     Order                                // assignment policy
}

// Len returns n, the number of distinct identifiers.
func (m *Mapping) Len() int { return len(m.originals) }

// Order returns the policy used to assign indices.
func (m *Mapping) Order() Order { return m.order }

// ToOriginal returns the identifier behind dense index v.
func (m *Mapping) ToOriginal(v core.VertexIndex) (core.Identifier, bool) {
	if int(v) >= len(m.originals) {
		return 0, false
	}

	return m.originals[v], true
}

// ToDense returns the dense index of id, or false if id was never observed.
// Sorted mappings use binary search, first-seen mappings a hash lookup.
func (m *Mapping) ToDense(id core.Identifier) (core.VertexIndex, bool) {
	if m.index != nil {
		v, ok := m.index[id]
		return v, ok
	}
	i, ok := slices.BinarySearch(m.originals, id)
	if !ok {
		return core.NoVertex, false
	}

	return core.VertexIndex(i), true
}

// Originals returns a copy of the dense → original table.
func (m *Mapping) Originals() []core.Identifier {
	return slices.Clone(m.originals)
}

// Translate maps a sequence of dense indices back to identifiers.
//
// Errors:
//   - core.ErrVertexOutOfRange on the first index >= Len().
func (m *Mapping) Translate(vs []core.VertexIndex) ([]core.Identifier, error) {
	out := make([]core.Identifier, len(vs))
	for i, v := range vs {
		id, ok := m.ToOriginal(v)
		if !ok {
			return nil, fmt.Errorf("renumber: position %d: %w: %d (n=%d)", i, core.ErrVertexOutOfRange, v, m.Len())
		}
		out[i] = id
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core types. Callers branch with errors.Is; context is
// attached with %w at the call site.
var (
	// ErrMalformedCSR indicates offsets/neighbors/weights that violate the CSR invariants.
	ErrMalformedCSR = errors.New("core: malformed CSR arrays")

	// ErrVertexOutOfRange indicates a vertex index >= NumVertices().
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrInternalConsistency indicates a broken invariant the library itself is
	// responsible for (predecessor cycle, offset/neighbor mismatch after a build).
	ErrInternalConsistency = errors.New("core: internal consistency failure")
)

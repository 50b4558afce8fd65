// SPDX-License-Identifier: MIT

package renumber

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

// Sentinel errors returned by the renumbering engine.
var (
	// ErrLengthMismatch indicates source and destination columns of different length.
	ErrLengthMismatch = errors.New("renumber: source and destination lengths differ")

	// ErrIdentifierOverflow indicates more distinct identifiers than dense indices.
	ErrIdentifierOverflow = errors.New("renumber: distinct identifiers exceed the dense index space")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("renumber: invalid option supplied")
)

// Order selects how dense indices are assigned to distinct identifiers.
type Order int

const (
	// OrderSorted assigns index i to the i-th smallest identifier. The
	// numbering depends only on the identifier set, not on edge order.
	OrderSorted Order = iota

	// OrderFirstSeen assigns indices in order of first appearance, scanning
	// each pair source first, then destination.
	OrderFirstSeen
)

// String returns "sorted" or "first-seen".
func (o Order) String() string {
	switch o {
	case OrderSorted:
		return "sorted"
	case OrderFirstSeen:
		return "first-seen"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "sorted" (or "") and "first-seen" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "sorted":
		return OrderSorted, nil
	case "first-seen":
		return OrderFirstSeen, nil
	default:
		return 0, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
	}
}

// Options configures a renumbering run.
type Options struct {
	// Ctx allows cancellation between chunks.
	Ctx context.Context

	// Order selects the index assignment policy.
	Order Order

	// Parallelism is the number of chunks processed concurrently (>= 1).
	Parallelism int

	// MaxVertices caps the number of distinct identifiers (1..core.MaxVertices).
	MaxVertices int64

	// internal error recorded during option parsing
	err error
}

// Option configures renumbering via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// DefaultOptions returns sorted order, a single chunk, the full 32-bit
// index space and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Order:       OrderSorted,
		Parallelism: 1,
		MaxVertices: core.MaxVertices,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the index assignment policy.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case OrderSorted, OrderFirstSeen:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))
		}
	}
}

// WithParallelism sets the number of concurrent chunks; k must be >= 1.
func WithParallelism(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: parallelism must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Parallelism = k
	}
}

// WithMaxVertices lowers the distinct-identifier cap below core.MaxVertices.
func WithMaxVertices(limit int64) Option {
	return func(o *Options) {
		if limit < 1 || limit > core.MaxVertices {
			o.err = fmt.Errorf("%w: max vertices must be in [1,%d] (%d)", ErrOptionViolation, core.MaxVertices, limit)
			return
		}
		o.MaxVertices = limit
	}
}

// Result holds the renumbered columns and the mapping that produced them.
type Result struct {
	// Sources[i] and Destinations[i] are the dense endpoints of input pair i.
	Sources      []core.VertexIndex
	Destinations []core.VertexIndex

	// Weights is the weight column carried through by RenumberEdges; nil for Renumber.
	Weights []float64

	// Mapping translates between dense indices and original identifiers.
	Mapping *Mapping
}

// NumVertices returns the size of the dense range.
func (r *Result) NumVertices() int { return r.Mapping.Len() }

// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// config.go — fixture configuration, its options and the Generate orchestrator.
//
// Deterministic defaults:
//   • rng          = nil                 (pure unless seeded)
//   • weightFn     = DefaultWeightFn     (core.DefaultWeight)
//   • orderedPairs = false               (RandomSparse samples i<j only)

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates the knobs used by fixture constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng          *rand.Rand // nil means "no randomness"
	weightFn     WeightFn   // per-edge weight generator
	orderedPairs bool       // RandomSparse: sample (i,j) and (j,i) independently

	err error
}

// BuilderOption customizes fixture generation.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies all options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. nil is an option violation.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator. nil is an option violation.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("%w: WithWeightFn(nil)", ErrOptionViolation)
			return
		}
		c.weightFn = fn
	}
}

// WithOrderedPairs makes RandomSparse sample every ordered pair (i,j), i != j,
// which suits directed builds.
func WithOrderedPairs() BuilderOption {
	return func(c *builderConfig) {
		c.orderedPairs = true
	}
}

// Constructor appends a deterministic topology to el using the resolved
// configuration. Constructors validate their parameters first and return
// sentinel errors without touching el.
type Constructor func(el *EdgeList, cfg builderConfig) error

// Generate resolves bopts and applies every constructor, in order, to one
// shared EdgeList. Constructors overlay on the same index space, so
// Generate(nil, Path(4), Star(4)) adds both edge sets over vertices 0..3.
//
// Errors:
//   - ErrOptionViolation for an invalid BuilderOption.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel, wrapped with "Generate: ".
func Generate(bopts []BuilderOption, cons ...Constructor) (*EdgeList, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	el := &EdgeList{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	return el, nil
}

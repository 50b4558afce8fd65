// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// weight_fn.go — edge-weight distributions for fixture constructors.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/csrpath/core"
)

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns core.DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return core.DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi). Without an RNG it yields
// core.DefaultWeight; with lo == hi it yields lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}
		if hi <= lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeightFn samples integers uniformly in [lo, hi], returned as float64.
// Integral weights keep path sums exact, which golden tests rely on.
func IntegerWeightFn(lo, hi int) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}
		if hi <= lo {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// ExponentialWeightFn samples Exp(rate), rounded to the nearest integer.
// A non-positive rate yields core.DefaultWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || rate <= 0 {
			return core.DefaultWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ~ U[lo,hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithIntegerWeight sets integral weights ~ U{lo..hi}.
func WithIntegerWeight(lo, hi int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(lo, hi))
}

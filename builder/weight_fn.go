// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// WeightFn prices the road between two positioned places.
// It must be deterministic for a fixed rng state and never return a negative value.
type WeightFn func(rng *rand.Rand, from, to orb.Point) float64

// DistanceWeightFn prices a road by the straight-line distance between its ends.
func DistanceWeightFn(_ *rand.Rand, from, to orb.Point) float64 {
	return planar.Distance(from, to)
}

// ConstantWeightFn prices every road at value.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(*rand.Rand, orb.Point, orb.Point) float64 {
		return value
	}
}

// UniformWeightFn draws each price uniformly from [min, max).
// Without an rng it falls back to min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand, _, _ orb.Point) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// DetourWeightFn scales the straight-line distance by a factor drawn from
// [1, 1+spread), modelling roads that wind. Without an rng the factor is 1.
func DetourWeightFn(spread float64) WeightFn {
	if spread < 0 {
		panic(fmt.Sprintf("DetourWeightFn: spread must be ≥ 0, got %g", spread))
	}

	return func(rng *rand.Rand, from, to orb.Point) float64 {
		d := planar.Distance(from, to)
		if rng == nil {
			return d
		}

		return d * (1 + rng.Float64()*spread)
	}
}

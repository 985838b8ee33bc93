// SPDX-License-Identifier: MIT
//
// Package weight defines the algebra that path searches are generic over.
//
// A weight domain supplies four things:
//
//   - Zero        – the additive identity (cost of the empty path).
//   - Unreachable – a sentinel that compares greater than any finite path cost.
//   - Add         – associative combination used to accumulate path cost.
//   - Compare     – a total order (negative, zero, positive like cmp.Compare).
//
// The same search engine therefore serves hop counts, kilometres,
// travel times, or any other additive, totally ordered cost.
//
// Example:
//
//	alg := weight.Float64()
//	total := alg.Add(alg.Zero(), 2.5) // 2.5
//	alg.Compare(total, alg.Unreachable()) < 0 // true
package weight

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Algebra is the zero/sentinel/add/compare contract for an additive cost domain.
type Algebra[W any] interface {
	// Zero returns the additive identity.
	Zero() W

	// Unreachable returns the sentinel that is greater than every achievable sum.
	Unreachable() W

	// Add combines two costs.
	Add(a, b W) W

	// Compare returns <0 if a<b, 0 if a==b and >0 if a>b.
	Compare(a, b W) int
}

// Number is the set of built-in numeric types usable with Numeric.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is the canonical Algebra over a built-in numeric type:
// zero is 0, addition is +, and the sentinel is the configured maximum.
//
// Integer sums saturate at the sentinel instead of wrapping around.
type Numeric[W Number] struct {
	max W
}

// NewNumeric returns a Numeric algebra whose Unreachable value is max.
func NewNumeric[W Number](max W) Numeric[W] {
	return Numeric[W]{max: max}
}

// Zero returns 0.
func (Numeric[W]) Zero() W { return 0 }

// Unreachable returns the configured maximum.
func (n Numeric[W]) Unreachable() W { return n.max }

// Add returns a+b, clamped to Unreachable on overflow or when it would exceed it.
func (n Numeric[W]) Add(a, b W) W {
	if a >= n.max || b >= n.max {
		return n.max
	}
	s := a + b
	// wrap-around only happens for integers; floats grow towards +Inf
	if (b > 0 && s < a) || (a > 0 && s < b) || s > n.max {
		return n.max
	}

	return s
}

// Compare orders a and b numerically.
func (Numeric[W]) Compare(a, b W) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Float64 is the algebra for real-valued costs (distances, minutes).
// Unreachable is +Inf.
func Float64() Numeric[float64] { return NewNumeric(math.Inf(1)) }

// Int64 is the algebra for integer costs. Unreachable is math.MaxInt64.
func Int64() Numeric[int64] { return NewNumeric[int64](math.MaxInt64) }

// Int is the algebra for hop counts. Unreachable is math.MaxInt.
func Int() Numeric[int] { return NewNumeric[int](math.MaxInt) }

// Duration is the algebra for travel times. Unreachable is the largest duration.
func Duration() Numeric[time.Duration] { return NewNumeric(time.Duration(math.MaxInt64)) }

// Less reports whether a < b under alg.
func Less[W any](alg Algebra[W], a, b W) bool { return alg.Compare(a, b) < 0 }

// IsNegative reports whether w orders strictly below alg.Zero().
func IsNegative[W any](alg Algebra[W], w W) bool { return alg.Compare(w, alg.Zero()) < 0 }

// IsUnreachable reports whether w has reached the sentinel.
func IsUnreachable[W any](alg Algebra[W], w W) bool {
	return alg.Compare(w, alg.Unreachable()) >= 0
}

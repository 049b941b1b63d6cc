// SPDX-License-Identifier: MIT

package membership

import "math"

// Func maps a crisp value onto a membership degree in [0,1].
// Implementations in this package are total: any float64 (including ±Inf)
// yields a value in [0,1], and NaN yields 0.
type Func func(x float64) float64

// S returns a left shoulder: 1 for x ≤ a, a linear descent to 0 on (a,b),
// and 0 for x ≥ b.
//
// When b ≤ a the shoulder degenerates into a hard step at a
// (1 for x ≤ a, 0 otherwise).
//
// Example:
//
//	veryShort := S(0.0, 0.3)
//	veryShort(-1)   // 1
//	veryShort(0.15) // 0.5
//	veryShort(0.9)  // 0
func S(a, b float64) Func {
	if b <= a {
		return func(x float64) float64 {
			if x <= a {
				return 1
			}
			return 0 // also covers NaN
		}
	}
	width := b - a

	return func(x float64) float64 {
		switch {
		case math.IsNaN(x):
			return 0
		case x <= a:
			return 1
		case x >= b:
			return 0
		default:
			return Clamp01((b - x) / width)
		}
	}
}

// R returns a right shoulder, the mirror image of S: 0 for x ≤ a,
// a linear ascent to 1 on (a,b), and 1 for x ≥ b.
//
// When b ≤ a the shoulder degenerates into a hard step at a
// (0 for x ≤ a, 1 otherwise).
func R(a, b float64) Func {
	if b <= a {
		return func(x float64) float64 {
			if x > a {
				return 1
			}
			return 0
		}
	}
	width := b - a

	return func(x float64) float64 {
		switch {
		case math.IsNaN(x):
			return 0
		case x <= a:
			return 0
		case x >= b:
			return 1
		default:
			return Clamp01((x - a) / width)
		}
	}
}

// Triangular returns a triangle with feet at a and c and its peak at b.
//
// Breakpoints are expected in order a ≤ b ≤ c; a zero-width flank
// (a == b or b == c) becomes a vertical edge, so the peak value 1 is
// still reached at x == b.
func Triangular(a, b, c float64) Func {
	return Trapezoid(a, b, b, c)
}

// Trapezoid returns a trapezoid: 0 outside [a,d], rising on [a,b],
// a plateau of 1 on [b,c], falling on [c,d].
//
// Implementation:
//   - Stage 1: reject NaN and anything outside the support [a,d].
//   - Stage 2: return 1 on the plateau.
//   - Stage 3: interpolate on whichever flank x falls into.
//
// Breakpoints are expected in order a ≤ b ≤ c ≤ d; zero-width flanks are
// vertical edges and never divide by zero.
func Trapezoid(a, b, c, d float64) Func {
	return func(x float64) float64 {
		if math.IsNaN(x) || x < a || x > d {
			return 0
		}
		if x >= b && x <= c {
			return 1
		}
		if x < b {
			// a ≤ x < b implies b > a, the rising flank has width.
			return Clamp01((x - a) / (b - a))
		}
		// c < x ≤ d implies d > c.
		return Clamp01((d - x) / (d - c))
	}
}

// Rectangle returns a crisp interval: 1 on [a,b], 0 elsewhere.
func Rectangle(a, b float64) Func {
	return func(x float64) float64 {
		if x >= a && x <= b {
			return 1
		}
		return 0
	}
}

// Constant returns a flat membership of v everywhere; v is clamped into [0,1].
func Constant(v float64) Func {
	level := Clamp01(v)

	return func(float64) float64 { return level }
}

// Clamp01 clamps v into [0,1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}

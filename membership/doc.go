// Package membership provides the primitive membership shapes used to
// describe linguistic terms: shoulders, triangles, trapezoids and friends.
//
// 🚀 What is a membership function?
//
//	A membership function maps a crisp scalar x onto a degree μ(x) ∈ [0,1]
//	that tells how strongly x belongs to a fuzzy term ("low", "very small").
//	Every shape here is a clamped piecewise-linear interpolation between one
//	to four breakpoints.
//
// ✨ Key features:
//   - total functions over the real line (no panics, NaN → 0)
//   - saturating shoulders: S and R return exactly 0 or 1 beyond their knees
//   - degenerate breakpoints collapse to hard steps instead of dividing by zero
//   - results are always clamped into [0,1]
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvfuzzy/membership"
//
//	low := membership.S(0.0, 0.3)   // 1 below 0.0, falls to 0 at 0.3
//	high := membership.R(0.6, 1.0)  // 0 below 0.6, rises to 1 at 1.0
//	mid := membership.Triangular(0.3, 0.5, 0.7)
//
//	fmt.Printf("%.1f %.1f %.1f\n", low(0.15), high(0.8), mid(0.5)) // 0.5 0.5 1.0
//
// Shapes:
//
//	S(a,b)              ‾‾‾\___      left shoulder
//	R(a,b)              ___/‾‾‾      right shoulder
//	Triangular(a,b,c)   __/\__
//	Trapezoid(a,b,c,d)  __/‾‾\__
//	Rectangle(a,b)      __|‾‾|__
//	Constant(v)         ‾‾‾‾‾‾‾      flat at v
//
// Complexity: every evaluation is O(1) time and allocation-free.
package membership

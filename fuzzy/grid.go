// SPDX-License-Identifier: MIT

package fuzzy

import (
	"iter"
	"math"
)

// gridEpsilon absorbs representation error in (max-min)/step so that
// e.g. (1-0)/0.001 yields 1001 points, not 1000.
const gridEpsilon = 1e-9

// Grid is a finite, evenly spaced sequence of sample points from min to
// max stepping by step. It holds no slice; points are computed on demand
// as min + i·step (never by accumulation, so every pass is bit-identical)
// and capped at max.
//
// Len() = floor((max−min)/step) + 1. When the range is not a multiple of
// step the last point falls short of max.
type Grid struct {
	min, max, step float64
	n              int
}

// newGrid computes the point count once; callers have validated inputs.
func newGrid(min, max, step float64) Grid {
	n := int(math.Floor((max-min)/step+gridEpsilon)) + 1

	return Grid{min: min, max: max, step: step, n: n}
}

// Len returns the number of points; it is the per-pass cost of any
// integration over this grid.
func (g Grid) Len() int { return g.n }

// Step returns the spacing between consecutive points.
func (g Grid) Step() float64 { return g.step }

// At returns the i-th point for 0 ≤ i < Len().
func (g Grid) At(i int) float64 {
	x := g.min + float64(i)*g.step
	if x > g.max {
		return g.max
	}

	return x
}

// All yields (index, point) pairs in ascending order. The sequence is lazy
// and restartable: ranging over it twice produces identical values.
func (g Grid) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < g.n; i++ {
			if !yield(i, g.At(i)) {
				return
			}
		}
	}
}

// Points materializes the grid into a slice.
func (g Grid) Points() []float64 {
	out := make([]float64, g.n)
	for i := range out {
		out[i] = g.At(i)
	}

	return out
}

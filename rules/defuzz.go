// SPDX-License-Identifier: MIT

package rules

import (
	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// maxTolerance groups grid points whose membership is within this distance
// of the maximum for the *-of-maximum methods.
const maxTolerance = 1e-12

// defuzzify reduces μ sampled on g to a crisp value.
// Every method fails with ErrNoRuleFired when μ has zero area.
func defuzzify(method Defuzzifier, g fuzzy.Grid, mu []float64) (float64, error) {
	var area float64
	for _, m := range mu {
		area += m
	}
	if area == 0 {
		return 0, ErrNoRuleFired
	}

	switch method {
	case Bisector:
		return bisector(g, mu, area), nil
	case MeanOfMaximum, SmallestOfMaximum, LargestOfMaximum:
		return ofMaximum(method, g, mu), nil
	default:
		return centroid(g, mu, area), nil
	}
}

// centroid is Σ x_i·μ_i / Σ μ_i, summed in ascending grid order.
func centroid(g fuzzy.Grid, mu []float64, area float64) float64 {
	var num float64
	for i, m := range mu {
		num += g.At(i) * m
	}

	return num / area
}

// bisector returns the first grid point where the running area reaches
// half of the total.
func bisector(g fuzzy.Grid, mu []float64, area float64) float64 {
	half := area / 2
	var run float64
	for i, m := range mu {
		run += m
		if run >= half {
			return g.At(i)
		}
	}

	return g.At(len(mu) - 1)
}

// ofMaximum implements mean/smallest/largest of maximum.
func ofMaximum(method Defuzzifier, g fuzzy.Grid, mu []float64) float64 {
	peak := 0.0
	for _, m := range mu {
		if m > peak {
			peak = m
		}
	}

	first, last := -1, -1
	var sum float64
	var n int
	for i, m := range mu {
		if peak-m > maxTolerance {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
		sum += g.At(i)
		n++
	}

	switch method {
	case SmallestOfMaximum:
		return g.At(first)
	case LargestOfMaximum:
		return g.At(last)
	default:
		return sum / float64(n)
	}
}

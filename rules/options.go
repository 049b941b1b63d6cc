// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"strings"
)

// Defuzzifier selects how the aggregated output set becomes a crisp value.
type Defuzzifier int

const (
	// Centroid is the center of gravity Σ x·μ(x) / Σ μ(x) over the output grid.
	Centroid Defuzzifier = iota
	// Bisector is the first grid point where the cumulative area reaches half
	// of the total area.
	Bisector
	// MeanOfMaximum averages the grid points where μ reaches its maximum.
	MeanOfMaximum
	// SmallestOfMaximum is the smallest grid point where μ is maximal.
	SmallestOfMaximum
	// LargestOfMaximum is the largest grid point where μ is maximal.
	LargestOfMaximum
)

// String returns the lowercase method name.
func (d Defuzzifier) String() string {
	switch d {
	case Centroid:
		return "centroid"
	case Bisector:
		return "bisector"
	case MeanOfMaximum:
		return "mom"
	case SmallestOfMaximum:
		return "som"
	case LargestOfMaximum:
		return "lom"
	default:
		return fmt.Sprintf("defuzzifier(%d)", int(d))
	}
}

// ParseDefuzzifier maps a method name onto a Defuzzifier. It accepts the
// String() forms plus "cog", "mean-of-maximum", "smallest-of-maximum" and
// "largest-of-maximum"; matching is case-insensitive.
func ParseDefuzzifier(name string) (Defuzzifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "centroid", "cog":
		return Centroid, nil
	case "bisector":
		return Bisector, nil
	case "mom", "mean-of-maximum":
		return MeanOfMaximum, nil
	case "som", "smallest-of-maximum":
		return SmallestOfMaximum, nil
	case "lom", "largest-of-maximum":
		return LargestOfMaximum, nil
	default:
		return 0, fmt.Errorf("defuzzifier %q: %w", name, ErrOptionViolation)
	}
}

// valid reports whether d is a known method.
func (d Defuzzifier) valid() bool {
	return d >= Centroid && d <= LargestOfMaximum
}

// Implication selects how a firing strength shapes its consequent.
type Implication int

const (
	// Clip cuts the consequent at the firing strength: min(w, μ_C(x)) (Mamdani).
	Clip Implication = iota
	// Scale multiplies the consequent by the firing strength: w·μ_C(x) (Larsen).
	Scale
)

// String returns the lowercase implication name.
func (i Implication) String() string {
	switch i {
	case Clip:
		return "clip"
	case Scale:
		return "scale"
	default:
		return fmt.Sprintf("implication(%d)", int(i))
	}
}

// ParseImplication maps "clip" (alias "min") or "scale" (alias "product")
// onto an Implication; "" selects Clip. Matching is case-insensitive.
func ParseImplication(name string) (Implication, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "clip", "min":
		return Clip, nil
	case "scale", "product":
		return Scale, nil
	default:
		return 0, fmt.Errorf("implication %q: %w", name, ErrOptionViolation)
	}
}

// Option configures a RuleBase via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the resolved configuration of a RuleBase.
type Options struct {
	// Defuzzifier turns the aggregated output into a crisp value.
	Defuzzifier Defuzzifier

	// Implication shapes each consequent by its activation strength.
	Implication Implication

	// OnFire is called once per rule and query with the rule index and its
	// firing strength, before aggregation. It must not retain the RuleBase.
	OnFire func(rule int, strength float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Centroid defuzzification
//   - Clip (min) implication
//   - a no-op OnFire hook.
func DefaultOptions() Options {
	return Options{
		Defuzzifier: Centroid,
		Implication: Clip,
		OnFire:      func(int, float64) {},
	}
}

// WithDefuzzifier selects the defuzzification method.
func WithDefuzzifier(d Defuzzifier) Option {
	return func(o *Options) {
		if !d.valid() {
			o.err = fmt.Errorf("WithDefuzzifier(%d): %w", int(d), ErrOptionViolation)
			return
		}
		o.Defuzzifier = d
	}
}

// WithImplication selects Clip (min) or Scale (product) implication.
func WithImplication(i Implication) Option {
	return func(o *Options) {
		if i != Clip && i != Scale {
			o.err = fmt.Errorf("WithImplication(%d): %w", int(i), ErrOptionViolation)
			return
		}
		o.Implication = i
	}
}

// WithOnFire installs a per-rule observation hook. A nil fn is ignored.
func WithOnFire(fn func(rule int, strength float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFire = fn
		}
	}
}

// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"
	"math"
	"strings"
)

// Hedge is a unary linguistic modifier that reshapes a membership curve by
// raising it to a fixed power. Exponents above 1 concentrate (sharpen) the
// set, exponents below 1 dilate it.
type Hedge int

const (
	// HedgeVery squares the membership: μ².
	HedgeVery Hedge = iota
	// HedgeSomewhat takes the square root: μ^0.5.
	HedgeSomewhat
	// HedgeExtremely cubes the membership: μ³.
	HedgeExtremely
	// HedgePlus mildly concentrates: μ^1.25.
	HedgePlus
	// HedgeMinus mildly dilates: μ^0.75.
	HedgeMinus
)

// Exponent returns the power the hedge raises membership to.
func (h Hedge) Exponent() float64 {
	switch h {
	case HedgeVery:
		return 2
	case HedgeSomewhat:
		return 0.5
	case HedgeExtremely:
		return 3
	case HedgePlus:
		return 1.25
	case HedgeMinus:
		return 0.75
	default:
		return 1
	}
}

// String returns the lowercase hedge keyword.
func (h Hedge) String() string {
	switch h {
	case HedgeVery:
		return "very"
	case HedgeSomewhat:
		return "somewhat"
	case HedgeExtremely:
		return "extremely"
	case HedgePlus:
		return "plus"
	case HedgeMinus:
		return "minus"
	default:
		return fmt.Sprintf("hedge(%d)", int(h))
	}
}

// ParseHedge maps a keyword ("very", "somewhat", ...) onto a Hedge.
// Matching is case-insensitive; the bool is false for unknown keywords.
func ParseHedge(name string) (Hedge, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "very":
		return HedgeVery, true
	case "somewhat":
		return HedgeSomewhat, true
	case "extremely":
		return HedgeExtremely, true
	case "plus":
		return HedgePlus, true
	case "minus":
		return HedgeMinus, true
	default:
		return 0, false
	}
}

// apply raises v ∈ [0,1] to the hedge exponent. Integer and square-root
// exponents avoid math.Pow so results are exact products.
func (h Hedge) apply(v float64) float64 {
	switch h {
	case HedgeVery:
		return v * v
	case HedgeSomewhat:
		return math.Sqrt(v)
	case HedgeExtremely:
		return v * v * v
	default:
		return math.Pow(v, h.Exponent())
	}
}

// ApplyHedge returns a new Set with h applied to a; the result inherits
// the domain of a. Panics on a nil operand.
func ApplyHedge(h Hedge, a *Set) *Set {
	mustOperand(a)

	return &Set{kind: Hedged, left: a, hedge: h, domain: a.domain}
}

// Very returns μa². Values stay in [0,1] and never exceed μa.
func Very(a *Set) *Set { return ApplyHedge(HedgeVery, a) }

// Somewhat returns μa^0.5.
func Somewhat(a *Set) *Set { return ApplyHedge(HedgeSomewhat, a) }

// Extremely returns μa³.
func Extremely(a *Set) *Set { return ApplyHedge(HedgeExtremely, a) }

// Plus returns μa^1.25.
func Plus(a *Set) *Set { return ApplyHedge(HedgePlus, a) }

// Minus returns μa^0.75.
func Minus(a *Set) *Set { return ApplyHedge(HedgeMinus, a) }

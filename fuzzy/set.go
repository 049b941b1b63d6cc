// SPDX-License-Identifier: MIT

package fuzzy

import (
	"math"

	"github.com/katalvlaran/lvfuzzy/membership"
)

// Kind tags the node type of a Set expression tree.
type Kind int

const (
	// Primitive wraps a membership.Func.
	Primitive Kind = iota
	// Intersection is And(left, right): min of both operands.
	Intersection
	// Union is Or(left, right): max of both operands.
	Union
	// Complement is Not(inner): 1 − inner.
	Complement
	// Hedged is a hedge applied to inner: inner^k.
	Hedged
)

// String returns a short lowercase name for the node kind.
func (k Kind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Intersection:
		return "and"
	case Union:
		return "or"
	case Complement:
		return "not"
	case Hedged:
		return "hedge"
	default:
		return "unknown"
	}
}

// Set is an immutable fuzzy membership expression.
//
// A Set is one node of a directed acyclic expression tree: a Primitive leaf
// wrapping a membership.Func, a binary And/Or node, or a unary Not/Hedge
// node. Nodes are never mutated after construction; evaluation walks the
// tree per query point. The pointer identity of a Set is significant: rule
// bases group consequents by identity, not by shape.
type Set struct {
	kind  Kind
	fn    membership.Func // Primitive only
	left  *Set            // And/Or left operand, Not/Hedge inner
	right *Set            // And/Or right operand
	hedge Hedge           // Hedged only

	domain *Domain // nil until attached or derived from a bound operand
	name   string  // term name given by Domain.Attach
}

// NewSet wraps a primitive membership function into an unbound Set.
// A nil fn is treated as the empty set (μ ≡ 0).
func NewSet(fn membership.Func) *Set {
	if fn == nil {
		fn = membership.Constant(0)
	}

	return &Set{kind: Primitive, fn: fn}
}

// Membership evaluates μ(x) by walking the expression tree.
// The result is always in [0,1]. Inputs are NOT clamped to the domain
// range here; use Domain.MembershipOf for range-clamped evaluation.
//
// Complexity: O(nodes in the tree).
func (s *Set) Membership(x float64) float64 {
	switch s.kind {
	case Primitive:
		return membership.Clamp01(s.fn(x))
	case Intersection:
		return math.Min(s.left.Membership(x), s.right.Membership(x))
	case Union:
		return math.Max(s.left.Membership(x), s.right.Membership(x))
	case Complement:
		return 1 - s.left.Membership(x)
	case Hedged:
		return s.hedge.apply(s.left.Membership(x))
	default:
		return 0
	}
}

// Kind reports the node type at the root of this expression.
func (s *Set) Kind() Kind { return s.kind }

// Domain returns the domain this set is bound to, or nil when unbound.
func (s *Set) Domain() *Domain { return s.domain }

// Name returns the term name assigned by Domain.Attach ("" if never attached).
func (s *Set) Name() string { return s.name }

// String renders "domain.term" for attached sets and the node kind otherwise.
func (s *Set) String() string {
	if s.name != "" && s.domain != nil {
		return s.domain.name + "." + s.name
	}
	if s.name != "" {
		return s.name
	}

	return s.kind.String()
}

// Sample evaluates the set on every point of g.
// Complexity: O(g.Len() × nodes).
func (s *Set) Sample(g Grid) []float64 {
	out := make([]float64, g.Len())
	for i, x := range g.All() {
		out[i] = s.Membership(x)
	}

	return out
}

// Centroid returns the center of gravity Σ x·μ(x) / Σ μ(x) of the set over
// the grid of its domain.
//
// Errors:
//   - ErrUnboundSet — the set has no domain, so there is no grid to integrate over.
//   - ErrEmptySet   — μ is zero on every grid point.
func (s *Set) Centroid() (float64, error) {
	if s.domain == nil {
		return 0, ErrUnboundSet
	}
	var num, den float64
	for _, x := range s.domain.Grid().All() {
		mu := s.Membership(x)
		num += x * mu
		den += mu
	}
	if den == 0 {
		return 0, ErrEmptySet
	}

	return num / den, nil
}

// bind returns a shallow copy of s bound to d under the given term name.
// The copy shares operands with s, which is safe because nodes are immutable.
func (s *Set) bind(d *Domain, name string) *Set {
	c := *s
	c.domain = d
	c.name = name

	return &c
}

// Package fuzzy defines linguistic variables (Domain) and the fuzzy sets
// (Set) that describe their terms, together with the fuzzy algebra used to
// combine and reshape those sets.
//
// 🚀 What lives here?
//
//	Domain — a named, bounded, resolution-quantized numeric variable
//	         ("mean delay" on [0,1] sampled every 0.001).
//	Set    — an immutable membership expression μ: [min,max] → [0,1].
//	Grid   — the evenly spaced sample points of a Domain, the shared basis
//	         for numeric integration (centroids, defuzzification).
//
// ✨ Fuzzy algebra (every operator returns a NEW Set, operands are never mutated):
//   - And(a, b)   μ = min(μa, μb)     intersection, t-norm
//   - Or(a, b)    μ = max(μa, μb)     union, s-norm
//   - Not(a)      μ = 1 − μa          complement
//   - Very(a)     μ = μa²             hedge (also Somewhat, Extremely, Plus, Minus)
//
// Sets form a directed acyclic expression tree (Primitive, And, Or, Not,
// Hedge) evaluated lazily per query point. Because nothing mutates after
// construction, a Set can be shared by any number of rules and goroutines.
//
// ⚙️ Usage:
//
//	delay, err := fuzzy.NewDomain("delay", 0, 1, 0.001)
//	if err != nil { /* ErrInvalidRange */ }
//
//	vs, _ := delay.Attach("VS", fuzzy.NewSet(membership.S(0.0, 0.3)))
//	band, _ := fuzzy.And(
//	    fuzzy.NewSet(membership.R(0.1, 0.3)),
//	    fuzzy.NewSet(membership.S(0.3, 0.5)),
//	)
//	s, _ := delay.Attach("S", band)
//
//	mu, _ := delay.MembershipOf("S", 0.25) // clamps the input, evaluates μ
//
// Binding rules:
//
//	NewSet returns an unbound set. Unbound sets combine freely; a composite
//	inherits the domain of its bound operand(s). Combining two sets bound to
//	different domains fails with ErrDomainMismatch. Domain.Attach returns a
//	fresh bound node whose pointer identity is what rule bases key on.
//
// Errors:
//
//	ErrInvalidRange    — min ≥ max, non-finite bounds or bad resolution.
//	ErrEmptyName       — empty domain or term name.
//	ErrDuplicateTerm   — term already attached to this domain.
//	ErrUnknownTerm     — lookup of a term that was never attached.
//	ErrDomainMismatch  — algebra across sets of different domains.
//	ErrNilSet          — nil *Set passed where a set is required.
//	ErrUnboundSet      — operation needs a domain but the set has none.
//	ErrEmptySet        — centroid of a set with zero area on its grid.
//
// Complexity:
//
//	Evaluating a Set is O(size of its expression tree). Sampling over a
//	Grid is O(grid length × tree size); Grid.Len() makes that cost explicit.
package fuzzy

// SPDX-License-Identifier: MIT

package fuzzy

import "fmt"

// And returns the intersection of a and b: μ(x) = min(μa(x), μb(x)).
//
// A typical use is a "middle" band built from a rising and a falling shoulder:
//
//	mid, err := fuzzy.And(
//	    fuzzy.NewSet(membership.R(0.3, 0.5)),
//	    fuzzy.NewSet(membership.S(0.5, 0.7)),
//	)
//
// Errors:
//   - ErrNilSet         — either operand is nil.
//   - ErrDomainMismatch — both operands are bound to different domains.
func And(a, b *Set) (*Set, error) {
	return combine(Intersection, a, b)
}

// Or returns the union of a and b: μ(x) = max(μa(x), μb(x)).
// Errors are the same as for And.
func Or(a, b *Set) (*Set, error) {
	return combine(Union, a, b)
}

// Not returns the complement of a: μ(x) = 1 − μa(x).
// The result inherits the domain of a. Panics on a nil operand.
func Not(a *Set) *Set {
	mustOperand(a)

	return &Set{kind: Complement, left: a, domain: a.domain}
}

// Must panics if err is non-nil and returns s otherwise.
// It is meant for literal rule tables where a failure is a programming error:
//
//	mid := fuzzy.Must(fuzzy.And(rise, fall))
func Must(s *Set, err error) *Set {
	if err != nil {
		panic(err)
	}

	return s
}

// combine builds a binary node after validating operands.
//
// Implementation:
//   - Stage 1: reject nil operands.
//   - Stage 2: resolve the shared domain (nil + d → d; d + d → d; d1 + d2 → mismatch).
//   - Stage 3: allocate the node; operands are referenced, never copied.
func combine(kind Kind, a, b *Set) (*Set, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", kind, ErrNilSet)
	}
	d, err := sharedDomain(a.domain, b.domain)
	if err != nil {
		return nil, fmt.Errorf("%s(%s, %s): %w", kind, a, b, err)
	}

	return &Set{kind: kind, left: a, right: b, domain: d}, nil
}

// sharedDomain returns the domain common to two operands.
func sharedDomain(a, b *Domain) (*Domain, error) {
	switch {
	case a == nil:
		return b, nil
	case b == nil, a == b:
		return a, nil
	default:
		return nil, ErrDomainMismatch
	}
}

// mustOperand panics on a nil unary operand (programmer error).
func mustOperand(a *Set) {
	if a == nil {
		panic(ErrNilSet)
	}
}

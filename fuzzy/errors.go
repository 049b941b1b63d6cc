// SPDX-License-Identifier: MIT
// Package fuzzy: sentinel error set.
//
// Every message is prefixed with "fuzzy: ..." for easy grepping. Callers
// branch with errors.Is; functions add context with fmt.Errorf("...: %w").

package fuzzy

import "errors"

var (
	// ErrInvalidRange is returned by NewDomain when min ≥ max, a bound is
	// NaN/±Inf, or the resolution is not a positive finite step.
	ErrInvalidRange = errors.New("fuzzy: invalid domain range or resolution")

	// ErrEmptyName indicates an empty domain or term name.
	ErrEmptyName = errors.New("fuzzy: empty name")

	// ErrDuplicateTerm indicates a term name is already attached to the domain.
	ErrDuplicateTerm = errors.New("fuzzy: duplicate term")

	// ErrUnknownTerm indicates a lookup of a term that is not attached.
	ErrUnknownTerm = errors.New("fuzzy: unknown term")

	// ErrDomainMismatch indicates sets from different domains were combined.
	ErrDomainMismatch = errors.New("fuzzy: domain mismatch")

	// ErrNilSet indicates a nil *Set operand.
	ErrNilSet = errors.New("fuzzy: nil set")

	// ErrUnboundSet indicates an operation that needs a domain received a set
	// that was never attached to (or derived from) one.
	ErrUnboundSet = errors.New("fuzzy: set is not bound to a domain")

	// ErrEmptySet indicates a set whose membership is zero on every grid point,
	// so its centroid is undefined.
	ErrEmptySet = errors.New("fuzzy: set has zero area")
)

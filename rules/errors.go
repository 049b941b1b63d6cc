// SPDX-License-Identifier: MIT
// Package rules: sentinel error set.
//
// None of these conditions is retryable: each one signals a defect in the
// rule table or in the query, never a transient state. Inputs validation
// order: missing → invalid; construction order: empty → nil/unbound →
// arity → domain → duplicate.

package rules

import "errors"

var (
	// ErrEmptyRuleBase indicates New was called without rules.
	ErrEmptyRuleBase = errors.New("rules: empty rule base")

	// ErrArityMismatch indicates an antecedent tuple whose length differs from
	// the first rule's, or an empty antecedent.
	ErrArityMismatch = errors.New("rules: antecedent arity mismatch")

	// ErrDuplicateRule indicates the same antecedent tuple (by Set identity)
	// was declared twice.
	ErrDuplicateRule = errors.New("rules: duplicate antecedent tuple")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("rules: invalid option supplied")

	// ErrMissingInput indicates a query without a value for a referenced input domain.
	ErrMissingInput = errors.New("rules: missing input")

	// ErrInvalidInput indicates a NaN or ±Inf crisp input.
	ErrInvalidInput = errors.New("rules: invalid input value")

	// ErrNoRuleFired indicates the aggregated output membership is zero on
	// every grid point, so no crisp value can be derived.
	ErrNoRuleFired = errors.New("rules: no rule fired")
)

// SPDX-License-Identifier: MIT

package rules

import "github.com/katalvlaran/lvfuzzy/fuzzy"

// Rule maps an ordered antecedent tuple onto a consequent.
//
// If holds one Set per input Domain; position k must belong to the same
// Domain in every rule of a RuleBase. Then is the consequent Set on the
// output Domain. Sets are referenced, never copied: the RuleBase keys on
// their pointer identity.
type Rule struct {
	If   []*fuzzy.Set
	Then *fuzzy.Set
}

// Activation is the aggregated strength of one distinct consequent.
type Activation struct {
	// Consequent is the shared consequent Set (identity).
	Consequent *fuzzy.Set

	// Strength is max over the firing strengths of rules sharing Consequent.
	Strength float64
}

// Result is the full trace of one inference query.
type Result struct {
	// Value is the defuzzified crisp output.
	Value float64

	// Firing holds each rule's firing strength, in rule order.
	Firing []float64

	// Activations holds one entry per distinct consequent, in first-seen order.
	Activations []Activation

	// GridSize is the number of output grid points integrated over.
	GridSize int
}

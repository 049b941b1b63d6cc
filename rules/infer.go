// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// Infer runs one inference query and returns the crisp output.
// It is Evaluate without the trace.
func (rb *RuleBase) Infer(inputs map[*fuzzy.Domain]float64) (float64, error) {
	res, err := rb.Evaluate(inputs)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Evaluate runs one inference query and returns the crisp output together
// with the per-rule firing strengths and per-consequent activations.
//
// Implementation:
//   - Stage 1: fuzzification input; look up and clamp one crisp value per
//     input domain; domains not referenced by the rule base are ignored.
//   - Stage 2: firing; strength = min over antecedent memberships; each
//     consequent group keeps the max strength of its rules.
//   - Stage 3: aggregation; μ_out(x_j) = max_C imp(strength_C, μ_C(x_j)).
//   - Stage 4: defuzzification with the configured method.
//
// Errors:
//   - ErrMissingInput — a referenced input domain has no value.
//   - ErrInvalidInput — a value is NaN or ±Inf.
//   - ErrNoRuleFired  — μ_out is zero on every output grid point.
//
// Determinism: pure function of (rule base, inputs); identical queries
// return bit-identical results.
func (rb *RuleBase) Evaluate(inputs map[*fuzzy.Domain]float64) (*Result, error) {
	// Stage 1: crisp snapshot
	crisp := make([]float64, len(rb.inputs))
	for k, d := range rb.inputs {
		v, ok := inputs[d]
		if !ok {
			return nil, fmt.Errorf("domain %q: %w", d.Name(), ErrMissingInput)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("domain %q value %v: %w", d.Name(), v, ErrInvalidInput)
		}
		crisp[k] = d.Clamp(v)
	}

	// Stage 2: firing strengths and max-aggregation per consequent
	firing := make([]float64, len(rb.rules))
	strength := make([]float64, len(rb.consequents))
	for i, r := range rb.rules {
		w := 1.0
		for k, s := range r.If {
			w = math.Min(w, s.Membership(crisp[k]))
			if w == 0 {
				break
			}
		}
		firing[i] = w
		if g := rb.ruleGroup[i]; w > strength[g] {
			strength[g] = w
		}
		rb.opts.OnFire(i, w)
	}

	res := &Result{
		Firing:      firing,
		Activations: make([]Activation, len(rb.consequents)),
		GridSize:    rb.grid.Len(),
	}
	for c, s := range rb.consequents {
		res.Activations[c] = Activation{Consequent: s, Strength: strength[c]}
	}

	// Stage 3: aggregated output over the grid
	mu := rb.aggregate(strength)

	// Stage 4: crisp value
	v, err := defuzzify(rb.opts.Defuzzifier, rb.grid, mu)
	if err != nil {
		return nil, err
	}
	res.Value = v

	return res, nil
}

// aggregate computes μ_out on every grid point from the cached consequent samples.
func (rb *RuleBase) aggregate(strength []float64) []float64 {
	mu := make([]float64, rb.grid.Len())
	for c, w := range strength {
		if w == 0 {
			continue
		}
		for j, m := range rb.samples[c] {
			var v float64
			if rb.opts.Implication == Scale {
				v = w * m
			} else {
				v = math.Min(w, m)
			}
			if v > mu[j] {
				mu[j] = v
			}
		}
	}

	return mu
}

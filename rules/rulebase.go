// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// RuleBase is an immutable, validated rule table bound to its input and
// output domains. All methods are safe for concurrent use: nothing is
// written after New returns.
type RuleBase struct {
	rules  []Rule
	inputs []*fuzzy.Domain // positional input domains, from rule 0
	output *fuzzy.Domain
	grid   fuzzy.Grid

	consequents []*fuzzy.Set // distinct consequents, first-seen order
	ruleGroup   []int        // rule index → index into consequents
	samples     [][]float64  // consequent index → μ_C over grid

	opts Options
}

// New validates a rule table and returns a ready RuleBase.
//
// Implementation:
//   - Stage 1: resolve options; surface any recorded ErrOptionViolation.
//   - Stage 2: fix arity and positional input domains from rule 0.
//   - Stage 3: validate every rule (nil/unbound sets, arity, positional
//     domains, output domain) and reject duplicate antecedent tuples.
//   - Stage 4: group rules by consequent identity and cache each distinct
//     consequent's samples over the output grid.
//
// The rule slice is copied; the Sets it references are not.
//
// Errors:
//   - ErrEmptyRuleBase, ErrArityMismatch, ErrDuplicateRule, ErrOptionViolation.
//   - fuzzy.ErrNilSet, fuzzy.ErrUnboundSet, fuzzy.ErrDomainMismatch.
//
// Complexity: O(R·A + G·C).
func New(rs []Rule, opts ...Option) (*RuleBase, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rs) == 0 {
		return nil, ErrEmptyRuleBase
	}

	inputs, output, err := signature(rs[0])
	if err != nil {
		return nil, fmt.Errorf("rule 0: %w", err)
	}

	rb := &RuleBase{
		rules:     append([]Rule(nil), rs...),
		inputs:    inputs,
		output:    output,
		grid:      output.Grid(),
		ruleGroup: make([]int, len(rs)),
		opts:      o,
	}

	arena := make(map[*fuzzy.Set]int) // antecedent identity → arena id
	seen := make(map[string]int)      // antecedent key → first rule index
	group := make(map[*fuzzy.Set]int) // consequent identity → group index
	for i, r := range rs {
		if err := rb.check(r); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		key := antecedentKey(arena, r.If)
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("rule %d repeats rule %d: %w", i, first, ErrDuplicateRule)
		}
		seen[key] = i

		g, ok := group[r.Then]
		if !ok {
			g = len(rb.consequents)
			group[r.Then] = g
			rb.consequents = append(rb.consequents, r.Then)
			rb.samples = append(rb.samples, r.Then.Sample(rb.grid))
		}
		rb.ruleGroup[i] = g
	}

	return rb, nil
}

// signature derives the positional input domains and the output domain
// from the first rule.
func signature(r Rule) ([]*fuzzy.Domain, *fuzzy.Domain, error) {
	if len(r.If) == 0 {
		return nil, nil, fmt.Errorf("empty antecedent: %w", ErrArityMismatch)
	}
	inputs := make([]*fuzzy.Domain, len(r.If))
	for k, s := range r.If {
		if s == nil {
			return nil, nil, fmt.Errorf("antecedent %d: %w", k, fuzzy.ErrNilSet)
		}
		d := s.Domain()
		if d == nil {
			return nil, nil, fmt.Errorf("antecedent %d: %w", k, fuzzy.ErrUnboundSet)
		}
		for j := 0; j < k; j++ {
			if inputs[j] == d {
				return nil, nil, fmt.Errorf("domain %q used at positions %d and %d: %w", d.Name(), j, k, fuzzy.ErrDomainMismatch)
			}
		}
		inputs[k] = d
	}
	if r.Then == nil {
		return nil, nil, fmt.Errorf("consequent: %w", fuzzy.ErrNilSet)
	}
	if r.Then.Domain() == nil {
		return nil, nil, fmt.Errorf("consequent: %w", fuzzy.ErrUnboundSet)
	}

	return inputs, r.Then.Domain(), nil
}

// check validates one rule against the signature fixed by rule 0.
func (rb *RuleBase) check(r Rule) error {
	if len(r.If) != len(rb.inputs) {
		return fmt.Errorf("got %d antecedents, want %d: %w", len(r.If), len(rb.inputs), ErrArityMismatch)
	}
	for k, s := range r.If {
		if s == nil {
			return fmt.Errorf("antecedent %d: %w", k, fuzzy.ErrNilSet)
		}
		if s.Domain() == nil {
			return fmt.Errorf("antecedent %d: %w", k, fuzzy.ErrUnboundSet)
		}
		if s.Domain() != rb.inputs[k] {
			return fmt.Errorf("antecedent %d (%s) not on domain %q: %w", k, s, rb.inputs[k].Name(), fuzzy.ErrDomainMismatch)
		}
	}
	if r.Then == nil {
		return fmt.Errorf("consequent: %w", fuzzy.ErrNilSet)
	}
	if r.Then.Domain() == nil {
		return fmt.Errorf("consequent: %w", fuzzy.ErrUnboundSet)
	}
	if r.Then.Domain() != rb.output {
		return fmt.Errorf("consequent %s not on output domain %q: %w", r.Then, rb.output.Name(), fuzzy.ErrDomainMismatch)
	}

	return nil
}

// antecedentKey encodes a tuple of Set identities as arena ids "3,0,7".
// Distinct instances with equal shapes get distinct ids.
func antecedentKey(arena map[*fuzzy.Set]int, tuple []*fuzzy.Set) string {
	var b strings.Builder
	for k, s := range tuple {
		id, ok := arena[s]
		if !ok {
			id = len(arena)
			arena[s] = id
		}
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}

// Len returns the number of rules.
func (rb *RuleBase) Len() int { return len(rb.rules) }

// Rules returns a copy of the rule table.
func (rb *RuleBase) Rules() []Rule { return append([]Rule(nil), rb.rules...) }

// Inputs returns the positional input domains.
func (rb *RuleBase) Inputs() []*fuzzy.Domain { return append([]*fuzzy.Domain(nil), rb.inputs...) }

// Output returns the output domain.
func (rb *RuleBase) Output() *fuzzy.Domain { return rb.output }

// Consequents returns the distinct consequent Sets in first-seen order.
func (rb *RuleBase) Consequents() []*fuzzy.Set { return append([]*fuzzy.Set(nil), rb.consequents...) }

// GridSize returns the number of output grid points each query integrates
// over. Query cost is linear in it; coarsen the output domain's resolution
// to bound latency.
func (rb *RuleBase) GridSize() int { return rb.grid.Len() }

// Options returns the resolved configuration.
func (rb *RuleBase) Options() Options { return rb.opts }

// SPDX-License-Identifier: MIT

package model

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/rules"
)

// Model is a built document: named domains plus a ready rule base.
// It is immutable after Build and safe for concurrent queries.
type Model struct {
	name    string
	domains map[string]*fuzzy.Domain
	about   map[string]string
	order   []string
	output  *fuzzy.Domain
	base    *rules.RuleBase
}

// Name returns the document name ("" if the document had none).
func (m *Model) Name() string { return m.name }

// Domain returns the domain declared under name.
func (m *Model) Domain(name string) (*fuzzy.Domain, bool) {
	d, ok := m.domains[name]
	return d, ok
}

// Description returns the free-text description of a domain.
func (m *Model) Description(name string) string { return m.about[name] }

// DomainNames returns the domain names in declaration order.
func (m *Model) DomainNames() []string { return append([]string(nil), m.order...) }

// InputNames returns the input domain names in rule antecedent order.
func (m *Model) InputNames() []string {
	in := m.base.Inputs()
	names := make([]string, len(in))
	for k, d := range in {
		names[k] = d.Name()
	}

	return names
}

// Output returns the output domain.
func (m *Model) Output() *fuzzy.Domain { return m.output }

// RuleBase exposes the underlying rule base.
func (m *Model) RuleBase() *rules.RuleBase { return m.base }

// RuleLabels renders every rule as "IF a.x AND b.y THEN c.z", in rule order.
func (m *Model) RuleLabels() []string {
	rs := m.base.Rules()
	out := make([]string, len(rs))
	var b strings.Builder
	for i, r := range rs {
		b.Reset()
		b.WriteString("IF ")
		for k, s := range r.If {
			if k > 0 {
				b.WriteString(" AND ")
			}
			b.WriteString(s.String())
		}
		b.WriteString(" THEN ")
		b.WriteString(r.Then.String())
		out[i] = b.String()
	}

	return out
}

// Infer runs one query keyed by domain name and returns the crisp output.
func (m *Model) Infer(values map[string]float64) (float64, error) {
	res, err := m.Evaluate(values)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Evaluate runs one query keyed by domain name and returns the full trace.
//
// Errors:
//   - ErrUnknownDomain — a key names no declared domain.
//   - rules.ErrMissingInput, rules.ErrInvalidInput, rules.ErrNoRuleFired.
func (m *Model) Evaluate(values map[string]float64) (*rules.Result, error) {
	in := make(map[*fuzzy.Domain]float64, len(values))
	for name, v := range values {
		d, ok := m.domains[name]
		if !ok {
			return nil, errors.WithHint(
				errors.Wrapf(ErrUnknownDomain, "input %q", name),
				"declared domains: "+strings.Join(m.sortedNames(), ", "),
			)
		}
		in[d] = v
	}
	res, err := m.base.Evaluate(in)
	if err != nil {
		return nil, errors.Wrap(err, "evaluate")
	}

	return res, nil
}

func (m *Model) sortedNames() []string {
	names := m.DomainNames()
	sort.Strings(names)

	return names
}

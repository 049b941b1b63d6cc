// SPDX-License-Identifier: MIT

package model

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/rules"
)

// BuildOption adjusts how a Document is turned into a Model.
type BuildOption func(*buildConfig)

type buildConfig struct {
	resolution float64
	ruleOpts   []rules.Option
}

// WithResolution overrides the resolution of every domain. Zero keeps the
// document values. Panics on a negative or non-finite res.
func WithResolution(res float64) BuildOption {
	if res < 0 || math.IsNaN(res) || math.IsInf(res, 0) {
		panic("model: WithResolution requires a finite res ≥ 0")
	}

	return func(c *buildConfig) { c.resolution = res }
}

// WithRuleOptions appends rule base options. They are applied after the
// document's defuzzifier and implication, so they take precedence.
func WithRuleOptions(opts ...rules.Option) BuildOption {
	return func(c *buildConfig) { c.ruleOpts = append(c.ruleOpts, opts...) }
}

// Build validates doc and assembles its domains, terms and rule base.
//
// Implementation:
//   - Stage 1: create each domain, then attach its terms in order.
//   - Stage 2: resolve the output domain.
//   - Stage 3: resolve every "domain.term" reference into rules.Rule.
//   - Stage 4: hand the rules to rules.New with the resolved options and
//     check that the consequents conclude on the declared output.
//
// Errors are marked with the model sentinels; failures raised by fuzzy or
// rules keep their own sentinels in the chain as well.
func Build(doc *Document, opts ...BuildOption) (*Model, error) {
	if doc == nil {
		return nil, errors.AssertionFailedf("model: Build called with a nil document")
	}
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Model{
		name:    doc.Name,
		domains: make(map[string]*fuzzy.Domain, len(doc.Domains)),
		about:   make(map[string]string, len(doc.Domains)),
	}

	// Stage 1: domains and terms
	for _, ds := range doc.Domains {
		if _, dup := m.domains[ds.Name]; dup {
			return nil, errors.Wrapf(ErrDuplicateDomain, "domain %q", ds.Name)
		}
		d, err := buildDomain(ds, cfg.resolution)
		if err != nil {
			return nil, err
		}
		m.domains[ds.Name] = d
		m.order = append(m.order, ds.Name)
		m.about[ds.Name] = ds.Description
	}

	// Stage 2: output
	out, ok := m.domains[doc.Output]
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(ErrNoOutput, "output %q", doc.Output),
			"set 'output' to the name of a declared domain",
		)
	}
	m.output = out

	// Stage 3: rules
	rs := make([]rules.Rule, 0, len(doc.Rules))
	for i, spec := range doc.Rules {
		r, err := m.resolveRule(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
		rs = append(rs, r)
	}

	// Stage 4: rule base
	ruleOpts, err := documentOptions(doc)
	if err != nil {
		return nil, err
	}
	rb, err := rules.New(rs, append(ruleOpts, cfg.ruleOpts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "build rule base")
	}
	if rb.Output() != out {
		return nil, errors.WithHint(
			errors.Wrapf(ErrNoOutput, "output %q but rules conclude on %q", doc.Output, rb.Output().Name()),
			"set 'output' to the domain named in the rules' 'then' references",
		)
	}
	m.base = rb

	return m, nil
}

// buildDomain creates one domain and attaches its terms.
func buildDomain(ds DomainSpec, resolution float64) (*fuzzy.Domain, error) {
	if resolution == 0 {
		resolution = ds.Resolution
	}
	d, err := fuzzy.NewDomain(ds.Name, ds.Min, ds.Max, resolution)
	if err != nil {
		if resolution == 0 {
			err = errors.WithHint(err, "declare 'resolution' on the domain or pass a resolution override")
		}
		return nil, errors.Wrap(err, "build domain")
	}
	for _, ts := range ds.Terms {
		set, err := buildSet(d, ts.Set)
		if err != nil {
			return nil, errors.Wrapf(err, "term %s.%s", ds.Name, ts.Name)
		}
		if _, err = d.Attach(ts.Name, set); err != nil {
			return nil, errors.Wrapf(err, "term %s.%s", ds.Name, ts.Name)
		}
	}

	return d, nil
}

// buildSet turns one set node into a fuzzy.Set. Refs are resolved against d,
// which only holds the terms attached before this one.
func buildSet(d *fuzzy.Domain, spec SetSpec) (*fuzzy.Set, error) {
	if err := checkNode(spec); err != nil {
		return nil, err
	}

	switch {
	case spec.Shape != "":
		fn, err := shape(spec.Shape, spec.Params)
		if err != nil {
			return nil, err
		}
		return fuzzy.NewSet(fn), nil

	case spec.Ref != "":
		s, err := d.Term(spec.Ref)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "ref %q", spec.Ref), ErrBadReference)
		}
		return s, nil

	case spec.Not != nil:
		s, err := buildSet(d, *spec.Not)
		if err != nil {
			return nil, errors.Wrap(err, "not")
		}
		return fuzzy.Not(s), nil

	case spec.Hedge != "":
		h, ok := fuzzy.ParseHedge(spec.Hedge)
		if !ok {
			return nil, errors.WithHint(
				errors.Wrapf(ErrUnknownShape, "hedge %q", spec.Hedge),
				"known hedges: very, somewhat, extremely, plus, minus",
			)
		}
		if spec.Of == nil {
			return nil, errors.Wrapf(ErrBadSetNode, "hedge %q has no 'of' operand", spec.Hedge)
		}
		s, err := buildSet(d, *spec.Of)
		if err != nil {
			return nil, errors.Wrap(err, spec.Hedge)
		}
		return fuzzy.ApplyHedge(h, s), nil

	case len(spec.And) > 0:
		return fold(d, "and", fuzzy.And, spec.And)

	default:
		return fold(d, "or", fuzzy.Or, spec.Or)
	}
}

// checkNode enforces exactly one kind per node and the operand counts of
// composite nodes.
func checkNode(spec SetSpec) error {
	kinds := 0
	for _, present := range []bool{
		spec.Shape != "",
		spec.Ref != "",
		spec.Not != nil,
		spec.Hedge != "",
		spec.And != nil,
		spec.Or != nil,
	} {
		if present {
			kinds++
		}
	}
	switch {
	case kinds == 0:
		return errors.WithHint(
			errors.Wrap(ErrBadSetNode, "empty set node"),
			"use one of: shape, and, or, not, hedge, ref",
		)
	case kinds > 1:
		return errors.Wrapf(ErrBadSetNode, "node mixes %d kinds", kinds)
	case spec.And != nil && len(spec.And) < 2, spec.Or != nil && len(spec.Or) < 2:
		return errors.Wrap(ErrBadSetNode, "and/or needs at least two operands")
	case spec.Of != nil && spec.Hedge == "":
		return errors.Wrap(ErrBadSetNode, "'of' without 'hedge'")
	case len(spec.Params) > 0 && spec.Shape == "":
		return errors.Wrap(ErrBadSetNode, "'params' without 'shape'")
	}

	return nil
}

// fold combines operands left to right with op.
func fold(d *fuzzy.Domain, name string, op func(a, b *fuzzy.Set) (*fuzzy.Set, error), specs []SetSpec) (*fuzzy.Set, error) {
	acc, err := buildSet(d, specs[0])
	if err != nil {
		return nil, errors.Wrapf(err, "%s[0]", name)
	}
	for i := 1; i < len(specs); i++ {
		next, err := buildSet(d, specs[i])
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", name, i)
		}
		if acc, err = op(acc, next); err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", name, i)
		}
	}

	return acc, nil
}

// shapeArity lists the primitive shapes and their parameter counts.
var shapeArity = map[string]int{
	"s":          2,
	"r":          2,
	"triangular": 3,
	"trapezoid":  4,
	"rectangle":  2,
	"constant":   1,
}

// shapeAlias maps short spellings onto canonical shape names.
var shapeAlias = map[string]string{
	"tri":   "triangular",
	"trap":  "trapezoid",
	"rect":  "rectangle",
	"const": "constant",
}

// shape builds a primitive membership function after checking its params.
func shape(name string, p []float64) (membership.Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := shapeAlias[key]; ok {
		key = alias
	}
	arity, ok := shapeArity[key]
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(ErrUnknownShape, "shape %q", name),
			"known shapes: S, R, triangular, trapezoid, rectangle, constant",
		)
	}
	if len(p) != arity {
		return nil, errors.Wrapf(ErrBadParams, "shape %s takes %d params, got %d", key, arity, len(p))
	}
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrBadParams, "shape %s param %d is %v", key, i, v)
		}
	}

	switch key {
	case "s":
		return membership.S(p[0], p[1]), nil
	case "r":
		return membership.R(p[0], p[1]), nil
	case "triangular":
		return membership.Triangular(p[0], p[1], p[2]), nil
	case "trapezoid":
		return membership.Trapezoid(p[0], p[1], p[2], p[3]), nil
	case "rectangle":
		return membership.Rectangle(p[0], p[1]), nil
	default:
		return membership.Constant(p[0]), nil
	}
}

// resolveRule maps a RuleSpec onto attached sets.
func (m *Model) resolveRule(spec RuleSpec) (rules.Rule, error) {
	r := rules.Rule{If: make([]*fuzzy.Set, 0, len(spec.When))}
	for _, ref := range spec.When {
		s, err := m.lookup(ref)
		if err != nil {
			return rules.Rule{}, err
		}
		r.If = append(r.If, s)
	}
	then, err := m.lookup(spec.Then)
	if err != nil {
		return rules.Rule{}, errors.Wrap(err, "then")
	}
	r.Then = then

	return r, nil
}

// lookup resolves "domain.term". The split is at the last dot, so domain
// names may contain dots while term names may not.
func (m *Model) lookup(ref string) (*fuzzy.Set, error) {
	cut := strings.LastIndexByte(ref, '.')
	if cut <= 0 || cut == len(ref)-1 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrBadReference, "%q", ref),
			"write references as domain.term",
		)
	}
	d, ok := m.domains[ref[:cut]]
	if !ok {
		return nil, errors.Mark(errors.Wrapf(ErrUnknownDomain, "reference %q", ref), ErrBadReference)
	}
	s, err := d.Term(ref[cut+1:])
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reference %q", ref), ErrBadReference)
	}

	return s, nil
}

// documentOptions turns the document's method names into rule options.
func documentOptions(doc *Document) ([]rules.Option, error) {
	d, err := rules.ParseDefuzzifier(doc.Defuzzifier)
	if err != nil {
		return nil, errors.Wrap(err, "document defuzzifier")
	}
	i, err := rules.ParseImplication(doc.Implication)
	if err != nil {
		return nil, errors.Wrap(err, "document implication")
	}

	return []rules.Option{rules.WithDefuzzifier(d), rules.WithImplication(i)}, nil
}

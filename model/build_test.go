package model_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/model"
	"github.com/katalvlaran/lvfuzzy/rules"
)

// doc returns a minimal valid document: one input, one output, two rules.
func doc() *model.Document {
	return &model.Document{
		Output: "out",
		Domains: []model.DomainSpec{
			{
				Name: "in", Min: 0, Max: 1, Resolution: 0.01,
				Terms: []model.TermSpec{
					{Name: "lo", Set: model.SetSpec{Shape: "S", Params: []float64{0.2, 0.6}}},
					{Name: "hi", Set: model.SetSpec{Not: &model.SetSpec{Ref: "lo"}}},
				},
			},
			{
				Name: "out", Min: 0, Max: 1, Resolution: 0.01,
				Terms: []model.TermSpec{
					{Name: "small", Set: model.SetSpec{Shape: "tri", Params: []float64{0, 0.2, 0.4}}},
					{Name: "big", Set: model.SetSpec{Shape: "trap", Params: []float64{0.6, 0.8, 1, 1}}},
				},
			},
		},
		Rules: []model.RuleSpec{
			{When: []string{"in.lo"}, Then: "out.small"},
			{When: []string{"in.hi"}, Then: "out.big"},
		},
	}
}

func TestBuild_Minimal(t *testing.T) {
	m, err := model.Build(doc())
	require.NoError(t, err)
	assert.Equal(t, []string{"in"}, m.InputNames())

	// in=0: lo fires fully, hi is zero, so the result is the centroid of small.
	v, err := m.Infer(map[string]float64{"in": 0})
	require.NoError(t, err)
	out, _ := m.Domain("out")
	small, err := out.Term("small")
	require.NoError(t, err)
	want, err := small.Centroid()
	require.NoError(t, err)
	assert.Equal(t, want, v)

	// Out-of-range inputs are clamped into [min,max].
	clamped, err := m.Infer(map[string]float64{"in": -5})
	require.NoError(t, err)
	assert.Equal(t, v, clamped)
}

func TestBuild_SetNodes(t *testing.T) {
	d := doc()
	d.Domains[0].Terms = append(d.Domains[0].Terms,
		model.TermSpec{Name: "very lo", Set: model.SetSpec{Hedge: "very", Of: &model.SetSpec{Ref: "lo"}}},
		model.TermSpec{Name: "either", Set: model.SetSpec{Or: []model.SetSpec{{Ref: "lo"}, {Ref: "hi"}}}},
		model.TermSpec{Name: "band", Set: model.SetSpec{Shape: "rect", Params: []float64{0.3, 0.5}}},
		model.TermSpec{Name: "half", Set: model.SetSpec{Shape: "constant", Params: []float64{0.5}}},
	)
	m, err := model.Build(d)
	require.NoError(t, err)
	in, _ := m.Domain("in")

	for _, tc := range []struct {
		term string
		x    float64
		want float64
	}{
		{"lo", 0.4, 0.5},
		{"hi", 0.4, 0.5},
		{"very lo", 0.4, 0.25},
		{"either", 0.4, 0.5},
		{"either", 0.0, 1},
		{"band", 0.4, 1},
		{"band", 0.6, 0},
		{"half", 0.9, 0.5},
	} {
		got, err := in.MembershipOf(tc.term, tc.x)
		require.NoError(t, err, tc.term)
		assert.InDelta(t, tc.want, got, 1e-12, "%s(%v)", tc.term, tc.x)
	}

	vl, err := in.Term("very lo")
	require.NoError(t, err)
	assert.Equal(t, fuzzy.Hedged, vl.Kind())
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *model.Document)
		want   error
	}{
		{"unknown shape", func(d *model.Document) {
			d.Domains[0].Terms[0].Set.Shape = "gaussian"
		}, model.ErrUnknownShape},
		{"param count", func(d *model.Document) {
			d.Domains[0].Terms[0].Set.Params = []float64{0.2}
		}, model.ErrBadParams},
		{"empty node", func(d *model.Document) {
			d.Domains[0].Terms[0].Set = model.SetSpec{}
		}, model.ErrBadSetNode},
		{"mixed kinds", func(d *model.Document) {
			d.Domains[0].Terms[0].Set.Ref = "hi"
		}, model.ErrBadSetNode},
		{"single operand", func(d *model.Document) {
			d.Domains[0].Terms[1].Set = model.SetSpec{And: []model.SetSpec{{Ref: "lo"}}}
		}, model.ErrBadSetNode},
		{"hedge without operand", func(d *model.Document) {
			d.Domains[0].Terms[1].Set = model.SetSpec{Hedge: "very"}
		}, model.ErrBadSetNode},
		{"unknown hedge", func(d *model.Document) {
			d.Domains[0].Terms[1].Set = model.SetSpec{Hedge: "rather", Of: &model.SetSpec{Ref: "lo"}}
		}, model.ErrUnknownShape},
		{"forward ref", func(d *model.Document) {
			d.Domains[0].Terms[0].Set = model.SetSpec{Ref: "hi"}
		}, model.ErrBadReference},
		{"duplicate term", func(d *model.Document) {
			d.Domains[0].Terms[1].Name = "lo"
		}, fuzzy.ErrDuplicateTerm},
		{"duplicate domain", func(d *model.Document) {
			d.Domains[1].Name = "in"
		}, model.ErrDuplicateDomain},
		{"no output", func(d *model.Document) {
			d.Output = "result"
		}, model.ErrNoOutput},
		{"output names an input", func(d *model.Document) {
			d.Output = "in"
		}, model.ErrNoOutput},
		{"missing resolution", func(d *model.Document) {
			d.Domains[0].Resolution = 0
		}, fuzzy.ErrInvalidRange},
		{"reference without dot", func(d *model.Document) {
			d.Rules[0].Then = "small"
		}, model.ErrBadReference},
		{"reference to unknown domain", func(d *model.Document) {
			d.Rules[0].When = []string{"temperature.lo"}
		}, model.ErrUnknownDomain},
		{"reference to unknown term", func(d *model.Document) {
			d.Rules[0].When = []string{"in.mid"}
		}, fuzzy.ErrUnknownTerm},
		{"arity", func(d *model.Document) {
			d.Rules[1].When = []string{"in.hi", "in.lo"}
		}, rules.ErrArityMismatch},
		{"duplicate rule", func(d *model.Document) {
			d.Rules[1].When = []string{"in.lo"}
		}, rules.ErrDuplicateRule},
		{"no rules", func(d *model.Document) {
			d.Rules = nil
		}, rules.ErrEmptyRuleBase},
		{"defuzzifier", func(d *model.Document) {
			d.Defuzzifier = "median"
		}, rules.ErrOptionViolation},
		{"implication", func(d *model.Document) {
			d.Implication = "drastic"
		}, rules.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := doc()
			tc.mutate(d)
			_, err := model.Build(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := model.Build(nil)
	assert.Error(t, err)
}

func TestBuild_ResolutionOverrideFillsGaps(t *testing.T) {
	d := doc()
	d.Domains[0].Resolution = 0
	d.Domains[1].Resolution = 0
	m, err := model.Build(d, model.WithResolution(0.05))
	require.NoError(t, err)
	assert.Equal(t, 21, m.RuleBase().GridSize())
}

func TestBuild_DocumentOptions(t *testing.T) {
	d := doc()
	d.Defuzzifier = "mom"
	d.Implication = "scale"
	m, err := model.Build(d)
	require.NoError(t, err)
	assert.Equal(t, rules.MeanOfMaximum, m.RuleBase().Options().Defuzzifier)
	assert.Equal(t, rules.Scale, m.RuleBase().Options().Implication)

	// Caller options win over the document.
	m, err = model.Build(d, model.WithRuleOptions(rules.WithDefuzzifier(rules.Bisector)))
	require.NoError(t, err)
	assert.Equal(t, rules.Bisector, m.RuleBase().Options().Defuzzifier)
}

package model_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/model"
	"github.com/katalvlaran/lvfuzzy/rules"
)

// TestSpares_ReferenceQuery runs the embedded model on its reference query.
// Four rules fire: (VS,M,M)→RS and (VS,M,H)→M at 1/6, (S,M,M)→S at 0.5
// and (S,M,H)→M at 0.25.
func TestSpares_ReferenceQuery(t *testing.T) {
	m, err := model.Spares()
	require.NoError(t, err)

	res, err := m.Evaluate(model.SparesQuery)
	require.NoError(t, err)
	assert.InDelta(t, 0.27990, res.Value, 1e-4)
	assert.Equal(t, 1001, res.GridSize)

	require.Len(t, res.Firing, 27)
	fired := map[int]float64{}
	for i, w := range res.Firing {
		if w > 0 {
			fired[i] = w
		}
	}
	require.Len(t, fired, 4)
	assert.InDelta(t, 1.0/6.0, fired[12], 1e-12)
	assert.InDelta(t, 0.5, fired[13], 1e-12)
	assert.InDelta(t, 1.0/6.0, fired[21], 1e-12)
	assert.InDelta(t, 0.25, fired[22], 1e-12)

	strength := map[string]float64{}
	for _, a := range res.Activations {
		strength[a.Consequent.String()] = a.Strength
	}
	assert.InDelta(t, 0.5, strength["spares.S"], 1e-12)
	assert.InDelta(t, 0.25, strength["spares.M"], 1e-12)
	assert.InDelta(t, 1.0/6.0, strength["spares.RS"], 1e-12)
	assert.Zero(t, strength["spares.VL"])
}

func TestSpares_Structure(t *testing.T) {
	m, err := model.Spares()
	require.NoError(t, err)

	assert.Equal(t, "spares", m.Name())
	assert.Equal(t, []string{"delay", "servers", "util", "spares"}, m.DomainNames())
	assert.Equal(t, []string{"delay", "servers", "util"}, m.InputNames())
	assert.Equal(t, "spares", m.Output().Name())
	assert.Equal(t, "Mean delay m", m.Description("delay"))
	assert.Equal(t, 27, m.RuleBase().Len())
	assert.Len(t, m.RuleBase().Consequents(), 7)

	labels := m.RuleLabels()
	require.Len(t, labels, 27)
	assert.Equal(t, "IF delay.VS AND servers.S AND util.L THEN spares.VS", labels[0])
	assert.Equal(t, "IF delay.M AND servers.L AND util.H THEN spares.RS", labels[26])

	d, ok := m.Domain("spares")
	require.True(t, ok)
	assert.Equal(t, []string{"L", "M", "RL", "RS", "S", "VL", "VS"}, d.Terms())
	mu, err := d.MembershipOf("RS", 0.35)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mu)

	_, ok = m.Domain("nope")
	assert.False(t, ok)
}

func TestSpares_Overrides(t *testing.T) {
	coarse, err := model.Spares(model.WithResolution(0.01))
	require.NoError(t, err)
	res, err := coarse.Evaluate(model.SparesQuery)
	require.NoError(t, err)
	assert.Equal(t, 101, res.GridSize)
	assert.InDelta(t, 0.27716, res.Value, 1e-4)

	scaled, err := model.Spares(model.WithRuleOptions(rules.WithImplication(rules.Scale)))
	require.NoError(t, err)
	v, err := scaled.Infer(model.SparesQuery)
	require.NoError(t, err)
	assert.InDelta(t, 0.25550, v, 1e-4)
	assert.Equal(t, rules.Scale, scaled.RuleBase().Options().Implication)

	assert.Panics(t, func() { model.WithResolution(-1) })
}

// TestSpares_MislabelledOutput rejects a document whose declared output is
// not the domain its rules conclude on.
func TestSpares_MislabelledOutput(t *testing.T) {
	doc, err := model.SparesDocument()
	require.NoError(t, err)
	doc.Output = "delay"

	m, err := model.Build(doc)
	assert.Nil(t, m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNoOutput), "got %v", err)
	assert.Contains(t, err.Error(), `rules conclude on "spares"`)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestModel_QueryErrors(t *testing.T) {
	m, err := model.Spares()
	require.NoError(t, err)

	_, err = m.Infer(map[string]float64{"delay": 0.2, "servers": 0.2, "util": 0.2, "weather": 1})
	assert.True(t, errors.Is(err, model.ErrUnknownDomain))

	_, err = m.Infer(map[string]float64{"delay": 0.2, "servers": 0.2})
	assert.True(t, errors.Is(err, rules.ErrMissingInput))

	// The output domain is not an input; a value for it is ignored.
	v, err := m.Infer(map[string]float64{"delay": 0.25, "servers": 0.5, "util": 0.7, "spares": 0.9})
	require.NoError(t, err)
	want, err := m.Infer(model.SparesQuery)
	require.NoError(t, err)
	assert.Equal(t, want, v)
}

func TestModel_Concurrent(t *testing.T) {
	m, err := model.Spares(model.WithResolution(0.01))
	require.NoError(t, err)
	want, err := m.Infer(model.SparesQuery)
	require.NoError(t, err)

	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			v, err := m.Infer(model.SparesQuery)
			if err != nil {
				v = -1
			}
			done <- v
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}

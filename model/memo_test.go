package model_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/model"
	"github.com/katalvlaran/lvfuzzy/rules"
)

func TestMemo(t *testing.T) {
	m, err := model.Spares(model.WithResolution(0.01))
	require.NoError(t, err)
	memo, err := model.NewMemo(m, 2)
	require.NoError(t, err)
	assert.Same(t, m, memo.Model())

	want, err := m.Infer(model.SparesQuery)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := memo.Infer(model.SparesQuery)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, memo.Len())

	// A value for the output domain does not change the answer but is a
	// legal extra key; it shares the cache entry.
	_, err = memo.Infer(map[string]float64{"delay": 0.25, "servers": 0.5, "util": 0.7, "spares": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, memo.Len())

	// Capacity is bounded.
	for _, u := range []float64{0.1, 0.2, 0.3} {
		_, err = memo.Infer(map[string]float64{"delay": 0.25, "servers": 0.5, "util": u})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, memo.Len())
}

func TestMemo_ErrorsAreNotCached(t *testing.T) {
	m, err := model.Spares(model.WithResolution(0.01))
	require.NoError(t, err)
	memo, err := model.NewMemo(m, 8)
	require.NoError(t, err)

	_, err = memo.Infer(map[string]float64{"delay": 0.25})
	assert.True(t, errors.Is(err, rules.ErrMissingInput))
	_, err = memo.Infer(map[string]float64{"delay": 0.25, "servers": 0.5, "util": 0.7, "rain": 1})
	assert.True(t, errors.Is(err, model.ErrUnknownDomain))
	assert.Zero(t, memo.Len())

	_, err = model.NewMemo(m, 0)
	assert.Error(t, err)
}

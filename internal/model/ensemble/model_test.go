package ensemble_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/creditrisk/internal/model/ensemble"
	"github.com/trknhr/creditrisk/internal/model/entity"
)

type fixedModel struct {
	proba []float64
	label int
	width int
}

func (m *fixedModel) PredictProba(x []float64) ([]float64, error) { return m.proba, nil }
func (m *fixedModel) Predict(x []float64) (int, error)            { return m.label, nil }
func (m *fixedModel) NumFeatures() int                            { return m.width }

func TestVoting_SoftWeightedAverage(t *testing.T) {
	a := &fixedModel{proba: []float64{0.8, 0.2}, label: 0}
	b := &fixedModel{proba: []float64{0.2, 0.8}, label: 1}

	v, err := ensemble.NewVoting(ensemble.Soft, []float64{1, 3}, a, b)
	require.NoError(t, err)

	p, err := v.PredictProba([]float64{0})
	require.NoError(t, err)
	// (0.2*1 + 0.8*3) / 4
	assert.InDelta(t, 0.65, p[1], 1e-12)

	label, err := v.Predict([]float64{0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestVoting_SoftUnweighted(t *testing.T) {
	v, err := ensemble.NewVoting(ensemble.Soft, nil,
		&fixedModel{proba: []float64{0.6, 0.4}},
		&fixedModel{proba: []float64{0.4, 0.6}},
		&fixedModel{proba: []float64{0.1, 0.9}},
	)
	require.NoError(t, err)

	p, err := v.PredictProba(nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.9/3, p[1], 1e-12)
}

func TestVoting_HardHasNoProbabilities(t *testing.T) {
	v, err := ensemble.NewVoting(ensemble.Hard, nil,
		&fixedModel{label: 1}, &fixedModel{label: 1}, &fixedModel{label: 0},
	)
	require.NoError(t, err)

	_, err = v.PredictProba(nil)
	assert.True(t, errors.Is(err, entity.ErrNoProbability))

	label, err := v.Predict(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestNewVoting_Rejects(t *testing.T) {
	_, err := ensemble.NewVoting(ensemble.Soft, nil)
	assert.Error(t, err)

	_, err = ensemble.NewVoting("majority", nil, &fixedModel{})
	assert.Error(t, err)

	_, err = ensemble.NewVoting(ensemble.Soft, []float64{1, 2}, &fixedModel{})
	assert.Error(t, err)
}

func TestNewVoting_WidthFromMembers(t *testing.T) {
	v, err := ensemble.NewVoting(ensemble.Soft, nil, &fixedModel{}, &fixedModel{width: 4}, &fixedModel{width: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, v.NumFeatures())

	_, err = ensemble.NewVoting(ensemble.Soft, nil, &fixedModel{width: 4}, &fixedModel{}, &fixedModel{width: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estimator 2")
}

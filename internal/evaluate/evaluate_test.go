package evaluate_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/creditrisk/internal/dataset"
	"github.com/trknhr/creditrisk/internal/evaluate"
	"github.com/trknhr/creditrisk/internal/inference"
	"github.com/trknhr/creditrisk/internal/model/entity"
)

// thresholdScorer treats x[0] as the probability of Bad.
type thresholdScorer struct {
	hard  bool
	calls atomic.Int32
}

func (s *thresholdScorer) ScoreVector(x []float64) (inference.Result, error) {
	s.calls.Add(1)
	if s.hard {
		return inference.Result{}, entity.ErrNoProbability
	}
	label := entity.LabelGood
	if x[0] > 0.5 {
		label = entity.LabelBad
	}
	return inference.Result{Label: label, Probability: x[0], Features: x}, nil
}

func (s *thresholdScorer) PredictLabel(x []float64) (int, error) {
	if x[0] > 0.5 {
		return entity.LabelBad, nil
	}
	return entity.LabelGood, nil
}

func cases(pairs ...float64) []evaluate.Case {
	out := make([]evaluate.Case, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, evaluate.Case{X: []float64{pairs[i]}, Label: int(pairs[i+1])})
	}
	return out
}

func TestRun_Metrics(t *testing.T) {
	// p, label
	cs := cases(
		0.9, 1, // TP
		0.8, 0, // FP
		0.7, 1, // TP
		0.4, 1, // FN
		0.2, 0, // TN
		0.1, 0, // TN
	)
	s := &thresholdScorer{}
	r, err := evaluate.Run(context.Background(), s, cs, 3)
	require.NoError(t, err)

	assert.Equal(t, int32(6), s.calls.Load())
	assert.Equal(t, 6, r.Total)
	assert.Equal(t, 2, r.TP)
	assert.Equal(t, 1, r.FP)
	assert.Equal(t, 2, r.TN)
	assert.Equal(t, 1, r.FN)
	assert.InDelta(t, 4.0/6, r.Accuracy, 1e-12)
	assert.InDelta(t, 2.0/3, r.Precision, 1e-12)
	assert.InDelta(t, 2.0/3, r.Recall, 1e-12)
	assert.InDelta(t, 2.0/3, r.F1, 1e-12)

	// positives at 0.9,0.7,0.4 vs negatives 0.8,0.2,0.1: 7 of 9 pairs ordered
	require.True(t, r.HasAUC)
	assert.InDelta(t, 7.0/9, r.AUC, 1e-12)
}

func TestRun_TiesShareRank(t *testing.T) {
	r, err := evaluate.Run(context.Background(), &thresholdScorer{}, cases(0.5, 1, 0.5, 0), 1)
	require.NoError(t, err)
	require.True(t, r.HasAUC)
	assert.InDelta(t, 0.5, r.AUC, 1e-12)
}

func TestRun_HardVotingHasNoAUC(t *testing.T) {
	r, err := evaluate.Run(context.Background(), &thresholdScorer{hard: true}, cases(0.9, 1, 0.1, 0), 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Accuracy)
	assert.False(t, r.HasAUC)
}

type failingScorer struct{ thresholdScorer }

func (f *failingScorer) ScoreVector(x []float64) (inference.Result, error) {
	return inference.Result{}, errors.New("shape mismatch")
}

func TestRun_PropagatesError(t *testing.T) {
	_, err := evaluate.Run(context.Background(), &failingScorer{}, cases(0.9, 1), 2)
	assert.ErrorContains(t, err, "shape mismatch")
}

func TestCases(t *testing.T) {
	f, err := dataset.Decode(strings.NewReader("Age,Duration,Risk\n30,12,good\n45,24,bad\n"))
	require.NoError(t, err)

	cs, err := evaluate.Cases(f, []string{"Duration", "Age"}, "Risk")
	require.NoError(t, err)
	assert.Equal(t, []evaluate.Case{
		{X: []float64{12, 30}, Label: 0},
		{X: []float64{24, 45}, Label: 1},
	}, cs)

	_, err = evaluate.Cases(f, []string{"Job"}, "Risk")
	assert.Error(t, err)
}

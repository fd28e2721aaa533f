package ensemble

import (
	"errors"
	"fmt"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

const (
	Soft = "soft"
	Hard = "hard"
)

// Voting combines fitted sub-estimators. Soft voting averages their class
// probabilities with the configured weights; hard voting takes a weighted
// majority of their labels and has no probabilities.
type Voting struct {
	Models  []entity.Classifier
	Weights []float64
	Mode    string
	nFeat   int
}

func NewVoting(mode string, weights []float64, models ...entity.Classifier) (*Voting, error) {
	if mode == "" {
		mode = Hard
	}
	if mode != Soft && mode != Hard {
		return nil, fmt.Errorf("voting: unknown mode %q", mode)
	}
	if len(models) == 0 {
		return nil, errors.New("voting: no estimators")
	}
	if weights != nil && len(weights) != len(models) {
		return nil, fmt.Errorf("voting: %d weights for %d estimators", len(weights), len(models))
	}
	v := &Voting{Models: models, Weights: weights, Mode: mode}
	for i, m := range models {
		n := m.NumFeatures()
		if n <= 0 {
			continue
		}
		if v.nFeat > 0 && n != v.nFeat {
			return nil, fmt.Errorf("voting: estimator %d expects %d features, others %d", i, n, v.nFeat)
		}
		v.nFeat = n
	}
	return v, nil
}

func (v *Voting) Estimators() []entity.Classifier { return v.Models }

func (v *Voting) NumFeatures() int { return v.nFeat }

func (v *Voting) weight(i int) float64 {
	if v.Weights == nil {
		return 1
	}
	return v.Weights[i]
}

func (v *Voting) PredictProba(x []float64) ([]float64, error) {
	if v.Mode != Soft {
		return nil, fmt.Errorf("voting=%q: %w", v.Mode, entity.ErrNoProbability)
	}
	if err := entity.CheckShape(v.nFeat, x); err != nil {
		return nil, err
	}

	var (
		sum   []float64
		total float64
		errs  error
	)
	for i, m := range v.Models {
		p, err := m.PredictProba(x)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if sum == nil {
			sum = make([]float64, len(p))
		}
		if len(p) != len(sum) {
			errs = errors.Join(errs, fmt.Errorf("voting: estimator %d returned %d classes, want %d", i, len(p), len(sum)))
			continue
		}
		w := v.weight(i)
		for c := range p {
			sum[c] += w * p[c]
		}
		total += w
	}
	if errs != nil {
		return nil, errs
	}
	if total == 0 {
		return nil, errors.New("voting: weights sum to zero")
	}
	for c := range sum {
		sum[c] /= total
	}
	return sum, nil
}

func (v *Voting) Predict(x []float64) (int, error) {
	if v.Mode == Soft {
		p, err := v.PredictProba(x)
		if err != nil {
			return 0, err
		}
		return entity.Argmax(p), nil
	}

	if err := entity.CheckShape(v.nFeat, x); err != nil {
		return 0, err
	}
	votes := make([]float64, 2)
	for i, m := range v.Models {
		label, err := m.Predict(x)
		if err != nil {
			return 0, err
		}
		for label >= len(votes) {
			votes = append(votes, 0)
		}
		votes[label] += v.weight(i)
	}
	return entity.Argmax(votes), nil
}

package linear

import (
	"errors"
	"math"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

// LogisticRegression is a fitted binary logistic model.
type LogisticRegression struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (m *LogisticRegression) Validate() error {
	if len(m.Coef) == 0 {
		return errors.New("logistic_regression: empty coef")
	}
	return nil
}

func (m *LogisticRegression) NumFeatures() int { return len(m.Coef) }

func (m *LogisticRegression) decision(x []float64) (float64, error) {
	if err := entity.CheckShape(len(m.Coef), x); err != nil {
		return 0, err
	}
	z := m.Intercept
	for i, c := range m.Coef {
		z += c * x[i]
	}
	return z, nil
}

func (m *LogisticRegression) PredictProba(x []float64) ([]float64, error) {
	z, err := m.decision(x)
	if err != nil {
		return nil, err
	}
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

func (m *LogisticRegression) Predict(x []float64) (int, error) {
	z, err := m.decision(x)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return entity.LabelBad, nil
	}
	return entity.LabelGood, nil
}

package entity

import (
	"errors"
	"fmt"
)

const (
	LabelGood = 0
	LabelBad  = 1
)

var (
	ErrNoProbability = errors.New("estimator does not provide class probabilities")
	ErrShapeMismatch = errors.New("feature count mismatch")
)

// Classifier is a fitted binary classifier. PredictProba returns one
// probability per class, indexed by label.
type Classifier interface {
	PredictProba(x []float64) ([]float64, error)
	Predict(x []float64) (int, error)
	// NumFeatures is the width the estimator was fit on, or 0 if unknown.
	NumFeatures() int
}

type Transformer interface {
	Transform(x []float64) ([]float64, error)
	NumFeatures() int
}

// Importancer is implemented by estimators that expose a per-feature
// importance array directly.
type Importancer interface {
	FeatureImportances() []float64
}

// Ensemble is implemented by meta-estimators built from sub-models.
type Ensemble interface {
	Estimators() []Classifier
}

// CheckShape mirrors the guard the fitted estimator itself enforces.
func CheckShape(want int, x []float64) error {
	if want > 0 && len(x) != want {
		return fmt.Errorf("%w: got %d features, estimator expects %d", ErrShapeMismatch, len(x), want)
	}
	return nil
}

// Argmax returns the first index of the largest value.
func Argmax(p []float64) int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i] > p[best] {
			best = i
		}
	}
	return best
}

// Package inference scores applicants against the loaded scaler and
// classifier. Everything it holds is read-only after Load.
package inference

import (
	"fmt"

	"github.com/trknhr/creditrisk/internal/applicant"
	"github.com/trknhr/creditrisk/internal/features"
	"github.com/trknhr/creditrisk/internal/logger"
	"github.com/trknhr/creditrisk/internal/model"
	"github.com/trknhr/creditrisk/internal/model/entity"
)

type Artifacts struct {
	ModelPath    string
	ScalerPath   string
	FeaturesPath string
}

// Runtime is the startup context shared by the form, the predict command
// and the evaluator.
type Runtime struct {
	columns    []string
	scaler     entity.Transformer
	classifier entity.Classifier
}

type Result struct {
	Label       int
	Probability float64
	Features    []float64
}

func (r Result) Bad() bool { return r.Label == entity.LabelBad }

func (r Result) Verdict() string {
	if r.Bad() {
		return "Bad Credit Risk"
	}
	return "Good Credit Risk"
}

// Load reads the three artifacts. Any failure here means no session can
// proceed, so callers treat it as fatal.
func Load(a Artifacts) (*Runtime, error) {
	columns, err := model.LoadColumns(a.FeaturesPath)
	if err != nil {
		return nil, err
	}
	sc, err := model.LoadScaler(a.ScalerPath)
	if err != nil {
		return nil, err
	}
	clf, err := model.LoadClassifier(a.ModelPath)
	if err != nil {
		return nil, err
	}
	if names := sc.Names(); len(names) > 0 {
		if err := sameColumns(names, columns); err != nil {
			return nil, fmt.Errorf("scaler was fit on a different column set: %w", err)
		}
	}
	logger.Debug("loaded model %T with %d columns", clf, len(columns))
	return New(columns, sc, clf)
}

func New(columns []string, sc entity.Transformer, clf entity.Classifier) (*Runtime, error) {
	if err := entity.CheckShape(sc.NumFeatures(), make([]float64, len(columns))); err != nil {
		return nil, fmt.Errorf("scaler: %w", err)
	}
	if err := entity.CheckShape(clf.NumFeatures(), make([]float64, len(columns))); err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Runtime{columns: cols, scaler: sc, classifier: clf}, nil
}

func (r *Runtime) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

func (r *Runtime) Classifier() entity.Classifier { return r.classifier }

// Score encodes the applicant against the model's columns and classifies it.
func (r *Runtime) Score(in applicant.Input) (Result, error) {
	return r.ScoreVector(features.EncodeFor(in, r.columns))
}

// ScoreVector scales an already aligned vector and classifies it.
func (r *Runtime) ScoreVector(x []float64) (Result, error) {
	scaled, err := r.scaler.Transform(x)
	if err != nil {
		return Result{}, err
	}
	label, err := r.classifier.Predict(scaled)
	if err != nil {
		return Result{}, err
	}
	proba, err := r.classifier.PredictProba(scaled)
	if err != nil {
		return Result{}, err
	}
	if len(proba) <= entity.LabelBad {
		return Result{}, fmt.Errorf("classifier returned %d class probabilities", len(proba))
	}
	return Result{Label: label, Probability: proba[entity.LabelBad], Features: x}, nil
}

// PredictLabel skips the probability call; hard-voting models only support this.
func (r *Runtime) PredictLabel(x []float64) (int, error) {
	scaled, err := r.scaler.Transform(x)
	if err != nil {
		return 0, err
	}
	return r.classifier.Predict(scaled)
}

func sameColumns(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%d columns vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("column %d is %q, feature names say %q", i, got[i], want[i])
		}
	}
	return nil
}

// Package evaluate scores a labelled hold-out set and summarises how well
// the classifier separates good from bad risks.
package evaluate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/trknhr/creditrisk/internal/dataset"
	"github.com/trknhr/creditrisk/internal/inference"
	"github.com/trknhr/creditrisk/internal/model/entity"
)

// Case is one aligned feature row with its true label.
type Case struct {
	X     []float64
	Label int
}

type Prediction struct {
	Label       int
	Probability float64
	HasProba    bool
}

// Scorer is satisfied by *inference.Runtime.
type Scorer interface {
	ScoreVector(x []float64) (inference.Result, error)
	PredictLabel(x []float64) (int, error)
}

// Cases pulls the model columns and the target out of a preprocessed frame.
func Cases(f *dataset.Frame, columns []string, target string) ([]Case, error) {
	x, y, err := f.Drop(target)
	if err != nil {
		return nil, err
	}
	m, err := x.Matrix(columns)
	if err != nil {
		return nil, err
	}
	labels, err := dataset.Labels(y)
	if err != nil {
		return nil, err
	}
	cases := make([]Case, len(m))
	for i := range m {
		cases[i] = Case{X: m[i], Label: labels[i]}
	}
	return cases, nil
}

// Predict scores every case with at most workers goroutines. Models without
// probabilities fall back to labels only.
func Predict(ctx context.Context, s Scorer, cases []Case, workers int) ([]Prediction, error) {
	if workers < 1 {
		workers = 1
	}
	preds := make([]Prediction, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := s.ScoreVector(c.X)
			if errors.Is(err, entity.ErrNoProbability) {
				label, err := s.PredictLabel(c.X)
				if err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
				preds[i] = Prediction{Label: label}
				return nil
			}
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			preds[i] = Prediction{Label: res.Label, Probability: res.Probability, HasProba: true}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return preds, nil
}

func Run(ctx context.Context, s Scorer, cases []Case, workers int) (Report, error) {
	preds, err := Predict(ctx, s, cases, workers)
	if err != nil {
		return Report{}, err
	}
	return Summarize(cases, preds)
}

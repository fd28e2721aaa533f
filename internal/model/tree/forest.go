package tree

import (
	"fmt"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

// RandomForest averages the class probabilities of its trees.
type RandomForest struct {
	Trees     []*DecisionTree `json:"estimators"`
	NFeatures int             `json:"n_features_in"`
}

func (f *RandomForest) Validate() error {
	if len(f.Trees) == 0 {
		return fmt.Errorf("random_forest: no trees")
	}
	if f.NFeatures < 0 {
		return fmt.Errorf("random_forest: n_features_in %d", f.NFeatures)
	}
	if f.NFeatures == 0 {
		f.NFeatures = f.widest()
	}
	for i, t := range f.Trees {
		if t.NFeatures == 0 {
			t.NFeatures = f.NFeatures
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("random_forest: tree %d: %w", i, err)
		}
	}
	// No width anywhere in the artifact: every tree takes the widest split.
	if f.NFeatures == 0 {
		f.NFeatures = f.widest()
		for _, t := range f.Trees {
			t.NFeatures = f.NFeatures
		}
	}
	for i, t := range f.Trees {
		if t.NFeatures != f.NFeatures {
			return fmt.Errorf("random_forest: tree %d expects %d features, forest has %d", i, t.NFeatures, f.NFeatures)
		}
	}
	return nil
}

func (f *RandomForest) widest() int {
	n := 0
	for _, t := range f.Trees {
		n = max(n, t.NFeatures)
	}
	return n
}

func (f *RandomForest) NumFeatures() int { return f.NFeatures }

func (f *RandomForest) PredictProba(x []float64) ([]float64, error) {
	if err := entity.CheckShape(f.NFeatures, x); err != nil {
		return nil, err
	}
	var sum []float64
	for _, t := range f.Trees {
		p, err := t.PredictProba(x)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = make([]float64, len(p))
		}
		for i := range p {
			sum[i] += p[i]
		}
	}
	for i := range sum {
		sum[i] /= float64(len(f.Trees))
	}
	return sum, nil
}

func (f *RandomForest) Predict(x []float64) (int, error) {
	p, err := f.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return entity.Argmax(p), nil
}

// FeatureImportances averages over trees that actually split; single-node
// trees contribute nothing.
func (f *RandomForest) FeatureImportances() []float64 {
	out := make([]float64, f.NFeatures)
	var n int
	for _, t := range f.Trees {
		if t.NodeCount() <= 1 {
			continue
		}
		imp := t.FeatureImportances()
		if len(imp) != len(out) {
			continue
		}
		for i := range imp {
			out[i] += imp[i]
		}
		n++
	}
	if n == 0 {
		return out
	}
	for i := range out {
		out[i] /= float64(n)
	}
	return normalize(out)
}

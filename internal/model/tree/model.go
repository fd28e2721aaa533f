package tree

import (
	"fmt"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

const leaf = -1

// DecisionTree holds the node arrays of a fitted CART classifier, one entry
// per node. Value holds per-class weights (counts or fractions) at each node.
type DecisionTree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
	Impurity      []float64   `json:"impurity,omitempty"`
	NodeWeights   []float64   `json:"weighted_n_node_samples,omitempty"`
	Importances   []float64   `json:"feature_importances,omitempty"`
	NFeatures     int         `json:"n_features_in"`
}

func (t *DecisionTree) Validate() error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("decision_tree: no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("decision_tree: node arrays differ in length")
	}
	if t.NFeatures < 0 {
		return fmt.Errorf("decision_tree: n_features_in %d", t.NFeatures)
	}
	width := 0
	for i := 0; i < n; i++ {
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if l == leaf {
			continue
		}
		if l <= i || r <= i || l >= n || r >= n {
			return fmt.Errorf("decision_tree: node %d has invalid children (%d,%d)", i, l, r)
		}
		f := t.Feature[i]
		if f < 0 || (t.NFeatures > 0 && f >= t.NFeatures) {
			return fmt.Errorf("decision_tree: node %d splits on feature %d", i, f)
		}
		width = max(width, f+1)
	}
	// Without n_features_in the width is the smallest one every split and
	// the stored importances fit in.
	if t.NFeatures == 0 {
		t.NFeatures = max(width, len(t.Importances))
	}
	if len(t.Importances) > 0 && len(t.Importances) != t.NFeatures {
		return fmt.Errorf("decision_tree: %d importances for %d features", len(t.Importances), t.NFeatures)
	}
	return nil
}

func (t *DecisionTree) NumFeatures() int { return t.NFeatures }

func (t *DecisionTree) NodeCount() int { return len(t.ChildrenLeft) }

func (t *DecisionTree) apply(x []float64) int {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		// thresholds were fit on float32 inputs
		if float64(float32(x[t.Feature[node]])) <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return node
}

func (t *DecisionTree) PredictProba(x []float64) ([]float64, error) {
	if err := entity.CheckShape(t.NFeatures, x); err != nil {
		return nil, err
	}
	v := t.Value[t.apply(x)]
	out := make([]float64, len(v))
	var total float64
	for _, w := range v {
		total += w
	}
	for i, w := range v {
		if total > 0 {
			out[i] = w / total
		}
	}
	return out, nil
}

func (t *DecisionTree) Predict(x []float64) (int, error) {
	p, err := t.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return entity.Argmax(p), nil
}

// FeatureImportances returns the stored array when the artifact carries one,
// otherwise the normalised total impurity decrease per feature.
func (t *DecisionTree) FeatureImportances() []float64 {
	if len(t.Importances) > 0 {
		out := make([]float64, len(t.Importances))
		copy(out, t.Importances)
		return out
	}
	return t.impurityImportances()
}

func (t *DecisionTree) impurityImportances() []float64 {
	out := make([]float64, t.NFeatures)
	if len(t.Impurity) != t.NodeCount() || len(t.NodeWeights) != t.NodeCount() {
		return out
	}
	w, imp := t.NodeWeights, t.Impurity
	for node := range t.ChildrenLeft {
		l, r := t.ChildrenLeft[node], t.ChildrenRight[node]
		if l == leaf {
			continue
		}
		out[t.Feature[node]] += w[node]*imp[node] - w[l]*imp[l] - w[r]*imp[r]
	}
	return normalize(out)
}

func normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	if sum > 0 {
		for i := range v {
			v[i] /= sum
		}
	}
	return v
}

package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/creditrisk/internal/model/entity"
	"github.com/trknhr/creditrisk/internal/model/tree"
)

// stump splits on feature `on` at 0.5.
func stump(on int, left, right []float64) *tree.DecisionTree {
	return &tree.DecisionTree{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{on, -2, -2},
		Threshold:     []float64{0.5, -2, -2},
		Value:         [][]float64{{4, 4}, left, right},
		Impurity:      []float64{0.5, 0.375, 0.375},
		NodeWeights:   []float64{8, 4, 4},
		NFeatures:     3,
	}
}

func TestDecisionTree_PredictProba(t *testing.T) {
	dt := stump(1, []float64{3, 1}, []float64{1, 3})
	require.NoError(t, dt.Validate())

	p, err := dt.PredictProba([]float64{9, 0.2, 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.75, 0.25}, p)

	label, err := dt.Predict([]float64{0, 0.7, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestDecisionTree_ImportancesFromImpurity(t *testing.T) {
	dt := stump(1, []float64{3, 1}, []float64{1, 3})
	assert.Equal(t, []float64{0, 1, 0}, dt.FeatureImportances())
}

func TestDecisionTree_StoredImportancesWin(t *testing.T) {
	dt := stump(1, []float64{3, 1}, []float64{1, 3})
	dt.Importances = []float64{0.2, 0.3, 0.5}
	assert.Equal(t, []float64{0.2, 0.3, 0.5}, dt.FeatureImportances())
}

func TestDecisionTree_ValidateRejectsBadChildren(t *testing.T) {
	dt := stump(1, []float64{3, 1}, []float64{1, 3})
	dt.ChildrenRight[0] = 7
	assert.Error(t, dt.Validate())
}

func TestRandomForest_AveragesTrees(t *testing.T) {
	f := &tree.RandomForest{
		Trees: []*tree.DecisionTree{
			stump(0, []float64{4, 0}, []float64{0, 4}),
			stump(2, []float64{2, 2}, []float64{0, 4}),
		},
		NFeatures: 3,
	}
	require.NoError(t, f.Validate())

	p, err := f.PredictProba([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, p[1], 1e-12)

	imp := f.FeatureImportances()
	assert.InDelta(t, 0.5, imp[0], 1e-12)
	assert.InDelta(t, 0.0, imp[1], 1e-12)
	assert.InDelta(t, 0.5, imp[2], 1e-12)
}

func TestDecisionTree_WidthInferredWhenMissing(t *testing.T) {
	dt := stump(2, []float64{3, 1}, []float64{1, 3})
	dt.NFeatures = 0
	require.NoError(t, dt.Validate())
	assert.Equal(t, 3, dt.NumFeatures())

	assert.Equal(t, []float64{0, 0, 1}, dt.FeatureImportances())

	_, err := dt.PredictProba([]float64{1})
	assert.True(t, errors.Is(err, entity.ErrShapeMismatch))
}

func TestDecisionTree_ValidateRejectsBadFeature(t *testing.T) {
	dt := stump(-1, []float64{3, 1}, []float64{1, 3})
	dt.NFeatures = 0
	assert.Error(t, dt.Validate())

	dt = stump(3, []float64{3, 1}, []float64{1, 3})
	assert.Error(t, dt.Validate())

	dt = stump(1, []float64{3, 1}, []float64{1, 3})
	dt.Importances = []float64{0.5, 0.5}
	assert.Error(t, dt.Validate())
}

func TestDecisionTree_ComparesAsFloat32(t *testing.T) {
	th := float64(float32(0.1))
	dt := stump(0, []float64{4, 0}, []float64{0, 4})
	dt.Threshold[0] = th

	// rounds onto the threshold in float32, so it goes left
	label, err := dt.Predict([]float64{th + 1e-12, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestRandomForest_WidthFromTrees(t *testing.T) {
	a := stump(0, []float64{4, 0}, []float64{0, 4})
	b := stump(4, []float64{2, 2}, []float64{0, 4})
	a.NFeatures, b.NFeatures = 0, 0
	f := &tree.RandomForest{Trees: []*tree.DecisionTree{a, b}}
	require.NoError(t, f.Validate())
	assert.Equal(t, 5, f.NumFeatures())
	assert.Equal(t, 5, a.NumFeatures())
	assert.Len(t, f.FeatureImportances(), 5)

	_, err := f.PredictProba([]float64{1})
	assert.True(t, errors.Is(err, entity.ErrShapeMismatch))
}

func TestRandomForest_RejectsTreeWidthMismatch(t *testing.T) {
	f := &tree.RandomForest{
		Trees:     []*tree.DecisionTree{stump(0, []float64{4, 0}, []float64{0, 4})},
		NFeatures: 4,
	}
	assert.Error(t, f.Validate())
}

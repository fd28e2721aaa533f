package importance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

var (
	ErrNoImportances  = errors.New("model exposes no feature importances")
	ErrLengthMismatch = errors.New("importance count does not match feature names")
)

type Entry struct {
	Feature    string
	Importance float64
}

// Table is sorted by descending importance.
type Table []Entry

// Top returns the first n entries, or all of them when n <= 0.
func (t Table) Top(n int) Table {
	if n <= 0 || n >= len(t) {
		return t
	}
	return t[:n]
}

// Scores returns the raw per-feature array: the model's own importances, or
// the elementwise mean over ensemble members that expose them.
func Scores(clf entity.Classifier) ([]float64, error) {
	if imp, ok := clf.(entity.Importancer); ok {
		return imp.FeatureImportances(), nil
	}

	ens, ok := clf.(entity.Ensemble)
	if !ok {
		return nil, fmt.Errorf("%T: %w", clf, ErrNoImportances)
	}

	var (
		sum []float64
		n   int
	)
	for i, est := range ens.Estimators() {
		imp, ok := est.(entity.Importancer)
		if !ok {
			continue
		}
		arr := imp.FeatureImportances()
		if sum == nil {
			sum = make([]float64, len(arr))
		}
		if len(arr) != len(sum) {
			return nil, fmt.Errorf("estimator %d has %d importances, want %d: %w", i, len(arr), len(sum), ErrLengthMismatch)
		}
		for j := range arr {
			sum[j] += arr[j]
		}
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("no ensemble member exposes them: %w", ErrNoImportances)
	}
	for j := range sum {
		sum[j] /= float64(n)
	}
	return sum, nil
}

// Extract labels the importances with the model's columns and sorts them.
func Extract(clf entity.Classifier, columns []string) (Table, error) {
	scores, err := Scores(clf)
	if err != nil {
		return nil, err
	}
	return NewTable(columns, scores)
}

func NewTable(columns []string, scores []float64) (Table, error) {
	if len(columns) != len(scores) {
		return nil, fmt.Errorf("%d scores for %d columns: %w", len(scores), len(columns), ErrLengthMismatch)
	}
	t := make(Table, len(columns))
	for i := range columns {
		t[i] = Entry{Feature: columns[i], Importance: scores[i]}
	}
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Importance > t[j].Importance
	})
	return t, nil
}

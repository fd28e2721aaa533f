package model

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/trknhr/creditrisk/internal/model/ensemble"
	"github.com/trknhr/creditrisk/internal/model/entity"
	"github.com/trknhr/creditrisk/internal/model/linear"
	"github.com/trknhr/creditrisk/internal/model/scaler"
	"github.com/trknhr/creditrisk/internal/model/tree"
)

const (
	KindLogistic     = "logistic_regression"
	KindDecisionTree = "decision_tree"
	KindRandomForest = "random_forest"
	KindVoting       = "voting"
	KindStandard     = "standard_scaler"
	KindMinMax       = "minmax_scaler"
)

var ErrUnknownKind = errors.New("unknown artifact kind")

type envelope struct {
	Kind string `json:"kind"`
}

type votingArtifact struct {
	Voting     string            `json:"voting"`
	Weights    []float64         `json:"weights,omitempty"`
	Estimators []json.RawMessage `json:"estimators"`
}

type validator interface {
	Validate() error
}

// Scaler is a fitted transformer that may remember the column names it was fit on.
type Scaler interface {
	entity.Transformer
	Names() []string
}

func LoadClassifier(path string) (entity.Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	clf, err := DecodeClassifier(data)
	if err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}
	return clf, nil
}

func DecodeClassifier(data []byte) (entity.Classifier, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	var clf entity.Classifier
	switch env.Kind {
	case KindLogistic:
		clf = &linear.LogisticRegression{}
	case KindDecisionTree:
		clf = &tree.DecisionTree{}
	case KindRandomForest:
		clf = &tree.RandomForest{}
	case KindVoting:
		return decodeVoting(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Kind)
	}

	if err := json.Unmarshal(data, clf); err != nil {
		return nil, fmt.Errorf("%s: %w", env.Kind, err)
	}
	if err := clf.(validator).Validate(); err != nil {
		return nil, err
	}
	return clf, nil
}

func decodeVoting(data []byte) (entity.Classifier, error) {
	var art votingArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("voting: %w", err)
	}

	models := make([]entity.Classifier, 0, len(art.Estimators))
	for i, raw := range art.Estimators {
		m, err := DecodeClassifier(raw)
		if err != nil {
			return nil, fmt.Errorf("voting: estimator %d: %w", i, err)
		}
		models = append(models, m)
	}
	v, err := ensemble.NewVoting(art.Voting, art.Weights, models...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func LoadScaler(path string) (Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scaler artifact: %w", err)
	}
	s, err := DecodeScaler(data)
	if err != nil {
		return nil, fmt.Errorf("scaler artifact %s: %w", path, err)
	}
	return s, nil
}

func DecodeScaler(data []byte) (Scaler, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	var s Scaler
	switch env.Kind {
	case KindStandard:
		s = &scaler.Standard{}
	case KindMinMax:
		s = &scaler.MinMax{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Kind)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%s: %w", env.Kind, err)
	}
	if err := s.(validator).Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadColumns reads the ordered feature names the model was fit on, either
// as a JSON array or as plain text with one name per line.
func LoadColumns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature names: %w", err)
	}

	var cols []string
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &cols); err != nil {
			return nil, fmt.Errorf("feature names %s: %w", path, err)
		}
	} else {
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			cols = append(cols, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("feature names %s: empty", path)
	}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c] {
			return nil, fmt.Errorf("feature names %s: duplicate column %q", path, c)
		}
		seen[c] = true
	}
	return cols, nil
}

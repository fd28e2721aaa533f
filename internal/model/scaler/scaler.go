package scaler

import (
	"fmt"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

// Standard centres and scales each feature: (x - mean) / scale.
type Standard struct {
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
	WithMean     *bool     `json:"with_mean,omitempty"`
	WithStd      *bool     `json:"with_std,omitempty"`
	FeatureNames []string  `json:"feature_names_in,omitempty"`
}

func (s *Standard) Validate() error {
	if s.withMean() && len(s.Mean) == 0 {
		return fmt.Errorf("standard_scaler: empty mean")
	}
	if s.withStd() && len(s.Scale) == 0 {
		return fmt.Errorf("standard_scaler: empty scale")
	}
	if s.withMean() && s.withStd() && len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("standard_scaler: mean has %d entries, scale %d", len(s.Mean), len(s.Scale))
	}
	if len(s.FeatureNames) > 0 && len(s.FeatureNames) != s.NumFeatures() {
		return fmt.Errorf("standard_scaler: %d feature names for %d features", len(s.FeatureNames), s.NumFeatures())
	}
	return nil
}

func (s *Standard) withMean() bool { return s.WithMean == nil || *s.WithMean }
func (s *Standard) withStd() bool  { return s.WithStd == nil || *s.WithStd }

func (s *Standard) NumFeatures() int {
	if len(s.Mean) > 0 {
		return len(s.Mean)
	}
	return len(s.Scale)
}

func (s *Standard) Names() []string { return s.FeatureNames }

func (s *Standard) Transform(x []float64) ([]float64, error) {
	if err := entity.CheckShape(s.NumFeatures(), x); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		if s.withMean() {
			v -= s.Mean[i]
		}
		if s.withStd() && s.Scale[i] != 0 {
			v /= s.Scale[i]
		}
		out[i] = v
	}
	return out, nil
}

// MinMax maps each feature linearly: x*scale + min.
type MinMax struct {
	Min          []float64 `json:"min"`
	Scale        []float64 `json:"scale"`
	FeatureNames []string  `json:"feature_names_in,omitempty"`
}

func (m *MinMax) Validate() error {
	if len(m.Min) == 0 || len(m.Min) != len(m.Scale) {
		return fmt.Errorf("minmax_scaler: min has %d entries, scale %d", len(m.Min), len(m.Scale))
	}
	return nil
}

func (m *MinMax) NumFeatures() int { return len(m.Min) }

func (m *MinMax) Names() []string { return m.FeatureNames }

func (m *MinMax) Transform(x []float64) ([]float64, error) {
	if err := entity.CheckShape(m.NumFeatures(), x); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v*m.Scale[i] + m.Min[i]
	}
	return out, nil
}

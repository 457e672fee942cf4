package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Model is a trained binary classifier. It returns its raw output vector;
// callers read the label at index 0.
type Model interface {
	Predict(ctx context.Context, features []float64) ([]int, error)
}

// ModelFunc adapts a function to Model.
type ModelFunc func(ctx context.Context, features []float64) ([]int, error)

func (f ModelFunc) Predict(ctx context.Context, features []float64) ([]int, error) {
	return f(ctx, features)
}

// LinearModel evaluates exported linear classifier coefficients:
// label 1 when w·((x-mean)/scale) + intercept >= threshold.
type LinearModel struct {
	Kind      string    `json:"kind"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
	Mean      []float64 `json:"mean,omitempty"`
	Scale     []float64 `json:"scale,omitempty"`
	Threshold float64   `json:"threshold"`
}

// Validate checks the coefficient shapes against an expected feature count.
func (m *LinearModel) Validate(features int) error {
	if len(m.Weights) != features {
		return fmt.Errorf("model has %d weights, want %d", len(m.Weights), features)
	}
	if m.Mean != nil && len(m.Mean) != features {
		return fmt.Errorf("model has %d means, want %d", len(m.Mean), features)
	}
	if m.Scale != nil && len(m.Scale) != features {
		return fmt.Errorf("model has %d scales, want %d", len(m.Scale), features)
	}
	for i, s := range m.Scale {
		if s == 0 {
			return fmt.Errorf("model scale %d is zero", i)
		}
	}
	return nil
}

func (m *LinearModel) Predict(_ context.Context, features []float64) ([]int, error) {
	if len(features) != len(m.Weights) {
		return nil, fmt.Errorf("got %d features, model expects %d", len(features), len(m.Weights))
	}
	score := m.Intercept
	for i, x := range features {
		if m.Mean != nil {
			x -= m.Mean[i]
		}
		if m.Scale != nil {
			x /= m.Scale[i]
		}
		score += m.Weights[i] * x
	}
	if math.IsNaN(score) {
		return nil, fmt.Errorf("model score is NaN")
	}
	if score >= m.Threshold {
		return []int{1}, nil
	}
	return []int{0}, nil
}

// LoadLinearModel reads a coefficient file and checks it against the kind's schema.
func LoadLinearModel(path string, k Kind) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	if m.Kind != "" && m.Kind != k.Slug() {
		return nil, fmt.Errorf("model %s is for %q, want %q", path, m.Kind, k.Slug())
	}
	if err := m.Validate(FeatureCount(k)); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return &m, nil
}

// LoadModelDir loads <dir>/<slug>.json for every kind.
func LoadModelDir(dir string) (map[Kind]Model, error) {
	models := make(map[Kind]Model, len(Kinds))
	for _, k := range Kinds {
		m, err := LoadLinearModel(filepath.Join(dir, k.Slug()+".json"), k)
		if err != nil {
			return nil, err
		}
		models[k] = m
	}
	return models, nil
}

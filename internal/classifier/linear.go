package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// linear is a weighted sum over optionally scaled inputs.
type linear struct {
	weights   []float64
	intercept float64
	scaler    *Scaler
}

func newLinear(art Artifact, dim int) (linear, error) {
	if len(art.Weights) != dim {
		return linear{}, fmt.Errorf("%w: %d weights, want %d", ErrDimension, len(art.Weights), dim)
	}
	if art.Scaler != nil {
		if err := art.Scaler.validate(dim); err != nil {
			return linear{}, err
		}
	}
	return linear{weights: art.Weights, intercept: art.Intercept, scaler: art.Scaler}, nil
}

func (l linear) decision(x []float64) (float64, error) {
	if len(x) != len(l.weights) {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrDimension, len(x), len(l.weights))
	}
	return floats.Dot(l.weights, l.scaler.transform(x)) + l.intercept, nil
}

// LogisticRegression is a binary logistic model.
type LogisticRegression struct {
	linear
	info Info
}

// PredictProba returns [P(legit), P(fraud)] for a single row.
func (m *LogisticRegression) PredictProba(x []float64) ([]float64, error) {
	t, err := m.decision(x)
	if err != nil {
		return nil, err
	}
	p := sigmoid(t)
	return []float64{1 - p, p}, nil
}

func (m *LogisticRegression) Describe() Info {
	return m.info
}

// LinearLabel is a linear decision function that only yields hard labels.
type LinearLabel struct {
	linear
	info Info
}

// Predict returns 1 when the decision function is non-negative, else 0.
func (m *LinearLabel) Predict(x []float64) (float64, error) {
	t, err := m.decision(x)
	if err != nil {
		return 0, err
	}
	if t >= 0 {
		return 1, nil
	}
	return 0, nil
}

func (m *LinearLabel) Describe() Info {
	return m.info
}

func sigmoid(t float64) float64 {
	if t >= 0 {
		return 1 / (1 + math.Exp(-t))
	}
	e := math.Exp(t)
	return e / (1 + e)
}

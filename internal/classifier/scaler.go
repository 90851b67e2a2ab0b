package classifier

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Scaler standardises inputs as (x - mean) / scale.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) validate(dim int) error {
	if len(s.Mean) != dim || len(s.Scale) != dim {
		return fmt.Errorf("%w: scaler has %d means and %d scales, want %d", ErrDimension, len(s.Mean), len(s.Scale), dim)
	}
	// constant columns are left unscaled
	for i, v := range s.Scale {
		if v == 0 {
			s.Scale[i] = 1
		}
	}
	return nil
}

// transform returns the scaled copy of x; x is not modified.
func (s *Scaler) transform(x []float64) []float64 {
	if s == nil {
		return x
	}
	z := make([]float64, len(x))
	floats.SubTo(z, x, s.Mean)
	floats.Div(z, s.Scale)
	return z
}

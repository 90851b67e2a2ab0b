package scoring

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	apperrors "fraudscore/internal/errors"
	"fraudscore/internal/models"
)

type predictFunc func(x []float64) (float64, error)

// Scorer applies the feature contract and decision rule on top of a loaded model.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	predict   predictFunc
	fidelity  models.Fidelity
	threshold float64
}

// NewScorer resolves the model's capability once and returns a Scorer bound to it.
func NewScorer(model interface{}, cfg Config) (*Scorer, error) {
	threshold := cfg.threshold()
	if math.IsNaN(threshold) || threshold <= 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}

	s := &Scorer{threshold: threshold}
	switch m := model.(type) {
	case ProbabilisticClassifier:
		s.predict = fraudProbability(m)
		s.fidelity = models.FidelityProbability
	case LabelClassifier:
		if cfg.RequireProbability {
			return nil, ErrProbabilityRequired
		}
		s.predict = m.Predict
		s.fidelity = models.FidelityLabel
	default:
		return nil, fmt.Errorf("%w: %T", ErrNoClassifier, model)
	}
	return s, nil
}

// Fidelity reports whether scores come from probabilities or hard labels.
func (s *Scorer) Fidelity() models.Fidelity {
	return s.fidelity
}

// Threshold returns the decision threshold as a probability.
func (s *Scorer) Threshold() float64 {
	return s.threshold
}

// Score validates rec, queries the model and applies the threshold.
func (s *Scorer) Score(rec models.TransactionRecord) (models.ScoreResult, error) {
	if err := Validate(rec); err != nil {
		return models.ScoreResult{}, err
	}

	fv := BuildFeatureVector(rec)
	if err := ValidateFeatures(fv); err != nil {
		return models.ScoreResult{}, err
	}
	p, err := s.predict(fv[:])
	if err != nil {
		return models.ScoreResult{}, inferenceError(err)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return models.ScoreResult{}, inferenceError(fmt.Errorf("%w: %v", ErrProbabilityRange, p))
	}

	return s.decide(p), nil
}

func (s *Scorer) decide(p float64) models.ScoreResult {
	result := models.ScoreResult{
		FraudScore: Percent(p, scorePlaces),
		Threshold:  Percent(s.threshold, scorePlaces),
	}
	if p >= s.threshold {
		result.IsFraud = 1
	}
	return result
}

// Percent converts a probability to a percentage rounded half away from
// zero to the given number of decimals.
func Percent(p float64, places int32) float64 {
	return decimal.NewFromFloat(p).Shift(2).Round(places).InexactFloat64()
}

func fraudProbability(m ProbabilisticClassifier) predictFunc {
	return func(x []float64) (float64, error) {
		proba, err := m.PredictProba(x)
		if err != nil {
			return 0, err
		}
		if len(proba) != ClassCount {
			return 0, fmt.Errorf("%w: want %d, got %d", ErrClassCount, ClassCount, len(proba))
		}
		return proba[FraudClass], nil
	}
}

func inferenceError(err error) error {
	return apperrors.Wrap(apperrors.ErrInference, err)
}

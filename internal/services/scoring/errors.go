package scoring

import "errors"

// Construction errors
var (
	ErrNoClassifier        = errors.New("model implements neither PredictProba nor Predict")
	ErrProbabilityRequired = errors.New("model does not produce probabilities")
	ErrInvalidThreshold    = errors.New("threshold must be in (0, 1]")
)

// Output errors, always wrapped in errors.ErrInference
var (
	ErrClassCount       = errors.New("unexpected number of classes")
	ErrProbabilityRange = errors.New("probability outside [0, 1]")
)

package scoring

const (
	// DefaultThreshold is the fraud probability at or above which a
	// transaction is flagged. Fraud is roughly 1% of the training data, so
	// the usual 0.5 cut-off would almost never fire.
	DefaultThreshold = 0.1

	// FeatureCount is the length of the model input.
	FeatureCount = 12

	// FraudClass is the index of the fraud class in a probability output.
	FraudClass = 1

	// ClassCount is the number of classes a probabilistic model must return.
	ClassCount = 2

	// scorePlaces is the number of decimals kept in the percentage score.
	scorePlaces = 2

	// FieldIndicators is the validation key for cross-indicator checks.
	FieldIndicators = "type"
)

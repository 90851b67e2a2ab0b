package scoring

// ProbabilisticClassifier returns one probability per class for a single row.
type ProbabilisticClassifier interface {
	PredictProba(x []float64) ([]float64, error)
}

// LabelClassifier returns a hard class label for a single row.
type LabelClassifier interface {
	Predict(x []float64) (float64, error)
}

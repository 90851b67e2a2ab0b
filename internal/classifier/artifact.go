package classifier

import "encoding/json"

// Artifact formats
const (
	FormatLogisticRegression = "logistic_regression"
	FormatRandomForest       = "random_forest"
	FormatLinearLabel        = "linear_label"
)

// Artifact is the on-disk representation of a trained model, written by the
// training pipeline.
type Artifact struct {
	Format    string          `json:"format"`
	Features  []string        `json:"features,omitempty"`
	Weights   []float64       `json:"weights,omitempty"`
	Intercept float64         `json:"intercept,omitempty"`
	Scaler    *Scaler         `json:"scaler,omitempty"`
	Forest    json.RawMessage `json:"forest,omitempty"`
}

// Info describes a loaded model.
type Info struct {
	Format        string `json:"format"`
	Features      int    `json:"features"`
	Probabilistic bool   `json:"probabilistic"`
	Source        string `json:"source,omitempty"`
}

// Model is any loaded classifier. Concrete types additionally implement
// PredictProba or Predict.
type Model interface {
	Describe() Info
}

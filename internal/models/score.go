package models

// Fidelity describes how a fraud probability was obtained.
type Fidelity string

const (
	// FidelityProbability means the model produced a class probability.
	FidelityProbability Fidelity = "probability"
	// FidelityLabel means a hard label was used in place of a probability.
	FidelityLabel Fidelity = "label"
)

// ScoreResult is the verdict for one transaction.
type ScoreResult struct {
	IsFraud    int     `json:"isFraud"`
	FraudScore float64 `json:"fraudScore"` // percentage, 2 decimals
	Threshold  float64 `json:"threshold"`  // percentage
}

// Flagged reports whether the transaction was labeled fraudulent.
func (r ScoreResult) Flagged() bool {
	return r.IsFraud == 1
}

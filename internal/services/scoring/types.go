package scoring

// Config holds process-wide scorer settings. They never change after NewScorer.
type Config struct {
	// Threshold is a probability in (0, 1]. Zero selects DefaultThreshold.
	Threshold float64
	// RequireProbability rejects models that only produce hard labels.
	RequireProbability bool
}

func (c Config) threshold() float64 {
	if c.Threshold == 0 {
		return DefaultThreshold
	}
	return c.Threshold
}

// Package metrics records scoring outcomes.
package metrics

import "time"

// Error kinds
const (
	KindInvalidInput = "invalid_input"
	KindInference    = "inference"
)

// Collector receives one call per scoring request.
type Collector interface {
	RecordPrediction(fidelity string, flagged bool, fraudScore float64)
	RecordError(kind string)
	RecordDuration(d time.Duration)
}

// NoopCollector is a no-op implementation of Collector
type NoopCollector struct{}

func (NoopCollector) RecordPrediction(string, bool, float64) {}
func (NoopCollector) RecordError(string)                     {}
func (NoopCollector) RecordDuration(time.Duration)           {}

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fraudscore"

// Prometheus is a Collector backed by Prometheus metrics.
type Prometheus struct {
	Predictions *prometheus.CounterVec
	Errors      *prometheus.CounterVec
	Scores      prometheus.Histogram
	Duration    prometheus.Histogram
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		Predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "predictions_total",
				Help:      "Scored transactions by verdict and score fidelity.",
			}, []string{"fidelity", "fraud"}),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Failed scoring requests by kind.",
			}, []string{"kind"}),
		Scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fraud_score_percent",
			Help:      "Distribution of fraud scores.",
			Buckets:   []float64{1, 5, 10, 20, 30, 50, 70, 90, 100},
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_duration_seconds",
			Help:      "Time spent scoring a transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{p.Predictions, p.Errors, p.Scores, p.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) RecordPrediction(fidelity string, flagged bool, fraudScore float64) {
	p.Predictions.WithLabelValues(fidelity, strconv.FormatBool(flagged)).Inc()
	p.Scores.Observe(fraudScore)
}

func (p *Prometheus) RecordError(kind string) {
	p.Errors.WithLabelValues(kind).Inc()
}

func (p *Prometheus) RecordDuration(d time.Duration) {
	p.Duration.Observe(d.Seconds())
}

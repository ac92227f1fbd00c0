package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "churn_predictions_total",
			Help: "Count of scored customers by decision and risk tier.",
		},
		[]string{"decision", "risk_tier"},
	)

	predictionFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "churn_prediction_failures_total",
			Help: "Count of failed prediction attempts by failure kind.",
		},
		[]string{"kind"},
	)

	predictionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "churn_prediction_duration_seconds",
			Help:    "Latency of one end-to-end prediction.",
			Buckets: prometheus.DefBuckets,
		},
	)

	batchRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "churn_batch_rows_total",
			Help: "Count of batch rows by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		predictionsTotal,
		predictionFailuresTotal,
		predictionDuration,
		batchRowsTotal,
	)
}

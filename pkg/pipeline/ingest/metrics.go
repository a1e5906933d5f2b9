package ingest

import (
	"github.com/driftwatch/driftwatch-pipeline/pkg/operational"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	samplesGenerated = operational.DefineMetric(
		"ingest_samples_generated",
		"Number of samples generated or read, per stage type",
		operational.TypeCounter,
		"stage",
	)
	anomaliesInjected = operational.DefineMetric(
		"ingest_anomalies_injected",
		"Number of ground-truth anomalies injected by the synthetic generator",
		operational.TypeCounter,
		"stage",
	)
)

type metrics struct {
	samples  prometheus.Counter
	injected prometheus.Counter
}

func newMetrics(opMetrics *operational.Metrics, stage string) *metrics {
	return &metrics{
		samples:  opMetrics.NewCounterVec(&samplesGenerated).WithLabelValues(stage),
		injected: opMetrics.NewCounterVec(&anomaliesInjected).WithLabelValues(stage),
	}
}

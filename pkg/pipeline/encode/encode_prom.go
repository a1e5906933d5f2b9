/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package encode

import (
	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/driftwatch/driftwatch-pipeline/pkg/operational"
	"github.com/driftwatch/driftwatch-pipeline/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var promLog = logrus.WithField("component", "encode.Prom")

var (
	sampleValueDef = operational.DefineMetric(
		"sample_value",
		"Latest observed sample value",
		operational.TypeGauge,
	)
	sampleZScoreDef = operational.DefineMetric(
		"sample_zscore",
		"Z-score of the latest sample against the EWMA baseline",
		operational.TypeGauge,
	)
	sampleBaselineDef = operational.DefineMetric(
		"sample_baseline",
		"Current EWMA baseline mean",
		operational.TypeGauge,
	)
	samplesTotalDef = operational.DefineMetric(
		"samples_total",
		"Number of scored samples seen",
		operational.TypeCounter,
	)
	anomaliesTotalDef = operational.DefineMetric(
		"anomalies_total",
		"Number of samples flagged anomalous",
		operational.TypeCounter,
	)
)

// EncodeProm exposes the scored stream as Prometheus metrics; dashboards
// (e.g. Grafana) take care of the visualization.
type EncodeProm struct {
	cfg       api.PromEncode
	value     prometheus.Gauge
	zscore    prometheus.Gauge
	baseline  prometheus.Gauge
	samples   prometheus.Counter
	anomalies prometheus.Counter
}

// Encode updates the gauges and counters from one scored record.
func (e *EncodeProm) Encode(record config.GenericMap) {
	if v, err := utils.ConvertToFloat64(record["value"]); err == nil {
		e.value.Set(v)
	}
	if z, err := utils.ConvertToFloat64(record["zscore"]); err == nil {
		e.zscore.Set(z)
	}
	if b, err := utils.ConvertToFloat64(record["baseline"]); err == nil {
		e.baseline.Set(b)
	}
	e.samples.Inc()
	if flagged, err := utils.ConvertToBool(record["anomaly"]); err == nil && flagged {
		e.anomalies.Inc()
	}
}

// NewEncodeProm creates a prometheus metrics terminal stage.
func NewEncodeProm(params config.StageParam, opMetrics *operational.Metrics) (Encoder, error) {
	cfg := api.PromEncode{}
	if params.Encode != nil && params.Encode.Prom != nil {
		cfg = *params.Encode.Prom
	}
	promLog.Debugf("NewEncodeProm prefix = %q", cfg.Prefix)

	prefixed := func(def operational.MetricDefinition) *operational.MetricDefinition {
		def.Name = cfg.Prefix + def.Name
		return &def
	}
	return &EncodeProm{
		cfg:       cfg,
		value:     opMetrics.NewGauge(prefixed(sampleValueDef)),
		zscore:    opMetrics.NewGauge(prefixed(sampleZScoreDef)),
		baseline:  opMetrics.NewGauge(prefixed(sampleBaselineDef)),
		samples:   opMetrics.NewCounter(prefixed(samplesTotalDef)),
		anomalies: opMetrics.NewCounter(prefixed(anomaliesTotalDef)),
	}, nil
}

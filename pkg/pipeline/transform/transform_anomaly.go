/*
 * Copyright (C) 2024 IBM, Inc.
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

package transform

import (
	"fmt"
	"math"
	"sync"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/driftwatch/driftwatch-pipeline/pkg/operational"
	"github.com/driftwatch/driftwatch-pipeline/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultValueField = "value"
	defaultAlpha      = 0.3
	defaultThreshold  = 3.0
	defaultEpsilon    = 1e-9
)

var anomalyLog = logrus.WithField("component", "transform.Anomaly")

var anomalyErrorsCounter = operational.DefineMetric(
	"transform_anomaly_errors",
	"Counter of rejected samples during anomaly detection",
	operational.TypeCounter,
	"type", "field",
)

// ewmaState is the detector baseline: exponentially weighted mean and
// variance over the samples processed so far. Strictly causal, owned by a
// single Anomaly instance.
type ewmaState struct {
	mean     float64
	variance float64
	seeded   bool
	samples  int
}

// update applies the EWMA recurrences; the variance uses the post-update mean.
func (s *ewmaState) update(value, alpha float64) {
	s.mean = alpha*value + (1-alpha)*s.mean
	diff := value - s.mean
	s.variance = alpha*diff*diff + (1-alpha)*s.variance
	if s.variance < 0 {
		s.variance = 0
	}
}

// Anomaly is the online detector stage. Each incoming sample is scored
// against the EWMA baseline (z-score) before the baseline is updated, so the
// state only ever reflects samples already seen.
type Anomaly struct {
	mu            sync.Mutex
	state         ewmaState
	config        api.TransformAnomaly
	alpha         float64
	threshold     float64
	epsilon       float64
	warmup        int
	skipOnAnomaly bool
	outputPrefix  string
	errorsCounter *prometheus.CounterVec
}

// NewTransformAnomaly creates a new online anomaly detector stage.
func NewTransformAnomaly(params config.StageParam, opMetrics *operational.Metrics) (Transformer, error) {
	cfg := api.TransformAnomaly{}
	if params.Transform != nil && params.Transform.Anomaly != nil {
		cfg = *params.Transform.Anomaly
	}
	if cfg.ValueField == "" {
		cfg.ValueField = defaultValueField
	}
	alpha := cfg.Alpha
	if alpha == 0 {
		alpha = defaultAlpha
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("invalid EWMA alpha %f: must be in (0,1)", cfg.Alpha)
	}
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = defaultThreshold
	}
	if threshold < 0 {
		return nil, fmt.Errorf("invalid threshold %f: must be positive", cfg.Threshold)
	}
	epsilon := cfg.Epsilon
	if epsilon == 0 {
		epsilon = defaultEpsilon
	}
	if epsilon < 0 {
		return nil, fmt.Errorf("invalid epsilon %f: must be positive", cfg.Epsilon)
	}
	if cfg.WarmupSamples < 0 {
		return nil, fmt.Errorf("invalid warmup %d: must not be negative", cfg.WarmupSamples)
	}

	anomalyLog.Infof("NewTransformAnomaly alpha=%v threshold=%v warmup=%d skipAnomalousUpdate=%v prefix=%q",
		alpha, threshold, cfg.WarmupSamples, cfg.SkipAnomalousUpdate, cfg.Prefix)
	return &Anomaly{
		config:        cfg,
		alpha:         alpha,
		threshold:     threshold,
		epsilon:       epsilon,
		warmup:        cfg.WarmupSamples,
		skipOnAnomaly: cfg.SkipAnomalousUpdate,
		outputPrefix:  cfg.Prefix,
		errorsCounter: opMetrics.NewCounterVec(&anomalyErrorsCounter),
	}, nil
}

// Transform scores one sample and appends zscore, anomaly and baseline
// fields. Malformed samples (non-numeric, NaN, infinite) are rejected and
// never reach the baseline.
func (a *Anomaly) Transform(entry config.GenericMap) (config.GenericMap, bool) {
	value, err := utils.ConvertToFloat64(entry[a.config.ValueField])
	if err != nil {
		anomalyLog.WithError(err).Errorf("rejecting sample: field %q is not numeric", a.config.ValueField)
		a.errorsCounter.WithLabelValues("ValueConversionError", a.config.ValueField).Inc()
		return entry, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		anomalyLog.Errorf("rejecting sample: field %q holds a non-finite value %v", a.config.ValueField, value)
		a.errorsCounter.WithLabelValues("NonFiniteValue", a.config.ValueField).Inc()
		return entry, false
	}

	a.mu.Lock()
	zscore, isAnomaly := a.score(value)
	if !a.skipOnAnomaly || !isAnomaly {
		a.state.update(value, a.alpha)
	}
	a.state.samples++
	baseline := a.state.mean
	a.mu.Unlock()

	output := entry.Copy()
	output[a.outputField("zscore")] = zscore
	output[a.outputField("anomaly")] = isAnomaly
	output[a.outputField("baseline")] = baseline
	return output, true
}

// score evaluates the sample against the state as it was before this sample.
// The first sample seeds the baseline and is reported normal, as are any
// samples within the warmup window.
func (a *Anomaly) score(value float64) (float64, bool) {
	if !a.state.seeded {
		a.state.mean = value
		a.state.variance = 0
		a.state.seeded = true
		return 0, false
	}
	zscore := (value - a.state.mean) / math.Sqrt(a.state.variance+a.epsilon)
	if a.state.samples < a.warmup {
		return zscore, false
	}
	return zscore, math.Abs(zscore) > a.threshold
}

func (a *Anomaly) outputField(name string) string {
	return a.outputPrefix + name
}

// Reset clears the detector state; useful for tests.
func (a *Anomaly) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = ewmaState{}
}

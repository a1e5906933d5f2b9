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
	"math"
	"testing"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/driftwatch/driftwatch-pipeline/pkg/operational"
	"github.com/stretchr/testify/require"
)

func newAnomaly(t *testing.T, cfg api.TransformAnomaly) *Anomaly {
	t.Helper()
	tr, err := NewTransformAnomaly(config.StageParam{
		Name:      "detect",
		Transform: &config.Transform{Type: api.AnomalyType, Anomaly: &cfg},
	}, operational.NewMetrics(&config.MetricsSettings{}))
	require.NoError(t, err)
	return tr.(*Anomaly)
}

func feed(t *testing.T, a *Anomaly, values []float64) []config.GenericMap {
	t.Helper()
	out := make([]config.GenericMap, 0, len(values))
	for i, v := range values {
		scored, ok := a.Transform(config.GenericMap{"index": i, "value": v})
		require.True(t, ok)
		out = append(out, scored)
	}
	return out
}

func TestAnomalySingleOutlier(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{Alpha: 0.3, Threshold: 3.0})

	scored := feed(t, a, []float64{10, 10, 10, 10, 100, 10, 10})

	for i, record := range scored {
		expected := i == 4
		require.Equal(t, expected, record["anomaly"], "sample %d", i)
	}
	// the spike against a zero-variance baseline yields a huge z-score
	require.Greater(t, scored[4]["zscore"].(float64), 3.0)
	// once the spike inflated the variance, the return to 10 is unremarkable
	require.Less(t, math.Abs(scored[5]["zscore"].(float64)), 1.0)
	require.Less(t, math.Abs(scored[6]["zscore"].(float64)), 1.0)
}

func TestAnomalyFirstSampleSeedsBaseline(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{})

	scored, ok := a.Transform(config.GenericMap{"index": 0, "value": 12345.0})
	require.True(t, ok)
	require.Equal(t, false, scored["anomaly"])
	require.Equal(t, 0.0, scored["zscore"])
	require.InDelta(t, 12345.0, scored["baseline"].(float64), 1e-9)
}

func TestAnomalyConstantStreamConverges(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{Alpha: 0.3, Threshold: 3.0})

	scored := feed(t, a, []float64{42, 42, 42, 42, 42, 42, 42, 42})

	last := scored[len(scored)-1]
	require.Equal(t, false, last["anomaly"])
	require.InDelta(t, 42.0, last["baseline"].(float64), 1e-9)
	// zero variance must not divide by zero thanks to the epsilon guard
	require.InDelta(t, 0.0, last["zscore"].(float64), 1e-6)
}

func TestAnomalyBaselineTracksUpdates(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{Alpha: 0.5})

	scored := feed(t, a, []float64{10, 20})
	// mean after the second sample: 0.5*20 + 0.5*10
	require.InDelta(t, 15.0, scored[1]["baseline"].(float64), 1e-12)
}

func TestAnomalySkipAnomalousUpdate(t *testing.T) {
	frozen := newAnomaly(t, api.TransformAnomaly{Alpha: 0.3, Threshold: 3.0, SkipAnomalousUpdate: true})
	tracking := newAnomaly(t, api.TransformAnomaly{Alpha: 0.3, Threshold: 3.0})

	values := []float64{10, 10, 10, 10, 100}
	frozenOut := feed(t, frozen, values)
	trackingOut := feed(t, tracking, values)

	require.Equal(t, true, frozenOut[4]["anomaly"])
	require.Equal(t, true, trackingOut[4]["anomaly"])

	// the frozen detector ignores the spike, the tracking one absorbs it
	require.InDelta(t, 10.0, frozenOut[4]["baseline"].(float64), 1e-9)
	require.InDelta(t, 37.0, trackingOut[4]["baseline"].(float64), 1e-6)
}

func TestAnomalyWarmupSuppressesFlags(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{Alpha: 0.3, Threshold: 3.0, WarmupSamples: 6})

	scored := feed(t, a, []float64{10, 10, 10, 10, 100, 10, 10})
	for i, record := range scored {
		require.Equal(t, false, record["anomaly"], "sample %d", i)
	}
	// the z-score is still reported during warmup
	require.Greater(t, scored[4]["zscore"].(float64), 3.0)
}

func TestAnomalyOutputPrefix(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{Prefix: "detector_"})

	scored, ok := a.Transform(config.GenericMap{"value": 5.0})
	require.True(t, ok)
	require.Contains(t, scored, "detector_zscore")
	require.Contains(t, scored, "detector_anomaly")
	require.Contains(t, scored, "detector_baseline")
	require.NotContains(t, scored, "zscore")
}

func TestAnomalyCustomValueField(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{ValueField: "latency"})

	scored, ok := a.Transform(config.GenericMap{"latency": 250.0})
	require.True(t, ok)
	require.InDelta(t, 250.0, scored["baseline"].(float64), 1e-9)
}

func TestAnomalyRejectsMalformedSamples(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{})

	// non-numeric, missing, NaN and infinite values are all dropped
	for _, entry := range []config.GenericMap{
		{"value": "not-a-number"},
		{"index": 0},
		{"value": math.NaN()},
		{"value": math.Inf(1)},
		{"value": math.Inf(-1)},
	} {
		_, ok := a.Transform(entry)
		require.False(t, ok, "entry %v", entry)
	}

	// rejected samples must not have touched the baseline
	scored, ok := a.Transform(config.GenericMap{"value": 7.0})
	require.True(t, ok)
	require.InDelta(t, 7.0, scored["baseline"].(float64), 1e-9)
	require.Equal(t, false, scored["anomaly"])
}

func TestAnomalyDoesNotMutateInput(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{})

	entry := config.GenericMap{"index": 0, "value": 3.0}
	scored, ok := a.Transform(entry)
	require.True(t, ok)
	require.NotContains(t, entry, "zscore")
	require.Contains(t, scored, "zscore")
}

func TestAnomalyReset(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{})

	feed(t, a, []float64{10, 10, 10})
	a.Reset()

	scored, ok := a.Transform(config.GenericMap{"value": 500.0})
	require.True(t, ok)
	// after a reset the next sample re-seeds the baseline
	require.Equal(t, false, scored["anomaly"])
	require.InDelta(t, 500.0, scored["baseline"].(float64), 1e-9)
}

func TestNewTransformAnomalyValidation(t *testing.T) {
	opMetrics := operational.NewMetrics(&config.MetricsSettings{})
	for _, cfg := range []api.TransformAnomaly{
		{Alpha: -0.1},
		{Alpha: 1.0},
		{Alpha: 1.5},
		{Threshold: -1},
		{Epsilon: -1e-9},
		{WarmupSamples: -1},
	} {
		_, err := NewTransformAnomaly(config.StageParam{
			Transform: &config.Transform{Type: api.AnomalyType, Anomaly: &cfg},
		}, opMetrics)
		require.Error(t, err, "config %+v", cfg)
	}
}

func TestNewTransformAnomalyDefaults(t *testing.T) {
	a := newAnomaly(t, api.TransformAnomaly{})
	require.Equal(t, defaultAlpha, a.alpha)
	require.Equal(t, defaultThreshold, a.threshold)
	require.Equal(t, defaultEpsilon, a.epsilon)
	require.Equal(t, defaultValueField, a.config.ValueField)
	require.Equal(t, 0, a.warmup)
	require.False(t, a.skipOnAnomaly)
}

/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *	 http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package ingest

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/driftwatch/driftwatch-pipeline/pkg/operational"
	"github.com/driftwatch/driftwatch-pipeline/pkg/pipeline/utils"
	"github.com/sirupsen/logrus"
)

var silog = logrus.WithField("component", "ingest.Synthetic")

const (
	defaultLength            = 1000
	defaultSeasonalPeriod    = 60
	defaultSeasonalAmplitude = 10.0
	defaultNoiseScale        = 2.0
	defaultAnomalyMin        = 20.0
	defaultAnomalyMax        = 100.0
)

// IngestSynthetic generates a bounded sample stream: linear trend, sinusoidal
// seasonality, gaussian noise and sparse injected spikes of randomized sign.
type IngestSynthetic struct {
	params   api.IngestSynthetic
	rnd      *rand.Rand
	clock    clock.Clock
	metrics  *metrics
	exitChan <-chan struct{}
}

// Ingest emits exactly params.Length samples then returns, letting the
// pipeline drain. When SamplesPerMin is set, emission is paced by a ticker.
func (s *IngestSynthetic) Ingest(out chan<- config.GenericMap) {
	silog.Debugf("entering IngestSynthetic Ingest, params = %v", s.params)

	var tick *clock.Ticker
	if s.params.SamplesPerMin > 0 {
		tick = s.clock.Ticker(time.Minute / time.Duration(s.params.SamplesPerMin))
		defer tick.Stop()
	}

	for t := 0; t < s.params.Length; t++ {
		if tick != nil {
			select {
			case <-s.exitChan:
				silog.Debug("exiting IngestSynthetic because of signal")
				return
			case <-tick.C:
			}
		} else {
			select {
			case <-s.exitChan:
				silog.Debug("exiting IngestSynthetic because of signal")
				return
			default:
			}
		}
		out <- s.sample(t)
	}
	silog.Debugf("IngestSynthetic done after %d samples", s.params.Length)
}

// sample draws the components in a fixed order so that equal seeds reproduce
// identical streams.
func (s *IngestSynthetic) sample(t int) config.GenericMap {
	p := &s.params
	value := p.TrendOffset + p.TrendSlope*float64(t)
	value += p.SeasonalAmplitude * math.Sin(2*math.Pi*float64(t)/float64(p.SeasonalPeriod))
	value += s.rnd.NormFloat64() * p.NoiseScale

	record := config.GenericMap{
		"index": t,
		"value": value,
	}
	if p.AnomalyRate > 0 && s.rnd.Float64() < p.AnomalyRate {
		magnitude := p.AnomalyMinMagnitude + s.rnd.Float64()*(p.AnomalyMaxMagnitude-p.AnomalyMinMagnitude)
		if s.rnd.Intn(2) == 1 {
			magnitude = -magnitude
		}
		record["value"] = value + magnitude
		record["truth_anomaly"] = true
		s.metrics.injected.Inc()
	}
	s.metrics.samples.Inc()
	return record
}

// NewIngestSynthetic creates a new synthetic generator stage.
func NewIngestSynthetic(params config.StageParam, opMetrics *operational.Metrics) (Ingester, error) {
	cfg := api.IngestSynthetic{}
	if params.Ingest != nil && params.Ingest.Synthetic != nil {
		cfg = *params.Ingest.Synthetic
	}
	if err := applySyntheticDefaults(&cfg); err != nil {
		return nil, err
	}
	silog.Debugf("NewIngestSynthetic params = %v", cfg)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &IngestSynthetic{
		params:   cfg,
		rnd:      rand.New(rand.NewSource(seed)),
		clock:    clock.New(),
		metrics:  newMetrics(opMetrics, api.SyntheticType),
		exitChan: utils.ExitChannel(),
	}, nil
}

func applySyntheticDefaults(cfg *api.IngestSynthetic) error {
	if cfg.Length < 0 {
		return fmt.Errorf("invalid synthetic length %d: must be positive", cfg.Length)
	}
	if cfg.Length == 0 {
		cfg.Length = defaultLength
	}
	if cfg.SeasonalPeriod < 0 {
		return fmt.Errorf("invalid seasonal period %d: must be positive", cfg.SeasonalPeriod)
	}
	if cfg.SeasonalPeriod == 0 {
		cfg.SeasonalPeriod = defaultSeasonalPeriod
	}
	if cfg.SeasonalAmplitude == 0 {
		cfg.SeasonalAmplitude = defaultSeasonalAmplitude
	}
	if cfg.NoiseScale < 0 {
		return fmt.Errorf("invalid noise scale %f: must not be negative", cfg.NoiseScale)
	}
	if cfg.NoiseScale == 0 {
		cfg.NoiseScale = defaultNoiseScale
	}
	// rate 0 disables injection entirely
	if cfg.AnomalyRate < 0 || cfg.AnomalyRate >= 1 {
		return fmt.Errorf("invalid anomaly rate %f: must be in [0,1)", cfg.AnomalyRate)
	}
	if cfg.AnomalyRate > 0 {
		if cfg.AnomalyMinMagnitude == 0 {
			cfg.AnomalyMinMagnitude = defaultAnomalyMin
		}
		if cfg.AnomalyMaxMagnitude == 0 {
			cfg.AnomalyMaxMagnitude = defaultAnomalyMax
		}
		if cfg.AnomalyMaxMagnitude < cfg.AnomalyMinMagnitude {
			return fmt.Errorf("invalid anomaly magnitudes: max %f below min %f",
				cfg.AnomalyMaxMagnitude, cfg.AnomalyMinMagnitude)
		}
	}
	if cfg.SamplesPerMin < 0 {
		return fmt.Errorf("invalid samples per minute %d: must not be negative", cfg.SamplesPerMin)
	}
	return nil
}

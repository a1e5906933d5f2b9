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

package api

// IngestSynthetic configures the synthetic sample generator. The generated
// signal is trend + seasonality + gaussian noise, with sparse injected
// spikes of randomized sign. All randomness is drawn from a single seeded
// source, so equal seeds reproduce identical streams.
type IngestSynthetic struct {
	Length              int     `yaml:"length,omitempty" json:"length,omitempty" doc:"number of samples to generate; negative is rejected, 0 uses the default"`
	SeasonalPeriod      int     `yaml:"seasonalPeriod,omitempty" json:"seasonalPeriod,omitempty" doc:"period of the sinusoidal seasonal component, in samples"`
	SeasonalAmplitude   float64 `yaml:"seasonalAmplitude,omitempty" json:"seasonalAmplitude,omitempty" doc:"amplitude of the seasonal component"`
	TrendSlope          float64 `yaml:"trendSlope,omitempty" json:"trendSlope,omitempty" doc:"linear trend increment per sample"`
	TrendOffset         float64 `yaml:"trendOffset,omitempty" json:"trendOffset,omitempty" doc:"constant baseline added to every sample"`
	NoiseScale          float64 `yaml:"noiseScale,omitempty" json:"noiseScale,omitempty" doc:"standard deviation of the gaussian noise component"`
	AnomalyRate         float64 `yaml:"anomalyRate,omitempty" json:"anomalyRate,omitempty" doc:"probability in [0,1) of injecting a spike into a sample; 0 disables injection"`
	AnomalyMinMagnitude float64 `yaml:"anomalyMinMagnitude,omitempty" json:"anomalyMinMagnitude,omitempty" doc:"minimum absolute magnitude of an injected spike"`
	AnomalyMaxMagnitude float64 `yaml:"anomalyMaxMagnitude,omitempty" json:"anomalyMaxMagnitude,omitempty" doc:"maximum absolute magnitude of an injected spike"`
	Seed                int64   `yaml:"seed,omitempty" json:"seed,omitempty" doc:"random seed; 0 seeds from the wall clock"`
	SamplesPerMin       int     `yaml:"samplesPerMin,omitempty" json:"samplesPerMin,omitempty" doc:"pacing rate for live replay; 0 emits samples as fast as possible"`
}

/*
 * Copyright (C) 2021 IBM, Inc.
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

package config

import (
	"testing"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

const yamlConfig = `log-level: debug
metricsSettings:
  port: 9102
  prefix: driftwatch_
pipeline:
  - name: gen
  - name: detect
    follows: gen
  - name: out
    follows: detect
parameters:
  - name: gen
    ingest:
      type: synthetic
      synthetic:
        length: 200
        seasonalPeriod: 60
        anomalyRate: 0.02
        seed: 99
  - name: detect
    transform:
      type: anomaly
      anomaly:
        alpha: 0.3
        threshold: 3.0
        warmupSamples: 10
  - name: out
    write:
      type: csv
      csv:
        filename: /tmp/scored.csv
`

func TestYamlConfig(t *testing.T) {
	var cfg ConfigFileStruct
	require.NoError(t, yaml.Unmarshal([]byte(yamlConfig), &cfg))

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 9102, cfg.MetricsSettings.Port)
	require.Equal(t, "driftwatch_", cfg.MetricsSettings.Prefix)

	require.Len(t, cfg.Pipeline, 3)
	require.Equal(t, Stage{Name: "detect", Follows: "gen"}, cfg.Pipeline[1])

	require.Len(t, cfg.Parameters, 3)
	require.Equal(t, 200, cfg.Parameters[0].Ingest.Synthetic.Length)
	require.Equal(t, 0.02, cfg.Parameters[0].Ingest.Synthetic.AnomalyRate)
	require.Equal(t, 10, cfg.Parameters[1].Transform.Anomaly.WarmupSamples)
	require.Equal(t, "/tmp/scored.csv", cfg.Parameters[2].Write.CSV.Filename)
}

func TestParseConfig(t *testing.T) {
	opts := Options{
		PipeLine: `[{"name":"gen"},{"name":"detect","follows":"gen"},{"name":"out","follows":"detect"}]`,
		Parameters: `[
			{"name":"gen","ingest":{"type":"synthetic","synthetic":{"length":100,"seed":7}}},
			{"name":"detect","transform":{"type":"anomaly","anomaly":{"alpha":0.3,"threshold":3.0}}},
			{"name":"out","write":{"type":"stdout"}}
		]`,
		MetricsSettings: `{"port":9102,"prefix":"driftwatch_"}`,
	}

	cfg, err := ParseConfig(&opts)
	require.NoError(t, err)

	require.Equal(t, []Stage{
		{Name: "gen"},
		{Name: "detect", Follows: "gen"},
		{Name: "out", Follows: "detect"},
	}, cfg.Pipeline)

	require.Len(t, cfg.Parameters, 3)
	require.Equal(t, api.SyntheticType, cfg.Parameters[0].Ingest.Type)
	require.Equal(t, 100, cfg.Parameters[0].Ingest.Synthetic.Length)
	require.Equal(t, int64(7), cfg.Parameters[0].Ingest.Synthetic.Seed)
	require.Equal(t, 0.3, cfg.Parameters[1].Transform.Anomaly.Alpha)
	require.Equal(t, api.StdoutType, cfg.Parameters[2].Write.Type)

	require.Equal(t, 9102, cfg.MetricsSettings.Port)
	require.Equal(t, "driftwatch_", cfg.MetricsSettings.Prefix)
}

func TestParseConfigRejectsUnknownFields(t *testing.T) {
	opts := Options{
		PipeLine:   `[{"name":"gen"}]`,
		Parameters: `[{"name":"gen","ingest":{"type":"synthetic","synthetic":{"lenght":100}}}]`,
	}
	_, err := ParseConfig(&opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parameters")
}

func TestParseConfigInvalidPipelineJson(t *testing.T) {
	opts := Options{
		PipeLine:   `not json`,
		Parameters: `[]`,
	}
	_, err := ParseConfig(&opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pipeline")
}

func TestJsonUnmarshalStrict(t *testing.T) {
	type inner struct {
		Known int `json:"known"`
	}
	var out inner
	require.NoError(t, JsonUnmarshalStrict([]byte(`{"known":1}`), &out))
	require.Equal(t, 1, out.Known)
	require.Error(t, JsonUnmarshalStrict([]byte(`{"known":1,"unknown":2}`), &out))
}

func TestGenericMapCopy(t *testing.T) {
	original := GenericMap{"index": 3, "value": 1.5}
	clone := original.Copy()
	require.Equal(t, original, clone)

	clone["value"] = 99.0
	require.Equal(t, 1.5, original["value"])
}

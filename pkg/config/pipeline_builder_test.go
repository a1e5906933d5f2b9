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

package config

import (
	"encoding/json"
	"testing"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/stretchr/testify/require"
)

func TestSyntheticPipeline(t *testing.T) {
	pl := NewSyntheticPipeline("gen", api.IngestSynthetic{
		Length:         500,
		SeasonalPeriod: 60,
		TrendSlope:     0.05,
		AnomalyRate:    0.01,
		Seed:           42,
	})
	pl = pl.DetectAnomalies("detect", api.TransformAnomaly{
		Alpha:     0.3,
		Threshold: 3.0,
	})
	pl = pl.WriteStdout("out", api.WriteStdout{Format: "json"})

	stages := pl.GetStages()
	require.Equal(t, []Stage{
		{Name: "gen"},
		{Name: "detect", Follows: "gen"},
		{Name: "out", Follows: "detect"},
	}, stages)

	b, err := json.Marshal(pl.GetStageParams())
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"name":"gen","ingest":{"type":"synthetic","synthetic":{"length":500,"seasonalPeriod":60,"trendSlope":0.05,"anomalyRate":0.01,"seed":42}}},
		{"name":"detect","transform":{"type":"anomaly","anomaly":{"alpha":0.3,"threshold":3}}},
		{"name":"out","write":{"type":"stdout","stdout":{"format":"json"}}}
	]`, string(b))
}

func TestFilePipelineWithFilterAndProm(t *testing.T) {
	pl := NewFilePipeline("src", api.IngestFile{Filename: "/tmp/samples.ndjson"})
	pl = pl.DetectAnomalies("detect", api.TransformAnomaly{})
	pl = pl.TransformFilter("only-anomalies", api.TransformFilter{
		Rules: []api.TransformFilterRule{
			{Type: api.KeepEntryIfTrue, Input: "anomaly"},
		},
	})
	pl = pl.EncodePrometheus("prom", api.PromEncode{Prefix: "driftwatch_"})

	stages := pl.GetStages()
	require.Len(t, stages, 4)
	require.Equal(t, "src", stages[0].Name)
	require.Empty(t, stages[0].Follows)
	require.Equal(t, "prom", stages[3].Name)
	require.Equal(t, "only-anomalies", stages[3].Follows)

	params := pl.GetStageParams()
	require.Len(t, params, 4)
	require.Equal(t, api.FileType, params[0].Ingest.Type)
	require.Equal(t, api.AnomalyType, params[1].Transform.Type)
	require.Equal(t, api.FilterType, params[2].Transform.Type)
	require.Equal(t, api.PromType, params[3].Encode.Type)
}

func TestIntoConfigFileStruct(t *testing.T) {
	pl := NewSyntheticPipeline("gen", api.IngestSynthetic{Length: 10, Seed: 1})
	pl = pl.DetectAnomalies("detect", api.TransformAnomaly{})
	pl = pl.WriteCSV("csv", api.WriteCSV{Filename: "/tmp/out.csv"})

	cfs := pl.IntoConfigFileStruct(&ConfigFileStruct{LogLevel: "debug"})
	require.Equal(t, "debug", cfs.LogLevel)
	require.Equal(t, pl.GetStages(), cfs.Pipeline)
	require.Equal(t, pl.GetStageParams(), cfs.Parameters)
}

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
	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
)

// PipelineBuilderStage holds information about a created pipeline stage. It
// allows chaining a new stage after this one, in a fluent manner.
type PipelineBuilderStage struct {
	lastStage string
	pipeline  *pipeline
}

type pipeline struct {
	stages []Stage
	config []StageParam
}

// NewSyntheticPipeline creates a new pipeline from a synthetic generator stage.
func NewSyntheticPipeline(name string, synthetic api.IngestSynthetic) PipelineBuilderStage {
	return newPipelineFromIngest(name, &Ingest{Type: api.SyntheticType, Synthetic: &synthetic})
}

// NewFilePipeline creates a new pipeline from a file source stage.
func NewFilePipeline(name string, file api.IngestFile) PipelineBuilderStage {
	return newPipelineFromIngest(name, &Ingest{Type: api.FileType, File: &file})
}

func newPipelineFromIngest(name string, ingest *Ingest) PipelineBuilderStage {
	p := pipeline{
		stages: []Stage{{Name: name}},
		config: []StageParam{{Name: name, Ingest: ingest}},
	}
	return PipelineBuilderStage{pipeline: &p, lastStage: name}
}

func (b PipelineBuilderStage) next(name string, param StageParam) PipelineBuilderStage {
	b.pipeline.stages = append(b.pipeline.stages, Stage{Name: name, Follows: b.lastStage})
	b.pipeline.config = append(b.pipeline.config, param)
	return PipelineBuilderStage{pipeline: b.pipeline, lastStage: name}
}

// DetectAnomalies chains an online anomaly detection stage after the current stage.
func (b PipelineBuilderStage) DetectAnomalies(name string, anomaly api.TransformAnomaly) PipelineBuilderStage {
	return b.next(name, StageParam{Name: name, Transform: &Transform{Type: api.AnomalyType, Anomaly: &anomaly}})
}

// TransformFilter chains a filter stage after the current stage.
func (b PipelineBuilderStage) TransformFilter(name string, filter api.TransformFilter) PipelineBuilderStage {
	return b.next(name, StageParam{Name: name, Transform: &Transform{Type: api.FilterType, Filter: &filter}})
}

// EncodePrometheus chains a prometheus metrics terminal stage after the current stage.
func (b PipelineBuilderStage) EncodePrometheus(name string, prom api.PromEncode) PipelineBuilderStage {
	return b.next(name, StageParam{Name: name, Encode: &Encode{Type: api.PromType, Prom: &prom}})
}

// WriteStdout chains a stdout writer after the current stage.
func (b PipelineBuilderStage) WriteStdout(name string, stdout api.WriteStdout) PipelineBuilderStage {
	return b.next(name, StageParam{Name: name, Write: &Write{Type: api.StdoutType, Stdout: &stdout}})
}

// WriteCSV chains a CSV file writer after the current stage.
func (b PipelineBuilderStage) WriteCSV(name string, csv api.WriteCSV) PipelineBuilderStage {
	return b.next(name, StageParam{Name: name, Write: &Write{Type: api.CSVType, CSV: &csv}})
}

// WriteFake chains an in-memory capture writer after the current stage (testing).
func (b PipelineBuilderStage) WriteFake(name string) PipelineBuilderStage {
	return b.next(name, StageParam{Name: name, Write: &Write{Type: api.FakeType}})
}

// GetStages returns the current pipeline stages.
func (b PipelineBuilderStage) GetStages() []Stage {
	return b.pipeline.stages
}

// GetStageParams returns the current pipeline stage parameters.
func (b PipelineBuilderStage) GetStageParams() []StageParam {
	return b.pipeline.config
}

// IntoConfigFileStruct injects the current pipeline and parameters into the
// provided ConfigFileStruct.
func (b PipelineBuilderStage) IntoConfigFileStruct(cfs *ConfigFileStruct) *ConfigFileStruct {
	cfs.Pipeline = b.GetStages()
	cfs.Parameters = b.GetStageParams()
	return cfs
}

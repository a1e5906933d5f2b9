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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/sirupsen/logrus"
)

type Options struct {
	PipeLine        string
	Parameters      string
	MetricsSettings string
	Health          Health
	Profile         Profile
}

type Health struct {
	Address string
	Port    string
}

type Profile struct {
	Port int
}

type ConfigFileStruct struct {
	LogLevel        string          `yaml:"log-level,omitempty" json:"log-level,omitempty"`
	MetricsSettings MetricsSettings `yaml:"metricsSettings,omitempty" json:"metricsSettings,omitempty"`
	Pipeline        []Stage         `yaml:"pipeline,omitempty" json:"pipeline,omitempty"`
	Parameters      []StageParam    `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

type PromConnectionInfo struct {
	Address string `yaml:"address,omitempty" json:"address,omitempty" doc:"endpoint address to expose"`
	Port    int    `yaml:"port,omitempty" json:"port,omitempty" doc:"endpoint port number to expose"`
}

// MetricsSettings is the global configuration of the operational metrics server.
type MetricsSettings struct {
	PromConnectionInfo `yaml:",inline" json:",inline"`
	Prefix             string `yaml:"prefix,omitempty" json:"prefix,omitempty" doc:"prefix for the metrics' names"`
	NoPanic            bool   `yaml:"noPanic,omitempty" json:"noPanic,omitempty"`
	// DisableGlobalServer disables the global metrics server; operational
	// metrics become unavailable in that case.
	DisableGlobalServer bool `yaml:"disableGlobalServer,omitempty" json:"disableGlobalServer,omitempty"`
}

// Stage is a single stage in the pipeline graph; it follows the stage named
// by Follows, or is a start stage when Follows is empty.
type Stage struct {
	Name    string `yaml:"name" json:"name"`
	Follows string `yaml:"follows,omitempty" json:"follows,omitempty"`
}

// StageParam holds the parameters of one stage; exactly one of the stage
// kind fields is expected to be set.
type StageParam struct {
	Name      string     `yaml:"name" json:"name"`
	Ingest    *Ingest    `yaml:"ingest,omitempty" json:"ingest,omitempty"`
	Transform *Transform `yaml:"transform,omitempty" json:"transform,omitempty"`
	Encode    *Encode    `yaml:"encode,omitempty" json:"encode,omitempty"`
	Write     *Write     `yaml:"write,omitempty" json:"write,omitempty"`
}

type Ingest struct {
	Type      string               `yaml:"type" json:"type"`
	Synthetic *api.IngestSynthetic `yaml:"synthetic,omitempty" json:"synthetic,omitempty"`
	File      *api.IngestFile      `yaml:"file,omitempty" json:"file,omitempty"`
}

type Transform struct {
	Type    string                `yaml:"type" json:"type"`
	Anomaly *api.TransformAnomaly `yaml:"anomaly,omitempty" json:"anomaly,omitempty"`
	Filter  *api.TransformFilter  `yaml:"filter,omitempty" json:"filter,omitempty"`
}

type Encode struct {
	Type string          `yaml:"type" json:"type"`
	Prom *api.PromEncode `yaml:"prom,omitempty" json:"prom,omitempty"`
}

type Write struct {
	Type   string           `yaml:"type" json:"type"`
	Stdout *api.WriteStdout `yaml:"stdout,omitempty" json:"stdout,omitempty"`
	CSV    *api.WriteCSV    `yaml:"csv,omitempty" json:"csv,omitempty"`
}

// ParseConfig creates the internal unmarshalled representation from the
// pipeline, parameters and metrics settings json strings.
func ParseConfig(opts *Options) (ConfigFileStruct, error) {
	out := ConfigFileStruct{}

	logrus.Debugf("opts.PipeLine = %v ", opts.PipeLine)
	err := JsonUnmarshalStrict([]byte(opts.PipeLine), &out.Pipeline)
	if err != nil {
		return out, fmt.Errorf("error reading pipeline configuration: %w", err)
	}
	logrus.Debugf("stages = %v ", out.Pipeline)

	err = JsonUnmarshalStrict([]byte(opts.Parameters), &out.Parameters)
	if err != nil {
		return out, fmt.Errorf("error reading parameters configuration: %w", err)
	}
	logrus.Debugf("params = %v ", out.Parameters)

	if opts.MetricsSettings != "" {
		err = JsonUnmarshalStrict([]byte(opts.MetricsSettings), &out.MetricsSettings)
		if err != nil {
			return out, fmt.Errorf("error reading metrics settings: %w", err)
		}
		logrus.Debugf("metrics settings = %v ", out.MetricsSettings)
	}

	return out, nil
}

// JsonUnmarshalStrict is like json.Unmarshal but returns an error when the
// input contains fields unknown to the target type.
func JsonUnmarshalStrict(b []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()
	return d.Decode(v)
}

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

package transform

import (
	"fmt"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/driftwatch/driftwatch-pipeline/pkg/utils"
	"github.com/sirupsen/logrus"
)

var filterLog = logrus.WithField("component", "transform.Filter")

// Filter drops or keeps records according to the configured rules; the main
// use is forwarding only flagged samples to a sink.
type Filter struct {
	rules []api.TransformFilterRule
}

// Transform applies all rules; a record survives only if every rule keeps it.
func (f *Filter) Transform(entry config.GenericMap) (config.GenericMap, bool) {
	for i := range f.rules {
		rule := &f.rules[i]
		value, exists := entry[rule.Input]
		switch rule.Type {
		case api.KeepEntryIfExists:
			if !exists {
				return entry, false
			}
		case api.RemoveEntryIfExists:
			if exists {
				return entry, false
			}
		case api.KeepEntryIfTrue:
			if !exists {
				return entry, false
			}
			b, err := utils.ConvertToBool(value)
			if err != nil || !b {
				return entry, false
			}
		}
	}
	return entry, true
}

// NewTransformFilter creates a new filter stage.
func NewTransformFilter(params config.StageParam) (Transformer, error) {
	cfg := api.TransformFilter{}
	if params.Transform != nil && params.Transform.Filter != nil {
		cfg = *params.Transform.Filter
	}
	if len(cfg.Rules) == 0 {
		return nil, fmt.Errorf("transform filter: at least one rule is required")
	}
	for i := range cfg.Rules {
		rule := &cfg.Rules[i]
		switch rule.Type {
		case api.KeepEntryIfTrue, api.KeepEntryIfExists, api.RemoveEntryIfExists:
			if rule.Input == "" {
				return nil, fmt.Errorf("transform filter: rule %d misses input field", i)
			}
		default:
			return nil, fmt.Errorf("transform filter: unknown rule type %q", rule.Type)
		}
	}
	filterLog.Debugf("NewTransformFilter rules = %v", cfg.Rules)
	return &Filter{rules: cfg.Rules}, nil
}

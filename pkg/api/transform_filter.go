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

package api

type TransformFilter struct {
	Rules []TransformFilterRule `yaml:"rules,omitempty" json:"rules,omitempty" doc:"list of filter rules, each includes:"`
}

type TransformFilterRuleType string

const (
	KeepEntryIfTrue     TransformFilterRuleType = "keep_entry_if_true"     // keeps the entry if the field holds boolean true
	KeepEntryIfExists   TransformFilterRuleType = "keep_entry_if_exists"   // keeps the entry if the field is present
	RemoveEntryIfExists TransformFilterRuleType = "remove_entry_if_exists" // removes the entry if the field is present
)

type TransformFilterRule struct {
	Type  TransformFilterRuleType `yaml:"type,omitempty" json:"type,omitempty" doc:"(enum) one of the following:"`
	Input string                  `yaml:"input,omitempty" json:"input,omitempty" doc:"entry input field"`
}

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

package api

// IngestFile configures a file-based sample source (one JSON record per
// line), as a drop-in replacement for the synthetic generator.
type IngestFile struct {
	Filename string `yaml:"filename,omitempty" json:"filename,omitempty" doc:"path of the NDJSON samples file"`
	Decoder  string `yaml:"decoder,omitempty" json:"decoder,omitempty" doc:"decoding of each line: json (default)"`
}

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

const TagYaml = "yaml"
const TagDoc = "doc"

// Note: items beginning with doc: "## title" are top level items that get divided into sections inside api.md.

type API struct {
	IngestSynthetic  IngestSynthetic  `yaml:"synthetic" doc:"## Synthetic ingest API\nFollowing is the supported API format for the synthetic sample generator:\n"`
	IngestFile       IngestFile       `yaml:"file" doc:"## File ingest API\nFollowing is the supported API format for the file sample source:\n"`
	TransformAnomaly TransformAnomaly `yaml:"anomaly" doc:"## Anomaly transform API\nFollowing is the supported API format for the online anomaly detector:\n"`
	TransformFilter  TransformFilter  `yaml:"filter" doc:"## Filter transform API\nFollowing is the supported API format for record filters:\n"`
	PromEncode       PromEncode       `yaml:"prom" doc:"## Prometheus encode API\nFollowing is the supported API format for prometheus encode:\n"`
	WriteStdout      WriteStdout      `yaml:"stdout" doc:"## Stdout write API\nFollowing is the supported API format for the stdout writer:\n"`
	WriteCSV         WriteCSV         `yaml:"csv" doc:"## CSV write API\nFollowing is the supported API format for the csv writer:\n"`
}

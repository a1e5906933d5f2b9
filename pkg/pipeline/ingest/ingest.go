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

package ingest

import (
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
)

// Ingester pushes records into the pipeline. Implementations return when the
// source is exhausted or the exit channel is closed; the output channel is
// closed by the pipeline graph afterwards.
type Ingester interface {
	Ingest(out chan<- config.GenericMap)
}

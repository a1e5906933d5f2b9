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

package write

import (
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	log "github.com/sirupsen/logrus"
)

type Writer interface {
	Write(in config.GenericMap)
}

type writeNone struct {
}

func (t *writeNone) Write(_ config.GenericMap) {
}

// NewWriteNone creates a terminal stage that discards records.
func NewWriteNone() (Writer, error) {
	log.Debugf("entering NewWriteNone")
	return &writeNone{}, nil
}

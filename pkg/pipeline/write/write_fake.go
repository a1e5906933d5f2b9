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

package write

import (
	"sync"

	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	log "github.com/sirupsen/logrus"
)

// WriteFake keeps all records in memory; used by tests to inspect pipeline
// output.
type WriteFake struct {
	mt         sync.Mutex
	allRecords []config.GenericMap
}

// Write stores a copy of the record.
func (w *WriteFake) Write(in config.GenericMap) {
	w.mt.Lock()
	defer w.mt.Unlock()
	w.allRecords = append(w.allRecords, in.Copy())
}

// AllRecords returns a snapshot of the records written so far.
func (w *WriteFake) AllRecords() []config.GenericMap {
	w.mt.Lock()
	defer w.mt.Unlock()
	out := make([]config.GenericMap, len(w.allRecords))
	copy(out, w.allRecords)
	return out
}

func (w *WriteFake) Count() int {
	w.mt.Lock()
	defer w.mt.Unlock()
	return len(w.allRecords)
}

// NewWriteFake creates a new in-memory capture writer.
func NewWriteFake(_ config.StageParam) (Writer, error) {
	log.Debugf("entering NewWriteFake")
	return &WriteFake{}, nil
}

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
	"bufio"
	"fmt"
	"os"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/driftwatch/driftwatch-pipeline/pkg/operational"
	"github.com/driftwatch/driftwatch-pipeline/pkg/pipeline/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var filog = logrus.WithField("component", "ingest.File")

// IngestFile reads NDJSON records from a file, replacing the synthetic
// generator with a recorded data source. In file_loop mode the file is
// replayed until the exit channel closes.
type IngestFile struct {
	params   api.IngestFile
	loop     bool
	exitChan <-chan struct{}
	metrics  *metrics
}

// Ingest reads the configured file and pushes one record per line.
func (f *IngestFile) Ingest(out chan<- config.GenericMap) {
	for {
		if err := f.sendFile(out); err != nil {
			filog.Errorf("error reading %s: %v", f.params.Filename, err)
			return
		}
		if !f.loop {
			return
		}
		select {
		case <-f.exitChan:
			filog.Debug("exiting IngestFile because of signal")
			return
		default:
		}
	}
}

func (f *IngestFile) sendFile(out chan<- config.GenericMap) error {
	file, err := os.Open(f.params.Filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	scanner := bufio.NewScanner(file)
	lines := 0
	for scanner.Scan() {
		select {
		case <-f.exitChan:
			filog.Debug("exiting IngestFile because of signal")
			return nil
		default:
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		record := config.GenericMap{}
		if err := json.Unmarshal(line, &record); err != nil {
			return fmt.Errorf("malformed record at line %d: %w", lines+1, err)
		}
		out <- record
		f.metrics.samples.Inc()
		lines++
	}
	filog.Debugf("IngestFile sent %d records from %s", lines, f.params.Filename)
	return scanner.Err()
}

// NewIngestFile creates a new file source stage.
func NewIngestFile(params config.StageParam, opMetrics *operational.Metrics) (Ingester, error) {
	cfg := api.IngestFile{}
	if params.Ingest != nil && params.Ingest.File != nil {
		cfg = *params.Ingest.File
	}
	if cfg.Filename == "" {
		return nil, fmt.Errorf("ingest file: missing filename")
	}

	return &IngestFile{
		params:   cfg,
		loop:     params.Ingest.Type == api.FileLoopType,
		exitChan: utils.ExitChannel(),
		metrics:  newMetrics(opMetrics, params.Ingest.Type),
	}, nil
}

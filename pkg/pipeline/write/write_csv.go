/*
 * Copyright (C) 2024 IBM, Inc.
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
	"encoding/csv"
	"fmt"
	"os"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/driftwatch/driftwatch-pipeline/pkg/utils"
	log "github.com/sirupsen/logrus"
)

var defaultCSVFields = []string{"index", "value", "zscore", "anomaly"}

// writeCSV appends scored records to a CSV file, one row per sample, for
// offline inspection or plotting.
type writeCSV struct {
	file   *os.File
	writer *csv.Writer
	fields []string
}

// Write appends one row; missing fields are written empty.
func (w *writeCSV) Write(v config.GenericMap) {
	row := make([]string, len(w.fields))
	for i, field := range w.fields {
		if value, ok := v[field]; ok {
			row[i] = utils.ConvertToString(value)
		}
	}
	if err := w.writer.Write(row); err != nil {
		log.Errorf("writeCSV: %v", err)
		return
	}
	w.writer.Flush()
}

// NewWriteCSV creates a CSV writer stage; the header row is written upfront.
func NewWriteCSV(params config.StageParam) (Writer, error) {
	log.Debugf("entering NewWriteCSV")
	cfg := api.WriteCSV{}
	if params.Write != nil && params.Write.CSV != nil {
		cfg = *params.Write.CSV
	}
	if cfg.Filename == "" {
		return nil, fmt.Errorf("write csv: missing filename")
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = defaultCSVFields
	}

	file, err := os.Create(cfg.Filename)
	if err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(cfg.Fields); err != nil {
		file.Close()
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	writer.Flush()

	return &writeCSV{
		file:   file,
		writer: writer,
		fields: cfg.Fields,
	}, nil
}

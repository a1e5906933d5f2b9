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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

type writeStdout struct {
	format string
	out    io.Writer
}

// Write outputs one line per record.
func (t *writeStdout) Write(v config.GenericMap) {
	if t.format == "json" {
		var jsonc = jsoniter.ConfigCompatibleWithStandardLibrary
		txt, _ := jsonc.Marshal(v)
		fmt.Fprintln(t.out, string(txt))
	} else {
		fmt.Fprintf(t.out, "%s: %v\n", time.Now().Format(time.StampMilli), v)
	}
}

// NewWriteStdout create a new write
func NewWriteStdout(params config.StageParam) (Writer, error) {
	log.Debugf("entering NewWriteStdout")
	writeStdout := &writeStdout{out: os.Stdout}
	if params.Write != nil && params.Write.Stdout != nil {
		writeStdout.format = params.Write.Stdout.Format
	}
	return writeStdout, nil
}

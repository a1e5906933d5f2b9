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
	"bytes"
	"strings"
	"testing"

	"github.com/driftwatch/driftwatch-pipeline/pkg/api"
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestWriteStdoutJson(t *testing.T) {
	w, err := NewWriteStdout(config.StageParam{
		Name:  "out",
		Write: &config.Write{Type: api.StdoutType, Stdout: &api.WriteStdout{Format: "json"}},
	})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	w.(*writeStdout).out = buf

	w.Write(config.GenericMap{"index": 4, "value": 100.0, "anomaly": true})
	w.Write(config.GenericMap{"index": 5, "value": 10.0, "anomaly": false})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"index":4,"value":100,"anomaly":true}`, lines[0])
	require.JSONEq(t, `{"index":5,"value":10,"anomaly":false}`, lines[1])
}

func TestWriteStdoutDefaultFormat(t *testing.T) {
	w, err := NewWriteStdout(config.StageParam{Name: "out"})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	w.(*writeStdout).out = buf

	w.Write(config.GenericMap{"value": 10.0})
	require.Contains(t, buf.String(), "value:10")
}

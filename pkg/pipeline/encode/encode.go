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

package encode

import (
	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	log "github.com/sirupsen/logrus"
)

type Encoder interface {
	Encode(in config.GenericMap)
}

type encodeNone struct {
}

func (t *encodeNone) Encode(_ config.GenericMap) {
}

// NewEncodeNone creates a terminal stage that discards records.
func NewEncodeNone() (Encoder, error) {
	log.Debugf("entering NewEncodeNone")
	return &encodeNone{}, nil
}

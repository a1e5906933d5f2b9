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

package operational

import (
	"sync"

	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type MetricType string

const (
	TypeCounter MetricType = "counter"
	TypeGauge   MetricType = "gauge"
)

// MetricDefinition is the static description of an operational metric, kept
// so all metric names and labels can be enumerated in one place.
type MetricDefinition struct {
	Name   string
	Help   string
	Type   MetricType
	Labels []string
}

var (
	defsMutex  sync.Mutex
	allMetrics = []MetricDefinition{}
)

// DefineMetric declares a metric definition at package init time.
func DefineMetric(name, help string, t MetricType, labels ...string) MetricDefinition {
	def := MetricDefinition{
		Name:   name,
		Help:   help,
		Type:   t,
		Labels: labels,
	}
	defsMutex.Lock()
	defer defsMutex.Unlock()
	allMetrics = append(allMetrics, def)
	return def
}

// GetDefinitions returns all declared metric definitions.
func GetDefinitions() []MetricDefinition {
	defsMutex.Lock()
	defer defsMutex.Unlock()
	out := make([]MetricDefinition, len(allMetrics))
	copy(out, allMetrics)
	return out
}

// Metrics registers operational metrics against the global registry, using
// the configured prefix.
type Metrics struct {
	settings *config.MetricsSettings
}

func NewMetrics(settings *config.MetricsSettings) *Metrics {
	return &Metrics{settings: settings}
}

// register adds the collector to the global registry; when an identical
// collector already exists (e.g. two stages sharing a definition), the
// existing one is returned instead.
func (o *Metrics) register(c prometheus.Collector, name string) prometheus.Collector {
	err := prometheus.DefaultRegisterer.Register(c)
	if err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			log.Debugf("metric %s already registered", name)
			return are.ExistingCollector
		}
		if o.settings != nil && o.settings.NoPanic {
			log.Errorf("error registering metric %s: %v", name, err)
			return c
		}
		log.Panicf("error registering metric %s: %v", name, err)
	}
	return c
}

func (o *Metrics) prefixed(name string) string {
	if o.settings == nil {
		return name
	}
	return o.settings.Prefix + name
}

func (o *Metrics) NewCounter(def *MetricDefinition, labels ...string) prometheus.Counter {
	fullName := o.prefixed(def.Name)
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        fullName,
		Help:        def.Help,
		ConstLabels: constLabels(def, labels),
	})
	return o.register(c, fullName).(prometheus.Counter)
}

func (o *Metrics) NewCounterVec(def *MetricDefinition) *prometheus.CounterVec {
	fullName := o.prefixed(def.Name)
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: fullName,
		Help: def.Help,
	}, def.Labels)
	return o.register(c, fullName).(*prometheus.CounterVec)
}

func (o *Metrics) NewGauge(def *MetricDefinition, labels ...string) prometheus.Gauge {
	fullName := o.prefixed(def.Name)
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        fullName,
		Help:        def.Help,
		ConstLabels: constLabels(def, labels),
	})
	return o.register(g, fullName).(prometheus.Gauge)
}

func (o *Metrics) NewGaugeVec(def *MetricDefinition) *prometheus.GaugeVec {
	fullName := o.prefixed(def.Name)
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: fullName,
		Help: def.Help,
	}, def.Labels)
	return o.register(g, fullName).(*prometheus.GaugeVec)
}

func constLabels(def *MetricDefinition, labelValues []string) prometheus.Labels {
	if len(def.Labels) == 0 || len(labelValues) == 0 {
		return nil
	}
	labels := prometheus.Labels{}
	for i, l := range def.Labels {
		if i < len(labelValues) {
			labels[l] = labelValues[i]
		}
	}
	return labels
}

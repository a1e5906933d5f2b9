/*
 * Copyright (C) 2023 IBM, Inc.
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

package prometheus

import (
	"fmt"
	"net/http"
	"time"

	"github.com/driftwatch/driftwatch-pipeline/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var plog = logrus.WithField("component", "prometheus")

// InitializePrometheus starts the global metrics server, or returns nil when
// it is disabled or unconfigured.
func InitializePrometheus(settings *config.MetricsSettings) *http.Server {
	if settings.DisableGlobalServer {
		plog.Info("global metrics server is disabled")
		return nil
	}
	if settings.Port == 0 {
		plog.Info("metrics port not configured, global metrics server is disabled")
		return nil
	}
	return StartServerAsync(&settings.PromConnectionInfo)
}

// StartServerAsync listens for prometheus scrape requests in the background.
func StartServerAsync(conn *config.PromConnectionInfo) *http.Server {
	addr := fmt.Sprintf("%s:%v", conn.Address, conn.Port)
	plog.Infof("StartServerAsync: addr = %s", addr)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			plog.Errorf("error in http.ListenAndServe: %v", err)
		}
	}()

	return server
}

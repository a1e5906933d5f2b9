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

package utils

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
)

var (
	exitChannel        chan struct{}
	registeredChannels []chan struct{}
	chanMutex          sync.Mutex
)

func init() {
	exitChannel = make(chan struct{})
}

// ExitChannel returns the channel closed when the process is asked to stop.
func ExitChannel() <-chan struct{} {
	return exitChannel
}

// RegisterExitChannel adds a channel to be closed on exit, for go routines
// that want to stop cleanly.
func RegisterExitChannel(ch chan struct{}) {
	chanMutex.Lock()
	defer chanMutex.Unlock()
	registeredChannels = append(registeredChannels, ch)
}

// CloseExitChannel triggers the exit flow without an OS signal (tests).
func CloseExitChannel() {
	chanMutex.Lock()
	defer chanMutex.Unlock()
	closeAll()
}

func closeAll() {
	select {
	case <-exitChannel:
		// already closed
	default:
		close(exitChannel)
	}
	for _, ch := range registeredChannels {
		close(ch)
	}
	registeredChannels = nil
}

// SetupElegantExit closes the exit channels when SIGINT or SIGTERM is received.
func SetupElegantExit() {
	log.Debugf("entering SetupElegantExit")
	exitSigChan := make(chan os.Signal, 1)
	signal.Notify(exitSigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSigChan
		log.Debugf("received exit signal = %v", sig)
		chanMutex.Lock()
		defer chanMutex.Unlock()
		closeAll()
	}()
	log.Debugf("exiting SetupElegantExit")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run processes in the background
//
// e.g. cleaners for caches and periodic statistics logging
package background

// Process - type signature for background process
// and type that implements the Run is a process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle type for the stop
type T struct {
	sync chan struct{}
	done []chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		sync: make(chan struct{}),
		done: make([]chan struct{}, len(processes)),
	}

	// start each background
	for i, p := range processes {
		done := make(chan struct{})
		register.done[i] = done
		go func(p Process, done chan<- struct{}) {
			// pass the shutdown to the Run loop for shutdown signalling
			p.Run(args, register.sync)
			// flag for the stop routine to wait for shutdown
			close(done)
		}(p, done)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.sync)

	// wait for them to finish
	for _, done := range t.done {
		<-done
	}
}

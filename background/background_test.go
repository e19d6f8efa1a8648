// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/burst-apps-team/burstd/background"
)

type counterProcess struct {
	counter *uint64
}

func (p *counterProcess) Run(args interface{}, shutdown <-chan struct{}) {
	increment := args.(uint64)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddUint64(p.counter, increment)
		}
	}
}

// start a pair of processes, let them run briefly and stop them
func TestStartStop(t *testing.T) {

	var n uint64

	processes := background.Processes{
		&counterProcess{counter: &n},
		&counterProcess{counter: &n},
	}

	b := background.Start(processes, uint64(1))

	time.Sleep(25 * time.Millisecond)
	b.Stop()

	value := atomic.LoadUint64(&n)
	if 0 == value {
		t.Errorf("background processes never ran")
	}

	// no more increments after Stop has returned
	time.Sleep(10 * time.Millisecond)
	if value != atomic.LoadUint64(&n) {
		t.Errorf("background process still running after stop")
	}
}

// Stop on a nil handle must be harmless
func TestStopNil(t *testing.T) {
	var b *background.T
	b.Stop()
}

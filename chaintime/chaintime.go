// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaintime - the chain epoch clock
//
// all deadlines and expirations on the chain are measured in whole
// seconds after the genesis instant, not in wall clock time
package chaintime

import (
	"sync/atomic"
	"time"
)

// the genesis instant; epoch time is seconds elapsed after this
var epochBeginning = time.Date(2014, time.August, 11, 2, 0, 0, 0, time.UTC)

// Source - the clock consumed by epoch sensitive components
type Source interface {
	CurrentEpochTime() uint32
}

// Clock - epoch clock backed by the system time
//
// guaranteed monotonically non-decreasing even if the system clock
// steps backwards
type Clock struct {
	highWater uint32
}

// NewClock - create an epoch clock
func NewClock() *Clock {
	return &Clock{}
}

// CurrentEpochTime - seconds after the genesis instant
func (c *Clock) CurrentEpochTime() uint32 {

	seconds := time.Since(epochBeginning) / time.Second
	now := uint32(seconds)

	for {
		last := atomic.LoadUint32(&c.highWater)
		if now <= last {
			return last
		}
		if atomic.CompareAndSwapUint32(&c.highWater, last, now) {
			return now
		}
	}
}

// EpochToTime - convert an epoch time to wall clock, for display only
func EpochToTime(epoch uint32) time.Time {
	return epochBeginning.Add(time.Duration(epoch) * time.Second)
}

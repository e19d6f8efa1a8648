// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/burst-apps-team/burstd/unconfirmed"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// poolStats - periodically log the pool counters
type poolStats struct {
	log *logger.L
}

func (p *poolStats) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-time.After(statsDelay):
			pooled, senders, capacity := unconfirmed.ReadCounters()
			log.Infof("pooled: %d  senders: %d  capacity: %d", pooled, senders, capacity)
		}
	}

	log.Info("stopped")
}

func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Infof("stats: %s", text)
		}
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		time.Sleep(statsDelay)
	}
}

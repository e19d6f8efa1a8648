// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unconfirmed

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/burst-apps-team/burstd/account"
	"github.com/burst-apps-team/burstd/fault"
	"github.com/burst-apps-team/burstd/transactionrecord"
)

// TimeSource - the epoch clock consulted for expiration checks
type TimeSource interface {
	CurrentEpochTime() uint32
}

// AccountStore - the account collaborator consulted at reservation time
//
// the lookup must be a fast local read; the pool calls it while
// holding its lock
type AccountStore interface {
	Lookup(id uint64) (*account.View, bool)
}

// globals
//
// the admission order index, the transaction cache and the reservation
// ledger are bound together under the one lock; they are only ever
// mutated as a unit
type globalDataType struct {
	sync.RWMutex
	log        *logger.L
	index      []transactionrecord.TxId // admission order, oldest first
	cache      map[transactionrecord.TxId]*transactionrecord.Transaction
	reserved   map[uint64]uint64 // sender id to reserved NQT, no zero entries
	maxSize    int
	timeSource TimeSource
	accounts   AccountStore
	enabled    bool
}

// global storage
var globalData globalDataType

// Initialise - create the pool
//
// maxSize is the fixed capacity; there is no implicit default here,
// the configuration layer supplies one
func Initialise(maxSize int, timeSource TimeSource, accounts AccountStore) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.enabled {
		return fault.ErrAlreadyInitialised
	}
	if maxSize <= 0 {
		return fault.ErrInvalidPoolSize
	}
	if nil == timeSource || nil == accounts {
		return fault.ErrMissingParameters
	}

	globalData.log = logger.New("unconfirmed")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	globalData.index = make([]transactionrecord.TxId, 0, maxSize)
	globalData.cache = make(map[transactionrecord.TxId]*transactionrecord.Transaction, maxSize)
	globalData.reserved = make(map[uint64]uint64)
	globalData.maxSize = maxSize
	globalData.timeSource = timeSource
	globalData.accounts = accounts

	globalData.enabled = true

	return nil
}

// Finalise - stop all pool activity
func Finalise() {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.enabled = false
	globalData.index = nil
	globalData.cache = nil
	globalData.reserved = nil
	globalData.timeSource = nil
	globalData.accounts = nil
}

// ReadCounters - pooled transaction count, distinct sender count and
// the fixed capacity
func ReadCounters() (int, int, int) {
	globalData.RLock()
	defer globalData.RUnlock()

	return len(globalData.cache), len(globalData.reserved), globalData.maxSize
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unconfirmed

import (
	"github.com/burst-apps-team/burstd/transactionrecord"
)

// Get - fetch a pooled transaction by id
//
// returns nil when the id is not pooled; observing an expired entry
// removes it, so even Get takes the exclusive lock
func Get(txId transactionrecord.TxId) *transactionrecord.Transaction {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return nil
	}

	return fetchUnexpiredOrCleanup(txId, globalData.timeSource.CurrentEpochTime())
}

// Has - check if an id is pooled and not expired
func Has(txId transactionrecord.TxId) bool {
	return nil != Get(txId)
}

// All - a snapshot of every unexpired pooled transaction
//
// the order of the snapshot is unspecified
func All() []*transactionrecord.Transaction {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return nil
	}

	sweepExpired(globalData.timeSource.CurrentEpochTime())

	all := make([]*transactionrecord.Transaction, 0, len(globalData.cache))
	for _, tx := range globalData.cache {
		all = append(all, tx)
	}
	return all
}

// ForEach - call the visitor once for every unexpired pooled
// transaction
//
// the snapshot is taken under the lock and the visitor runs outside
// it, so the visitor may safely call back into the pool
func ForEach(visitor func(*transactionrecord.Transaction)) {
	for _, tx := range All() {
		visitor(tx)
	}
}

// Remove - drop a transaction, e.g. after it was confirmed in a block
//
// no-op when the transaction is not pooled
func Remove(tx *transactionrecord.Transaction) {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return
	}

	internalRemove(tx.Id())
}

// Clear - drop the whole pending set, e.g. on block acceptance
func Clear() {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return
	}

	globalData.log.Info("clear")

	globalData.index = make([]transactionrecord.TxId, 0, globalData.maxSize)
	globalData.cache = make(map[transactionrecord.TxId]*transactionrecord.Transaction, globalData.maxSize)
	globalData.reserved = make(map[uint64]uint64)
}

// ReservedBalance - the amount currently reserved for a sender across
// the whole pool; zero for senders with no pooled transactions
func ReservedBalance(senderId uint64) uint64 {

	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.reserved[senderId]
}

// drop every expired entry
//
// caller must hold the lock
func sweepExpired(now uint32) {
	for txId, tx := range globalData.cache {
		if tx.IsExpired(now) {
			globalData.log.Debugf("cleanup expired: %s", txId)
			internalRemove(txId)
		}
	}
}

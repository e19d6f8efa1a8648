// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unconfirmed

import (
	"github.com/burst-apps-team/burstd/fault"
	"github.com/burst-apps-team/burstd/transactionrecord"
)

// Store - attempt to add a single transaction to the pool
//
// an already expired transaction is silently discarded and nil is
// returned
//
// when the pool is full the oldest admitted entry is evicted first and
// that eviction stands even if the incoming transaction is then
// rejected by the balance check; callers that relay transactions must
// treat an error as "not admitted" only
func Store(tx *transactionrecord.Transaction) error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return fault.ErrNotInitialised
	}

	now := globalData.timeSource.CurrentEpochTime()
	if tx.IsExpired(now) {
		globalData.log.Debugf("discard expired: %s  deadline: %d  now: %d", tx.Id(), tx.Expiration, now)
		return nil
	}

	if len(globalData.index) >= globalData.maxSize {
		// make room before validation
		evictOldest()
	} else if _, ok := globalData.cache[tx.Id()]; ok {
		// allow a re-send with different amount/fee to supersede
		internalRemove(tx.Id())
	}

	return reserveAndCache(tx)
}

// StoreBatch - attempt to add a collection of transactions
//
// expired entries are dropped first and a batch larger than the pool
// capacity is silently truncated
//
// admission is sequential and NOT transactional: a validation failure
// aborts the remainder of the batch but entries committed before the
// failure remain pooled
func StoreBatch(txs []*transactionrecord.Transaction) error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return fault.ErrNotInitialised
	}

	now := globalData.timeSource.CurrentEpochTime()

	batch := make([]*transactionrecord.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.IsExpired(now) {
			batch = append(batch, tx)
		}
	}

	// hard cap, not a fairness policy: excess input is dropped
	if len(batch) > globalData.maxSize {
		globalData.log.Warnf("batch truncated from: %d to: %d", len(batch), globalData.maxSize-1)
		batch = batch[:globalData.maxSize-1]
	}

	for excess := len(globalData.index) + len(batch) - globalData.maxSize; excess > 0; excess -= 1 {
		evictOldest()
	}

	for _, tx := range batch {
		if _, ok := globalData.cache[tx.Id()]; ok {
			internalRemove(tx.Id())
		}
		if err := reserveAndCache(tx); nil != err {
			return err
		}
	}

	return nil
}

// validate the reservation, then commit the admission order, the cache
// and the ledger together so a failed admission leaves no trace
//
// caller must hold the lock
func reserveAndCache(tx *transactionrecord.Transaction) error {

	txId := tx.Id()

	// re-admission reached directly: the previous entry and its
	// reservation are dropped so the new amounts supersede the old
	if _, ok := globalData.cache[txId]; ok {
		internalRemove(txId)
	}

	amount, err := tx.TotalAmountToReserve()
	if nil != err {
		return err
	}

	candidate := globalData.reserved[tx.SenderId] + amount
	if candidate < amount {
		// overflow fails closed
		return fault.ErrInsufficientFunds
	}

	// sender zero denotes a system generated record: no balance check
	if 0 != tx.SenderId {

		owner, ok := globalData.accounts.Lookup(tx.SenderId)
		if !ok {
			globalData.log.Debugf("account %d does not exist, required funds: %d", tx.SenderId, candidate)
			return fault.ErrAccountUnknown
		}

		if candidate > owner.UnconfirmedBalanceNQT {
			globalData.log.Debugf("account %d balance too low: %d > %d", tx.SenderId, candidate, owner.UnconfirmedBalanceNQT)
			return fault.ErrInsufficientFunds
		}
	}

	globalData.reserved[tx.SenderId] = candidate
	globalData.cache[txId] = tx
	globalData.index = append(globalData.index, txId)

	return nil
}

// remove the entry at the head of the admission order and release its
// reservation
//
// caller must hold the lock and must ensure the pool is not empty
func evictOldest() {

	txId := globalData.index[0]
	globalData.index = globalData.index[1:]

	if tx, ok := globalData.cache[txId]; ok {
		delete(globalData.cache, txId)
		releaseBalance(tx)
		globalData.log.Infof("evicted: %s", txId)
	}
}

// remove a pooled entry wherever it sits in the admission order and
// release its reservation; silent when the id is not pooled
//
// caller must hold the lock
func internalRemove(txId transactionrecord.TxId) {

	tx, ok := globalData.cache[txId]
	if !ok {
		return
	}

	for i, id := range globalData.index {
		if id == txId {
			globalData.index = append(globalData.index[:i], globalData.index[i+1:]...)
			break
		}
	}

	delete(globalData.cache, txId)
	releaseBalance(tx)
}

// subtract the transaction's contribution from its sender's ledger
// entry, saturating at zero; a zero entry is removed entirely
//
// caller must hold the lock
func releaseBalance(tx *transactionrecord.Transaction) {

	amount, err := tx.TotalAmountToReserve()
	quantity := globalData.reserved[tx.SenderId]

	if nil != err || amount >= quantity {
		delete(globalData.reserved, tx.SenderId)
	} else {
		globalData.reserved[tx.SenderId] = quantity - amount
	}
}

// resolve a cached entry, removing it as a side effect if it has
// expired
//
// caller must hold the lock
func fetchUnexpiredOrCleanup(txId transactionrecord.TxId, now uint32) *transactionrecord.Transaction {

	tx, ok := globalData.cache[txId]
	if !ok {
		return nil
	}

	if tx.IsExpired(now) {
		globalData.log.Debugf("cleanup expired: %s", txId)
		internalRemove(txId)
		return nil
	}

	return tx
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unconfirmed_test

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/burst-apps-team/burstd/account"
	"github.com/burst-apps-team/burstd/transactionrecord"
	"github.com/burst-apps-team/burstd/unconfirmed"
)

// common test setup routines

const logDirectory = "testlog"

// epoch time all tests start at
const startTime uint32 = 1000

// a settable epoch clock
type stepClock struct {
	now uint32
}

func (c *stepClock) CurrentEpochTime() uint32 {
	return atomic.LoadUint32(&c.now)
}

func (c *stepClock) set(now uint32) {
	atomic.StoreUint32(&c.now, now)
}

// an in-memory account collaborator
type memoryAccounts map[uint64]*account.View

func (m memoryAccounts) Lookup(id uint64) (*account.View, bool) {
	v, ok := m[id]
	return v, ok
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(logDirectory)
}

// configure for testing
func setup(t *testing.T, maxSize int, accounts memoryAccounts) *stepClock {
	removeFiles()
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	clock := &stepClock{now: startTime}
	if err := unconfirmed.Initialise(maxSize, clock, accounts); nil != err {
		t.Fatalf("unconfirmed initialise error: %s", err)
	}
	return clock
}

// post test cleanup
func teardown(t *testing.T) {
	unconfirmed.Finalise()
	logger.Finalise()
	removeFiles()
}

// build a payment; the recipient doubles as a uniquifier so otherwise
// identical records get distinct ids
func payment(sender uint64, recipient uint64, amount uint64, fee uint64, expiration uint32) *transactionrecord.Transaction {
	return &transactionrecord.Transaction{
		TxType:      transactionrecord.OrdinaryPayment,
		SenderId:    sender,
		RecipientId: recipient,
		AmountNQT:   amount,
		FeeNQT:      fee,
		Expiration:  expiration,
	}
}

// verify the reservation ledger matches the pooled transactions
func checkLedger(t *testing.T) {
	t.Helper()

	expected := make(map[uint64]uint64)
	for _, tx := range unconfirmed.All() {
		amount, err := tx.TotalAmountToReserve()
		if nil != err {
			t.Fatalf("pooled transaction with invalid amount: %s", err)
		}
		expected[tx.SenderId] += amount
	}

	for sender, amount := range expected {
		if r := unconfirmed.ReservedBalance(sender); r != amount {
			t.Fatalf("sender %d reserved: %d  expected: %d", sender, r, amount)
		}
	}

	_, senders, _ := unconfirmed.ReadCounters()
	if senders != len(expected) {
		t.Fatalf("ledger sender count: %d  expected: %d", senders, len(expected))
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unconfirmed_test

import (
	"sync"
	"testing"

	"github.com/burst-apps-team/burstd/account"
	"github.com/burst-apps-team/burstd/transactionrecord"
	"github.com/burst-apps-team/burstd/unconfirmed"
)

// observing an expired entry removes it and releases its reservation
func TestLazyExpiryOnGet(t *testing.T) {
	accounts := memoryAccounts{
		1: &account.View{Id: 1, UnconfirmedBalanceNQT: 1000},
	}
	clock := setup(t, 10, accounts)
	defer teardown(t)

	tx := payment(1, 2, 100, 0, startTime+50)

	if err := unconfirmed.Store(tx); nil != err {
		t.Fatalf("store error: %s", err)
	}
	if !unconfirmed.Has(tx.Id()) {
		t.Fatalf("transaction not pooled")
	}

	clock.set(startTime + 51)

	if nil != unconfirmed.Get(tx.Id()) {
		t.Fatalf("expired transaction returned by get")
	}
	if r := unconfirmed.ReservedBalance(1); 0 != r {
		t.Fatalf("expired transaction still reserved: %d", r)
	}
	pooled, senders, _ := unconfirmed.ReadCounters()
	if 0 != pooled || 0 != senders {
		t.Fatalf("expired transaction left state: %d pooled  %d senders", pooled, senders)
	}
}

func TestLazyExpiryOnAll(t *testing.T) {
	accounts := memoryAccounts{
		1: &account.View{Id: 1, UnconfirmedBalanceNQT: 1000},
	}
	clock := setup(t, 10, accounts)
	defer teardown(t)

	stale := payment(1, 1, 100, 0, startTime+10)
	fresh := payment(1, 2, 100, 0, startTime+500)

	if err := unconfirmed.Store(stale); nil != err {
		t.Fatalf("store error: %s", err)
	}
	if err := unconfirmed.Store(fresh); nil != err {
		t.Fatalf("store error: %s", err)
	}

	clock.set(startTime + 100)

	all := unconfirmed.All()
	if 1 != len(all) {
		t.Fatalf("snapshot size: %d  expected: 1", len(all))
	}
	if all[0] != fresh {
		t.Fatalf("snapshot kept the wrong entry")
	}
	if r := unconfirmed.ReservedBalance(1); 100 != r {
		t.Fatalf("reserved: %d  expected: 100", r)
	}
	checkLedger(t)
}

// the visitor runs outside the lock and may call back into the pool
func TestForEach(t *testing.T) {
	accounts := memoryAccounts{
		1: &account.View{Id: 1, UnconfirmedBalanceNQT: 1000},
	}
	clock := setup(t, 10, accounts)
	defer teardown(t)

	stale := payment(1, 1, 100, 0, startTime+10)
	keep := payment(1, 2, 100, 0, startTime+500)
	drop := payment(1, 3, 100, 0, startTime+500)

	for _, tx := range []*transactionrecord.Transaction{stale, keep, drop} {
		if err := unconfirmed.Store(tx); nil != err {
			t.Fatalf("store error: %s", err)
		}
	}

	clock.set(startTime + 100)

	visited := 0
	unconfirmed.ForEach(func(tx *transactionrecord.Transaction) {
		visited += 1
		if tx == stale {
			t.Fatalf("visitor saw an expired entry")
		}
		// reentrant calls must not deadlock
		if !unconfirmed.Has(tx.Id()) {
			t.Fatalf("visited entry not in pool")
		}
		if tx == drop {
			unconfirmed.Remove(tx)
		}
	})

	if 2 != visited {
		t.Fatalf("visited: %d  expected: 2", visited)
	}
	if unconfirmed.Has(drop.Id()) {
		t.Fatalf("removal from visitor was lost")
	}
	checkLedger(t)
}

func TestRemove(t *testing.T) {
	accounts := memoryAccounts{
		1: &account.View{Id: 1, UnconfirmedBalanceNQT: 1000},
	}
	setup(t, 10, accounts)
	defer teardown(t)

	tx := payment(1, 2, 100, 0, startTime+500)

	if err := unconfirmed.Store(tx); nil != err {
		t.Fatalf("store error: %s", err)
	}

	unconfirmed.Remove(tx)

	if unconfirmed.Has(tx.Id()) {
		t.Fatalf("removed transaction still pooled")
	}
	if r := unconfirmed.ReservedBalance(1); 0 != r {
		t.Fatalf("removed transaction still reserved: %d", r)
	}

	// removing again is a no-op
	unconfirmed.Remove(tx)
	checkLedger(t)
}

// after a clear the pool behaves exactly like a fresh pool
func TestClear(t *testing.T) {
	accounts := memoryAccounts{
		1: &account.View{Id: 1, UnconfirmedBalanceNQT: 1000},
	}
	setup(t, 3, accounts)
	defer teardown(t)

	t1 := payment(1, 1, 100, 0, startTime+500)
	t2 := payment(1, 2, 100, 0, startTime+500)
	if err := unconfirmed.Store(t1); nil != err {
		t.Fatalf("store error: %s", err)
	}
	if err := unconfirmed.Store(t2); nil != err {
		t.Fatalf("store error: %s", err)
	}

	unconfirmed.Clear()

	if 0 != len(unconfirmed.All()) {
		t.Fatalf("pool not empty after clear")
	}
	if unconfirmed.Has(t1.Id()) || unconfirmed.Has(t2.Id()) {
		t.Fatalf("entries survive a clear")
	}
	pooled, senders, _ := unconfirmed.ReadCounters()
	if 0 != pooled || 0 != senders {
		t.Fatalf("counters after clear: %d %d", pooled, senders)
	}

	// admissions start over with the full balance available
	t3 := payment(1, 3, 1000, 0, startTime+500)
	if err := unconfirmed.Store(t3); nil != err {
		t.Fatalf("store after clear error: %s", err)
	}
	if !unconfirmed.Has(t3.Id()) {
		t.Fatalf("admission after clear failed")
	}
	checkLedger(t)
}

// hammer the pool from several goroutines and verify the invariants
// still hold afterwards
func TestConcurrentAccess(t *testing.T) {
	accounts := memoryAccounts{
		1: &account.View{Id: 1, UnconfirmedBalanceNQT: 1 << 40},
		2: &account.View{Id: 2, UnconfirmedBalanceNQT: 1 << 40},
		3: &account.View{Id: 3, UnconfirmedBalanceNQT: 1 << 40},
	}
	setup(t, 16, accounts)
	defer teardown(t)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker += 1 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			sender := uint64(worker%3 + 1)
			for i := 0; i < 200; i += 1 {
				tx := payment(sender, uint64(worker*1000+i+1), 10, 1, startTime+500)
				_ = unconfirmed.Store(tx)
				switch i % 4 {
				case 0:
					_ = unconfirmed.Get(tx.Id())
				case 1:
					_ = unconfirmed.All()
				case 2:
					unconfirmed.Remove(tx)
				case 3:
					_ = unconfirmed.Has(tx.Id())
				}
			}
		}(worker)
	}
	wg.Wait()

	pooled, _, capacity := unconfirmed.ReadCounters()
	if pooled > capacity {
		t.Fatalf("pooled: %d exceeds capacity: %d", pooled, capacity)
	}
	checkLedger(t)
}

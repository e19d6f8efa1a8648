// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/burst-apps-team/burstd/storage"
	"github.com/burst-apps-team/burstd/transactionrecord"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// main test routine for the basic storage operations
func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("key-one")
	value := []byte("value-one")

	if p.Has(key) {
		t.Fatalf("key exists before put")
	}

	p.Put(key, value)

	if !p.Has(key) {
		t.Fatalf("key does not exist after put")
	}
	data := p.Get(key)
	if string(data) != string(value) {
		t.Fatalf("actual: %q  expected: %q", data, value)
	}

	p.Delete(key)

	if p.Has(key) {
		t.Fatalf("key still exists after delete")
	}
	if nil != p.Get(key) {
		t.Fatalf("value still readable after delete")
	}
}

// repeated get must be served consistently through the read cache
func TestCachedGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("cached")
	p.Put(key, []byte("before"))

	_ = p.Get(key) // populate the cache

	p.Put(key, []byte("after"))
	data := p.Get(key)
	if "after" != string(data) {
		t.Fatalf("stale read through cache: %q", data)
	}

	p.Delete(key)
	if nil != p.Get(key) {
		t.Fatalf("cache returned deleted key")
	}
}

// pools must not collide even for identical keys
func TestPrefixIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")

	storage.Pool.Accounts.Put(key, []byte("account"))
	storage.Pool.Transactions.Put(key, []byte("transaction"))

	if "account" != string(storage.Pool.Accounts.Get(key)) {
		t.Fatalf("accounts pool corrupted")
	}
	if "transaction" != string(storage.Pool.Transactions.Get(key)) {
		t.Fatalf("transactions pool corrupted")
	}

	storage.Pool.Accounts.Delete(key)
	if storage.Pool.Accounts.Has(key) {
		t.Fatalf("accounts key not deleted")
	}
	if !storage.Pool.Transactions.Has(key) {
		t.Fatalf("transactions key wrongly deleted")
	}
}

// store and reload a packed transaction record
func TestTransactionRoundTrip(t *testing.T) {
	setup(t)
	defer teardown(t)

	tx := transactionrecord.Transaction{
		TxType:      transactionrecord.OrdinaryPayment,
		SenderId:    7,
		RecipientId: 8,
		AmountNQT:   1000,
		FeeNQT:      100,
		Expiration:  50000,
	}

	packed := tx.Pack()
	txId := packed.MakeId()

	key, err := txId.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	storage.Pool.Transactions.Put(key, packed)

	back, err := transactionrecord.Packed(storage.Pool.Transactions.Get(key)).Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *back != tx {
		t.Fatalf("actual: %#v  expected: %#v", back, tx)
	}
}

// double initialise must be rejected
func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName)
	if nil == err {
		t.Fatalf("second initialise did not fail")
	}
}

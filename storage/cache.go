// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache - expiring read cache in front of the database
//
// admission checks hit the same few account records for every
// transaction a busy sender submits, so those reads are answered from
// memory; writes push through so a balance update is visible to the
// next admission immediately
type Cache interface {
	Get(string) ([]byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// account balances move at block cadence (four minutes on this chain)
// so an unrefreshed entry is dropped well inside one block interval
const (
	entryLifetime   = 1 * time.Minute
	cleanupInterval = 2 * time.Minute
)

type readCache struct {
	cache *gocache.Cache
}

// a value together with the operation that produced it; a delete
// marker suppresses the database read for keys known to be gone
type entry struct {
	op    dbOperation
	value []byte
}

func newCache() *readCache {
	return &readCache{
		cache: gocache.New(entryLifetime, cleanupInterval),
	}
}

func (r *readCache) Get(key string) ([]byte, bool) {
	obj, found := r.cache.Get(key)
	if !found {
		return nil, false
	}

	e := obj.(entry)
	if dbDelete == e.op {
		return nil, false
	}

	return e.value, true
}

func (r *readCache) Set(op dbOperation, key string, value []byte) {
	r.cache.Set(key, entry{op: op, value: value}, entryLifetime)
}

func (r *readCache) Clear() {
	r.cache.Flush()
}

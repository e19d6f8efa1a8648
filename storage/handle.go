// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - handle of a logical sub-pool of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Put nil database")
		return
	}
	prefixed := p.prefixKey(key)
	err := poolData.db.Put(prefixed, value, nil)
	logger.PanicIfError("pool.Put", err)
	poolData.cache.Set(dbPut, string(prefixed), value)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Delete nil database")
		return
	}
	prefixed := p.prefixKey(key)
	err := poolData.db.Delete(prefixed, nil)
	logger.PanicIfError("pool.Delete", err)
	poolData.cache.Set(dbDelete, string(prefixed), nil)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return nil
	}

	prefixed := p.prefixKey(key)
	if value, found := poolData.cache.Get(string(prefixed)); found {
		return value
	}

	value, err := poolData.db.Get(prefixed, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)

	poolData.cache.Set(dbPut, string(prefixed), value)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	return nil != p.Get(key)
}

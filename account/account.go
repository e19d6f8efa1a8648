// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - durable account balance records
//
// records live in storage.Pool.Accounts keyed by the account id; the
// unconfirmed balance is the figure admission checks reserve against
package account

import (
	"encoding/binary"

	"github.com/burst-apps-team/burstd/fault"
	"github.com/burst-apps-team/burstd/storage"
)

// packed record layout:
//   balance              8 bytes little endian
//   unconfirmed balance  8 bytes little endian
const recordLength = 8 + 8

// View - the balance view of a single account
type View struct {
	Id                    uint64
	BalanceNQT            uint64
	UnconfirmedBalanceNQT uint64
}

// Key - the storage key for an account id
func Key(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// Pack - serialise the balances for storage
func (v *View) Pack() []byte {
	buffer := make([]byte, recordLength)
	binary.LittleEndian.PutUint64(buffer[0:], v.BalanceNQT)
	binary.LittleEndian.PutUint64(buffer[8:], v.UnconfirmedBalanceNQT)
	return buffer
}

// Unpack - deserialise a stored record
func Unpack(id uint64, buffer []byte) (*View, error) {
	if recordLength != len(buffer) {
		return nil, fault.ErrNotAValidAccountRecord
	}
	return &View{
		Id:                    id,
		BalanceNQT:            binary.LittleEndian.Uint64(buffer[0:]),
		UnconfirmedBalanceNQT: binary.LittleEndian.Uint64(buffer[8:]),
	}, nil
}

// Put - write an account record
func Put(v *View) {
	storage.Pool.Accounts.Put(Key(v.Id), v.Pack())
}

// Delete - remove an account record
func Delete(id uint64) {
	storage.Pool.Accounts.Delete(Key(id))
}

// Store - account lookup over the storage pool
//
// satisfies the account collaborator interface of the unconfirmed pool
type Store struct{}

// Lookup - fetch the view for an account id
//
// second return is false when the account is unknown
func (Store) Lookup(id uint64) (*View, bool) {
	buffer := storage.Pool.Accounts.Get(Key(id))
	if nil == buffer {
		return nil, false
	}
	v, err := Unpack(id, buffer)
	if nil != err {
		return nil, false
	}
	return v, true
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/burst-apps-team/burstd/fault"
)

// Type - the recognised transaction types
type Type uint8

// transaction types
const (
	OrdinaryPayment Type = iota
	ArbitraryMessage
	AliasAssignment
	EscrowCreation
)

// packed record layout:
//   type        1 byte
//   sender      8 bytes little endian
//   recipient   8 bytes little endian
//   amount      8 bytes little endian
//   fee         8 bytes little endian
//   deposit     8 bytes little endian
//   expiration  4 bytes little endian
const packedLength = 1 + 8 + 8 + 8 + 8 + 8 + 4

// Transaction - a single transaction record
//
// records are read-only once created; the unconfirmed pool and the
// storage layer never modify them
type Transaction struct {
	TxType      Type
	SenderId    uint64 // zero denotes a system generated record
	RecipientId uint64
	AmountNQT   uint64
	FeeNQT      uint64
	DepositNQT  uint64 // escrow types only
	Expiration  uint32 // epoch time; stale when Expiration < now
}

// Packed - a packed transaction record
type Packed []byte

// Pack - serialise the record for digesting and storage
func (tx *Transaction) Pack() Packed {
	buffer := make([]byte, packedLength)
	buffer[0] = byte(tx.TxType)
	binary.LittleEndian.PutUint64(buffer[1:], tx.SenderId)
	binary.LittleEndian.PutUint64(buffer[9:], tx.RecipientId)
	binary.LittleEndian.PutUint64(buffer[17:], tx.AmountNQT)
	binary.LittleEndian.PutUint64(buffer[25:], tx.FeeNQT)
	binary.LittleEndian.PutUint64(buffer[33:], tx.DepositNQT)
	binary.LittleEndian.PutUint32(buffer[41:], tx.Expiration)
	return buffer
}

// Unpack - deserialise a packed record
func (p Packed) Unpack() (*Transaction, error) {
	if packedLength != len(p) {
		return nil, fault.ErrInvalidTransactionRecord
	}
	tx := &Transaction{
		TxType:      Type(p[0]),
		SenderId:    binary.LittleEndian.Uint64(p[1:]),
		RecipientId: binary.LittleEndian.Uint64(p[9:]),
		AmountNQT:   binary.LittleEndian.Uint64(p[17:]),
		FeeNQT:      binary.LittleEndian.Uint64(p[25:]),
		DepositNQT:  binary.LittleEndian.Uint64(p[33:]),
		Expiration:  binary.LittleEndian.Uint32(p[41:]),
	}
	if tx.TxType > EscrowCreation {
		return nil, fault.ErrInvalidTransactionRecord
	}
	return tx, nil
}

// Id - the transaction identifier
func (tx *Transaction) Id() TxId {
	return tx.Pack().MakeId()
}

// MakeId - derive the identifier of a packed record
func (p Packed) MakeId() TxId {
	digest := sha3.Sum256(p)
	return TxId(binary.LittleEndian.Uint64(digest[:8]))
}

// IsExpired - check the record against an epoch time
func (tx *Transaction) IsExpired(now uint32) bool {
	return tx.Expiration < now
}

// TotalAmountToReserve - the amount the record commits from its
// sender's balance while unconfirmed
//
// fee plus the type specific locked amount; arithmetic overflow fails
// closed rather than wrapping
func (tx *Transaction) TotalAmountToReserve() (uint64, error) {
	switch tx.TxType {

	case OrdinaryPayment:
		return safeAdd(tx.AmountNQT, tx.FeeNQT)

	case ArbitraryMessage, AliasAssignment:
		return tx.FeeNQT, nil

	case EscrowCreation:
		locked, err := safeAdd(tx.AmountNQT, tx.DepositNQT)
		if nil != err {
			return 0, err
		}
		return safeAdd(locked, tx.FeeNQT)

	default:
		return 0, fault.ErrInvalidTransactionRecord
	}
}

// overflow checked addition
func safeAdd(a uint64, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fault.ErrInsufficientFunds
	}
	return sum, nil
}

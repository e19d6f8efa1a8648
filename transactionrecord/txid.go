// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strconv"

	"github.com/burst-apps-team/burstd/fault"
)

// TxId - the type of a transaction identifier
type TxId uint64

// String - convert id to an unsigned decimal string
// for use by the fmt package (for %s)
func (txId TxId) String() string {
	return strconv.FormatUint(uint64(txId), 10)
}

// GoString - convert id for use by the fmt package (for %#v)
func (txId TxId) GoString() string {
	return "<txid:" + txId.String() + ">"
}

// MarshalText - convert id to decimal text
func (txId TxId) MarshalText() ([]byte, error) {
	return []byte(txId.String()), nil
}

// UnmarshalText - convert decimal text into an id
func (txId *TxId) UnmarshalText(s []byte) error {
	n, err := strconv.ParseUint(string(s), 10, 64)
	if nil != err {
		return fault.ErrInvalidTransactionRecord
	}
	*txId = TxId(n)
	return nil
}

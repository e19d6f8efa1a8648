// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the binary transaction records
//
// a transaction is identified by the first eight bytes of the SHA3-256
// digest of its packed form, interpreted as a little endian number
//
// all monetary values are in NQT, the smallest unit of the currency
package transactionrecord

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unconfirmed - the pool of unconfirmed transactions
//
// holds transactions that were accepted by this node but are not yet
// part of a confirmed block
//
// the pool is bounded: when full, the entry that was admitted earliest
// is evicted to make room, regardless of its own validity
//
// every admission reserves the transaction's total amount against the
// sender's unconfirmed balance, so a sender can never commit more
// funds across the pool than the account actually holds
//
// expired transactions are cleaned up lazily: any operation that
// observes a stale entry removes it, so read operations may mutate the
// pool and therefore take the exclusive lock
package unconfirmed

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/burst-apps-team/burstd/fault"
	"github.com/burst-apps-team/burstd/storage"
	"github.com/burst-apps-team/burstd/transactionrecord"
	"github.com/burst-apps-team/burstd/unconfirmed"
)

// allowed transactions in a single batch submission
const maximumBatchSize = 100

// Transaction - transaction RPC entries
type Transaction struct {
	log     *logger.L
	limiter *rate.Limiter
}

// TransactionArguments - one transaction record as submitted by a client
type TransactionArguments struct {
	TxType      uint8  `json:"txType"`
	SenderId    uint64 `json:"senderId"`
	RecipientId uint64 `json:"recipientId"`
	AmountNQT   uint64 `json:"amountNQT"`
	FeeNQT      uint64 `json:"feeNQT"`
	DepositNQT  uint64 `json:"depositNQT"`
	Expiration  uint32 `json:"expiration"`
}

// convert the wire arguments to a record
func (arguments *TransactionArguments) toRecord() (*transactionrecord.Transaction, error) {
	if transactionrecord.Type(arguments.TxType) > transactionrecord.EscrowCreation {
		return nil, fault.ErrInvalidTransactionRecord
	}
	return &transactionrecord.Transaction{
		TxType:      transactionrecord.Type(arguments.TxType),
		SenderId:    arguments.SenderId,
		RecipientId: arguments.RecipientId,
		AmountNQT:   arguments.AmountNQT,
		FeeNQT:      arguments.FeeNQT,
		DepositNQT:  arguments.DepositNQT,
		Expiration:  arguments.Expiration,
	}, nil
}

// SubmitReply - result of a single submission
type SubmitReply struct {
	TxId   transactionrecord.TxId `json:"txId"`
	Status string                 `json:"status"`
}

// Submit - offer one transaction to the unconfirmed pool
func (t *Transaction) Submit(arguments *TransactionArguments, reply *SubmitReply) error {
	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	tx, err := arguments.toRecord()
	if nil != err {
		return err
	}

	t.log.Infof("submit: %s", tx.Id())

	if err := unconfirmed.Store(tx); nil != err {
		return err
	}

	reply.TxId = tx.Id()
	reply.Status = transactionStatus(tx.Id())
	return nil
}

// SubmitBatchArguments - a collection of transactions
type SubmitBatchArguments struct {
	Transactions []TransactionArguments `json:"transactions"`
}

// SubmitBatchReply - result of a batch submission
//
// admission is sequential, NOT all-or-nothing: records admitted before
// a failure remain pooled even though an error is returned
type SubmitBatchReply struct {
	TxIds []transactionrecord.TxId `json:"txIds"`
}

// SubmitBatch - offer a collection of transactions to the pool
func (t *Transaction) SubmitBatch(arguments *SubmitBatchArguments, reply *SubmitBatchReply) error {
	if err := rateLimitN(t.limiter, len(arguments.Transactions), maximumBatchSize); nil != err {
		return err
	}

	txs := make([]*transactionrecord.Transaction, len(arguments.Transactions))
	txIds := make([]transactionrecord.TxId, len(arguments.Transactions))
	for i := range arguments.Transactions {
		tx, err := arguments.Transactions[i].toRecord()
		if nil != err {
			return err
		}
		txs[i] = tx
		txIds[i] = tx.Id()
	}

	t.log.Infof("submit batch: %d transactions", len(txs))

	err := unconfirmed.StoreBatch(txs)

	// ids are reported even on error so the caller can check which
	// entries were committed before the failure
	reply.TxIds = txIds
	return err
}

// StatusArguments - the id to query
type StatusArguments struct {
	TxId transactionrecord.TxId `json:"txId"`
}

// StatusReply - transaction state
type StatusReply struct {
	Status string `json:"status"`
}

// Status - query the state of a transaction
func (t *Transaction) Status(arguments *StatusArguments, reply *StatusReply) error {
	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	reply.Status = transactionStatus(arguments.TxId)
	return nil
}

// resolve pool membership and the durable store into a status string
func transactionStatus(txId transactionrecord.TxId) string {
	if unconfirmed.Has(txId) {
		return "pending"
	}
	key, err := txId.MarshalText()
	if nil == err && storage.Pool.Transactions.Has(key) {
		return "confirmed"
	}
	return "unknown"
}

// ListArguments - how many entries to return
type ListArguments struct {
	Count int `json:"count"`
}

// TransactionInfo - summary of one pooled entry
type TransactionInfo struct {
	TxId       transactionrecord.TxId `json:"txId"`
	SenderId   uint64                 `json:"senderId"`
	AmountNQT  uint64                 `json:"amountNQT"`
	FeeNQT     uint64                 `json:"feeNQT"`
	Expiration uint32                 `json:"expiration"`
}

// ListReply - the pooled entries
type ListReply struct {
	Transactions []TransactionInfo `json:"transactions"`
	Pooled       int               `json:"pooled"`
}

// List - fetch a slice of the unconfirmed pool
func (t *Transaction) List(arguments *ListArguments, reply *ListReply) error {
	if err := rateLimitN(t.limiter, arguments.Count, maximumBatchSize); nil != err {
		return err
	}

	all := unconfirmed.All()
	reply.Pooled = len(all)

	n := arguments.Count
	if n > len(all) {
		n = len(all)
	}

	reply.Transactions = make([]TransactionInfo, n)
	for i := 0; i < n; i += 1 {
		tx := all[i]
		reply.Transactions[i] = TransactionInfo{
			TxId:       tx.Id(),
			SenderId:   tx.SenderId,
			AmountNQT:  tx.AmountNQT,
			FeeNQT:     tx.FeeNQT,
			Expiration: tx.Expiration,
		}
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/burst-apps-team/burstd/fault"
	"github.com/burst-apps-team/burstd/rpc"
)

// SubmitData - request data for a transaction submission
//
// the deadline is in minutes relative to the node clock; the
// expiration time is computed from the epoch time reported by the
// node so a slow local clock cannot produce an already expired record
type SubmitData struct {
	TxType      uint8
	SenderId    uint64
	RecipientId uint64
	AmountNQT   uint64
	FeeNQT      uint64
	DepositNQT  uint64
	Deadline    uint32
}

// Submit - offer a single transaction to the pool
func (client *Client) Submit(submitConfig *SubmitData) (*rpc.SubmitReply, error) {

	if 0 == submitConfig.Deadline {
		return nil, fault.ErrMissingParameters
	}

	info, err := client.GetNodeInfo()
	if nil != err {
		return nil, err
	}

	submitArgs := rpc.TransactionArguments{
		TxType:      submitConfig.TxType,
		SenderId:    submitConfig.SenderId,
		RecipientId: submitConfig.RecipientId,
		AmountNQT:   submitConfig.AmountNQT,
		FeeNQT:      submitConfig.FeeNQT,
		DepositNQT:  submitConfig.DepositNQT,
		Expiration:  info.EpochTime + 60*submitConfig.Deadline,
	}

	client.printJson("Submit Request", submitArgs)

	var reply rpc.SubmitReply
	err = client.client.Call("Transaction.Submit", submitArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return &reply, nil
}

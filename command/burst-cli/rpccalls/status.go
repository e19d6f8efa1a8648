// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/burst-apps-team/burstd/rpc"
	"github.com/burst-apps-team/burstd/transactionrecord"
)

// StatusData - request data for a transaction status
type StatusData struct {
	TxId string
}

// GetTransactionStatus - perform a status request
func (client *Client) GetTransactionStatus(statusConfig *StatusData) (*rpc.StatusReply, error) {

	var txId transactionrecord.TxId
	err := txId.UnmarshalText([]byte(statusConfig.TxId))
	if nil != err {
		return nil, err
	}

	statusArgs := rpc.StatusArguments{
		TxId: txId,
	}

	client.printJson("Status Request", statusArgs)

	var reply rpc.StatusReply
	err = client.client.Call("Transaction.Status", statusArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return &reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/burst-apps-team/burstd/rpc"
)

// ListData - request data for a pool listing
type ListData struct {
	Count int
}

// ListTransactions - fetch unconfirmed transactions from the pool
func (client *Client) ListTransactions(listConfig *ListData) (*rpc.ListReply, error) {

	listArgs := rpc.ListArguments{
		Count: listConfig.Count,
	}

	client.printJson("List Request", listArgs)

	var reply rpc.ListReply
	err := client.client.Call("Transaction.List", listArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return &reply, nil
}

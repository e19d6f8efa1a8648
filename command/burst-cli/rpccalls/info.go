// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/burst-apps-team/burstd/rpc"
)

// GetNodeInfo - request status from burstd
func (client *Client) GetNodeInfo() (*rpc.InfoReply, error) {
	var reply rpc.InfoReply
	if err := client.client.Call("Node.Info", rpc.NodeArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}

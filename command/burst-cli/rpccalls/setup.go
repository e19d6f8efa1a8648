// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"io"
	"net"
	netrpc "net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connection streams
type Client struct {
	conn    net.Conn
	client  *netrpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a burstd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	conn, err := net.Dial("tcp", connect)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the burstd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/burst-apps-team/burstd/command/burst-cli/rpccalls"
	"github.com/burst-apps-team/burstd/fault"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId := c.String("txid")
	if "" == txId {
		return fault.ErrMissingParameters
	}

	if m.verbose {
		fmt.Fprintf(m.e, "txid: %s\n", txId)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	statusConfig := &rpccalls.StatusData{
		TxId: txId,
	}

	response, err := client.GetTransactionStatus(statusConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

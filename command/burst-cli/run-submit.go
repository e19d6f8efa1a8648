// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/burst-apps-team/burstd/command/burst-cli/rpccalls"
	"github.com/burst-apps-team/burstd/transactionrecord"
)

var transactionTypes = map[string]transactionrecord.Type{
	"payment": transactionrecord.OrdinaryPayment,
	"message": transactionrecord.ArbitraryMessage,
	"alias":   transactionrecord.AliasAssignment,
	"escrow":  transactionrecord.EscrowCreation,
}

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txType, ok := transactionTypes[c.String("type")]
	if !ok {
		return fmt.Errorf("incorrect transaction type: %q", c.String("type"))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s  sender: %d\n", c.String("type"), c.Uint64("sender"))
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	submitConfig := &rpccalls.SubmitData{
		TxType:      uint8(txType),
		SenderId:    c.Uint64("sender"),
		RecipientId: c.Uint64("recipient"),
		AmountNQT:   c.Uint64("amount"),
		FeeNQT:      c.Uint64("fee"),
		DepositNQT:  c.Uint64("deposit"),
		Deadline:    uint32(c.Uint("deadline")),
	}

	response, err := client.Submit(submitConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

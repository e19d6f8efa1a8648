// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/burst-apps-team/burstd/command/burst-cli/rpccalls"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	listConfig := &rpccalls.ListData{
		Count: c.Int("count"),
	}

	response, err := client.ListTransactions(listConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

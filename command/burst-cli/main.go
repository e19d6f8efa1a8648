// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "burst-cli"
	app.Usage = "unconfirmed transaction pool client"
	app.Version = Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:8135",
			Usage: " burstd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "submit",
			Usage:     "submit a transaction to the pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "payment",
					Usage: " transaction `TYPE` [payment|message|alias|escrow]",
				},
				cli.Uint64Flag{
					Name:  "sender, s",
					Usage: "*numeric sender account `ID`",
				},
				cli.Uint64Flag{
					Name:  "recipient, r",
					Usage: " numeric recipient account `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: " amount in `NQT`",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Usage: " fee in `NQT`",
				},
				cli.Uint64Flag{
					Name:  "deposit",
					Usage: " escrow deposit in `NQT`",
				},
				cli.UintFlag{
					Name:  "deadline, d",
					Value: 60,
					Usage: " pool lifetime in `MINUTES`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `ID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:  "list",
			Usage: "list unconfirmed transactions held in the pool",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 25,
					Usage: " maximum entries to return `N`",
				},
			},
			Action: runList,
		},
		{
			Name:   "info",
			Usage:  "display burstd status",
			Action: runInfo,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		app.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

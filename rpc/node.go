// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/burst-apps-team/burstd/chaintime"
	"github.com/burst-apps-team/burstd/unconfirmed"
)

// Node - node RPC entries
type Node struct {
	log     *logger.L
	limiter *rate.Limiter
	start   time.Time
	version string
	clock   chaintime.Source
}

// NodeArguments - empty arguments
type NodeArguments struct{}

// InfoReply - status of this node
type InfoReply struct {
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	EpochTime uint32 `json:"epochTime"`
	Pooled    int    `json:"pooled"`
	Senders   int    `json:"senders"`
	Capacity  int    `json:"capacity"`
}

// Info - query this node
func (n *Node) Info(arguments *NodeArguments, reply *InfoReply) error {
	if err := rateLimit(n.limiter); nil != err {
		return err
	}

	pooled, senders, capacity := unconfirmed.ReadCounters()

	reply.Version = n.version
	reply.Uptime = time.Since(n.start).String()
	reply.EpochTime = n.clock.CurrentEpochTime()
	reply.Pooled = pooled
	reply.Senders = senders
	reply.Capacity = capacity
	return nil
}

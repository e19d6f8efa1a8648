// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC interface for clients
//
// serves the net/rpc json codec over plain TCP; every handler is rate
// limited so a hostile client cannot starve block processing of the
// unconfirmed pool lock
package rpc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/burst-apps-team/burstd/chaintime"
	"github.com/burst-apps-team/burstd/counter"
	"github.com/burst-apps-team/burstd/fault"
)

const (
	logName = "client_rpc"

	// rate limits per handler
	defaultRateLimit = 200 // requests per second
	defaultRateBurst = 100
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
}

// globals
type globalDataType struct {
	log       *logger.L
	listeners []net.Listener
	count     counter.Counter
	enabled   bool
}

var globalData globalDataType

// Initialise - start the RPC server
func Initialise(configuration *Configuration, version string, clock chaintime.Source) error {

	if globalData.enabled {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New(logName)
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	if 0 == len(configuration.Listen) {
		globalData.log.Error("missing listen")
		return fault.ErrMissingParameters
	}
	if configuration.MaximumConnections < 1 {
		globalData.log.Errorf("invalid maximum connection limit: %d", configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}

	server := rpc.NewServer()

	transaction := &Transaction{
		log:     logger.New("rpc/transaction"),
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
	}
	node := &Node{
		log:     logger.New("rpc/node"),
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
		start:   time.Now(),
		version: version,
		clock:   clock,
	}

	if err := server.Register(transaction); nil != err {
		return err
	}
	if err := server.Register(node); nil != err {
		return err
	}

	globalData.listeners = make([]net.Listener, 0, len(configuration.Listen))
	for _, address := range configuration.Listen {
		globalData.log.Infof("starting RPC server: %s", address)
		l, err := net.Listen("tcp", address)
		if nil != err {
			globalData.log.Errorf("rpc server listen: %q error: %s", address, err)
			Finalise()
			return err
		}
		globalData.listeners = append(globalData.listeners, l)
		go doServeRPC(l, server, configuration.MaximumConnections, globalData.log, &globalData.count)
	}

	globalData.enabled = true

	return nil
}

// Finalise - stop the RPC server
func Finalise() {

	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil
	globalData.enabled = false

	if nil != globalData.log {
		globalData.log.Info("finished")
		globalData.log.Flush()
	}
}

// serve one listen address until it is closed
func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Infof("rpc.server terminated: accept error: %s", err)
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

// limiting for a single request
func rateLimit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// limiting for a counted request
//
// an invalid count gets limited as a single request before being
// rejected
func rateLimitN(limiter *rate.Limiter, count int, maximumCount int) error {

	if count <= 0 || count > maximumCount {
		if err := rateLimit(limiter); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

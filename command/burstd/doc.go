// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// The unconfirmed transaction pool daemon
//
// reads a Lua configuration file, opens the account and transaction
// database, starts the pool and serves JSON RPC 1.0 requests on the
// configured listen addresses until SIGINT/SIGTERM
//
//   burstd --config-file=/etc/burstd.conf
package main

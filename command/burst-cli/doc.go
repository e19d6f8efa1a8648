// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command-line client for the burstd unconfirmed transaction pool
//
// e.g. to submit a payment and then check on it:
//
//   burst-cli -c 127.0.0.1:8135 submit -s 100 -r 200 -a 5000 -f 100
//   burst-cli -c 127.0.0.1:8135 status -t TXID
package main

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse the Lua configuration file
//
// the configuration file is actually a Lua script that must return a
// table of configuration values; this allows the file to compute
// values and reference environment variables
package configuration

// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database split into logical pools by a
// one byte key prefix, with a small expiring read cache in front of
// the database
//
// the special pool: storage.Pool.TestData is only used for unit tests
package storage

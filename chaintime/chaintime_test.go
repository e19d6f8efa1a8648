// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaintime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/burst-apps-team/burstd/chaintime"
)

func TestCurrentEpochTime(t *testing.T) {
	clock := chaintime.NewClock()

	t1 := clock.CurrentEpochTime()
	assert.NotZero(t, t1, "epoch clock reads zero")

	t2 := clock.CurrentEpochTime()
	assert.True(t, t2 >= t1, "epoch clock went backwards")
}

func TestEpochToTime(t *testing.T) {
	clock := chaintime.NewClock()

	now := clock.CurrentEpochTime()
	wall := chaintime.EpochToTime(now)

	delta := time.Since(wall)
	assert.True(t, delta >= 0 && delta < 2*time.Second, "epoch conversion drifted: %s", delta)
}

func TestEpochOrigin(t *testing.T) {
	origin := chaintime.EpochToTime(0)
	assert.Equal(t, 2014, origin.Year(), "wrong genesis year")
}

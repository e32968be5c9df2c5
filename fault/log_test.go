// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

// without a log channel the message goes to stdout, but must still panic
func TestPanicWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("pool corrupt: %d", 3)
	}, "Panicf did not panic")
	assert.Panics(t, func() { fault.Panic("stop") }, "Panic did not panic")
}

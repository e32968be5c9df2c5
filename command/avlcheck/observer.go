// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/logger"
)

// totals for a whole run
type statistics struct {
	inserts        counter.Counter
	overwrites     counter.Counter
	removes        counter.Counter
	misses         counter.Counter
	leftRotations  counter.Counter
	rightRotations counter.Counter
}

// log all non-zero totals
func (s *statistics) report(log *logger.L) {
	items := []struct {
		name  string
		count *counter.Counter
	}{
		{"inserts", &s.inserts},
		{"overwrites", &s.overwrites},
		{"removes", &s.removes},
		{"misses", &s.misses},
		{"left rotations", &s.leftRotations},
		{"right rotations", &s.rightRotations},
	}
	for _, item := range items {
		if !item.count.IsZero() {
			log.Infof("%s: %d", item.name, item.count.Uint64())
		}
	}
}

// counts rotations and optionally traces them
type rotationObserver struct {
	stats *statistics
	log   *logger.L // nil to disable tracing
}

// ensure the observer can be attached to a tree
var _ avl.Observer = &rotationObserver{}

func newRotationObserver(stats *statistics, trace bool) *rotationObserver {
	o := &rotationObserver{
		stats: stats,
	}
	if trace {
		o.log = logger.New("rotation")
	}
	return o
}

// Rotated - called by the tree for every single rotation
func (o *rotationObserver) Rotated(direction avl.Direction, parent avl.Item, child avl.Item) {
	switch direction {
	case avl.Left:
		o.stats.leftRotations.Increment()
	case avl.Right:
		o.stats.rightRotations.Increment()
	}
	if nil != o.log {
		o.log.Debugf("%s: %v above %v", direction, child, parent)
	}
}

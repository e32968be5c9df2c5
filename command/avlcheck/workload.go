// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// random inserts and removes, mirrored in a map which the tree must
// agree with at every check point
func runWorkload(log *logger.L, w WorkloadType, tree *avl.Tree, stats *statistics, bar *progressbar.ProgressBar) error {

	if err := w.validate(); nil != err {
		return err
	}

	log.Infof("workload: seed: %d  operations: %d  key space: %d  remove: %d%%", w.Seed, w.Operations, w.KeySpace, w.RemovePercent)

	rng := rand.New(rand.NewSource(w.Seed))
	oracle := make(map[int]int)

	// every key ever inserted, a miss here means the key cannot be
	// in the tree
	seen := bloom.New(uint(20*w.KeySpace), 5)

	// tree may already hold integer keys
	tree.Walk(func(key avl.Item, value interface{}) bool {
		if k, ok := key.(intKey); ok {
			if v, ok := value.(int); ok {
				oracle[int(k)] = v
				seen.AddString(k.String())
			}
		}
		return true
	})
	if len(oracle) != tree.Count() {
		return fmt.Errorf("%w: tree has %d keys not usable by workload", fault.ErrOracleMismatch, tree.Count()-len(oracle))
	}

	for i := 0; i < w.Operations; i += 1 {
		k := rng.Intn(w.KeySpace)
		_, present := oracle[k]
		name := strconv.Itoa(k)

		if rng.Intn(100) < w.RemovePercent {
			removed := tree.Remove(intKey(k))
			if removed && !seen.TestString(name) {
				return fmt.Errorf("%w: operation: %d  removed never inserted key: %d", fault.ErrOracleMismatch, i, k)
			}
			if removed != present {
				return fmt.Errorf("%w: operation: %d  remove: %d  tree: %v  map: %v", fault.ErrOracleMismatch, i, k, removed, present)
			}
			if removed {
				stats.removes.Increment()
				delete(oracle, k)
			} else {
				stats.misses.Increment()
			}
		} else {
			added := tree.Insert(intKey(k), i)
			if added == present {
				return fmt.Errorf("%w: operation: %d  insert: %d  added: %v  map: %v", fault.ErrOracleMismatch, i, k, added, present)
			}
			if added {
				stats.inserts.Increment()
			} else {
				stats.overwrites.Increment()
			}
			oracle[k] = i
			seen.AddString(name)
		}

		if 0 != w.CheckEvery && 0 == (i+1)%w.CheckEvery {
			if err := verify(tree, oracle); nil != err {
				log.Errorf("operation: %d  verify error: %s", i, err)
				return err
			}
		}

		if nil != bar {
			bar.Add(1)
		}
	}
	if nil != bar {
		bar.Finish()
	}

	if err := verify(tree, oracle); nil != err {
		log.Errorf("final verify error: %s", err)
		return err
	}

	log.Infof("workload: complete  keys: %d  height: %d", tree.Count(), tree.Height())
	return nil
}

// full structural check plus key by key comparison with the map
func verify(tree *avl.Tree, oracle map[int]int) error {
	if err := tree.Check(); nil != err {
		return err
	}

	expected := make([]int, 0, len(oracle))
	for k := range oracle {
		expected = append(expected, k)
	}
	sort.Ints(expected)

	keys := tree.Keys()
	if len(keys) != len(expected) {
		return fmt.Errorf("%w: tree keys: %d  map keys: %d", fault.ErrOracleMismatch, len(keys), len(expected))
	}
	for i, key := range keys {
		k := int(key.(intKey))
		if k != expected[i] {
			return fmt.Errorf("%w: position: %d  tree: %d  map: %d", fault.ErrOracleMismatch, i, k, expected[i])
		}
		if value, _ := tree.Get(key); value != oracle[k] {
			return fmt.Errorf("%w: key: %d  tree value: %v  map value: %d", fault.ErrOracleMismatch, k, value, oracle[k])
		}
	}
	return nil
}

// a bar sized for the workload
func newProgressBar(w WorkloadType) *progressbar.ProgressBar {
	return progressbar.NewOptions(w.Operations,
		progressbar.OptionSetDescription("random workload"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

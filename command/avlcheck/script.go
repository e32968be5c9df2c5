// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// script operations
const (
	opInsert = "insert"
	opRemove = "remove"
	opLookup = "lookup"
	opCheck  = "check"
	opPrint  = "print"
	opDump   = "dump"
	opClear  = "clear"
)

// Step - one line of a YAML script
type Step struct {
	Op     string      `yaml:"op"`
	Key    interface{} `yaml:"key"`
	Value  interface{} `yaml:"value"`
	Expect interface{} `yaml:"expect"`
	Absent bool        `yaml:"absent"`
}

// Script - as read from a YAML file
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// a script with all keys converted
type compiledScript struct {
	name  string
	steps []Step
	keys  []avl.Item // parallel to steps, nil for keyless operations
}

// parsed scripts by absolute path, never expire
var scriptCache = cache.New(cache.NoExpiration, 0)

// read a script, reusing an earlier parse of the same file
func loadScript(fileName string) (*compiledScript, error) {
	if s, found := scriptCache.Get(fileName); found {
		return s.(*compiledScript), nil
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	s, err := parseScript(data)
	if nil != err {
		return nil, fmt.Errorf("script: %q  error: %w", fileName, err)
	}
	if "" == s.name {
		s.name = fileName
	}

	scriptCache.Set(fileName, s, cache.NoExpiration)
	return s, nil
}

// decode and validate a script
func parseScript(data []byte) (*compiledScript, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); nil != err {
		return nil, err
	}

	s := &compiledScript{
		name:  script.Name,
		steps: script.Steps,
		keys:  make([]avl.Item, len(script.Steps)),
	}

	kind := noKey
	for i, step := range script.Steps {
		switch step.Op {
		case opInsert, opRemove, opLookup:
		case opCheck, opPrint, opDump, opClear:
			continue
		default:
			return nil, fmt.Errorf("%w: step: %d  op: %q", fault.ErrUnknownOperation, i+1, step.Op)
		}

		key, k, err := makeKey(step.Key)
		if nil != err {
			return nil, fmt.Errorf("step: %d  op: %s  error: %w", i+1, step.Op, err)
		}
		if noKey != kind && k != kind {
			return nil, fmt.Errorf("%w: step: %d  key: %v", fault.ErrMixedKeyTypes, i+1, key)
		}
		kind = k
		s.keys[i] = key
	}
	return s, nil
}

// run every step of a script against a tree
//
// the tree is checked after each structural change and the first
// failure stops the run
func runScript(log *logger.L, s *compiledScript, tree *avl.Tree, stats *statistics, w io.Writer) error {

	log.Infof("script: %s  steps: %d", s.name, len(s.steps))

	for i, step := range s.steps {
		key := s.keys[i]
		n := i + 1

		switch step.Op {

		case opInsert:
			if tree.Insert(key, step.Value) {
				stats.inserts.Increment()
			} else {
				stats.overwrites.Increment()
			}

		case opRemove:
			removed := tree.Remove(key)
			if removed {
				stats.removes.Increment()
			} else {
				stats.misses.Increment()
			}
			if step.Absent && removed {
				return fmt.Errorf("%w: step: %d  key: %v", fault.ErrUnexpectedKey, n, key)
			}
			if !step.Absent && !removed {
				return fmt.Errorf("%w: step: %d  key: %v", fault.ErrKeyNotFound, n, key)
			}

		case opLookup:
			value, found := tree.Get(key)
			if step.Absent {
				if found {
					return fmt.Errorf("%w: step: %d  key: %v", fault.ErrUnexpectedKey, n, key)
				}
				continue
			}
			if !found {
				return fmt.Errorf("%w: step: %d  key: %v", fault.ErrKeyNotFound, n, key)
			}
			if nil != step.Expect && fmt.Sprint(step.Expect) != fmt.Sprint(value) {
				return fmt.Errorf("%w: step: %d  key: %v  actual: %v  expected: %v", fault.ErrLookupMismatch, n, key, value, step.Expect)
			}
			continue

		case opCheck:

		case opPrint:
			tree.Print(w, true)
			continue

		case opDump:
			tree.Dump(w)
			continue

		case opClear:
			tree.Clear()
		}

		if err := tree.Check(); nil != err {
			log.Errorf("script: %s  step: %d  op: %s  error: %s", s.name, n, step.Op, err)
			return fmt.Errorf("step: %d  op: %s  error: %w", n, step.Op, err)
		}
		log.Debugf("step: %d  op: %s  key: %v  count: %d", n, step.Op, key, tree.Count())
	}

	return nil
}

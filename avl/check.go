// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify every structural invariant of the tree
//
// key order, uniqueness, cached heights, balance, parent links and
// the node count; the first violation found is returned
func (tree *Tree) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fmt.Errorf("%w: root: %v", fault.ErrRootParent, tree.root.key)
	}
	n, err := check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  expected: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: recursive checker, low and high are exclusive bounds
// (nil for unbounded), returns the number of nodes in the sub-tree
func check(p *Node, up *Node, low Item, high Item) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fmt.Errorf("%w: at node: %v", fault.ErrParentLink, p.key)
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, fmt.Errorf("%w: %v not above %v", fault.ErrKeyOrder, p.key, low)
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, fmt.Errorf("%w: %v not below %v", fault.ErrKeyOrder, p.key, high)
	}

	nl, err := check(p.left, p, low, p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p, p.key, high)
	if nil != err {
		return 0, err
	}

	hl := p.left.heightOf()
	hr := p.right.heightOf()
	expected := hl + 1
	if hr > hl {
		expected = hr + 1
	}
	if p.height != expected {
		return 0, fmt.Errorf("%w: at node: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, expected)
	}
	if p.isUnbalanced() {
		return 0, fmt.Errorf("%w: at node: %v  balance: %+d", fault.ErrUnbalanced, p.key, p.Balance())
	}
	return nl + nr + 1, nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// key of a possibly absent node, for printing
func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns true if a node was added, false if an existing key just had
// its value replaced
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count = 1
		return true
	}

	p := tree.root
	c := 0
search:
	for {
		c = p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				break search
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				break search
			}
			p = p.right
		default:
			p.value = value
			return false
		}
	}

	n := newNode(key, value)
	n.up = p
	if c > 0 {
		p.left = n
	} else {
		p.right = n
	}
	tree.count += 1

	tree.insertRebalance(p)
	return true
}

// walk up from the parent of a new leaf; at most one node can be out
// of balance and one rotation there restores the sub-tree to its
// previous height
func (tree *Tree) insertRebalance(p *Node) {
	for nil != p {
		previous := p.height
		p.refreshHeight()
		if p.isUnbalanced() {
			top := tree.rebalance(p)
			tree.refreshAbove(top)
			return
		}
		if p.height == previous {
			return
		}
		p = p.up
	}
}

// re-derive heights above n until one does not change
func (tree *Tree) refreshAbove(n *Node) {
	for p := n.up; nil != p; p = p.up {
		previous := p.height
		p.refreshHeight()
		if p.height == previous {
			return
		}
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right == nil {
		// go up until arriving from a left branch
		for tree.up != nil && tree.up.right == tree {
			tree = tree.up
		}
		return tree.up
	}
	return tree.right.first()
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left == nil {
		// go up until arriving from a right branch
		for tree.up != nil && tree.up.left == tree {
			tree = tree.up
		}
		return tree.up
	}
	return tree.left.last()
}

// Walk - call f for each key/value in ascending key order, stopping
// early if f returns false
//
// the tree must not be modified from inside f
func (tree *Tree) Walk(f func(key Item, value interface{}) bool) {
	for p := tree.First(); nil != p; p = p.Next() {
		if !f(p.key, p.value) {
			return
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	tree.Walk(func(key Item, _ interface{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	observer Observer
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return tree.root.heightOf()
}

// SetObserver - receive a notification for every rotation, nil to stop
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}

// Clear - release all nodes leaving an empty tree
func (tree *Tree) Clear() {
	freeTree(tree.root)
	tree.root = nil
	tree.count = 0
}

// point the link that held old (a child of parent, or the root) at n
func (tree *Tree) replaceChild(parent *Node, old *Node, n *Node) {
	switch {
	case nil == parent:
		tree.root = n
	case parent.left == old:
		parent.left = n
	default:
		parent.right = n
	}
}

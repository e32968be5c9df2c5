// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was associated with the key or nil if the
// key was not present
func (tree *Tree) Delete(key Item) interface{} {
	value, _ := tree.remove(key)
	return value
}

// Remove - removes a specific item from the tree
//
// a missing key is not an error, it just returns false
func (tree *Tree) Remove(key Item) bool {
	_, removed := tree.remove(key)
	return removed
}

// internal delete routine
func (tree *Tree) remove(key Item) (interface{}, bool) {
	target := tree.Search(key)
	if nil == target { // key not in tree
		return nil, false
	}
	value := target.value // preserve the value part

	// move down to the predecessor's position which has no right
	// child, so this loop runs at most once
	for target.hasTwoChildren() {
		tree.swapNodes(target, target.predecessor())
	}

	// splice out: zero or one child
	child := target.left
	if nil == child {
		child = target.right
	}
	parent := target.up
	if nil != child {
		child.up = parent
	}
	tree.replaceChild(parent, target, child)

	freeNode(target) // return deleted node to pool
	tree.count -= 1

	tree.deleteRebalance(parent)
	return value, true
}

// walk up from the parent of a removed node; unlike insert a rotation
// can leave the sub-tree one shorter, so continue until a sub-tree
// height is unchanged or the root is passed
func (tree *Tree) deleteRebalance(p *Node) {
	for nil != p {
		previous := p.height
		p.refreshHeight()
		if p.isUnbalanced() {
			p = tree.rebalance(p)
		}
		if p.height == previous {
			return
		}
		p = p.up
	}
}

// exchange the tree positions of n1 and n2, where n2 is a descendant
// of n1 (they may be adjacent)
//
// keys and values stay with their nodes, but height describes the
// position so it is exchanged too
func (tree *Tree) swapNodes(n1 *Node, n2 *Node) {
	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right

	tree.replaceChild(p1, n1, n2)
	n2.up = p1

	if p2 == n1 {
		// n1 becomes the child of n2 on the side n2 used to be
		if l1 == n2 {
			n2.left, n2.right = n1, r1
		} else {
			n2.left, n2.right = l1, n1
		}
		n1.up = n2
	} else {
		if p2.left == n2 {
			p2.left = n1
		} else {
			p2.right = n1
		}
		n2.left, n2.right = l1, r1
		n1.up = p2
	}
	n1.left, n1.right = l2, r2

	// fix up pointers of the moved children
	for _, c := range []*Node{n1.left, n1.right} {
		if nil != c {
			c.up = n1
		}
	}
	for _, c := range []*Node{n2.left, n2.right} {
		if nil != c {
			c.up = n2
		}
	}

	n1.height, n2.height = n2.height, n1.height
}

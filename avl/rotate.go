// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single rotation: move x above its parent p
//
//	    p              x
//	   / \            / \
//	  a   x    =>    p   c
//	     / \        / \
//	    b   c      a   b
//
// and the mirror image when x is the left child
func (tree *Tree) promote(x *Node) {
	p := x.up
	g := p.up

	direction := Left
	if p.right == x {
		p.right = x.left
		if nil != p.right {
			p.right.up = p
		}
		x.left = p
	} else {
		direction = Right
		p.left = x.right
		if nil != p.left {
			p.left.up = p
		}
		x.right = p
	}

	x.up = g
	tree.replaceChild(g, p, x)
	p.up = x

	// p is now below x so must be first
	p.refreshHeight()
	x.refreshHeight()

	if nil != tree.observer {
		tree.observer.Rotated(direction, p.key, x.key)
	}
}

// rotateLeft - promote x, the right child of its parent, returning
// the node that ends up in the parent's old position
func (tree *Tree) rotateLeft(x *Node) *Node {
	// zig-zag: x leans left, so straighten it first
	if x.left.heightOf() > x.right.heightOf() {
		inner := x.left
		tree.promote(inner)
		x = inner
	}
	tree.promote(x)
	return x
}

// rotateRight - promote x, the left child of its parent, returning
// the node that ends up in the parent's old position
func (tree *Tree) rotateRight(x *Node) *Node {
	// zig-zag: x leans right, so straighten it first
	if x.right.heightOf() > x.left.heightOf() {
		inner := x.right
		tree.promote(inner)
		x = inner
	}
	tree.promote(x)
	return x
}

// restore balance at n by lifting the taller child, returns the new
// top of the sub-tree
func (tree *Tree) rebalance(n *Node) *Node {
	if n.left.heightOf() < n.right.heightOf() {
		return tree.rotateLeft(n.right)
	}
	return tree.rotateRight(n.left)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	up     *Node       // points to parent node, never owns it
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // 1 for a leaf
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// SetValue - replace the value of a node item in place
func (p *Node) SetValue(value interface{}) {
	p.value = value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.heightOf()
}

// Balance - left sub-tree height minus right sub-tree height
func (p *Node) Balance() int {
	return p.left.heightOf() - p.right.heightOf()
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// cached height, an absent sub-tree counts as zero
func (p *Node) heightOf() int {
	if nil == p {
		return 0
	}
	return p.height
}

// re-derive the cached height from the children
func (p *Node) refreshHeight() {
	hl := p.left.heightOf()
	hr := p.right.heightOf()
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

func (p *Node) isUnbalanced() bool {
	b := p.Balance()
	return b > 1 || b < -1
}

func (p *Node) hasTwoChildren() bool {
	return nil != p.left && nil != p.right
}

// rightmost node of the left sub-tree, nil for a node with no left
func (p *Node) predecessor() *Node {
	if nil == p.left {
		return nil
	}
	return p.left.last()
}

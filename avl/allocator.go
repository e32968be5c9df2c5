// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/fault"
)

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			m.Unlock()
			fault.Panicf("avl: node pool corrupt: empty list with %d free nodes", freeNodes)
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.height = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// release a whole sub-tree, only follows the child links
func freeTree(node *Node) {
	if nil == node {
		return
	}
	freeTree(node.left)
	freeTree(node.right)
	freeNode(node)
}

// PoolStatistics - total nodes ever allocated and the number
// currently waiting for reuse in the pool
func PoolStatistics() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}

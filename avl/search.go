// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - the value stored for a key and whether the key was found
func (tree *Tree) Get(key Item) (interface{}, bool) {
	p := tree.Search(key)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// Has - true if the key is present
func (tree *Tree) Has(key Item) bool {
	return nil != tree.Search(key)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree; rebalancing walks up
// the parent pointers from the point of change, re-deriving heights
// only for the touched ancestors.  Rotations are done by promoting a
// child above its parent, with a zig-zag child first straightened by
// a single rotation in the opposite direction.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around: a node with two children is exchanged with its
// predecessor node, so handles to the other nodes stay valid.
package avl

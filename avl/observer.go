// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Direction - the way a rotation turns
type Direction int

// rotation directions
const (
	Left  Direction = iota // a right child is promoted
	Right Direction = iota // a left child is promoted
)

// String - printable direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

// Observer - receives every single rotation performed on a tree
//
// parent is the key of the node that moved down, child is the key of
// the node that took its place.  A zig-zag correction is reported as
// two rotations.
type Observer interface {
	Rotated(direction Direction, parent Item, child Item)
}

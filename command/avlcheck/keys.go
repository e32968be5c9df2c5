// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// integer tree key
type intKey int

func (k intKey) Compare(x interface{}) int {
	other := x.(intKey)
	switch {
	case k < other:
		return -1
	case k > other:
		return 1
	default:
		return 0
	}
}

func (k intKey) String() string {
	return strconv.Itoa(int(k))
}

// string tree key
type stringKey string

func (k stringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(stringKey)))
}

func (k stringKey) String() string {
	return string(k)
}

// kinds of key that a script may use
type keyKind int

const (
	noKey keyKind = iota
	intKind
	stringKind
)

// convert a decoded YAML scalar to a tree key
//
// integers and strings that parse as integers become intKey,
// any other string becomes a stringKey
func makeKey(raw interface{}) (avl.Item, keyKind, error) {
	switch k := raw.(type) {
	case nil:
		return nil, noKey, fault.ErrMissingKey
	case int:
		return intKey(k), intKind, nil
	case string:
		if "" == k {
			return nil, noKey, fault.ErrMissingKey
		}
		if n, err := strconv.Atoi(k); nil == err {
			return intKey(n), intKind, nil
		}
		return stringKey(k), stringKind, nil
	default:
		return nil, noKey, fmt.Errorf("%w: %v (%T)", fault.ErrInvalidKey, raw, raw)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

// verify the whole tree, logging a picture of it on failure
func mustCheck(t *testing.T, tree *avl.Tree, when string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		var b strings.Builder
		depth := tree.Print(&b, true)
		t.Logf("depth: %d\n%s", depth, b.String())
		t.Fatalf("%s: inconsistent tree: %s", when, err)
	}
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

// ascending and descending runs produce the most rotations
func TestListSequential(t *testing.T) {
	up := make([]stringItem, 0, 200)
	down := make([]stringItem, 0, 200)
	for i := 0; i < 200; i += 1 {
		up = append(up, stringItem{fmt.Sprintf("%04d", i)})
		down = append(down, stringItem{fmt.Sprintf("%04d", 199-i)})
	}
	doList(t, up)
	doList(t, down)
	doTraverse(t, up)
	doSearch(t, down)
}

// add everything, delete a growing prefix checking after each, then
// delete the rest
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key, "data:"+key.String())
			mustCheck(t, tree, "add")
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv := tree.Delete(key)
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
			mustCheck(t, tree, "delete")
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv := tree.Delete(key)
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			mustCheck(t, tree, "remainder")
			t.Fatal("remaining nodes")
		}
	}
}

// sorted unique strings of a key list
func uniqueSorted(addList []stringItem) []string {
	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key.String()] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []stringItem) {

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}
	expected := uniqueSorted(addList)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	// walk must agree with the iterators
	walked := make([]string, 0, len(expected))
	tree.Walk(func(key avl.Item, value interface{}) bool {
		walked = append(walked, key.(stringItem).s)
		if value != "data:"+key.(stringItem).s {
			t.Errorf("walk: key: %q has value: %q", key, value)
		}
		return true
	})
	if strings.Join(walked, ",") != strings.Join(expected, ",") {
		t.Fatalf("walk: actual: %v  expected: %v", walked, expected)
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(stringItem{key})
	}

	if !tree.IsEmpty() {
		mustCheck(t, tree, "remainder")
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// use search to fetch each item, then delete the even ones
func doSearch(t *testing.T, addList []stringItem) {

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}
	expected := uniqueSorted(addList)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Search(stringItem{key})
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if 0 != node.Key().Compare(stringItem{key}) {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
		value, found := tree.Get(stringItem{key})
		if !found || value != "data:"+key {
			t.Fatalf("[%d]: get: %q returned: %v, %v", index, key, value, found)
		}
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			if !tree.Remove(stringItem{key}) {
				t.Fatalf("[%d]: remove: %q not found", index, key)
			}
		}
	}
	mustCheck(t, tree, "after even delete")

	for index, key := range expected {
		present := tree.Has(stringItem{key})
		if present != (1 == index%2) {
			t.Fatalf("[%d]: key: %q present: %v", index, key, present)
		}
	}

	// a second removal is a no-op
	for index, key := range expected {
		if 0 == index%2 && tree.Remove(stringItem{key}) {
			t.Fatalf("[%d]: remove: %q found twice", index, key)
		}
	}
	mustCheck(t, tree, "after repeat delete")
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key.String())
	}
	mustCheck(t, tree, "add")

	for _, key := range d {
		tree.Delete(key)
		mustCheck(t, tree, "delete")
	}

	// add back the test value
	testKey := stringItem{"500"}
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)
	mustCheck(t, tree, "add test value")

	doTraverse(t, d)
	doSearch(t, d)

	// check that test value is searchable
	tv := tree.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// check iterators
	if nil == tv.Next() {
		t.Fatal("could not find next")
	}
	if nil == tv.Prev() {
		t.Fatal("could not find prev")
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value := tree.Delete(testKey)
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	if tv := tree.Search(testKey); nil != tv {
		t.Fatalf("test key not deleted and contains: %q", tv.Value())
	}
	mustCheck(t, tree, "delete test value")
}

// check that inserted nodes can be overwritten
// and that nodes keep constant address when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"}, {"08"}, {"09"}, {"10"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}
	mustCheck(t, tree, "add")

	// overwrite a key
	oKey := stringItem{"04"}
	const newData = "new content for 04"
	if tree.Insert(oKey, newData) {
		t.Fatalf("overwrite reported a new node")
	}
	mustCheck(t, tree, "overwrite")
	if len(addList) != tree.Count() {
		t.Fatalf("count after overwrite: %d  expected: %d", tree.Count(), len(addList))
	}

	// check overwrite
	node1 := tree.Search(oKey)
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// "04" is the root with two children, deleting it exchanges
	// the root with its predecessor "03"
	pKey := stringItem{"03"}
	pNode := tree.Search(pKey)
	if tree.Root().Key() != oKey {
		t.Fatalf("root: %q  expected: %q", tree.Root().Key(), oKey)
	}

	// delete a node to force a rebalance below oKey
	tree.Delete(stringItem{"05"})
	node2 := tree.Search(oKey)
	if node1 != node2 {
		t.Fatalf("node moved from: %p → %p", node1, node2)
	}
	mustCheck(t, tree, "delete")

	// delete the root; the predecessor keeps its identity
	tree.Delete(oKey)
	mustCheck(t, tree, "delete root")
	if pNode != tree.Search(pKey) {
		t.Fatalf("predecessor node changed identity")
	}
	if "data:03" != pNode.Value() {
		t.Fatalf("predecessor value: %q", pNode.Value())
	}
}

func TestGetDepthInTree(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

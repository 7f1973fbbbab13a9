// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import (
	"bytes"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

func corrupt(format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{ErrCorrupt}, args...)...))
}

// Validate checks the structural invariants of the tree and returns an error
// wrapping ErrCorrupt if any of them do not hold.
//
// The checks are that every non-root internal node has at least two children,
// that every edge label is non-empty and keyed by its first byte, that there
// is exactly one leaf per suffix of the text, that every root-to-leaf path
// spells the suffix recorded at the leaf, and that every suffix link of an
// internal node points to a node one byte shallower.
//
// Validate costs time proportional to the sum of all suffix lengths and is
// meant for testing and debugging.
func (t *Tree) Validate() (err error) {
	defer errRecover(&err)

	text := t.text.data
	size := len(text)
	seen := bitset.New(uint(size))
	depth := make([]int, len(t.nodes))

	var path []int
	var visit func(n, d int)
	visit = func(n, d int) {
		nd := &t.nodes[n]
		depth[n] = d
		if n != root {
			if t.edgeLength(n) <= 0 {
				corrupt("empty edge into node %d", n)
			}
			path = append(path, n)
			defer func() { path = path[:len(path)-1] }()
		}

		if len(nd.children) == 0 {
			s := nd.index
			if s != size-d || s < 0 || s >= size {
				corrupt("leaf %d has suffix index %d at depth %d", n, s, d)
			}
			if seen.Test(uint(s)) {
				corrupt("suffix %d reached by more than one leaf", s)
			}
			seen.Set(uint(s))

			var off int
			for _, p := range path {
				l := t.edgeLength(p)
				start := t.nodes[p].start
				if !bytes.Equal(text[s+off:s+off+l], text[start:start+l]) {
					corrupt("path to leaf %d does not spell suffix %d", n, s)
				}
				off += l
			}
			return
		}

		if n != root && len(nd.children) < 2 {
			corrupt("internal node %d has %d children", n, len(nd.children))
		}
		if nd.index != unset {
			corrupt("internal node %d has suffix index %d", n, nd.index)
		}
		for i, e := range nd.children {
			if i > 0 && nd.children[i-1].label >= e.label {
				corrupt("children of node %d are not sorted", n)
			}
			if text[t.nodes[e.node].start] != e.label {
				corrupt("edge into node %d is keyed by %q", e.node, e.label)
			}
			visit(e.node, d+t.edgeLength(e.node))
		}
	}
	visit(root, 0)

	if t.leaves != size || seen.Count() != uint(size) {
		corrupt("%d leaves cover %d of %d suffixes", t.leaves, seen.Count(), size)
	}
	for n := range t.nodes {
		if n == root || t.isLeaf(n) {
			continue
		}
		l := t.nodes[n].link
		if l < 0 || l >= len(t.nodes) || t.isLeaf(l) {
			corrupt("internal node %d has invalid suffix link %d", n, l)
		}
		if depth[l] != depth[n]-1 {
			corrupt("suffix link %d -> %d spans depth %d -> %d", n, l, depth[n], depth[l])
		}
	}
	return nil
}

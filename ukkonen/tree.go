// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import "sort"

const (
	root   = 0  // Index of the root node in the arena
	noNode = -1 // Absent node reference
	unset  = -1 // Suffix index of an internal node
)

// edgeEnd is the inclusive end offset of the edge label leading into a node.
//
// Leaf edges all share the tree-wide end, which is advanced once per phase so
// that every leaf grows at once. Edges into internal nodes own a fixed end
// that is frozen when the edge is split.
type edgeEnd struct {
	shared bool
	pos    int // Valid only if !shared
}

// edge is an outgoing reference from a node, keyed by the first byte of the
// label of the edge.
type edge struct {
	label byte
	node  int
}

type node struct {
	start    int     // Start offset of the incoming edge label; -1 for root
	end      edgeEnd // End offset of the incoming edge label
	link     int     // Suffix link; root links to itself
	index    int     // Suffix offset for leaves, otherwise unset
	children []edge  // Sorted by label
}

// Tree is a suffix tree over a single sentinel terminated text.
//
// All nodes live in a single arena owned by the Tree; children and suffix
// links are arena indices. The Tree is immutable once Build returns and is
// safe for concurrent use by multiple readers.
type Tree struct {
	text    *Text
	nodes   []node
	leafEnd int // Shared end of all leaf edges
	leaves  int
}

func newTree(text *Text) *Tree {
	t := &Tree{text: text, leafEnd: -1}
	t.nodes = make([]node, 0, 2*text.Len())
	t.nodes = append(t.nodes, node{
		start: -1,
		end:   edgeEnd{pos: -1},
		link:  root,
		index: unset,
	})
	return t
}

func (t *Tree) newLeaf(start int) int {
	t.nodes = append(t.nodes, node{
		start: start,
		end:   edgeEnd{shared: true},
		link:  root,
		index: unset,
	})
	t.leaves++
	return len(t.nodes) - 1
}

func (t *Tree) newInternal(start, end int) int {
	t.nodes = append(t.nodes, node{
		start: start,
		end:   edgeEnd{pos: end},
		link:  root,
		index: unset,
	})
	return len(t.nodes) - 1
}

// endOf reports the inclusive end offset of the edge into n.
func (t *Tree) endOf(n int) int {
	if t.nodes[n].end.shared {
		return t.leafEnd
	}
	return t.nodes[n].end.pos
}

// edgeLength reports the length of the label of the edge into n.
func (t *Tree) edgeLength(n int) int {
	if n == root {
		return 0
	}
	return t.endOf(n) - t.nodes[n].start + 1
}

func (t *Tree) isLeaf(n int) bool {
	return len(t.nodes[n].children) == 0
}

// child returns the child of n whose edge label starts with c.
func (t *Tree) child(n int, c byte) (int, bool) {
	es := t.nodes[n].children
	if len(es) <= 8 {
		for _, e := range es {
			if e.label == c {
				return e.node, true
			}
		}
		return noNode, false
	}
	i := sort.Search(len(es), func(i int) bool { return es[i].label >= c })
	if i < len(es) && es[i].label == c {
		return es[i].node, true
	}
	return noNode, false
}

// setChild makes m the child of n under label c, replacing any existing
// child with the same label.
func (t *Tree) setChild(n int, c byte, m int) {
	es := t.nodes[n].children
	i := sort.Search(len(es), func(i int) bool { return es[i].label >= c })
	if i < len(es) && es[i].label == c {
		es[i].node = m
		return
	}
	es = append(es, edge{})
	copy(es[i+1:], es[i:])
	es[i] = edge{label: c, node: m}
	t.nodes[n].children = es
}

// Text returns the indexed text.
func (t *Tree) Text() *Text { return t.text }

// Len reports the length of the indexed text including the sentinel.
func (t *Tree) Len() int { return t.text.Len() }

// Leaves reports the number of leaves, which equals Len for a complete tree.
func (t *Tree) Leaves() int { return t.leaves }

// Stats summarizes the shape of a Tree.
type Stats struct {
	Nodes    int // Total number of nodes including the root
	Internal int // Number of internal nodes, not counting the root
	Leaves   int // Number of leaves
	TextLen  int // Length of the text including the sentinel
}

// Stats reports the shape of the tree.
func (t *Tree) Stats() Stats {
	return Stats{
		Nodes:    len(t.nodes),
		Internal: len(t.nodes) - t.leaves - 1,
		Leaves:   t.leaves,
		TextLen:  t.text.Len(),
	}
}

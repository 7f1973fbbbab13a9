// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

// Collect returns the suffix offsets of all leaves below the matched node.
// Each offset is the start of one occurrence of the matched pattern.
//
// The offsets are listed in depth-first order with children visited in
// ascending byte order, which is the lexicographic order of the suffixes.
// Collect returns nil for a failed match.
func (t *Tree) Collect(m Match) []int {
	if !m.found {
		return nil
	}
	if t.isLeaf(m.node) {
		return []int{t.nodes[m.node].index}
	}

	var occs []int
	stack := []int{m.node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		es := t.nodes[n].children
		if len(es) == 0 {
			occs = append(occs, t.nodes[n].index)
			continue
		}
		for i := len(es) - 1; i >= 0; i-- {
			stack = append(stack, es[i].node)
		}
	}
	return occs
}

// CountLeaves reports the number of leaves below the matched node without
// materializing their offsets.
func (t *Tree) CountLeaves(m Match) int {
	if !m.found {
		return 0
	}
	var cnt int
	stack := []int{m.node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		es := t.nodes[n].children
		if len(es) == 0 {
			cnt++
		}
		for _, e := range es {
			stack = append(stack, e.node)
		}
	}
	return cnt
}

// Occurrences matches pattern and collects its occurrence offsets.
func (t *Tree) Occurrences(pattern []byte) ([]int, error) {
	m, err := t.Match(pattern)
	if err != nil {
		return nil, err
	}
	return t.Collect(m), nil
}

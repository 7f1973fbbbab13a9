// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

// setSuffixIndexes assigns every leaf the starting offset of the suffix it
// spells. It must run exactly once, after the final phase, since whether a
// node is a leaf is only settled once construction completes.
func (t *Tree) setSuffixIndexes() {
	type frame struct{ node, depth int }
	size := t.text.Len()
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[f.node]
		if len(nd.children) == 0 {
			nd.index = size - f.depth
			continue
		}
		for _, e := range nd.children {
			stack = append(stack, frame{e.node, f.depth + t.edgeLength(e.node)})
		}
	}
}

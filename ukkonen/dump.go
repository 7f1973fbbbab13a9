// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Dump writes every edge of the tree in depth-first order, one per line.
// Each line holds the quoted edge label indented by the depth of the edge in
// edges; leaf edges are followed by the suffix offset of the leaf.
//
// For the text "ABA" with the default sentinel, Dump writes:
//
//	"$" [3]
//	"A"
//		"$" [2]
//		"BA$" [0]
//	"BA$" [1]
func (t *Tree) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var visit func(n, level int)
	visit = func(n, level int) {
		for _, e := range t.nodes[n].children {
			m := e.node
			start, end := t.nodes[m].start, t.endOf(m)
			fmt.Fprintf(bw, "%s%q", strings.Repeat("\t", level), t.text.data[start:end+1])
			if t.isLeaf(m) {
				fmt.Fprintf(bw, " [%d]", t.nodes[m].index)
			}
			bw.WriteByte('\n')
			visit(m, level+1)
		}
	}
	visit(root, 0)
	return bw.Flush()
}

func (t *Tree) String() string {
	var b bytes.Buffer
	t.Dump(&b)
	return b.String()
}

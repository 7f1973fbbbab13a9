// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	firstInternal := func(tr *Tree) int {
		for n := range tr.nodes {
			if n != root && !tr.isLeaf(n) {
				return n
			}
		}
		panic("no internal node")
	}
	firstLeaf := func(tr *Tree) int {
		for n := range tr.nodes {
			if tr.isLeaf(n) {
				return n
			}
		}
		panic("no leaf")
	}

	var vectors = []struct {
		name    string
		corrupt func(tr *Tree)
	}{{
		name:    "Valid",
		corrupt: func(tr *Tree) {},
	}, {
		name: "LeafIndex",
		corrupt: func(tr *Tree) {
			tr.nodes[firstLeaf(tr)].index++
		},
	}, {
		name: "InternalIndex",
		corrupt: func(tr *Tree) {
			tr.nodes[firstInternal(tr)].index = 0
		},
	}, {
		name: "SingleChild",
		corrupt: func(tr *Tree) {
			n := firstInternal(tr)
			tr.nodes[n].children = tr.nodes[n].children[:1]
		},
	}, {
		name: "UnsortedChildren",
		corrupt: func(tr *Tree) {
			es := tr.nodes[root].children
			es[0], es[1] = es[1], es[0]
		},
	}, {
		name: "WrongLabel",
		corrupt: func(tr *Tree) {
			tr.nodes[root].children[0].label ^= 0x20
		},
	}, {
		name: "EdgeText",
		corrupt: func(tr *Tree) {
			n := firstInternal(tr)
			tr.nodes[n].end.pos--
		},
	}, {
		name: "SuffixLink",
		corrupt: func(tr *Tree) {
			tr.nodes[firstInternal(tr)].link = firstLeaf(tr)
		},
	}}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			tr, err := Build([]byte("mississippi"), 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			v.corrupt(tr)
			err = tr.Validate()
			if v.name == "Valid" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("error mismatch: got %v, want %v", err, ErrCorrupt)
			}
		})
	}
}

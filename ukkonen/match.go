// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

// Match is the outcome of matching a pattern against a Tree.
// The zero value is a failed match.
type Match struct {
	node  int
	found bool
}

// Found reports whether the pattern occurs in the text.
func (m Match) Found() bool { return m.found }

// Match walks the tree along pattern. Matching is exact and case-sensitive.
//
// When the pattern occurs in the text, the returned Match identifies the
// subtree whose leaves are exactly the occurrences of the pattern. A pattern
// that does not occur yields a Match for which Found reports false; this is
// not an error. An empty pattern is rejected with ErrPatternEmpty.
func (t *Tree) Match(pattern []byte) (Match, error) {
	if len(pattern) == 0 {
		return Match{}, ErrPatternEmpty
	}

	text := t.text.data
	n, i := root, 0
	for {
		if n != root {
			end := t.endOf(n)
			for k := t.nodes[n].start; k <= end && i < len(pattern); k, i = k+1, i+1 {
				if text[k] != pattern[i] {
					return Match{}, nil
				}
			}
			if i == len(pattern) {
				return Match{node: n, found: true}, nil
			}
		}

		next, ok := t.child(n, pattern[i])
		if !ok {
			return Match{}, nil
		}
		n = next
	}
}

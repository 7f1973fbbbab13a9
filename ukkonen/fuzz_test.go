// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import (
	"errors"
	"testing"

	"github.com/dsnet/suffix/internal/testutil"
)

// FuzzSearch checks that the tree is well formed and agrees with a brute force
// scan for arbitrary texts and patterns.
func FuzzSearch(f *testing.F) {
	f.Add([]byte("AABAACAADAABAAABAA"), []byte("AA"))
	f.Add([]byte("mississippi"), []byte("issi"))
	f.Add([]byte("AAAAAAAA"), []byte("AAA"))
	f.Add([]byte("$"), []byte("$"))
	f.Add([]byte{}, []byte{0})
	f.Fuzz(func(t *testing.T, text, pattern []byte) {
		tr, err := Build(text, 1<<12, WithAutoSentinel())
		switch {
		case errors.Is(err, ErrInputTooLarge), errors.Is(err, ErrInvalidSentinel):
			return
		case err != nil:
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tr.Validate(); err != nil {
			t.Fatalf("invalid tree: %v", err)
		}

		occs, err := tr.Occurrences(pattern)
		if len(pattern) == 0 {
			if !errors.Is(err, ErrPatternEmpty) {
				t.Fatalf("error mismatch: got %v, want %v", err, ErrPatternEmpty)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := testutil.SortedCopy(occs)
		want := testutil.BruteForce(terminated(tr), pattern)
		if !equalInts(got, want) {
			t.Fatalf("occurrences of %q in %q mismatch: got %v, want %v", pattern, text, got, want)
		}
	})
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dsnet/suffix/internal/testutil"
)

// terminated returns the indexed text including its sentinel.
func terminated(tr *Tree) []byte {
	return append(append([]byte(nil), tr.Text().Bytes()...), tr.Text().Sentinel())
}

// checkAllSubstrings checks every substring of the text up to maxLen bytes
// against a brute force scan, along with some patterns that do not occur.
func checkAllSubstrings(t *testing.T, input []byte, maxLen int) {
	t.Helper()
	tr, err := Build(input, 0, WithAutoSentinel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := terminated(tr)

	seen := make(map[string]bool)
	for i := range data {
		for j := i + 1; j <= len(data) && j-i <= maxLen; j++ {
			p := data[i:j]
			if seen[string(p)] {
				continue
			}
			seen[string(p)] = true

			m, err := tr.Match(p)
			if err != nil {
				t.Fatalf("Match(%q), unexpected error: %v", p, err)
			}
			if !m.Found() {
				t.Errorf("Match(%q) in %q, not found", p, input)
				continue
			}
			got := testutil.SortedCopy(tr.Collect(m))
			want := testutil.BruteForce(data, p)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Collect(%q) in %q mismatch (-want +got):\n%s", p, input, diff)
			}
			if cnt := tr.CountLeaves(m); cnt != len(want) {
				t.Errorf("CountLeaves(%q) = %d, want %d", p, cnt, len(want))
			}
		}
	}

	for _, p := range []string{"\xfe\xff", string(data) + "A", "ZZZZZZ"} {
		if len(testutil.BruteForce(data, []byte(p))) > 0 {
			continue
		}
		m, err := tr.Match([]byte(p))
		if err != nil {
			t.Fatalf("Match(%q), unexpected error: %v", p, err)
		}
		if m.Found() {
			t.Errorf("Match(%q) in %q, unexpectedly found", p, input)
		}
		if occs := tr.Collect(m); occs != nil {
			t.Errorf("Collect(%q) = %v, want nil", p, occs)
		}
	}
}

func TestMatch(t *testing.T) {
	var vectors = []string{
		"",
		"A",
		"AB",
		"AAAA",
		"banana",
		"mississippi",
		"abracadabra",
		"AABAACAADAABAAABAA",
		"The quick brown fox jumped over the lazy dog.",
		"SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
		strings.Repeat("AABA", 20),
		strings.Repeat("A", 64),
		"BAAAABACAAAABADAABAAABAAABAAABAAAABAAABAAAABACAAAABADAABAAABAAABAAABAABAAAABACAAAABADAABAAABAAABAAABAAAAB",
	}
	for _, v := range vectors {
		checkAllSubstrings(t, []byte(v), 12)
	}
}

func TestMatchRandom(t *testing.T) {
	rand := testutil.NewRand(1)
	for _, alphabet := range []string{"AB", "ACGT", "0123456789"} {
		for i := 0; i < 10; i++ {
			checkAllSubstrings(t, rand.Text(50+rand.Intn(150), alphabet), 8)
		}
	}
}

func TestMatchExamples(t *testing.T) {
	var vectors = []struct {
		input   string
		pattern string
		found   bool
		occs    []int // Sorted
	}{
		{"AABAACAADAABAAABAA", "AA", true, []int{0, 3, 6, 9, 12, 13, 16}},
		{"AABAACAADAABAAABAA", "AABA", true, []int{0, 9, 13}},
		{"AABAACAADAABAAABAA", "AAE", false, nil},
		{"AABAACAADAABAAABAA", "aa", false, nil},
		{"A", "A", true, []int{0}},
		{"A", "AA", false, nil},
		{"A", "A$", true, []int{0}},
		{"A", "$", true, []int{1}},
		{"banana", "ana", true, []int{1, 3}},
		{"banana", "banana", true, []int{0}},
		{"banana", "bananas", false, nil},
		{"banana", "nab", false, nil},
	}

	for i, v := range vectors {
		tr, err := Build([]byte(v.input), 0)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		occs, err := tr.Occurrences([]byte(v.pattern))
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if found := len(occs) > 0; found != v.found {
			t.Errorf("test %d, found mismatch: got %v, want %v", i, found, v.found)
		}
		if diff := cmp.Diff(v.occs, testutil.SortedCopy(occs), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("test %d, occurrences of %q mismatch (-want +got):\n%s", i, v.pattern, diff)
		}
	}
}

func TestMatchLeaf(t *testing.T) {
	tr, err := Build([]byte("ABCD"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := tr.Match([]byte("BC"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Found() || !tr.isLeaf(m.node) {
		t.Fatalf("Match(%q) did not land on a leaf", "BC")
	}
	if got := tr.Collect(m); !equalInts(got, []int{1}) {
		t.Errorf("Collect() = %v, want [1]", got)
	}
}

func TestMatchEmpty(t *testing.T) {
	tr, err := Build([]byte("ABCD"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.Match(nil); !errors.Is(err, ErrPatternEmpty) {
		t.Errorf("Match(nil) error mismatch: got %v, want %v", err, ErrPatternEmpty)
	}
	if _, err := tr.Occurrences([]byte{}); !errors.Is(err, ErrPatternEmpty) {
		t.Errorf("Occurrences(empty) error mismatch: got %v, want %v", err, ErrPatternEmpty)
	}
}

func TestCollectOrder(t *testing.T) {
	// Children are visited in byte order, so the occurrences of a pattern
	// are listed in the lexicographic order of their suffixes.
	tr, err := Build([]byte("banana"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	occs, err := tr.Occurrences([]byte("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{5, 3, 1}; !equalInts(occs, want) {
		t.Errorf("Occurrences() = %v, want %v", occs, want)
	}
}

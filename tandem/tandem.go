// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package tandem detects tandem repeats among the occurrences of a pattern.
//
// A tandem repeat is a run of two or more occurrences of the same pattern
// where each occurrence starts exactly one pattern length after the previous
// one, so that the copies lie back to back without overlapping.
package tandem

import "sort"

// Span is a maximal tandem repeat. Start and End are the start offsets of the
// first and last occurrence in the run.
type Span struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Copies reports the number of back to back copies of a pattern of length n
// covered by the span.
func (s Span) Copies(n int) int {
	if n <= 0 {
		return 0
	}
	return (s.End-s.Start)/n + 1
}

// Detect reports every maximal run of occurrences where consecutive offsets
// differ by exactly n. Runs of a single occurrence are not reported.
//
// The input order is irrelevant and occs is not modified.
// A non-positive n yields no spans.
func Detect(occs []int, n int) []Span {
	sorted := append([]int(nil), occs...)
	sort.Ints(sorted)
	return DetectSorted(sorted, n)
}

// DetectSorted is like Detect, but requires occs to be sorted in ascending
// order and does not copy it.
func DetectSorted(occs []int, n int) []Span {
	if n <= 0 {
		return nil
	}
	var spans []Span
	for i := 0; i < len(occs); {
		j := i
		for j+1 < len(occs) && occs[j+1]-occs[j] == n {
			j++
		}
		if j > i {
			spans = append(spans, Span{Start: occs[i], End: occs[j]})
		}
		i = j + 1
	}
	return spans
}

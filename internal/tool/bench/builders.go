// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"index/suffixarray"

	"github.com/dsnet/suffix/internal/testutil"
	"github.com/dsnet/suffix/ukkonen"
)

func init() {
	RegisterBuilder("ukkonen", func(text []byte) (Index, error) {
		t, err := ukkonen.Build(text, 0, ukkonen.WithAutoSentinel())
		if err != nil {
			return nil, err
		}
		return t.Occurrences, nil
	})
	RegisterBuilder("sa", func(text []byte) (Index, error) {
		sa := suffixarray.New(text)
		return func(p []byte) ([]int, error) {
			if len(p) == 0 {
				return nil, ukkonen.ErrPatternEmpty
			}
			return sa.Lookup(p, -1), nil
		}, nil
	})
	RegisterBuilder("naive", func(text []byte) (Index, error) {
		return func(p []byte) ([]int, error) {
			if len(p) == 0 {
				return nil, ukkonen.ErrPatternEmpty
			}
			var occs []int
			for i := 0; i <= len(text)-len(p); {
				j := bytes.Index(text[i:], p)
				if j < 0 {
					break
				}
				occs = append(occs, i+j)
				i += j + 1
			}
			return occs, nil
		}, nil
	})

	const (
		dna     = "ACGT"
		english = "etaoinshrdlucmfwypvbgkjqxz ETAOINSHRDLU.,"
	)
	RegisterCorpus("dna", func(n int) []byte {
		return testutil.NewRand(0).Text(n, dna)
	})
	RegisterCorpus("text", func(n int) []byte {
		return testutil.NewRand(0).Text(n, english)
	})
	RegisterCorpus("repeats", func(n int) []byte {
		return testutil.NewRand(0).Repeats(n, english)
	})
	RegisterCorpus("zeros", func(n int) []byte {
		return bytes.Repeat([]byte{'0'}, n)
	})
}

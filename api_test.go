// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/suffix/internal/testutil"
	"github.com/dsnet/suffix/tandem"
)

func TestSearch(t *testing.T) {
	const text = "AABAACAADAABAAABAA"
	x, err := Build([]byte(text), DefaultMaxLength)
	require.NoError(t, err)

	var vectors = []struct {
		pattern string
		found   bool
	}{
		{"AA", true},
		{"AABA", true},
		{"D", true},
		{text, true},
		{"AAE", false},
		{"aa", false},
		{text + "A", false},
	}

	for i, v := range vectors {
		res, err := x.Search([]byte(v.pattern))
		require.NoError(t, err, "test %d", i)
		want := testutil.BruteForce([]byte(text), []byte(v.pattern))
		assert.Equal(t, v.found, res.Found, "test %d, found", i)
		assert.Equal(t, len(res.Occurrences), res.Count, "test %d, count", i)
		assert.Equal(t, want, res.Sorted(), "test %d, occurrences of %q", i, v.pattern)

		cnt, err := x.Count([]byte(v.pattern))
		require.NoError(t, err)
		assert.Equal(t, len(want), cnt, "test %d, Count(%q)", i, v.pattern)

		ok, err := x.Contains([]byte(v.pattern))
		require.NoError(t, err)
		assert.Equal(t, v.found, ok, "test %d, Contains(%q)", i, v.pattern)
	}
}

func TestSearchLeaf(t *testing.T) {
	x, err := Build([]byte("A"), DefaultMaxLength)
	require.NoError(t, err)
	assert.Equal(t, 2, x.Tree().Leaves())

	res, err := x.Search([]byte("A"))
	require.NoError(t, err)
	assert.Equal(t, Result{Found: true, Occurrences: []int{0}, Count: 1}, res)
}

func TestSearchErrors(t *testing.T) {
	_, err := Build([]byte(strings.Repeat("A", DefaultMaxLength+1)), DefaultMaxLength)
	assert.ErrorIs(t, err, ErrInputTooLarge)

	_, err = Build([]byte("cost: $5"), DefaultMaxLength)
	assert.ErrorIs(t, err, ErrInvalidSentinel)

	x, err := Build([]byte("cost: $5"), DefaultMaxLength, WithSentinel(0))
	require.NoError(t, err)
	_, err = x.Search(nil)
	assert.ErrorIs(t, err, ErrPatternEmpty)
	_, err = x.Count([]byte{})
	assert.ErrorIs(t, err, ErrPatternEmpty)
	_, err = x.Contains([]byte{})
	assert.ErrorIs(t, err, ErrPatternEmpty)

	res, err := x.Search([]byte("$5"))
	require.NoError(t, err)
	assert.Equal(t, []int{6}, res.Occurrences)
}

func TestTandemRepeats(t *testing.T) {
	x, err := Build([]byte("xABCABCABCyABCzABCABC"), DefaultMaxLength)
	require.NoError(t, err)

	res, err := x.Search([]byte("ABC"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 7, 11, 15, 18}, res.Sorted())
	assert.Equal(t, []tandem.Span{{Start: 1, End: 7}, {Start: 15, End: 18}}, x.TandemRepeats(res.Occurrences, 3))

	assert.Equal(t, []tandem.Span{{Start: 5, End: 13}}, x.TandemRepeats([]int{5, 9, 13, 20}, 4))
}

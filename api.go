// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffix is a substring index over a fixed text.
//
// An Index is built once from a text and then answers any number of exact
// substring queries: whether a pattern occurs, how often, and at which
// offsets. It can also report the tandem repeats of a pattern, which are runs
// of back to back copies of it.
//
// The index is backed by a suffix tree built with Ukkonen's algorithm; see
// the ukkonen package for details. An Index is safe for concurrent use once
// Build returns.
package suffix

import (
	"sort"

	"go.uber.org/zap"

	"github.com/dsnet/suffix/internal"
	"github.com/dsnet/suffix/tandem"
	"github.com/dsnet/suffix/ukkonen"
)

const (
	DefaultSentinel  = internal.DefaultSentinel
	DefaultMaxLength = internal.DefaultMaxLength
)

var (
	ErrInputTooLarge   = ukkonen.ErrInputTooLarge
	ErrInvalidSentinel = ukkonen.ErrInvalidSentinel
	ErrPatternEmpty    = ukkonen.ErrPatternEmpty
	ErrCorrupt         = ukkonen.ErrCorrupt
)

// Option configures Build.
type Option = ukkonen.Option

// WithSentinel sets the terminator byte appended to the text.
func WithSentinel(c byte) Option { return ukkonen.WithSentinel(c) }

// WithAutoSentinel picks a terminator byte that is absent from the text.
func WithAutoSentinel() Option { return ukkonen.WithAutoSentinel() }

// WithLogger sets the logger that receives construction statistics.
func WithLogger(log *zap.Logger) Option { return ukkonen.WithLogger(log) }

// Index answers substring queries over a fixed text.
type Index struct {
	tree *ukkonen.Tree
}

// Build indexes text, which must not be longer than maxLength bytes.
// It fails with ErrInputTooLarge or ErrInvalidSentinel.
func Build(text []byte, maxLength int, opts ...Option) (*Index, error) {
	t, err := ukkonen.Build(text, maxLength, opts...)
	if err != nil {
		return nil, err
	}
	return &Index{tree: t}, nil
}

// Tree returns the underlying suffix tree.
func (x *Index) Tree() *ukkonen.Tree { return x.tree }

// Result is the outcome of a search.
type Result struct {
	Found       bool  `yaml:"found"`
	Occurrences []int `yaml:"positions,flow"` // Start offsets in the text
	Count       int   `yaml:"count"`          // Always len(Occurrences)
}

// Sorted returns the occurrences in ascending order.
func (r Result) Sorted() []int {
	s := append([]int(nil), r.Occurrences...)
	sort.Ints(s)
	return s
}

// Search reports every occurrence of pattern in the text.
// A pattern that does not occur is not an error; Found is false instead.
func (x *Index) Search(pattern []byte) (Result, error) {
	m, err := x.tree.Match(pattern)
	if err != nil {
		return Result{}, err
	}
	if !m.Found() {
		return Result{}, nil
	}
	occs := x.tree.Collect(m)
	return Result{Found: true, Occurrences: occs, Count: len(occs)}, nil
}

// Count reports the number of occurrences of pattern in the text.
func (x *Index) Count(pattern []byte) (int, error) {
	m, err := x.tree.Match(pattern)
	if err != nil {
		return 0, err
	}
	return x.tree.CountLeaves(m), nil
}

// Contains reports whether pattern occurs in the text.
func (x *Index) Contains(pattern []byte) (bool, error) {
	m, err := x.tree.Match(pattern)
	return m.Found(), err
}

// TandemRepeats reports the maximal runs of occurrences whose consecutive
// offsets are exactly patternLen apart. The occurrences need not be sorted.
func (x *Index) TandemRepeats(occs []int, patternLen int) []tandem.Span {
	return tandem.Detect(occs, patternLen)
}

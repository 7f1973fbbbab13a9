// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ukkonen implements online suffix tree construction.
//
// A Tree is built once over a fixed text using Ukkonen's algorithm, which
// runs in amortized linear time with respect to the text length. After
// construction the tree is read-only and may be shared between any number of
// readers; it supports exact substring matching and enumeration of all
// occurrence offsets of a pattern.
//
// The text is terminated by a sentinel byte that must not occur anywhere else
// in the text. This forces every suffix to end at a distinct leaf.
//
// References:
//	https://www.cs.helsinki.fi/u/ukkonen/SuffixT1withFigs.pdf
//	https://en.wikipedia.org/wiki/Ukkonen%27s_algorithm
package ukkonen

import (
	"errors"
	"runtime"

	"github.com/dsnet/suffix/internal"
)

var (
	ErrInputTooLarge   error = internal.Error("input exceeds maximum length")
	ErrInvalidSentinel error = internal.Error("sentinel byte occurs in text")
	ErrPatternEmpty    error = internal.Error("empty pattern")
	ErrCorrupt         error = internal.Error("suffix tree is corrupted")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		if internal.GoFuzz && errors.Is(ex, ErrCorrupt) {
			panic(ex) // Surface broken trees as crashes to the fuzzer
		}
		*err = ex
	default:
		panic(ex)
	}
}

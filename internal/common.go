// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the suffix packages.
//
// For performance reasons, the tree packages lack strong error checking on
// their internal paths and require that the caller ensure that strict
// invariants are kept. Building with the "debug" tag enables additional
// self-checks after every construction.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "suffix: " + string(e) }

const (
	// DefaultSentinel is the terminator appended to every indexed text.
	DefaultSentinel = '$'

	// DefaultMaxLength is the default bound on the length of indexed text,
	// not counting the sentinel.
	DefaultMaxLength = 10000
)

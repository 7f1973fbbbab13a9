// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !debug && !gofuzz

package internal

const (
	// Debug makes every Build verify the finished tree before returning it.
	Debug = false

	// GoFuzz turns a corrupted tree into a panic instead of an error.
	GoFuzz = false
)

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import "github.com/bits-and-blooms/bitset"

// Text is an immutable byte sequence terminated by a sentinel byte that
// appears nowhere else in the sequence.
type Text struct {
	data     []byte // Includes the sentinel as the final byte
	sentinel byte
	alphabet *bitset.BitSet // Set of byte values present before the sentinel
}

// NewText validates b and returns a sentinel terminated copy of it.
//
// If the last byte of b already equals sentinel, then b is treated as being
// terminated and the sentinel is not appended again. The length of b, not
// counting the sentinel, must not exceed maxLength. A non-positive maxLength
// imposes no bound.
func NewText(b []byte, maxLength int, sentinel byte) (*Text, error) {
	body := b
	if n := len(body); n > 0 && body[n-1] == sentinel {
		body = body[:n-1]
	}
	if maxLength > 0 && len(body) > maxLength {
		return nil, ErrInputTooLarge
	}

	set := alphabetOf(body)
	if set.Test(uint(sentinel)) {
		return nil, ErrInvalidSentinel
	}

	data := make([]byte, len(body)+1)
	copy(data, body)
	data[len(body)] = sentinel
	return &Text{data: data, sentinel: sentinel, alphabet: set}, nil
}

// UnusedByte reports the smallest byte value that does not occur in b.
// It reports false if every byte value occurs.
func UnusedByte(b []byte) (byte, bool) {
	c, ok := alphabetOf(b).NextClear(0)
	if !ok || c > 0xff {
		return 0, false
	}
	return byte(c), true
}

func alphabetOf(b []byte) *bitset.BitSet {
	set := bitset.New(256)
	for _, c := range b {
		set.Set(uint(c))
	}
	return set
}

// Len reports the length of the text including the sentinel.
func (t *Text) Len() int { return len(t.data) }

// Bytes returns the text without the sentinel.
// The caller must not modify the returned slice.
func (t *Text) Bytes() []byte { return t.data[:len(t.data)-1] }

// Sentinel returns the terminator byte.
func (t *Text) Sentinel() byte { return t.sentinel }

// Alphabet reports the number of distinct byte values in the text,
// not counting the sentinel.
func (t *Text) Alphabet() int { return int(t.alphabet.Count()) }

// Contains reports whether c occurs in the text before the sentinel.
func (t *Text) Contains(c byte) bool { return t.alphabet.Test(uint(c)) }

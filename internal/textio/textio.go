// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package textio loads texts to be indexed, transparently decompressing
// inputs in any of the registered formats.
package textio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/dsnet/suffix/ukkonen"
)

type Format int

const (
	FormatRaw Format = iota
	FormatGzip
	FormatZstd
	FormatXZ
	FormatBZ2
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatXZ:
		return "xz"
	case FormatBZ2:
		return "bzip2"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Decoder wraps a compressed stream in a reader of the decompressed data.
type Decoder func(io.Reader) (io.ReadCloser, error)

// Matcher reports whether a stream beginning with hdr is in some format.
// The header holds up to maxMagic bytes, fewer if the stream is shorter.
type Matcher func(hdr []byte) bool

// Magic returns a Matcher for streams that begin with the given bytes.
func Magic(magic []byte) Matcher {
	return func(hdr []byte) bool { return bytes.HasPrefix(hdr, magic) }
}

var (
	decoders = make(map[Format]Decoder)
	matchers = make(map[Format]Matcher)
)

// RegisterDecoder associates a decoder with a format and the matcher that
// recognizes the header of every stream of that format.
func RegisterDecoder(f Format, m Matcher, dec Decoder) {
	decoders[f] = dec
	matchers[f] = m
}

// maxMagic is the longest header a Matcher inspects.
const maxMagic = 10

// Detect reports the format of a stream that begins with hdr.
//
// Only the header is inspected. Matchers check as much of the fixed header
// structure as they can, so that raw text beginning with a short magic such
// as "BZh" is not mistaken for a compressed stream, but a raw text that
// begins with a complete compressed header is still treated as compressed.
func Detect(hdr []byte) Format {
	for f, m := range matchers {
		if m(hdr) {
			return f
		}
	}
	return FormatRaw
}

// ReadAll reads the entire decompressed contents of r.
//
// It fails with ukkonen.ErrInputTooLarge as soon as more than limit
// decompressed bytes are available, without reading the rest of the input.
// A non-positive limit imposes no bound.
func ReadAll(r io.Reader, limit int) (b []byte, f Format, err error) {
	br := bufio.NewReader(r)
	hdr, _ := br.Peek(maxMagic)
	f = Detect(hdr)

	rd := io.ReadCloser(io.NopCloser(br))
	if f != FormatRaw {
		if rd, err = decoders[f](br); err != nil {
			return nil, f, fmt.Errorf("unable to open %v stream: %w", f, err)
		}
	}
	defer func() {
		err = multierr.Append(err, rd.Close())
	}()

	src := io.Reader(rd)
	if limit > 0 {
		src = io.LimitReader(rd, int64(limit)+1)
	}
	if b, err = io.ReadAll(src); err != nil {
		return nil, f, fmt.Errorf("unable to read %v stream: %w", f, err)
	}
	if limit > 0 && len(b) > limit {
		return nil, f, ukkonen.ErrInputTooLarge
	}
	return b, f, nil
}

// Load reads the decompressed contents of the named file, where "-" names the
// standard input.
func Load(path string, limit int) ([]byte, Format, error) {
	if path == "-" {
		return ReadAll(os.Stdin, limit)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, FormatRaw, err
	}
	defer fd.Close()
	return ReadAll(fd, limit)
}

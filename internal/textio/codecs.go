// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textio

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

var (
	bz2BlockMagic = []byte{0x31, 0x41, 0x59, 0x26, 0x53, 0x59} // BCD of pi
	bz2EndMagic   = []byte{0x17, 0x72, 0x45, 0x38, 0x50, 0x90} // BCD of sqrt(pi)
)

// matchGzip requires the deflate method and no reserved flag bits.
func matchGzip(hdr []byte) bool {
	return len(hdr) >= 4 && hdr[0] == 0x1f && hdr[1] == 0x8b && hdr[2] == 0x08 && hdr[3]&0xe0 == 0
}

// matchBZ2 requires the level digit and the magic of the first block or of
// the end of an empty stream.
func matchBZ2(hdr []byte) bool {
	if len(hdr) < 10 || !bytes.HasPrefix(hdr, []byte("BZh")) || hdr[3] < '1' || hdr[3] > '9' {
		return false
	}
	return bytes.Equal(hdr[4:10], bz2BlockMagic) || bytes.Equal(hdr[4:10], bz2EndMagic)
}

func init() {
	RegisterDecoder(FormatGzip, matchGzip,
		func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		})
	RegisterDecoder(FormatZstd, Magic([]byte{0x28, 0xb5, 0x2f, 0xfd}),
		func(r io.Reader) (io.ReadCloser, error) {
			zr, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zr.IOReadCloser(), nil
		})
	RegisterDecoder(FormatXZ, Magic([]byte{0xfd, '7', 'z', 'X', 'Z', 0x00}),
		func(r io.Reader) (io.ReadCloser, error) {
			zr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(zr), nil
		})
	RegisterDecoder(FormatBZ2, matchBZ2,
		func(r io.Reader) (io.ReadCloser, error) {
			return bzip2.NewReader(r, nil)
		})
}

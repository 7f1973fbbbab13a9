// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textio

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/suffix/internal/testutil"
	"github.com/dsnet/suffix/ukkonen"
)

type encoder func(io.Writer) (io.WriteCloser, error)

var encoders = map[Format]encoder{
	FormatRaw: func(w io.Writer) (io.WriteCloser, error) {
		return nopWriteCloser{w}, nil
	},
	FormatGzip: func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriter(w), nil
	},
	FormatZstd: func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	},
	FormatXZ: func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	},
	FormatBZ2: func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, nil)
	},
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compress(t *testing.T, f Format, input []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := encoders[f](&buf)
	require.NoError(t, err)
	_, err = zw.Write(input)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestReadAll(t *testing.T) {
	input := testutil.NewRand(0).Text(1<<12, "ACGT")
	for f := range encoders {
		t.Run(f.String(), func(t *testing.T) {
			data := compress(t, f, input)
			assert.Equal(t, f, Detect(data))

			got, gf, err := ReadAll(bytes.NewReader(data), 0)
			require.NoError(t, err)
			assert.Equal(t, f, gf)
			assert.True(t, bytes.Equal(input, got), "data mismatch")

			got, _, err = ReadAll(bytes.NewReader(data), len(input))
			require.NoError(t, err)
			assert.Len(t, got, len(input))

			_, _, err = ReadAll(bytes.NewReader(data), len(input)-1)
			assert.ErrorIs(t, err, ukkonen.ErrInputTooLarge)
		})
	}
}

func TestReadAllErrors(t *testing.T) {
	errBroken := errors.New("broken pipe")
	input := []byte("AABAACAADAABAAABAA")

	br := &testutil.BuggyReader{R: bytes.NewReader(input), N: 4, Err: errBroken}
	_, _, err := ReadAll(br, 0)
	assert.ErrorIs(t, err, errBroken)

	data := compress(t, FormatGzip, input)
	_, _, err = ReadAll(bytes.NewReader(data[:len(data)/2]), 0)
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	var vectors = []struct {
		input  string
		format Format
	}{
		{"", FormatRaw},
		{"hello", FormatRaw},
		{"\x1f\x8b\x08\x00", FormatGzip},
		{"\x1f\x8b\x08\xff", FormatRaw},
		{"\x1f\x8bhello", FormatRaw},
		{"\x28\xb5\x2f\xfd", FormatZstd},
		{"\xfd7zXZ\x00", FormatXZ},
		{"\xfd7zX", FormatRaw},
		{"BZh91AY&SY", FormatBZ2},
		{"BZh1\x17\x72\x45\x38\x50\x90", FormatBZ2},
		{"BZh9", FormatRaw},
		{"BZh0" + "1AY&SY", FormatRaw},
		{"BZhello, world", FormatRaw},
	}
	for i, v := range vectors {
		if got := Detect([]byte(v.input)); got != v.format {
			t.Errorf("test %d, Detect(%q) = %v, want %v", i, v.input, got, v.format)
		}
	}
}

func TestLoad(t *testing.T) {
	input := []byte("The quick brown fox jumped over the lazy dog.")
	path := filepath.Join(t.TempDir(), "input.txt.zst")
	require.NoError(t, os.WriteFile(path, compress(t, FormatZstd, input), 0644))

	got, f, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, FormatZstd, f)
	assert.Equal(t, string(input), string(got))

	plain := []byte("BZhello is a plain text that looks like bzip2")
	path = filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, plain, 0644))
	got, f, err = Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, FormatRaw, f)
	assert.Equal(t, string(plain), string(got))

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of various substring search
// implementations with respect to index build speed and query speed.
package bench

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"

	"github.com/dsnet/suffix/internal/testutil"
)

const (
	TestBuildRate = iota
	TestSearchRate
)

// Index reports the start offsets, in any order, of every occurrence of
// pattern in the indexed text.
type Index func(pattern []byte) ([]int, error)

// Builder indexes a text.
type Builder func(text []byte) (Index, error)

// Generator produces n bytes of benchmark input.
type Generator func(n int) []byte

var (
	Builders map[string]Builder
	Corpora  map[string]Generator
)

func RegisterBuilder(name string, b Builder) {
	if Builders == nil {
		Builders = make(map[string]Builder)
	}
	Builders[name] = b
}

func RegisterCorpus(name string, g Generator) {
	if Corpora == nil {
		Corpora = make(map[string]Generator)
	}
	Corpora[name] = g
}

// Patterns returns cnt substrings of input, each l bytes long, drawn from
// deterministic pseudo-random offsets.
func Patterns(input []byte, l, cnt int) [][]byte {
	if l <= 0 || l > len(input) {
		return nil
	}
	r := testutil.NewRand(l)
	pats := make([][]byte, cnt)
	for i := range pats {
		j := r.Intn(len(input) - l + 1)
		pats[i] = input[j : j+l]
	}
	return pats
}

// BenchmarkBuilder benchmarks a single builder on the given input data and
// reports the result.
func BenchmarkBuilder(input []byte, bld Builder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if bld == nil {
			b.Fatalf("unexpected error: nil Builder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := bld(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkSearcher benchmarks the queries of a single index built from the
// given input data. The build itself is not timed.
func BenchmarkSearcher(input []byte, pats [][]byte, bld Builder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if bld == nil || len(pats) == 0 {
			b.Fatalf("unexpected error: nothing to search")
		}
		idx, err := bld(input)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := idx(pats[i%len(pats)]); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or queries per millisecond
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkBuildSuite runs multiple benchmarks across all builder
// implementations, corpora, and sizes.
//
// The values returned have the following structure:
//	results: [len(corpora)*len(sizes)][len(blds)]Result
//	names:   [len(corpora)*len(sizes)]string
func BenchmarkBuildSuite(blds, corpora []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(blds, corpora, []int{0}, sizes, tick,
		func(input []byte, bld string, _ int) Result {
			result := BenchmarkBuilder(input, Builders[bld])
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
}

// BenchmarkSearchSuite runs multiple benchmarks across all builder
// implementations, corpora, pattern lengths, and sizes.
//
// The values returned have the following structure:
//	results: [len(corpora)*len(lengths)*len(sizes)][len(blds)]Result
//	names:   [len(corpora)*len(lengths)*len(sizes)]string
func BenchmarkSearchSuite(blds, corpora []string, lengths, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(blds, corpora, lengths, sizes, tick,
		func(input []byte, bld string, l int) Result {
			pats := Patterns(input, l, 64)
			if pats == nil {
				return Result{}
			}
			result := BenchmarkSearcher(input, pats, Builders[bld])
			if result.N == 0 {
				return Result{}
			}
			ms := (float64(result.T.Nanoseconds()) / 1e6) / float64(result.N)
			return Result{R: 1 / ms}
		})
}

type benchFunc func(input []byte, bld string, length int) Result

func benchmarkSuite(blds, corpora []string, lengths, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(corpora) * len(lengths) * len(sizes)
	d1 := len(blds)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every builder, corpus, length, and size.
	var i int
	for _, c := range corpora {
		for _, l := range lengths {
			for _, n := range sizes {
				var b []byte
				if gen := Corpora[c]; gen != nil {
					b = gen(n)
				}
				name := getName(c, l, len(b))
				for j, bld := range blds {
					if tick != nil {
						tick()
					}
					names[i] = name
					if b != nil {
						results[i][j] = run(b, bld, l)
					}
					results[i][j].D = results[i][j].R / results[i][0].R
				}
				i++
			}
		}
	}
	return results, names
}

func getName(c string, l, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%d:%s", c, l, sn)
}

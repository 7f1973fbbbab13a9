// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Benchmark tool to compare performance between multiple substring search
// implementations. Individual implementations are referred to as builders.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests    build,search      \
//		-builders ukkonen,sa,naive  \
//		-corpora  dna,repeats       \
//		-lengths  4,16              \
//		-sizes    1e4,1e5
//
// Build rates are reported in MB/s of indexed text and search rates in
// queries per millisecond. The first builder listed is the reference for the
// delta columns.
package main

import (
	"flag"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"

	"github.com/dsnet/suffix/internal/tool/bench"
)

const (
	defaultTests   = "build,search"
	defaultLengths = "4,16"
	defaultSizes   = "1e4,1e5"
)

var testToEnum = map[string]int{
	"build":  bench.TestBuildRate,
	"search": bench.TestSearchRate,
}

func sortedKeys[V any](m map[string]V) string {
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

func defaultBuilders() string {
	s := strings.Split(sortedKeys(bench.Builders), ",")
	for i, v := range s {
		if v == "ukkonen" {
			s[0], s[i] = s[i], s[0] // Ensure "ukkonen" always appears first
		}
	}
	return strings.Join(s, ",")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests, "List of different benchmark tests")
	f1 := flag.String("builders", defaultBuilders(), "List of builders to benchmark")
	f2 := flag.String("corpora", sortedKeys(bench.Corpora), "List of input corpora to benchmark")
	f3 := flag.String("lengths", defaultLengths, "List of pattern lengths to benchmark")
	f4 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var tests, lengths, sizes []int
	builders := sep.Split(*f1, -1)
	corpora := sep.Split(*f2, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			panic("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f3, -1) {
		l, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid length")
		}
		lengths = append(lengths, int(l))
	}
	for _, s := range sep.Split(*f4, -1) {
		var size int
		if nf, err := strconv.ParsePrefix(s, strconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}
	for _, b := range builders {
		if _, ok := bench.Builders[b]; !ok {
			panic("invalid builder")
		}
	}

	ts := time.Now()
	runBenchmarks(builders, corpora, tests, lengths, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func runBenchmarks(builders, corpora []string, tests, lengths, sizes []int) {
	for _, t := range tests {
		var results [][]bench.Result
		var names []string
		var title string

		// Progress ticker.
		var cnt int
		total := len(builders) * len(corpora) * len(sizes)
		if t == bench.TestSearchRate {
			total *= len(lengths)
		}
		tick := func() {
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		switch t {
		case bench.TestBuildRate:
			fmt.Println("BENCHMARK: build")
			title = "MB/s"
			results, names = bench.BenchmarkBuildSuite(builders, corpora, sizes, tick)
		case bench.TestSearchRate:
			fmt.Println("BENCHMARK: search")
			title = "q/ms"
			results, names = bench.BenchmarkSearchSuite(builders, corpora, lengths, sizes, tick)
		default:
			panic("unknown test")
		}

		// Print all of the results.
		printResults(results, names, builders, title, "")
		fmt.Println()
	}
}

func printResults(results [][]bench.Result, names, builders []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(builders))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range builders {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(builders))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}

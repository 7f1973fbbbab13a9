// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffix_test

import (
	"fmt"
	"log"

	"github.com/dsnet/suffix"
)

func Example() {
	x, err := suffix.Build([]byte("BAAAABACAAAABADAABAAABAAABAAAB"), suffix.DefaultMaxLength)
	if err != nil {
		log.Fatal(err)
	}

	pattern := []byte("AABA")
	res, err := x.Search(pattern)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("found:", res.Found)
	fmt.Println("count:", res.Count)
	fmt.Println("positions:", res.Sorted())
	for _, s := range x.TandemRepeats(res.Occurrences, len(pattern)) {
		fmt.Printf("tandem: %d - %d\n", s.Start, s.End)
	}

	// Output:
	// found: true
	// count: 5
	// positions: [3 10 15 19 23]
	// tandem: 15 - 23
}

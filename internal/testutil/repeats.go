// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// Repeats returns n bytes over alphabet where most of the data is a copy of
// some earlier part of itself. The result is rich in long repeated substrings
// and in tandem repeats, which produce deep suffix trees with long suffix link
// chains.
func (r *Rand) Repeats(n int, alphabet string) []byte {
	var b []byte

	randLen := func() (l int) {
		p := r.Intn(100)
		switch {
		case p < 15: // 4..8
			l = 4 + r.Intn(4)
		case p < 30: // 8..16
			l = 8 + r.Intn(8)
		case p < 45: // 16..32
			l = 16 + r.Intn(16)
		case p < 60: // 32..64
			l = 32 + r.Intn(32)
		case p < 75: // 64..128
			l = 64 + r.Intn(64)
		case p < 90: // 128..256
			l = 128 + r.Intn(128)
		default: // 256..512
			l = 256 + r.Intn(256)
		}
		return l
	}

	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			p := r.Intn(20)
			lo := 1 << uint(p%15) // 1..16384
			d = lo + r.Intn(lo)
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, alphabet[r.Intn(len(alphabet))])
		}
	}

	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < n {
		switch p := r.Intn(10); {
		case p < 1:
			writeRand(randLen())
		case p < 9:
			// Long distance copy.
			d, l := randDist(), randLen()
			for d <= l && d < len(b) {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			// Possibly overlapping copy, which yields tandem repeats.
			writeCopy(randDist(), randLen())
		}
	}
	return b[:n]
}

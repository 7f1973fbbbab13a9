// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ukkonen

import (
	"time"

	"go.uber.org/zap"

	"github.com/dsnet/suffix/internal"
)

type buildConfig struct {
	sentinel byte
	auto     bool
	log      *zap.Logger
}

// Option configures Build.
type Option func(*buildConfig)

// WithSentinel sets the terminator byte. The default is '$'.
func WithSentinel(c byte) Option {
	return func(conf *buildConfig) { conf.sentinel, conf.auto = c, false }
}

// WithAutoSentinel selects the smallest byte value absent from the text as
// the terminator. Build fails with ErrInvalidSentinel if all 256 byte values
// occur in the text.
func WithAutoSentinel() Option {
	return func(conf *buildConfig) { conf.auto = true }
}

// WithLogger sets the logger that receives construction statistics.
func WithLogger(log *zap.Logger) Option {
	return func(conf *buildConfig) {
		if log != nil {
			conf.log = log
		}
	}
}

// builder holds the construction state of a single Build call.
//
// The active point (activeNode, activeEdge, activeLength) is the position
// from which the next pending extension resumes. The activeEdge is an offset
// into the text, not the byte itself.
type builder struct {
	t    *Tree
	text []byte

	activeNode   int
	activeEdge   int
	activeLength int

	remaining int // Number of suffixes yet to be added in the current phase
	lastNew   int // Internal node awaiting its suffix link, if any
}

// Build constructs the suffix tree of text.
//
// The sentinel is appended to text unless text already ends with it. Build
// fails with ErrInputTooLarge if text is longer than maxLength (a non-positive
// maxLength imposes no bound) or with ErrInvalidSentinel if the sentinel
// occurs within text. No partial tree is ever returned.
func Build(text []byte, maxLength int, opts ...Option) (t *Tree, err error) {
	conf := buildConfig{sentinel: internal.DefaultSentinel, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&conf)
	}

	body := text
	if conf.auto {
		c, ok := UnusedByte(body)
		if !ok {
			return nil, ErrInvalidSentinel
		}
		conf.sentinel = c
	}
	txt, err := NewText(body, maxLength, conf.sentinel)
	if err != nil {
		return nil, err
	}

	defer errRecover(&err)
	start := time.Now()
	b := &builder{t: newTree(txt), text: txt.data, activeNode: root, lastNew: noNode}
	for pos := range b.text {
		b.extend(pos)
	}
	b.t.setSuffixIndexes()
	if internal.Debug {
		if err := b.t.Validate(); err != nil {
			panic(err)
		}
	}

	conf.log.Debug("Suffix tree built",
		zap.Int("length", txt.Len()),
		zap.Int("alphabet", txt.Alphabet()),
		zap.Int("nodes", len(b.t.nodes)),
		zap.Int("leaves", b.t.leaves),
		zap.Duration("elapsed", time.Since(start)))
	return b.t, nil
}

// walkDown moves the active point onto n if the active length spans the
// entire edge into n. It reports whether the active point moved.
func (b *builder) walkDown(n int) bool {
	if l := b.t.edgeLength(n); b.activeLength >= l {
		b.activeEdge += l
		b.activeLength -= l
		b.activeNode = n
		return true
	}
	return false
}

// extend performs phase pos, adding text[pos] to every suffix in the tree.
func (b *builder) extend(pos int) {
	t := b.t

	// Every leaf edge ends at the shared end, so this extends all existing
	// leaves by one byte.
	t.leafEnd = pos
	b.remaining++
	b.lastNew = noNode

	for b.remaining > 0 {
		if b.activeLength == 0 {
			b.activeEdge = pos
		}

		c := b.text[b.activeEdge]
		next, ok := t.child(b.activeNode, c)
		if !ok {
			// New leaf directly below the active node.
			t.setChild(b.activeNode, c, t.newLeaf(pos))
			if b.lastNew != noNode {
				t.nodes[b.lastNew].link = b.activeNode
				b.lastNew = noNode
			}
		} else {
			if b.walkDown(next) {
				continue
			}

			// The current byte is already on the edge, so this suffix and
			// all shorter ones are implicitly present.
			if b.text[t.nodes[next].start+b.activeLength] == b.text[pos] {
				if b.lastNew != noNode && b.activeNode != root {
					t.nodes[b.lastNew].link = b.activeNode
					b.lastNew = noNode
				}
				b.activeLength++
				break
			}

			// The path diverges in the middle of the edge. Split the edge
			// with a new internal node and hang a new leaf from it.
			nstart := t.nodes[next].start
			split := t.newInternal(nstart, nstart+b.activeLength-1)
			t.setChild(b.activeNode, c, split)
			t.setChild(split, b.text[pos], t.newLeaf(pos))
			t.nodes[next].start += b.activeLength
			t.setChild(split, b.text[t.nodes[next].start], next)

			if b.lastNew != noNode {
				t.nodes[b.lastNew].link = split
			}
			b.lastNew = split
		}

		b.remaining--
		if b.activeNode == root && b.activeLength > 0 {
			b.activeLength--
			b.activeEdge = pos - b.remaining + 1
		} else if b.activeNode != root {
			b.activeNode = t.nodes[b.activeNode].link
		}
	}
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dsnet/suffix"
	"github.com/dsnet/suffix/internal/config"
	"github.com/dsnet/suffix/internal/textio"
)

type envKey struct{}

// localEnv keeps the program state shared by all commands.
type localEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	start time.Time
}

func envFromContext(ctx context.Context) *localEnv {
	if env, ok := ctx.Value(envKey{}).(*localEnv); ok {
		return env
	}
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &localEnv{Log: zap.NewNop(), start: time.Now()})
}

func (e *localEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// source is an indexed input text.
type source struct {
	Path   string
	Format textio.Format
	Index  *suffix.Index
}

// buildIndex loads the text at path and indexes it according to the
// configuration.
func (e *localEnv) buildIndex(path string) (*source, error) {
	limit, err := e.Cfg.Index.Limit()
	if err != nil {
		return nil, err
	}
	text, format, err := textio.Load(path, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to load text '%s': %w", path, err)
	}
	e.Log.Debug("Text loaded", zap.String("path", path), zap.Stringer("format", format), zap.Int("length", len(text)))

	opts := append(e.Cfg.Index.Options(), suffix.WithLogger(e.Log))
	idx, err := suffix.Build(text, limit, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to index text '%s': %w", path, err)
	}
	return &source{Path: path, Format: format, Index: idx}, nil
}

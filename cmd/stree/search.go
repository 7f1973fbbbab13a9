// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/dsnet/suffix"
	"github.com/dsnet/suffix/tandem"
)

type patternReport struct {
	Pattern       string `yaml:"pattern"`
	suffix.Result `yaml:",inline"`
	Tandem        []tandem.Span `yaml:"tandem,omitempty"`
}

type searchReport struct {
	Source   string          `yaml:"source"`
	Format   string          `yaml:"format"`
	Length   int             `yaml:"length"`
	Sentinel int             `yaml:"sentinel"` // Byte value
	Results  []patternReport `yaml:"results"`
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// search runs every pattern against the index. A failing pattern does not
// stop the others; all failures are returned together.
func search(src *source, patterns []string, withTandem, sorted bool) (rpt searchReport, err error) {
	text := src.Index.Tree().Text()
	rpt = searchReport{
		Source:   src.Path,
		Format:   src.Format.String(),
		Length:   len(text.Bytes()),
		Sentinel: int(text.Sentinel()),
	}
	for _, p := range patterns {
		res, er := src.Index.Search([]byte(p))
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("pattern %q: %w", p, er))
			continue
		}
		pr := patternReport{Pattern: p, Result: res}
		if withTandem {
			pr.Tandem = src.Index.TandemRepeats(res.Occurrences, len(p))
		}
		if sorted {
			pr.Occurrences = res.Sorted()
		}
		rpt.Results = append(rpt.Results, pr)
	}
	return rpt, err
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	if cmd.Args().Len() != 1 {
		return errors.New("exactly one SOURCE is expected")
	}
	patterns := cmd.StringSlice("pattern")
	if len(patterns) == 0 {
		return errors.New("no patterns to search for")
	}

	start := time.Now()
	src, err := env.buildIndex(cmd.Args().First())
	if err != nil {
		return err
	}
	env.Log.Info("Index ready", zap.String("source", src.Path), zap.Int("nodes", src.Index.Tree().Stats().Nodes), zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	rpt, err := search(src, patterns, env.Cfg.Search.Tandem || cmd.Bool("tandem"), env.Cfg.Search.Sorted)
	env.Log.Info("Search completed", zap.Int("patterns", len(patterns)), zap.Duration("elapsed", time.Since(start)))

	data, er := yaml.Marshal(rpt)
	if er != nil {
		return multierr.Append(err, fmt.Errorf("unable to marshal results: %w", er))
	}
	if _, er := writer(cmd).Write(data); er != nil {
		return multierr.Append(err, fmt.Errorf("unable to write results: %w", er))
	}
	return err
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package config holds the configuration of the stree program.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	strconv "github.com/dsnet/golib/unitconv"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"github.com/dsnet/suffix/ukkonen"
)

//go:embed config.yaml
var defaults []byte

type (
	IndexConfig struct {
		MaxLength string `yaml:"max_length" toml:"max_length" validate:"required"`
		Sentinel  string `yaml:"sentinel" toml:"sentinel" validate:"omitempty,len=1|eq=auto"`
	}

	SearchConfig struct {
		Tandem bool `yaml:"tandem" toml:"tandem"`
		Sorted bool `yaml:"sorted" toml:"sorted"`
	}

	Config struct {
		Version int           `yaml:"version" toml:"version" validate:"eq=1"`
		Index   IndexConfig   `yaml:"index" toml:"index"`
		Search  SearchConfig  `yaml:"search" toml:"search"`
		Logging LoggingConfig `yaml:"logging" toml:"logging"`
	}
)

// Limit parses MaxLength.
func (c *IndexConfig) Limit() (int, error) {
	f, err := strconv.ParsePrefix(c.MaxLength, strconv.AutoParse)
	if err != nil {
		return 0, fmt.Errorf("invalid max_length %q: %w", c.MaxLength, err)
	}
	if f < 1 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid max_length %q: must be a positive integer", c.MaxLength)
	}
	return int(f), nil
}

// Options returns the build options selected by the configuration.
func (c *IndexConfig) Options() []ukkonen.Option {
	switch c.Sentinel {
	case "":
		return nil
	case "auto":
		return []ukkonen.Option{ukkonen.WithAutoSentinel()}
	default:
		return []ukkonen.Option{ukkonen.WithSentinel(c.Sentinel[0])}
	}
}

func unmarshalYAML(data []byte, cfg *Config) error {
	// Only fields we defined are accepted, so yaml.Unmarshal cannot be used
	// directly.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

func unmarshalTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		var names []string
		for _, k := range keys {
			names = append(names, k.String())
		}
		return fmt.Errorf("failed to decode configuration data: unknown fields %s", strings.Join(names, ", "))
	}
	return nil
}

func validate(cfg *Config) (*Config, error) {
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	// The validator measures length in runes, the sentinel is one byte.
	if s := cfg.Index.Sentinel; len(s) > 1 && s != "auto" {
		return nil, fmt.Errorf("invalid sentinel %q: must be a single byte or \"auto\"", s)
	}
	if _, err := cfg.Index.Limit(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path
// and superimposes its values on top of the embedded defaults. Files with a
// ".toml" extension are decoded as TOML, all others as YAML. An empty path
// selects the defaults alone.
func LoadConfiguration(path string) (*Config, error) {
	cfg := &Config{}
	if err := unmarshalYAML(defaults, cfg); err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) == 0 {
		return validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = unmarshalTOML(data, cfg)
	} else {
		err = unmarshalYAML(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return validate(cfg)
}

// Prepare returns the embedded default configuration.
func Prepare() []byte {
	return append([]byte(nil), defaults...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

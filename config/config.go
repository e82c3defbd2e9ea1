// This file is part of aoc19 - https://github.com/Nidjo123/aoc19
//
// Copyright 2019 The aoc19 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads run configurations for the intcode command from TOML
// or YAML files.
//
// A sample TOML configuration:
//
//	capacity = 100000
//	verbosity = 1
//	max_steps = 0
//	phases = [0, 1, 2, 3, 4]
//	feedback_phases = [5, 6, 7, 8, 9]
//	target = 19690720
//	start = "white"
//
//	[render]
//	on = "#"
//	off = " "
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Nidjo123/aoc19/vm"
)

// Supported file formats.
const (
	TOML = "toml"
	YAML = "yaml"
)

// Render sets the glyphs used to draw hull panels. Empty glyphs are chosen by
// the command depending on whether its output is a terminal.
type Render struct {
	On  string `toml:"on" yaml:"on"`
	Off string `toml:"off" yaml:"off"`
}

// Config is a run configuration.
type Config struct {
	Capacity       int     `toml:"capacity" yaml:"capacity"`
	Verbosity      int     `toml:"verbosity" yaml:"verbosity"`
	MaxSteps       int64   `toml:"max_steps" yaml:"max_steps"`
	Trace          bool    `toml:"trace" yaml:"trace"`
	Inputs         []int64 `toml:"inputs" yaml:"inputs"`
	Phases         []int64 `toml:"phases" yaml:"phases"`
	FeedbackPhases []int64 `toml:"feedback_phases" yaml:"feedback_phases"`
	Signal         int64   `toml:"signal" yaml:"signal"`
	Target         int64   `toml:"target" yaml:"target"`
	Start          string  `toml:"start" yaml:"start"`
	Render         Render  `toml:"render" yaml:"render"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Capacity:       vm.DefaultCapacity,
		Phases:         []int64{0, 1, 2, 3, 4},
		FeedbackPhases: []int64{5, 6, 7, 8, 9},
		Target:         19690720,
		Start:          "black",
	}
}

// Format returns the file format for the given file name, based on its
// extension.
func Format(fileName string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.Errorf("unsupported config file extension %q", ext)
	}
}

// Load loads the configuration file fileName. Settings missing from the file
// keep their default value.
func Load(fileName string) (*Config, error) {
	format, err := Format(fileName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return c, nil
}

// Parse parses configuration data in the given format over the default
// configuration. Unknown keys are an error.
func Parse(data []byte, format string) (*Config, error) {
	c := Default()
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return nil, errors.Wrap(err, "parse error")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, errors.Errorf("unknown key %q", keys[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "parse error")
		}
	default:
		return nil, errors.Errorf("unknown config format %q", format)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that c holds sensible values.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.Errorf("invalid capacity %d", c.Capacity)
	}
	if c.Verbosity < 0 {
		return errors.Errorf("invalid verbosity %d", c.Verbosity)
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("invalid max_steps %d", c.MaxSteps)
	}
	switch c.Start {
	case "black", "white":
	default:
		return errors.Errorf("invalid start color %q", c.Start)
	}
	return nil
}

// Cells converts values to VM cells.
func Cells(values []int64) []vm.Cell {
	return vm.Ints(values...)
}

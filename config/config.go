// Copyright 2025 go-sortvis Authors
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

// Package config holds the settings of the sortvis command, loaded from a
// TOML file and overridden by command line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/ajroetker/go-sortvis/vis/contrib/run"
	"github.com/ajroetker/go-sortvis/vis/contrib/sort"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config is the whole configuration file.
type Config struct {
	Run     RunConfig     `toml:"Run"`
	Race    RaceConfig    `toml:"Race"`
	Log     LogConfig     `toml:"Log"`
	Metrics MetricsConfig `toml:"Metrics"`
}

// RunConfig is the interactive or plain single-algorithm run.
type RunConfig struct {
	Algorithm string `toml:"Algorithm"`
	Size      int    `toml:"Size"`
	Input     string `toml:"Input"`
	// Speed is on the 0..100 scale; the step delay is max(1, 101-Speed) ms.
	Speed int `toml:"Speed"`
	// Seed of the input generator. Zero picks a seed from the clock.
	Seed int64 `toml:"Seed"`
}

// RaceConfig is the all-algorithm race.
type RaceConfig struct {
	// Workers is the pool size. Zero uses GOMAXPROCS.
	Workers int    `toml:"Workers"`
	Size    int    `toml:"Size"`
	Input   string `toml:"Input"`
}

// LogConfig selects log levels, in the logger's "pattern:LEVEL" syntax,
// and an optional log file.
type LogConfig struct {
	Level string `toml:"Level"`
	File  string `toml:"File"`
}

// MetricsConfig enables the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `toml:"Enabled"`
	Address string `toml:"Address"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Run: RunConfig{
			Algorithm: "quick",
			Size:      50,
			Input:     vis.Random.String(),
			Speed:     50,
		},
		Race: RaceConfig{
			Size:  200,
			Input: vis.Random.String(),
		},
		Log: LogConfig{
			Level: "*:INFO",
		},
		Metrics: MetricsConfig{
			Address: "localhost:9464",
		},
	}
}

// LoadConfig decodes the TOML file at path over the defaults, so keys the
// file leaves out keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "resolving %s", path)
	}
	f, err := os.Open(abs)
	if err != nil {
		return Config{}, errors.Wrapf(err, "opening %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	if err = toml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Run.Validate(); err != nil {
		return errors.Wrap(err, "Run")
	}
	if err := c.Race.Validate(); err != nil {
		return errors.Wrap(err, "Race")
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Address) == "" {
		return errors.Wrap(ErrMissingAddress, "Metrics")
	}
	return nil
}

// Validate checks the run section.
func (r *RunConfig) Validate() error {
	if _, ok := sort.Lookup(r.Algorithm); !ok {
		return errors.Wrapf(ErrUnknownAlgorithm, "%q", r.Algorithm)
	}
	if r.Size < 1 {
		return errors.Wrapf(ErrInvalidSize, "%d", r.Size)
	}
	if _, err := vis.ParseDistribution(r.Input); err != nil {
		return err
	}
	if r.Speed < run.MinSpeed || r.Speed > run.MaxSpeed {
		return errors.Wrapf(ErrInvalidSpeed, "%d", r.Speed)
	}
	return nil
}

// Validate checks the race section.
func (r *RaceConfig) Validate() error {
	if r.Workers < 0 {
		return errors.Wrapf(ErrInvalidWorkers, "%d", r.Workers)
	}
	if r.Size < 1 {
		return errors.Wrapf(ErrInvalidSize, "%d", r.Size)
	}
	if _, err := vis.ParseDistribution(r.Input); err != nil {
		return err
	}
	return nil
}

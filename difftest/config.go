// Copyright 2025 go-highway Authors
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

package difftest

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// configFile is looked up in the working directory of the test binary.
const configFile = ".simdtest.yaml"

// Config controls a differential test run.
type Config struct {
	// SampleCount is the number of random trials per intrinsic, and per
	// constant value for intrinsics with a constant parameter.
	SampleCount int `yaml:"samples"`
	// Seed is the run seed all per-test seeds derive from. Zero picks a
	// fresh random seed for the run.
	Seed uint64 `yaml:"seed"`
	// Workers sets the worker pool size for constant-parameter domains.
	// Zero or negative means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the built-in defaults: 1000 samples, a random run
// seed, GOMAXPROCS workers.
func DefaultConfig() Config {
	return Config{SampleCount: 1000}
}

// LoadConfig resolves the run configuration: built-in defaults, overridden
// by .simdtest.yaml if present, overridden by the SIMDTEST_SEED and
// SIMDTEST_SAMPLES environment variables. A zero seed after all overrides
// is replaced with a random one so the run is still reproducible from the
// logged per-test seeds.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// No file, defaults apply.
	default:
		return cfg, fmt.Errorf("reading %s: %w", configFile, err)
	}

	if v := os.Getenv("SIMDTEST_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return cfg, fmt.Errorf("parsing SIMDTEST_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("SIMDTEST_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("parsing SIMDTEST_SAMPLES: %q is not a positive count", v)
		}
		cfg.SampleCount = n
	}

	if cfg.SampleCount <= 0 {
		cfg.SampleCount = DefaultConfig().SampleCount
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	return cfg, nil
}

var (
	loadOnce  sync.Once
	loadedCfg Config
	loadErr   error
)

// runConfig resolves the configuration once per test binary.
func runConfig() (Config, error) {
	loadOnce.Do(func() {
		loadedCfg, loadErr = LoadConfig()
	})
	return loadedCfg, loadErr
}

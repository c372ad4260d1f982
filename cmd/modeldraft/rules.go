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

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultRewrites maps the macro-style primitive names found in real
// intrinsic sources to abstraction layer calls. Method-style uses hoist the
// receiver into the first argument, so a.wrapping_add(b) drafts as
// simd.Add(a, b).
var defaultRewrites = map[string]string{
	"wrapping_add":   "simd.Add",
	"wrapping_sub":   "simd.Sub",
	"wrapping_mul":   "simd.Mul",
	"wrapping_neg":   "simd.Neg",
	"wrapping_abs":   "simd.Abs",
	"saturating_add": "simd.SaturatingAdd",
	"saturating_sub": "simd.SaturatingSub",
	"simd_add":       "simd.Add",
	"simd_sub":       "simd.Sub",
	"simd_mul":       "simd.Mul",
	"simd_neg":       "simd.Neg",
	"simd_and":       "simd.And",
	"simd_or":        "simd.Or",
	"simd_xor":       "simd.Xor",
	"simd_shl":       "simd.Shl",
	"simd_shr":       "simd.Shr",
	"simd_eq":        "simd.Eq",
	"simd_ne":        "simd.Ne",
	"simd_lt":        "simd.Lt",
	"simd_le":        "simd.Le",
	"simd_gt":        "simd.Gt",
	"simd_ge":        "simd.Ge",
	"simd_select":    "simd.Select",
	"simd_shuffle":   "simd.Shuffle2",
	"simd_cast":      "simd.Cast",
	"simd_insert":    "simd.Insert",
	"simd_extract":   "simd.Extract",
	"transmute":      "simd.AsLanes",
}

// MergedRules returns the default rewrite table, extended and overridden by
// the YAML file at path when one is given. The file is a flat mapping of
// call name to replacement expression.
func MergedRules(path string) (map[string]string, error) {
	merged := make(map[string]string, len(defaultRewrites))
	for name, repl := range defaultRewrites {
		merged[name] = repl
	}
	if path == "" {
		return merged, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var extra map[string]string
	if err := yaml.Unmarshal(raw, &extra); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	for name, repl := range extra {
		merged[name] = repl
	}
	return merged, nil
}

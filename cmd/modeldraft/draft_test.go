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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(t *testing.T, src string) string {
	t.Helper()
	rules, err := MergedRules("")
	require.NoError(t, err)
	out, err := Draft("input.go", []byte(src), rules)
	require.NoError(t, err)
	return string(out)
}

func TestDraftRejectsUnparsableSource(t *testing.T) {
	rules, err := MergedRules("")
	require.NoError(t, err)

	out, err := Draft("broken.go", []byte("package broken\nfunc {"), rules)
	assert.Error(t, err)
	assert.Nil(t, out, "a failed translation must not produce partial output")
}

func TestDraftStripsDirectivesKeepsDocs(t *testing.T) {
	out := draft(t, `//go:build amd64

package arch

// AddEpi8 adds packed signed bytes.
//
//go:noescape
func AddEpi8(a, b uint64) uint64 {
	return a + b
}
`)
	assert.NotContains(t, out, "//go:build")
	assert.NotContains(t, out, "//go:noescape")
	assert.Contains(t, out, "// AddEpi8 adds packed signed bytes.")
}

func TestDraftFlattensUnsafeReinterpret(t *testing.T) {
	out := draft(t, `package arch

import "unsafe"

func ToBits(x float32) int32 {
	return *(*int32)(unsafe.Pointer(&x))
}
`)
	assert.Contains(t, out, "int32(x)")
	assert.NotContains(t, out, "unsafe")
}

func TestDraftRewritesPrimitiveCalls(t *testing.T) {
	out := draft(t, `package arch

func add(a, b uint64) uint64 {
	return wrapping_add(a, b)
}
`)
	assert.Contains(t, out, "simd.Add(a, b)")
	assert.Contains(t, out, simdImportPath)
}

func TestDraftHoistsMethodReceivers(t *testing.T) {
	out := draft(t, `package arch

func add(a, b uint64) uint64 {
	return a.wrapping_add(b)
}
`)
	assert.Contains(t, out, "simd.Add(a, b)")
}

func TestDraftEmitsReviewHeader(t *testing.T) {
	out := draft(t, "package arch\n")
	assert.Contains(t, out, "REVIEW REQUIRED")
}

func TestMergedRulesExtendsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("my_prim: simd.Mul\nwrapping_add: simd.SaturatingAdd\n"), 0o644))

	rules, err := MergedRules(path)
	require.NoError(t, err)
	assert.Equal(t, "simd.Mul", rules["my_prim"])
	assert.Equal(t, "simd.SaturatingAdd", rules["wrapping_add"])
	assert.Equal(t, "simd.Sub", rules["wrapping_sub"])
}

func TestMergedRulesRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := MergedRules(path)
	assert.Error(t, err)
}

func TestDraftRejectsInvalidRewriteTarget(t *testing.T) {
	_, err := Draft("input.go", []byte("package arch\n"), map[string]string{"x": "not a valid expr ("})
	assert.Error(t, err)
}

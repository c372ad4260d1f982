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
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/go-highway/simd-models/simd"
)

// Run supports hand-written comparison tests for intrinsics the declaration
// surface cannot express, such as scalar-returning ones. It provides the
// same seeded input generation and mismatch reporting; the caller owns the
// invoke-and-compare loop.
type Run struct {
	t       *testing.T
	name    string
	rng     *rand.Rand
	seed    uint64
	samples int
}

// NewRun starts a manual comparison test and logs its seed.
func NewRun(t *testing.T, name string, opts ...Option) *Run {
	t.Helper()
	o := settings(t, opts)
	seed := o.streamSeed(name)
	t.Logf("%s: seed=0x%016x samples=%d", name, seed, o.samples)
	return &Run{t: t, name: name, rng: newRng(seed, 0), seed: seed, samples: o.samples}
}

// Samples returns the number of trials the run should perform.
func (r *Run) Samples() int {
	return r.samples
}

// Bits draws the next random register value of the given width in bits.
func (r *Run) Bits(width int) simd.Bits {
	return randomBits(r.rng, width)
}

// CheckScalar compares a scalar model output against the real one and
// reports a mismatch through the test. It returns false on mismatch so the
// caller can halt its trial loop.
func (r *Run) CheckScalar(trial int, args []simd.Bits, model, real any) bool {
	r.t.Helper()
	if model == real {
		return true
	}
	var sb strings.Builder
	sb.WriteString(mismatchStyle.Sprintf("mismatch: %s", r.name))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "  %s 0x%016x, trial %d\n", labelStyle.Sprint("seed: "), r.seed, trial)
	for i, a := range args {
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Sprintf("arg%d: ", i), a)
	}
	fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Sprint("model:"), modelStyle.Sprintf("%v", model))
	fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Sprint("real: "), realStyle.Sprintf("%v", real))
	fmt.Fprintf(&sb, "  %s %s", labelStyle.Sprint("host: "), hostFeatures())
	r.t.Errorf("%s", sb.String())
	return false
}

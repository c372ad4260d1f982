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
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/cpu"

	"github.com/go-highway/simd-models/simd"
)

var (
	mismatchStyle = color.New(color.FgRed, color.Bold)
	labelStyle    = color.New(color.FgCyan)
	modelStyle    = color.New(color.FgGreen)
	realStyle     = color.New(color.FgYellow)
)

// Mismatch is the report emitted when a model output differs from the real
// implementation's output. It carries everything needed to reproduce the
// failing trial and to escalate upstream: inputs, the constant parameter if
// any, both outputs, the per-test seed, the trial index, and the host CPU
// feature context the real implementation ran under.
type Mismatch struct {
	Intrinsic string
	Imm       *int
	Seed      uint64
	Trial     int
	Args      []simd.Bits
	Model     simd.Bits
	Real      simd.Bits
}

func (m *Mismatch) String() string {
	var sb strings.Builder
	sb.WriteString(mismatchStyle.Sprintf("mismatch: %s", m.Intrinsic))
	if m.Imm != nil {
		sb.WriteString(mismatchStyle.Sprintf(" (imm=%d)", *m.Imm))
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "  %s 0x%016x, trial %d\n", labelStyle.Sprint("seed: "), m.Seed, m.Trial)
	for i, a := range m.Args {
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Sprintf("arg%d: ", i), a)
	}
	fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Sprint("model:"), modelStyle.Sprint(m.Model))
	fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Sprint("real: "), realStyle.Sprint(m.Real))
	fmt.Fprintf(&sb, "  %s %s", labelStyle.Sprint("host: "), hostFeatures())
	return sb.String()
}

// hostFeatures summarizes the SIMD feature set of the host CPU. A mismatch
// caused by an upstream implementation defect is only meaningful together
// with the hardware it was observed on.
func hostFeatures() string {
	var feats []string
	add := func(ok bool, name string) {
		if ok {
			feats = append(feats, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSSE3, "ssse3")
	add(cpu.X86.HasSSE41, "sse4.1")
	add(cpu.X86.HasSSE42, "sse4.2")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.ARM64.HasASIMD, "asimd")
	if len(feats) == 0 {
		return "(no SIMD features detected)"
	}
	return strings.Join(feats, " ")
}

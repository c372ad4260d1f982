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

package avx

import (
	"encoding/binary"
	"testing"

	"github.com/go-highway/simd-models/difftest"
	"github.com/go-highway/simd-models/simd"
	"github.com/go-highway/simd-models/upstream"
)

// Adapters lifting register-level implementations to flat register values,
// one set per float register shape.

func ps1(f func(upstream.M256) upstream.M256) func(simd.Bits) simd.Bits {
	return func(a simd.Bits) simd.Bits {
		return f(upstream.ToM256(a)).Bits()
	}
}

func ps2(f func(a, b upstream.M256) upstream.M256) func(a, b simd.Bits) simd.Bits {
	return func(a, b simd.Bits) simd.Bits {
		return f(upstream.ToM256(a), upstream.ToM256(b)).Bits()
	}
}

func ps3(f func(a, b, c upstream.M256) upstream.M256) func(a, b, c simd.Bits) simd.Bits {
	return func(a, b, c simd.Bits) simd.Bits {
		return f(upstream.ToM256(a), upstream.ToM256(b), upstream.ToM256(c)).Bits()
	}
}

func ps1i(f func(a upstream.M256, imm int) upstream.M256) func(a simd.Bits, imm int) simd.Bits {
	return func(a simd.Bits, imm int) simd.Bits {
		return f(upstream.ToM256(a), imm).Bits()
	}
}

func ps2i(f func(a, b upstream.M256, imm int) upstream.M256) func(a, b simd.Bits, imm int) simd.Bits {
	return func(a, b simd.Bits, imm int) simd.Bits {
		return f(upstream.ToM256(a), upstream.ToM256(b), imm).Bits()
	}
}

func pd2(f func(a, b upstream.M256d) upstream.M256d) func(a, b simd.Bits) simd.Bits {
	return func(a, b simd.Bits) simd.Bits {
		return f(upstream.ToM256d(a), upstream.ToM256d(b)).Bits()
	}
}

func pd3(f func(a, b, c upstream.M256d) upstream.M256d) func(a, b, c simd.Bits) simd.Bits {
	return func(a, b, c simd.Bits) simd.Bits {
		return f(upstream.ToM256d(a), upstream.ToM256d(b), upstream.ToM256d(c)).Bits()
	}
}

func pd1(f func(upstream.M256d) upstream.M256d) func(simd.Bits) simd.Bits {
	return func(a simd.Bits) simd.Bits {
		return f(upstream.ToM256d(a)).Bits()
	}
}

func pd1i(f func(a upstream.M256d, imm int) upstream.M256d) func(a simd.Bits, imm int) simd.Bits {
	return func(a simd.Bits, imm int) simd.Bits {
		return f(upstream.ToM256d(a), imm).Bits()
	}
}

func pd2i(f func(a, b upstream.M256d, imm int) upstream.M256d) func(a, b simd.Bits, imm int) simd.Bits {
	return func(a, b simd.Bits, imm int) simd.Bits {
		return f(upstream.ToM256d(a), upstream.ToM256d(b), imm).Bits()
	}
}

func ps128i(f func(a upstream.M128, imm int) upstream.M128) func(a simd.Bits, imm int) simd.Bits {
	return func(a simd.Bits, imm int) simd.Bits {
		return f(upstream.ToM128(a), imm).Bits()
	}
}

func pd128i(f func(a upstream.M128d, imm int) upstream.M128d) func(a simd.Bits, imm int) simd.Bits {
	return func(a simd.Bits, imm int) simd.Bits {
		return f(upstream.ToM128d(a), imm).Bits()
	}
}

func TestBitwise(t *testing.T) {
	difftest.Binary(t, "_mm256_and_ps", 256, 256, AndPs, ps2(upstream.VAndPs))
	difftest.Binary(t, "_mm256_andnot_ps", 256, 256, AndnotPs, ps2(upstream.VAndnotPs))
	difftest.Binary(t, "_mm256_or_ps", 256, 256, OrPs, ps2(upstream.VOrPs))
	difftest.Binary(t, "_mm256_xor_ps", 256, 256, XorPs, ps2(upstream.VXorPs))
	difftest.Binary(t, "_mm256_and_pd", 256, 256, AndPd, pd2(upstream.VAndPd))
	difftest.Binary(t, "_mm256_andnot_pd", 256, 256, AndnotPd, pd2(upstream.VAndnotPd))
	difftest.Binary(t, "_mm256_or_pd", 256, 256, OrPd, pd2(upstream.VOrPd))
	difftest.Binary(t, "_mm256_xor_pd", 256, 256, XorPd, pd2(upstream.VXorPd))
}

func TestShuffle(t *testing.T) {
	imm := difftest.ImmRange(0, 256)
	difftest.BinaryImm(t, "_mm256_shuffle_ps", 256, 256, imm, ShufflePs, ps2i(upstream.VShufflePs))
	difftest.BinaryImm(t, "_mm256_shuffle_pd", 256, 256, difftest.ImmRange(0, 16),
		ShufflePd, pd2i(upstream.VShufflePd))
}

func TestBlend(t *testing.T) {
	difftest.BinaryImm(t, "_mm256_blend_ps", 256, 256, difftest.ImmRange(0, 256),
		BlendPs, ps2i(upstream.VBlendPs))
	difftest.BinaryImm(t, "_mm256_blend_pd", 256, 256, difftest.ImmRange(0, 16),
		BlendPd, pd2i(upstream.VBlendPd))
	difftest.Ternary(t, "_mm256_blendv_ps", 256, 256, 256, BlendvPs, ps3(upstream.VBlendvPs))
	difftest.Ternary(t, "_mm256_blendv_pd", 256, 256, 256, BlendvPd, pd3(upstream.VBlendvPd))
}

func TestPermute(t *testing.T) {
	difftest.UnaryImm(t, "_mm256_permute_ps", 256, difftest.ImmRange(0, 256),
		PermutePs, ps1i(upstream.VPermutePs))
	difftest.UnaryImm(t, "_mm_permute_ps", 128, difftest.ImmRange(0, 256),
		Permute128Ps, ps128i(upstream.VPermutePs128))
	difftest.UnaryImm(t, "_mm256_permute_pd", 256, difftest.ImmRange(0, 16),
		PermutePd, pd1i(upstream.VPermutePd))
	difftest.UnaryImm(t, "_mm_permute_pd", 128, difftest.ImmRange(0, 4),
		Permute128Pd, pd128i(upstream.VPermutePd128))
}

func TestDuplicate(t *testing.T) {
	difftest.Unary(t, "_mm256_movehdup_ps", 256, MovehdupPs, ps1(upstream.VMovehdupPs))
	difftest.Unary(t, "_mm256_moveldup_ps", 256, MoveldupPs, ps1(upstream.VMoveldupPs))
	difftest.Unary(t, "_mm256_movedup_pd", 256, MovedupPd, pd1(upstream.VMovedupPd))
}

func TestUnpack(t *testing.T) {
	difftest.Binary(t, "_mm256_unpackhi_ps", 256, 256, UnpackhiPs, ps2(upstream.VUnpackhiPs))
	difftest.Binary(t, "_mm256_unpacklo_ps", 256, 256, UnpackloPs, ps2(upstream.VUnpackloPs))
	difftest.Binary(t, "_mm256_unpackhi_pd", 256, 256, UnpackhiPd, pd2(upstream.VUnpackhiPd))
	difftest.Binary(t, "_mm256_unpacklo_pd", 256, 256, UnpackloPd, pd2(upstream.VUnpackloPd))
}

// Scalar-returning intrinsics need hand-written loops.

func TestMovemask(t *testing.T) {
	r := difftest.NewRun(t, "_mm256_movemask_ps")
	for trial := range r.Samples() {
		a := r.Bits(256)
		if !r.CheckScalar(trial, []simd.Bits{a},
			MovemaskPs(a), upstream.VMovemaskPs(upstream.ToM256(a))) {
			return
		}
	}
}

func TestMovemaskPd(t *testing.T) {
	r := difftest.NewRun(t, "_mm256_movemask_pd")
	for trial := range r.Samples() {
		a := r.Bits(256)
		if !r.CheckScalar(trial, []simd.Bits{a},
			MovemaskPd(a), upstream.VMovemaskPd(upstream.ToM256d(a))) {
			return
		}
	}
}

// The models route float lanes through the F32x8/F64x4 views, so the views
// must be bit-exact: a signaling NaN with a distinctive payload has to come
// out of a lane rearrangement byte-identical.
func TestNaNPayloadSurvivesLaneMovement(t *testing.T) {
	img := make([]byte, 32)
	payloads := []uint32{
		0x7F800123, // signaling NaN, low payload bits set
		0xFFC00001, // negative quiet NaN
		0x7FBFFFFF, // signaling NaN, all payload bits set
		0x80000000, // negative zero
		0x7F800000, // positive infinity
		0x00000001, // smallest subnormal
		0xFF800456, // negative signaling NaN
		0x3F800000, // 1.0
	}
	for i, p := range payloads {
		binary.LittleEndian.PutUint32(img[4*i:], p)
	}
	a := simd.BitsFromBytes(img)

	wantImg := make([]byte, 32)
	for i := range 8 {
		binary.LittleEndian.PutUint32(wantImg[4*i:], payloads[i|1])
	}
	want := simd.BitsFromBytes(wantImg)

	got := MovehdupPs(a)
	if !simd.EqualBits(got, want) {
		t.Errorf("movehdup_ps altered float bit patterns: got %s want %s", got, want)
	}
	reg := upstream.VMovehdupPs(upstream.ToM256(a)).Bits()
	if !simd.EqualBits(got, reg) {
		t.Errorf("model and register implementation disagree on NaN lanes: %s vs %s", got, reg)
	}
}

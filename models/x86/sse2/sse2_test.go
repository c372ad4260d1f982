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

package sse2

import (
	"testing"

	"github.com/go-highway/simd-models/difftest"
	"github.com/go-highway/simd-models/simd"
	"github.com/go-highway/simd-models/upstream"
)

// Adapters lifting register-level implementations to flat register values.

func real1(f func(upstream.M128i) upstream.M128i) func(simd.Bits) simd.Bits {
	return func(a simd.Bits) simd.Bits {
		return f(upstream.ToM128i(a)).Bits()
	}
}

func real2(f func(a, b upstream.M128i) upstream.M128i) func(a, b simd.Bits) simd.Bits {
	return func(a, b simd.Bits) simd.Bits {
		return f(upstream.ToM128i(a), upstream.ToM128i(b)).Bits()
	}
}

func real1i(f func(a upstream.M128i, imm int) upstream.M128i) func(a simd.Bits, imm int) simd.Bits {
	return func(a simd.Bits, imm int) simd.Bits {
		return f(upstream.ToM128i(a), imm).Bits()
	}
}

func TestAdd(t *testing.T) {
	difftest.Binary(t, "_mm_add_epi8", 128, 128, AddEpi8, real2(upstream.AddEpi8))
	difftest.Binary(t, "_mm_add_epi16", 128, 128, AddEpi16, real2(upstream.AddEpi16))
	difftest.Binary(t, "_mm_add_epi32", 128, 128, AddEpi32, real2(upstream.AddEpi32))
	difftest.Binary(t, "_mm_add_epi64", 128, 128, AddEpi64, real2(upstream.AddEpi64))
}

func TestSub(t *testing.T) {
	difftest.Binary(t, "_mm_sub_epi8", 128, 128, SubEpi8, real2(upstream.SubEpi8))
	difftest.Binary(t, "_mm_sub_epi16", 128, 128, SubEpi16, real2(upstream.SubEpi16))
	difftest.Binary(t, "_mm_sub_epi32", 128, 128, SubEpi32, real2(upstream.SubEpi32))
	difftest.Binary(t, "_mm_sub_epi64", 128, 128, SubEpi64, real2(upstream.SubEpi64))
}

func TestSaturatingArithmetic(t *testing.T) {
	difftest.Binary(t, "_mm_adds_epi8", 128, 128, AddsEpi8, real2(upstream.AddsEpi8))
	difftest.Binary(t, "_mm_adds_epi16", 128, 128, AddsEpi16, real2(upstream.AddsEpi16))
	difftest.Binary(t, "_mm_adds_epu8", 128, 128, AddsEpu8, real2(upstream.AddsEpu8))
	difftest.Binary(t, "_mm_adds_epu16", 128, 128, AddsEpu16, real2(upstream.AddsEpu16))
	difftest.Binary(t, "_mm_subs_epi8", 128, 128, SubsEpi8, real2(upstream.SubsEpi8))
	difftest.Binary(t, "_mm_subs_epi16", 128, 128, SubsEpi16, real2(upstream.SubsEpi16))
	difftest.Binary(t, "_mm_subs_epu8", 128, 128, SubsEpu8, real2(upstream.SubsEpu8))
	difftest.Binary(t, "_mm_subs_epu16", 128, 128, SubsEpu16, real2(upstream.SubsEpu16))
}

func TestAverage(t *testing.T) {
	difftest.Binary(t, "_mm_avg_epu8", 128, 128, AvgEpu8, real2(upstream.AvgEpu8))
	difftest.Binary(t, "_mm_avg_epu16", 128, 128, AvgEpu16, real2(upstream.AvgEpu16))
}

func TestMultiply(t *testing.T) {
	difftest.Binary(t, "_mm_madd_epi16", 128, 128, MaddEpi16, real2(upstream.MaddEpi16))
	difftest.Binary(t, "_mm_mulhi_epi16", 128, 128, MulhiEpi16, real2(upstream.MulhiEpi16))
	difftest.Binary(t, "_mm_mulhi_epu16", 128, 128, MulhiEpu16, real2(upstream.MulhiEpu16))
	difftest.Binary(t, "_mm_mullo_epi16", 128, 128, MulloEpi16, real2(upstream.MulloEpi16))
	difftest.Binary(t, "_mm_mul_epu32", 128, 128, MulEpu32, real2(upstream.MulEpu32))
}

func TestMinMax(t *testing.T) {
	difftest.Binary(t, "_mm_max_epi16", 128, 128, MaxEpi16, real2(upstream.MaxEpi16))
	difftest.Binary(t, "_mm_max_epu8", 128, 128, MaxEpu8, real2(upstream.MaxEpu8))
	difftest.Binary(t, "_mm_min_epi16", 128, 128, MinEpi16, real2(upstream.MinEpi16))
	difftest.Binary(t, "_mm_min_epu8", 128, 128, MinEpu8, real2(upstream.MinEpu8))
}

func TestSumAbsDiff(t *testing.T) {
	difftest.Binary(t, "_mm_sad_epu8", 128, 128, SadEpu8, real2(upstream.SadEpu8))
}

func TestShiftImmediate(t *testing.T) {
	imm := difftest.ImmRange(0, 256)
	difftest.UnaryImm(t, "_mm_slli_epi16", 128, imm, SlliEpi16, real1i(upstream.SlliEpi16))
	difftest.UnaryImm(t, "_mm_slli_epi32", 128, imm, SlliEpi32, real1i(upstream.SlliEpi32))
	difftest.UnaryImm(t, "_mm_slli_epi64", 128, imm, SlliEpi64, real1i(upstream.SlliEpi64))
	difftest.UnaryImm(t, "_mm_srli_epi16", 128, imm, SrliEpi16, real1i(upstream.SrliEpi16))
	difftest.UnaryImm(t, "_mm_srli_epi32", 128, imm, SrliEpi32, real1i(upstream.SrliEpi32))
	difftest.UnaryImm(t, "_mm_srli_epi64", 128, imm, SrliEpi64, real1i(upstream.SrliEpi64))
	difftest.UnaryImm(t, "_mm_srai_epi16", 128, imm, SraiEpi16, real1i(upstream.SraiEpi16))
	difftest.UnaryImm(t, "_mm_srai_epi32", 128, imm, SraiEpi32, real1i(upstream.SraiEpi32))
}

func TestShiftByteImmediate(t *testing.T) {
	imm := difftest.ImmRange(0, 256)
	difftest.UnaryImm(t, "_mm_slli_si128", 128, imm, SlliSi128, real1i(upstream.SlliSi128))
	difftest.UnaryImm(t, "_mm_srli_si128", 128, imm, SrliSi128, real1i(upstream.SrliSi128))
}

func TestShiftCountRegister(t *testing.T) {
	difftest.Binary(t, "_mm_sll_epi16", 128, 128, SllEpi16, real2(upstream.SllEpi16))
	difftest.Binary(t, "_mm_sll_epi32", 128, 128, SllEpi32, real2(upstream.SllEpi32))
	difftest.Binary(t, "_mm_sll_epi64", 128, 128, SllEpi64, real2(upstream.SllEpi64))
	difftest.Binary(t, "_mm_srl_epi16", 128, 128, SrlEpi16, real2(upstream.SrlEpi16))
	difftest.Binary(t, "_mm_srl_epi32", 128, 128, SrlEpi32, real2(upstream.SrlEpi32))
	difftest.Binary(t, "_mm_srl_epi64", 128, 128, SrlEpi64, real2(upstream.SrlEpi64))
	difftest.Binary(t, "_mm_sra_epi16", 128, 128, SraEpi16, real2(upstream.SraEpi16))
	difftest.Binary(t, "_mm_sra_epi32", 128, 128, SraEpi32, real2(upstream.SraEpi32))
}

func TestBitwise(t *testing.T) {
	difftest.Binary(t, "_mm_and_si128", 128, 128, AndSi128, real2(upstream.AndSi128))
	difftest.Binary(t, "_mm_andnot_si128", 128, 128, AndnotSi128, real2(upstream.AndnotSi128))
	difftest.Binary(t, "_mm_or_si128", 128, 128, OrSi128, real2(upstream.OrSi128))
	difftest.Binary(t, "_mm_xor_si128", 128, 128, XorSi128, real2(upstream.XorSi128))
}

func TestCompare(t *testing.T) {
	difftest.Binary(t, "_mm_cmpeq_epi8", 128, 128, CmpeqEpi8, real2(upstream.CmpeqEpi8))
	difftest.Binary(t, "_mm_cmpeq_epi16", 128, 128, CmpeqEpi16, real2(upstream.CmpeqEpi16))
	difftest.Binary(t, "_mm_cmpeq_epi32", 128, 128, CmpeqEpi32, real2(upstream.CmpeqEpi32))
	difftest.Binary(t, "_mm_cmpgt_epi8", 128, 128, CmpgtEpi8, real2(upstream.CmpgtEpi8))
	difftest.Binary(t, "_mm_cmpgt_epi16", 128, 128, CmpgtEpi16, real2(upstream.CmpgtEpi16))
	difftest.Binary(t, "_mm_cmpgt_epi32", 128, 128, CmpgtEpi32, real2(upstream.CmpgtEpi32))
	difftest.Binary(t, "_mm_cmplt_epi8", 128, 128, CmpltEpi8, real2(upstream.CmpltEpi8))
	difftest.Binary(t, "_mm_cmplt_epi16", 128, 128, CmpltEpi16, real2(upstream.CmpltEpi16))
	difftest.Binary(t, "_mm_cmplt_epi32", 128, 128, CmpltEpi32, real2(upstream.CmpltEpi32))
}

func TestPack(t *testing.T) {
	difftest.Binary(t, "_mm_packs_epi16", 128, 128, PacksEpi16, real2(upstream.PacksEpi16))
	difftest.Binary(t, "_mm_packs_epi32", 128, 128, PacksEpi32, real2(upstream.PacksEpi32))
	difftest.Binary(t, "_mm_packus_epi16", 128, 128, PackusEpi16, real2(upstream.PackusEpi16))
}

func TestUnpack(t *testing.T) {
	difftest.Binary(t, "_mm_unpacklo_epi8", 128, 128, UnpackloEpi8, real2(upstream.UnpackloEpi8))
	difftest.Binary(t, "_mm_unpacklo_epi16", 128, 128, UnpackloEpi16, real2(upstream.UnpackloEpi16))
	difftest.Binary(t, "_mm_unpacklo_epi32", 128, 128, UnpackloEpi32, real2(upstream.UnpackloEpi32))
	difftest.Binary(t, "_mm_unpacklo_epi64", 128, 128, UnpackloEpi64, real2(upstream.UnpackloEpi64))
	difftest.Binary(t, "_mm_unpackhi_epi8", 128, 128, UnpackhiEpi8, real2(upstream.UnpackhiEpi8))
	difftest.Binary(t, "_mm_unpackhi_epi16", 128, 128, UnpackhiEpi16, real2(upstream.UnpackhiEpi16))
	difftest.Binary(t, "_mm_unpackhi_epi32", 128, 128, UnpackhiEpi32, real2(upstream.UnpackhiEpi32))
	difftest.Binary(t, "_mm_unpackhi_epi64", 128, 128, UnpackhiEpi64, real2(upstream.UnpackhiEpi64))
}

func TestShuffleImmediate(t *testing.T) {
	imm := difftest.ImmRange(0, 256)
	difftest.UnaryImm(t, "_mm_shuffle_epi32", 128, imm, ShuffleEpi32, real1i(upstream.ShuffleEpi32))
	difftest.UnaryImm(t, "_mm_shufflehi_epi16", 128, imm, ShufflehiEpi16, real1i(upstream.ShufflehiEpi16))
	difftest.UnaryImm(t, "_mm_shufflelo_epi16", 128, imm, ShuffleloEpi16, real1i(upstream.ShuffleloEpi16))
}

func TestMove(t *testing.T) {
	difftest.Unary(t, "_mm_move_epi64", 128, MoveEpi64, real1(upstream.MoveEpi64))
}

// Scalar-returning and scalar-taking intrinsics need hand-written loops.

func TestMovemaskEpi8(t *testing.T) {
	r := difftest.NewRun(t, "_mm_movemask_epi8")
	for trial := range r.Samples() {
		a := r.Bits(128)
		if !r.CheckScalar(trial, []simd.Bits{a},
			MovemaskEpi8(a), upstream.MovemaskEpi8(upstream.ToM128i(a))) {
			return
		}
	}
}

func TestExtractEpi16(t *testing.T) {
	r := difftest.NewRun(t, "_mm_extract_epi16")
	for trial := range r.Samples() {
		a := r.Bits(128)
		for imm := range 8 {
			if !r.CheckScalar(trial, []simd.Bits{a},
				ExtractEpi16(a, imm), upstream.ExtractEpi16(upstream.ToM128i(a), imm)) {
				return
			}
		}
	}
}

func TestInsertEpi16(t *testing.T) {
	r := difftest.NewRun(t, "_mm_insert_epi16")
	for trial := range r.Samples() {
		a := r.Bits(128)
		v := int(int16(a.U16x8().Get(0))) // reuse a lane as the scalar operand
		for imm := range 8 {
			got := InsertEpi16(a, v, imm)
			want := upstream.InsertEpi16(upstream.ToM128i(a), v, imm).Bits()
			if !r.CheckScalar(trial, []simd.Bits{a}, got.String(), want.String()) {
				return
			}
		}
	}
}

func TestByteShiftFullWidthClearsRegister(t *testing.T) {
	a := simd.FromLanes(simd.Splat(16, uint8(0xFF)))
	for _, imm := range []int{16, 17, 200, 255} {
		if !simd.EqualBits(SrliSi128(a, imm), simd.ZeroBits(128)) {
			t.Errorf("srli_si128 by %d must clear the register", imm)
		}
		if !simd.EqualBits(SlliSi128(a, imm), simd.ZeroBits(128)) {
			t.Errorf("slli_si128 by %d must clear the register", imm)
		}
	}
}

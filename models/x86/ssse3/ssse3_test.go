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

package ssse3

import (
	"testing"

	"github.com/go-highway/simd-models/difftest"
	"github.com/go-highway/simd-models/simd"
	"github.com/go-highway/simd-models/upstream"
)

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

func TestAbs(t *testing.T) {
	difftest.Unary(t, "_mm_abs_epi8", 128, AbsEpi8, real1(upstream.AbsEpi8))
	difftest.Unary(t, "_mm_abs_epi16", 128, AbsEpi16, real1(upstream.AbsEpi16))
	difftest.Unary(t, "_mm_abs_epi32", 128, AbsEpi32, real1(upstream.AbsEpi32))
}

func TestShuffle(t *testing.T) {
	difftest.Binary(t, "_mm_shuffle_epi8", 128, 128, ShuffleEpi8, real2(upstream.ShuffleEpi8))
}

func TestAlignr(t *testing.T) {
	difftest.BinaryImm(t, "_mm_alignr_epi8", 128, 128, difftest.ImmRange(0, 64),
		AlignrEpi8,
		func(a, b simd.Bits, imm int) simd.Bits {
			return upstream.AlignrEpi8(upstream.ToM128i(a), upstream.ToM128i(b), imm).Bits()
		})
}

func TestHorizontal(t *testing.T) {
	difftest.Binary(t, "_mm_hadd_epi16", 128, 128, HaddEpi16, real2(upstream.HaddEpi16))
	difftest.Binary(t, "_mm_hadds_epi16", 128, 128, HaddsEpi16, real2(upstream.HaddsEpi16))
	difftest.Binary(t, "_mm_hadd_epi32", 128, 128, HaddEpi32, real2(upstream.HaddEpi32))
	difftest.Binary(t, "_mm_hsub_epi16", 128, 128, HsubEpi16, real2(upstream.HsubEpi16))
	difftest.Binary(t, "_mm_hsubs_epi16", 128, 128, HsubsEpi16, real2(upstream.HsubsEpi16))
	difftest.Binary(t, "_mm_hsub_epi32", 128, 128, HsubEpi32, real2(upstream.HsubEpi32))
}

func TestMultiplyAdd(t *testing.T) {
	difftest.Binary(t, "_mm_maddubs_epi16", 128, 128, MaddubsEpi16, real2(upstream.MaddubsEpi16))
	difftest.Binary(t, "_mm_mulhrs_epi16", 128, 128, MulhrsEpi16, real2(upstream.MulhrsEpi16))
}

func TestSign(t *testing.T) {
	difftest.Binary(t, "_mm_sign_epi8", 128, 128, SignEpi8, real2(upstream.SignEpi8))
	difftest.Binary(t, "_mm_sign_epi16", 128, 128, SignEpi16, real2(upstream.SignEpi16))
	difftest.Binary(t, "_mm_sign_epi32", 128, 128, SignEpi32, real2(upstream.SignEpi32))
}

func TestHaddConcreteVector(t *testing.T) {
	a := simd.FromLanes(simd.FromSlice([]int16{1, 2, 3, 4, 5, 6, 7, 8}))
	b := simd.FromLanes(simd.FromSlice([]int16{8, 7, 6, 5, 4, 3, 2, 1}))
	got := HaddEpi16(a, b).I16x8()
	want := []int16{3, 7, 11, 15, 15, 11, 7, 3}
	for i, w := range want {
		if got.Get(i) != w {
			t.Errorf("lane %d: got %d, want %d", i, got.Get(i), w)
		}
	}
}

func TestShuffleZeroesHighBitLanes(t *testing.T) {
	a := simd.FromLanes(simd.FromFunc(16, func(i int) uint8 { return uint8(i + 1) }))
	ctrl := simd.FromLanes(simd.FromFunc(16, func(i int) uint8 {
		if i%2 == 0 {
			return 0x80 | uint8(i)
		}
		return uint8(15 - i)
	}))
	got := ShuffleEpi8(a, ctrl).U8x16()
	for i := range 16 {
		if i%2 == 0 {
			if got.Get(i) != 0 {
				t.Errorf("lane %d: control high bit set, got %d, want 0", i, got.Get(i))
			}
		} else if got.Get(i) != uint8(15-i)+1 {
			t.Errorf("lane %d: got %d, want %d", i, got.Get(i), 15-i+1)
		}
	}
}

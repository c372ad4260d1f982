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

// Package ssse3 provides reference models of the SSSE3 instruction set.
package ssse3

import "github.com/go-highway/simd-models/simd"

func AbsEpi8(a simd.Bits) simd.Bits {
	v := a.I8x16()
	return simd.FromLanes(simd.Select(simd.Lt(v, simd.Zero[int8](16)), simd.Neg(v), v))
}

func AbsEpi16(a simd.Bits) simd.Bits {
	v := a.I16x8()
	return simd.FromLanes(simd.Select(simd.Lt(v, simd.Zero[int16](8)), simd.Neg(v), v))
}

func AbsEpi32(a simd.Bits) simd.Bits {
	v := a.I32x4()
	return simd.FromLanes(simd.Select(simd.Lt(v, simd.Zero[int32](4)), simd.Neg(v), v))
}

func ShuffleEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(pshufb128(a.U8x16(), b.U8x16()))
}

// AlignrEpi8 concatenates a (high) and b (low) and extracts 16 bytes
// starting at byte imm. Counts past 32 clear the register; counts past 16
// read from a alone with zeros shifted in.
func AlignrEpi8(a, b simd.Bits, imm int) simd.Bits {
	if imm > 32 {
		return simd.ZeroBits(128)
	}
	if imm > 16 {
		a, b = simd.ZeroBits(128), a
		imm -= 16
	}
	idx := make([]int, 16)
	for i := range idx {
		idx[i] = i + imm
	}
	return simd.FromLanes(simd.Shuffle2(b.U8x16(), a.U8x16(), idx))
}

func HaddEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phaddw128(a.I16x8(), b.I16x8()))
}

func HaddsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phaddsw128(a.I16x8(), b.I16x8()))
}

func HaddEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phaddd128(a.I32x4(), b.I32x4()))
}

func HsubEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phsubw128(a.I16x8(), b.I16x8()))
}

func HsubsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phsubsw128(a.I16x8(), b.I16x8()))
}

func HsubEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phsubd128(a.I32x4(), b.I32x4()))
}

func MaddubsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(pmaddubsw128(a.U8x16(), b.I8x16()))
}

func MulhrsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(pmulhrsw128(a.I16x8(), b.I16x8()))
}

func SignEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(psignb128(a.I8x16(), b.I8x16()))
}

func SignEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(psignw128(a.I16x8(), b.I16x8()))
}

func SignEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(psignd128(a.I32x4(), b.I32x4()))
}

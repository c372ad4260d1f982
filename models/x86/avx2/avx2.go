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

// Package avx2 provides reference models of a subset of the AVX2
// instruction set. The 256-bit registers behave as two independent 128-bit
// halves for the horizontal, shuffle, alignment and byte-shift
// instructions; the plain element-wise instructions span the full width.
package avx2

import "github.com/go-highway/simd-models/simd"

func AbsEpi8(a simd.Bits) simd.Bits {
	v := a.I8x32()
	return simd.FromLanes(simd.Select(simd.Lt(v, simd.Zero[int8](32)), simd.Neg(v), v))
}

func AbsEpi16(a simd.Bits) simd.Bits {
	v := a.I16x16()
	return simd.FromLanes(simd.Select(simd.Lt(v, simd.Zero[int16](16)), simd.Neg(v), v))
}

func AbsEpi32(a simd.Bits) simd.Bits {
	v := a.I32x8()
	return simd.FromLanes(simd.Select(simd.Lt(v, simd.Zero[int32](8)), simd.Neg(v), v))
}

func AddEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I8x32(), b.I8x32()))
}

func AddEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I16x16(), b.I16x16()))
}

func AddEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I32x8(), b.I32x8()))
}

func AddEpi64(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I64x4(), b.I64x4()))
}

func AddsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingAdd(a.I16x16(), b.I16x16()))
}

func AddsEpu8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingAdd(a.U8x32(), b.U8x32()))
}

func AvgEpu8(a, b simd.Bits) simd.Bits {
	wa := simd.Cast(a.U8x32(), func(x uint8) uint16 { return uint16(x) })
	wb := simd.Cast(b.U8x32(), func(x uint8) uint16 { return uint16(x) })
	one := simd.Splat(32, uint16(1))
	sum := simd.Add(simd.Add(wa, wb), one)
	return simd.FromLanes(simd.Cast(simd.Shr(sum, one), func(x uint16) uint8 { return uint8(x) }))
}

func AvgEpu16(a, b simd.Bits) simd.Bits {
	wa := simd.Cast(a.U16x16(), func(x uint16) uint32 { return uint32(x) })
	wb := simd.Cast(b.U16x16(), func(x uint16) uint32 { return uint32(x) })
	one := simd.Splat(16, uint32(1))
	sum := simd.Add(simd.Add(wa, wb), one)
	return simd.FromLanes(simd.Cast(simd.Shr(sum, one), func(x uint32) uint16 { return uint16(x) }))
}

func AndSi256(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.And(a.U64x4(), b.U64x4()))
}

func AndnotSi256(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.AndNot(a.U64x4(), b.U64x4()))
}

func OrSi256(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Or(a.U64x4(), b.U64x4()))
}

func XorSi256(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Xor(a.U64x4(), b.U64x4()))
}

func CmpeqEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Eq(a.I32x8(), b.I32x8()))
}

func CmpgtEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Gt(a.I16x16(), b.I16x16()))
}

func HaddEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phaddw(a.I16x16(), b.I16x16()))
}

func HaddsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phaddsw(a.I16x16(), b.I16x16()))
}

func HaddEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(phaddd(a.I32x8(), b.I32x8()))
}

func MaddubsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(pmaddubsw(a.U8x32(), b.I8x32()))
}

func MulhrsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(pmulhrsw(a.I16x16(), b.I16x16()))
}

func PacksEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(packsswb(a.I16x16(), b.I16x16()))
}

func ShuffleEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(pshufb(a.U8x32(), b.U8x32()))
}

// AlignrEpi8 extracts 16 bytes per 128-bit half from the concatenation of
// the corresponding halves of a (high) and b (low).
func AlignrEpi8(a, b simd.Bits, imm int) simd.Bits {
	if imm >= 32 {
		return simd.ZeroBits(256)
	}
	if imm == 16 {
		return a
	}
	if imm > 16 {
		a, b = simd.ZeroBits(256), a
		imm -= 16
	}
	idx := make([]int, 16)
	for i := range idx {
		idx[i] = i + imm
	}
	align := func(lo, hi int) simd.Bits {
		return simd.FromLanes(simd.Shuffle2(
			b.Slice(lo, hi).U8x16(), a.Slice(lo, hi).U8x16(), idx))
	}
	return simd.ConcatBits(align(0, 128), align(128, 256))
}

func SlliEpi16(a simd.Bits, imm int) simd.Bits {
	if imm > 15 {
		return simd.ZeroBits(256)
	}
	return simd.FromLanes(simd.Shl(a.U16x16(), simd.Splat(16, uint16(imm))))
}

func SraiEpi16(a simd.Bits, imm int) simd.Bits {
	return simd.FromLanes(simd.Shr(a.I16x16(), simd.Splat(16, int16(min(imm, 15)))))
}

// byteShift shifts each 128-bit half by sh bytes, shifting in zeros.
// Positive sh shifts toward higher addresses (left), negative toward lower
// (right).
func byteShift(a simd.Bits, sh int) simd.Bits {
	if sh > 15 || sh < -15 {
		return simd.ZeroBits(256)
	}
	shift := func(lo, hi int) simd.Bits {
		v := a.Slice(lo, hi).U8x16()
		idx := make([]int, 16)
		for i := range idx {
			src := i - sh
			if src >= 0 && src < 16 {
				idx[i] = src
			} else {
				idx[i] = 16 // zero lane
			}
		}
		return simd.FromLanes(simd.Shuffle2(v, simd.Zero[uint8](16), idx))
	}
	return simd.ConcatBits(shift(0, 128), shift(128, 256))
}

// SlliSi256 shifts each 128-bit half left by imm bytes.
func SlliSi256(a simd.Bits, imm int) simd.Bits {
	return byteShift(a, imm&0xFF)
}

// SrliSi256 shifts each 128-bit half right by imm bytes.
func SrliSi256(a simd.Bits, imm int) simd.Bits {
	return byteShift(a, -(imm & 0xFF))
}

// BlendvEpi8 picks b where the mask byte's sign bit is set, a elsewhere.
func BlendvEpi8(a, b, mask simd.Bits) simd.Bits {
	m := simd.Lt(mask.I8x32(), simd.Zero[int8](32))
	return simd.FromLanes(simd.Select(m, b.I8x32(), a.I8x32()))
}

// Extracti128Si256 returns the selected 128-bit half.
func Extracti128Si256(a simd.Bits, imm int) simd.Bits {
	if imm&1 == 1 {
		return a.Slice(128, 256)
	}
	return a.Slice(0, 128)
}

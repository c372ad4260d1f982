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

// Package sse2 provides reference models of the SSE2 integer instruction
// set. Every model takes and returns flat register values and is composed
// from the generic vector operations and the handwritten primitives in
// this package; none of them share code with the implementations they are
// tested against.
//
// Instructions with a compile-time constant take it as an ordinary int
// argument; the differential tests enumerate the constant domain.
package sse2

import "github.com/go-highway/simd-models/simd"

func AddEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I8x16(), b.I8x16()))
}

func AddEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I16x8(), b.I16x8()))
}

func AddEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I32x4(), b.I32x4()))
}

func AddEpi64(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I64x2(), b.I64x2()))
}

func AddsEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingAdd(a.I8x16(), b.I8x16()))
}

func AddsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingAdd(a.I16x8(), b.I16x8()))
}

func AddsEpu8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingAdd(a.U8x16(), b.U8x16()))
}

func AddsEpu16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingAdd(a.U16x8(), b.U16x8()))
}

func SubEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Sub(a.I8x16(), b.I8x16()))
}

func SubEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Sub(a.I16x8(), b.I16x8()))
}

func SubEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Sub(a.I32x4(), b.I32x4()))
}

func SubEpi64(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Sub(a.I64x2(), b.I64x2()))
}

func SubsEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingSub(a.I8x16(), b.I8x16()))
}

func SubsEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingSub(a.I16x8(), b.I16x8()))
}

func SubsEpu8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingSub(a.U8x16(), b.U8x16()))
}

func SubsEpu16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.SaturatingSub(a.U16x8(), b.U16x8()))
}

// AvgEpu8 rounds up: the sum is widened, incremented, and halved.
func AvgEpu8(a, b simd.Bits) simd.Bits {
	wa := simd.Cast(a.U8x16(), func(x uint8) uint16 { return uint16(x) })
	wb := simd.Cast(b.U8x16(), func(x uint8) uint16 { return uint16(x) })
	one := simd.Splat(16, uint16(1))
	sum := simd.Add(simd.Add(wa, wb), one)
	return simd.FromLanes(simd.Cast(simd.Shr(sum, one), func(x uint16) uint8 { return uint8(x) }))
}

func AvgEpu16(a, b simd.Bits) simd.Bits {
	wa := simd.Cast(a.U16x8(), func(x uint16) uint32 { return uint32(x) })
	wb := simd.Cast(b.U16x8(), func(x uint16) uint32 { return uint32(x) })
	one := simd.Splat(8, uint32(1))
	sum := simd.Add(simd.Add(wa, wb), one)
	return simd.FromLanes(simd.Cast(simd.Shr(sum, one), func(x uint32) uint16 { return uint16(x) }))
}

func MaddEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(pmaddwd(a.I16x8(), b.I16x8()))
}

func MaxEpi16(a, b simd.Bits) simd.Bits {
	x, y := a.I16x8(), b.I16x8()
	return simd.FromLanes(simd.Select(simd.Gt(x, y), x, y))
}

func MaxEpu8(a, b simd.Bits) simd.Bits {
	x, y := a.U8x16(), b.U8x16()
	return simd.FromLanes(simd.Select(simd.Gt(x, y), x, y))
}

func MinEpi16(a, b simd.Bits) simd.Bits {
	x, y := a.I16x8(), b.I16x8()
	return simd.FromLanes(simd.Select(simd.Lt(x, y), x, y))
}

func MinEpu8(a, b simd.Bits) simd.Bits {
	x, y := a.U8x16(), b.U8x16()
	return simd.FromLanes(simd.Select(simd.Lt(x, y), x, y))
}

func MulhiEpi16(a, b simd.Bits) simd.Bits {
	wa := simd.Cast(a.I16x8(), func(x int16) int32 { return int32(x) })
	wb := simd.Cast(b.I16x8(), func(x int16) int32 { return int32(x) })
	p := simd.Shr(simd.Mul(wa, wb), simd.Splat(8, int32(16)))
	return simd.FromLanes(simd.Cast(p, func(x int32) int16 { return int16(x) }))
}

func MulhiEpu16(a, b simd.Bits) simd.Bits {
	wa := simd.Cast(a.U16x8(), func(x uint16) uint32 { return uint32(x) })
	wb := simd.Cast(b.U16x8(), func(x uint16) uint32 { return uint32(x) })
	p := simd.Shr(simd.Mul(wa, wb), simd.Splat(8, uint32(16)))
	return simd.FromLanes(simd.Cast(p, func(x uint32) uint16 { return uint16(x) }))
}

func MulloEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Mul(a.I16x8(), b.I16x8()))
}

// MulEpu32 multiplies the low 32-bit halves of each 64-bit element.
func MulEpu32(a, b simd.Bits) simd.Bits {
	mask := simd.Splat(2, uint64(0xFFFFFFFF))
	return simd.FromLanes(simd.Mul(simd.And(a.U64x2(), mask), simd.And(b.U64x2(), mask)))
}

func SadEpu8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(psadbw(a.U8x16(), b.U8x16()))
}

func SlliEpi16(a simd.Bits, imm int) simd.Bits {
	if imm > 15 {
		return simd.ZeroBits(128)
	}
	v := a.U16x8()
	return simd.FromLanes(simd.Shl(v, simd.Splat(8, uint16(imm))))
}

func SlliEpi32(a simd.Bits, imm int) simd.Bits {
	if imm > 31 {
		return simd.ZeroBits(128)
	}
	return simd.FromLanes(simd.Shl(a.U32x4(), simd.Splat(4, uint32(imm))))
}

func SlliEpi64(a simd.Bits, imm int) simd.Bits {
	if imm > 63 {
		return simd.ZeroBits(128)
	}
	return simd.FromLanes(simd.Shl(a.U64x2(), simd.Splat(2, uint64(imm))))
}

func SrliEpi16(a simd.Bits, imm int) simd.Bits {
	if imm > 15 {
		return simd.ZeroBits(128)
	}
	return simd.FromLanes(simd.Shr(a.U16x8(), simd.Splat(8, uint16(imm))))
}

func SrliEpi32(a simd.Bits, imm int) simd.Bits {
	if imm > 31 {
		return simd.ZeroBits(128)
	}
	return simd.FromLanes(simd.Shr(a.U32x4(), simd.Splat(4, uint32(imm))))
}

func SrliEpi64(a simd.Bits, imm int) simd.Bits {
	if imm > 63 {
		return simd.ZeroBits(128)
	}
	return simd.FromLanes(simd.Shr(a.U64x2(), simd.Splat(2, uint64(imm))))
}

// SraiEpi16 saturates oversized counts to the lane width minus one instead
// of zeroing, so every lane collapses to its sign.
func SraiEpi16(a simd.Bits, imm int) simd.Bits {
	return simd.FromLanes(simd.Shr(a.I16x8(), simd.Splat(8, int16(min(imm, 15)))))
}

func SraiEpi32(a simd.Bits, imm int) simd.Bits {
	return simd.FromLanes(simd.Shr(a.I32x4(), simd.Splat(4, int32(min(imm, 31)))))
}

func SllEpi16(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(psllw(a.I16x8(), count))
}

func SllEpi32(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(pslld(a.I32x4(), count))
}

func SllEpi64(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(psllq(a.I64x2(), count))
}

func SrlEpi16(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(psrlw(a.I16x8(), count))
}

func SrlEpi32(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(psrld(a.I32x4(), count))
}

func SrlEpi64(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(psrlq(a.I64x2(), count))
}

func SraEpi16(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(psraw(a.I16x8(), count))
}

func SraEpi32(a, count simd.Bits) simd.Bits {
	return simd.FromLanes(psrad(a.I32x4(), count))
}

// SlliSi128 shifts the whole register left by imm bytes, shifting in
// zeros. A count past 15 clears the register.
func SlliSi128(a simd.Bits, imm int) simd.Bits {
	sh := imm & 0xFF
	idx := make([]int, 16)
	for i := range idx {
		if sh > 15 {
			idx[i] = i
		} else {
			idx[i] = 16 - sh + i
		}
	}
	return simd.FromLanes(simd.Shuffle2(simd.Zero[uint8](16), a.U8x16(), idx))
}

// SrliSi128 shifts the whole register right by imm bytes, shifting in
// zeros.
func SrliSi128(a simd.Bits, imm int) simd.Bits {
	sh := imm & 0xFF
	idx := make([]int, 16)
	for i := range idx {
		if sh > 15 {
			idx[i] = i + 16
		} else {
			idx[i] = i + sh
		}
	}
	return simd.FromLanes(simd.Shuffle2(a.U8x16(), simd.Zero[uint8](16), idx))
}

func AndSi128(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.And(a.U64x2(), b.U64x2()))
}

func AndnotSi128(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.AndNot(a.U64x2(), b.U64x2()))
}

func OrSi128(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Or(a.U64x2(), b.U64x2()))
}

func XorSi128(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Xor(a.U64x2(), b.U64x2()))
}

func CmpeqEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Eq(a.I8x16(), b.I8x16()))
}

func CmpeqEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Eq(a.I16x8(), b.I16x8()))
}

func CmpeqEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Eq(a.I32x4(), b.I32x4()))
}

func CmpgtEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Gt(a.I8x16(), b.I8x16()))
}

func CmpgtEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Gt(a.I16x8(), b.I16x8()))
}

func CmpgtEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Gt(a.I32x4(), b.I32x4()))
}

func CmpltEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Lt(a.I8x16(), b.I8x16()))
}

func CmpltEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Lt(a.I16x8(), b.I16x8()))
}

func CmpltEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Lt(a.I32x4(), b.I32x4()))
}

func PacksEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(packsswb(a.I16x8(), b.I16x8()))
}

func PacksEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(packssdw(a.I32x4(), b.I32x4()))
}

func PackusEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(packuswb(a.I16x8(), b.I16x8()))
}

// interleave builds the shuffle table that alternates lanes of two inputs
// starting at base.
func interleave(n, base int) []int {
	idx := make([]int, n)
	for i := range idx {
		if i%2 == 0 {
			idx[i] = base + i/2
		} else {
			idx[i] = n + base + i/2
		}
	}
	return idx
}

func UnpackloEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U8x16(), b.U8x16(), interleave(16, 0)))
}

func UnpackhiEpi8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U8x16(), b.U8x16(), interleave(16, 8)))
}

func UnpackloEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U16x8(), b.U16x8(), interleave(8, 0)))
}

func UnpackhiEpi16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U16x8(), b.U16x8(), interleave(8, 4)))
}

func UnpackloEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U32x4(), b.U32x4(), interleave(4, 0)))
}

func UnpackhiEpi32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U32x4(), b.U32x4(), interleave(4, 2)))
}

func UnpackloEpi64(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U64x2(), b.U64x2(), []int{0, 2}))
}

func UnpackhiEpi64(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.U64x2(), b.U64x2(), []int{1, 3}))
}

func ShuffleEpi32(a simd.Bits, imm int) simd.Bits {
	v := a.U32x4()
	idx := make([]int, 4)
	for i := range idx {
		idx[i] = (imm >> (2 * i)) & 3
	}
	return simd.FromLanes(simd.Shuffle2(v, v, idx))
}

func ShufflehiEpi16(a simd.Bits, imm int) simd.Bits {
	v := a.U16x8()
	idx := []int{0, 1, 2, 3, 0, 0, 0, 0}
	for i := range 4 {
		idx[4+i] = 4 + ((imm >> (2 * i)) & 3)
	}
	return simd.FromLanes(simd.Shuffle2(v, v, idx))
}

func ShuffleloEpi16(a simd.Bits, imm int) simd.Bits {
	v := a.U16x8()
	idx := []int{0, 0, 0, 0, 4, 5, 6, 7}
	for i := range 4 {
		idx[i] = (imm >> (2 * i)) & 3
	}
	return simd.FromLanes(simd.Shuffle2(v, v, idx))
}

// MovemaskEpi8 gathers the sign bit of every byte into the low 16 bits of
// the result, lane 0 in bit 0.
func MovemaskEpi8(a simd.Bits) int {
	v := a.U8x16()
	mask := 0
	for i := range 16 {
		mask |= int(v.Get(i)>>7) << i
	}
	return mask
}

// MoveEpi64 keeps the low 64-bit element and zeroes the upper one.
func MoveEpi64(a simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Insert(simd.Zero[uint64](2), 0, a.U64x2().Get(0)))
}

func ExtractEpi16(a simd.Bits, imm int) int {
	return int(a.U16x8().Get(imm & 7))
}

func InsertEpi16(a simd.Bits, v int, imm int) simd.Bits {
	return simd.FromLanes(simd.Insert(a.I16x8(), imm&7, int16(v)))
}

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

// Package avx provides reference models of the AVX floating-point
// instruction set: the bitwise, shuffle, blend, permute, duplicate, unpack
// and movemask forms on packed single and double precision registers.
//
// None of these instructions compute on element values, so every model is a
// pure lane rearrangement or mask. Float lanes pass through bit-exact; a NaN
// keeps its payload through every operation here.
package avx

import "github.com/go-highway/simd-models/simd"

// Bitwise forms operate on the raw element bits, so the models take the
// integer view of the register.

func AndPs(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.And(a.U32x8(), b.U32x8()))
}

func AndnotPs(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.AndNot(a.U32x8(), b.U32x8()))
}

func OrPs(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Or(a.U32x8(), b.U32x8()))
}

func XorPs(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Xor(a.U32x8(), b.U32x8()))
}

func AndPd(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.And(a.U64x4(), b.U64x4()))
}

func AndnotPd(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.AndNot(a.U64x4(), b.U64x4()))
}

func OrPd(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Or(a.U64x4(), b.U64x4()))
}

func XorPd(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Xor(a.U64x4(), b.U64x4()))
}

// ShufflePs selects, per 128-bit half, two lanes of a then two lanes of b by
// the 2-bit fields of imm. The same field values apply to both halves.
func ShufflePs(a, b simd.Bits, imm int) simd.Bits {
	m := imm
	idx := []int{
		m & 3, m >> 2 & 3, (m >> 4 & 3) + 8, (m >> 6 & 3) + 8,
		(m & 3) + 4, (m >> 2 & 3) + 4, (m >> 4 & 3) + 12, (m >> 6 & 3) + 12,
	}
	return simd.FromLanes(simd.Shuffle2(a.F32x8(), b.F32x8(), idx))
}

// ShufflePd selects, per 128-bit half, one lane of a then one lane of b by
// one bit of imm each.
func ShufflePd(a, b simd.Bits, imm int) simd.Bits {
	m := imm
	idx := []int{m & 1, (m >> 1 & 1) + 4, (m >> 2 & 1) + 2, (m >> 3 & 1) + 6}
	return simd.FromLanes(simd.Shuffle2(a.F64x4(), b.F64x4(), idx))
}

// BlendPs picks lane i from b where bit i of imm is set, from a otherwise.
func BlendPs(a, b simd.Bits, imm int) simd.Bits {
	idx := make([]int, 8)
	for i := range idx {
		idx[i] = (imm>>i&1)*8 + i
	}
	return simd.FromLanes(simd.Shuffle2(a.F32x8(), b.F32x8(), idx))
}

func BlendPd(a, b simd.Bits, imm int) simd.Bits {
	idx := make([]int, 4)
	for i := range idx {
		idx[i] = (imm>>i&1)*4 + i
	}
	return simd.FromLanes(simd.Shuffle2(a.F64x4(), b.F64x4(), idx))
}

// BlendvPs picks lane i from b where the sign bit of lane i of c is set,
// from a otherwise.
func BlendvPs(a, b, c simd.Bits) simd.Bits {
	mask := simd.Lt(c.I32x8(), simd.Zero[int32](8))
	return simd.FromLanes(simd.Select(mask, b.F32x8(), a.F32x8()))
}

func BlendvPd(a, b, c simd.Bits) simd.Bits {
	mask := simd.Lt(c.I64x4(), simd.Zero[int64](4))
	return simd.FromLanes(simd.Select(mask, b.F64x4(), a.F64x4()))
}

// PermutePs rearranges the lanes of each 128-bit half of a by the 2-bit
// fields of imm, the same fields for both halves.
func PermutePs(a simd.Bits, imm int) simd.Bits {
	idx := make([]int, 8)
	for h := range 2 {
		for j := range 4 {
			idx[4*h+j] = 4*h + imm>>(2*j)&3
		}
	}
	v := a.F32x8()
	return simd.FromLanes(simd.Shuffle2(v, v, idx))
}

// Permute128Ps is the 128-bit form of PermutePs.
func Permute128Ps(a simd.Bits, imm int) simd.Bits {
	idx := make([]int, 4)
	for j := range idx {
		idx[j] = imm >> (2 * j) & 3
	}
	v := a.F32x4()
	return simd.FromLanes(simd.Shuffle2(v, v, idx))
}

// PermutePd rearranges the lanes of each 128-bit half of a, one imm bit per
// result lane.
func PermutePd(a simd.Bits, imm int) simd.Bits {
	idx := make([]int, 4)
	for h := range 2 {
		for j := range 2 {
			idx[2*h+j] = 2*h + imm>>(2*h+j)&1
		}
	}
	v := a.F64x4()
	return simd.FromLanes(simd.Shuffle2(v, v, idx))
}

// Permute128Pd is the 128-bit form of PermutePd.
func Permute128Pd(a simd.Bits, imm int) simd.Bits {
	idx := []int{imm & 1, imm >> 1 & 1}
	v := a.F64x2()
	return simd.FromLanes(simd.Shuffle2(v, v, idx))
}

// MovehdupPs duplicates the odd-indexed lanes into the adjacent even slots.
func MovehdupPs(a simd.Bits) simd.Bits {
	v := a.F32x8()
	return simd.FromLanes(simd.Shuffle2(v, v, []int{1, 1, 3, 3, 5, 5, 7, 7}))
}

// MoveldupPs duplicates the even-indexed lanes into the adjacent odd slots.
func MoveldupPs(a simd.Bits) simd.Bits {
	v := a.F32x8()
	return simd.FromLanes(simd.Shuffle2(v, v, []int{0, 0, 2, 2, 4, 4, 6, 6}))
}

// MovedupPd duplicates the low lane of each 128-bit half.
func MovedupPd(a simd.Bits) simd.Bits {
	v := a.F64x4()
	return simd.FromLanes(simd.Shuffle2(v, v, []int{0, 0, 2, 2}))
}

// UnpackhiPs interleaves the high lanes of each 128-bit half of a and b.
func UnpackhiPs(a, b simd.Bits) simd.Bits {
	idx := []int{2, 10, 3, 11, 6, 14, 7, 15}
	return simd.FromLanes(simd.Shuffle2(a.F32x8(), b.F32x8(), idx))
}

// UnpackloPs interleaves the low lanes of each 128-bit half of a and b.
func UnpackloPs(a, b simd.Bits) simd.Bits {
	idx := []int{0, 8, 1, 9, 4, 12, 5, 13}
	return simd.FromLanes(simd.Shuffle2(a.F32x8(), b.F32x8(), idx))
}

func UnpackhiPd(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.F64x4(), b.F64x4(), []int{1, 5, 3, 7}))
}

func UnpackloPd(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Shuffle2(a.F64x4(), b.F64x4(), []int{0, 4, 2, 6}))
}

// MovemaskPs gathers the sign bit of every lane into the low 8 bits of the
// result, lane 0 in bit 0.
func MovemaskPs(a simd.Bits) int {
	v := a.I32x8()
	m := 0
	for i := range v.NumLanes() {
		if v.Get(i) < 0 {
			m |= 1 << i
		}
	}
	return m
}

// MovemaskPd gathers the sign bit of every lane into the low 4 bits of the
// result.
func MovemaskPd(a simd.Bits) int {
	v := a.I64x4()
	m := 0
	for i := range v.NumLanes() {
		if v.Get(i) < 0 {
			m |= 1 << i
		}
	}
	return m
}

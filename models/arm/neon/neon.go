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

// Package neon provides reference models of a subset of the ARM NEON
// instruction set. The q forms take full 128-bit registers. The widening
// (l), wide (w) and accumulate (al) forms take 64-bit sources and produce
// 128-bit results; the narrowing (hn) form goes the other way.
package neon

import "github.com/go-highway/simd-models/simd"

func VaddqS16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I16x8(), b.I16x8()))
}

func VaddqU64(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.U64x2(), b.U64x2()))
}

// VaddlS8 widens both 64-bit operands to 16-bit lanes before adding, so the
// sums never wrap.
func VaddlS8(a, b simd.Bits) simd.Bits {
	wa := simd.Cast(a.I8x8(), func(x int8) int16 { return int16(x) })
	wb := simd.Cast(b.I8x8(), func(x int8) int16 { return int16(x) })
	return simd.FromLanes(simd.Add(wa, wb))
}

// VaddwS8 adds a widened 64-bit operand to a 128-bit accumulator.
func VaddwS8(a, b simd.Bits) simd.Bits {
	wb := simd.Cast(b.I8x8(), func(x int8) int16 { return int16(x) })
	return simd.FromLanes(simd.Add(a.I16x8(), wb))
}

// VaddhnS16 adds and keeps the high half of each 16-bit sum, narrowing the
// result to a 64-bit register.
func VaddhnS16(a, b simd.Bits) simd.Bits {
	sum := simd.Add(a.I16x8(), b.I16x8())
	high := simd.Shr(sum, simd.Splat(8, int16(8)))
	return simd.FromLanes(simd.Cast(high, func(x int16) int8 { return int8(x) }))
}

func VabdqS8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.AbsDiff(a.I8x16(), b.I8x16()))
}

func VabdqU16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.AbsDiff(a.U16x8(), b.U16x8()))
}

// VabdlU8 widens the absolute differences of two 64-bit operands to 16-bit
// lanes.
func VabdlU8(a, b simd.Bits) simd.Bits {
	d := simd.AbsDiff(a.U8x8(), b.U8x8())
	return simd.FromLanes(simd.Cast(d, func(x uint8) uint16 { return uint16(x) }))
}

// VabaqS8 accumulates the absolute differences of b and c onto a.
func VabaqS8(a, b, c simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.I8x16(), simd.AbsDiff(b.I8x16(), c.I8x16())))
}

// VabalU8 accumulates the widened absolute differences of the 64-bit
// operands b and c onto the 128-bit accumulator a.
func VabalU8(a, b, c simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Add(a.U16x8(), VabdlU8(b, c).U16x8()))
}

func VabsqS8(a simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Abs(a.I8x16()))
}

func VabsqS16(a simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Abs(a.I16x8()))
}

func VandqS8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.And(a.U8x16(), b.U8x16()))
}

// VbicqS8 clears the bits of a that are set in b.
func VbicqS8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.AndNot(b.U8x16(), a.U8x16()))
}

// VbslqS8 selects bits from a where mask is set and from b where it is
// clear. Selection is per bit, not per lane.
func VbslqS8(mask, a, b simd.Bits) simd.Bits {
	m := mask.U8x16()
	return simd.FromLanes(simd.Or(
		simd.And(m, a.U8x16()),
		simd.AndNot(m, b.U8x16())))
}

func VceqqS8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Eq(a.I8x16(), b.I8x16()))
}

func VcgeqS16(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Ge(a.I16x8(), b.I16x8()))
}

func VcgtqS32(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Gt(a.I32x4(), b.I32x4()))
}

func VcleqU8(a, b simd.Bits) simd.Bits {
	return simd.FromLanes(simd.Le(a.U8x16(), b.U8x16()))
}

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

import "github.com/go-highway/simd-models/simd"

// Handwritten primitives transcribed from Intel's instruction
// descriptions.

// pshufb128 uses the low 4 bits of each control byte as a source index and
// the high bit as a zeroing flag.
func pshufb128(a, b simd.Vec[uint8]) simd.Vec[uint8] {
	return simd.FromFunc(16, func(i int) uint8 {
		if b.Get(i) > 127 {
			return 0
		}
		return a.Get(int(b.Get(i) % 16))
	})
}

// phaddw128 sums adjacent pairs, a pairs in the low half and b pairs in
// the high half.
func phaddw128(a, b simd.Vec[int16]) simd.Vec[int16] {
	return simd.FromFunc(8, func(i int) int16 {
		if i < 4 {
			return a.Get(2*i) + a.Get(2*i+1)
		}
		return b.Get(2*(i-4)) + b.Get(2*(i-4)+1)
	})
}

func phaddsw128(a, b simd.Vec[int16]) simd.Vec[int16] {
	sa := simd.SaturatingAdd(a, simd.FromFunc(8, func(i int) int16 { return a.Get(i ^ 1) }))
	sb := simd.SaturatingAdd(b, simd.FromFunc(8, func(i int) int16 { return b.Get(i ^ 1) }))
	return simd.FromFunc(8, func(i int) int16 {
		if i < 4 {
			return sa.Get(2 * i)
		}
		return sb.Get(2 * (i - 4))
	})
}

func phaddd128(a, b simd.Vec[int32]) simd.Vec[int32] {
	return simd.FromFunc(4, func(i int) int32 {
		if i < 2 {
			return a.Get(2*i) + a.Get(2*i+1)
		}
		return b.Get(2*(i-2)) + b.Get(2*(i-2)+1)
	})
}

func phsubw128(a, b simd.Vec[int16]) simd.Vec[int16] {
	return simd.FromFunc(8, func(i int) int16 {
		if i < 4 {
			return a.Get(2*i) - a.Get(2*i+1)
		}
		return b.Get(2*(i-4)) - b.Get(2*(i-4)+1)
	})
}

func phsubsw128(a, b simd.Vec[int16]) simd.Vec[int16] {
	sa := simd.SaturatingSub(a, simd.FromFunc(8, func(i int) int16 { return a.Get(i ^ 1) }))
	sb := simd.SaturatingSub(b, simd.FromFunc(8, func(i int) int16 { return b.Get(i ^ 1) }))
	return simd.FromFunc(8, func(i int) int16 {
		if i < 4 {
			return sa.Get(2 * i)
		}
		return sb.Get(2 * (i - 4))
	})
}

func phsubd128(a, b simd.Vec[int32]) simd.Vec[int32] {
	return simd.FromFunc(4, func(i int) int32 {
		if i < 2 {
			return a.Get(2*i) - a.Get(2*i+1)
		}
		return b.Get(2*(i-2)) - b.Get(2*(i-2)+1)
	})
}

// pmaddubsw128 multiplies unsigned bytes of a with signed bytes of b and
// adds adjacent pairs with signed saturation.
func pmaddubsw128(a simd.Vec[uint8], b simd.Vec[int8]) simd.Vec[int16] {
	lo := simd.FromFunc(8, func(i int) int16 {
		return int16(uint16(a.Get(2*i))) * int16(b.Get(2*i))
	})
	hi := simd.FromFunc(8, func(i int) int16 {
		return int16(uint16(a.Get(2*i+1))) * int16(b.Get(2*i+1))
	})
	return simd.SaturatingAdd(lo, hi)
}

// pmulhrsw128 scales the 32-bit product down to a rounded 16-bit result.
func pmulhrsw128(a, b simd.Vec[int16]) simd.Vec[int16] {
	return simd.FromFunc(8, func(i int) int16 {
		t := int32(a.Get(i)) * int32(b.Get(i))
		return int16(((t >> 14) + 1) >> 1)
	})
}

func psignb128(a, b simd.Vec[int8]) simd.Vec[int8] {
	return simd.FromFunc(16, func(i int) int8 {
		switch {
		case b.Get(i) < 0:
			return -a.Get(i)
		case b.Get(i) > 0:
			return a.Get(i)
		}
		return 0
	})
}

func psignw128(a, b simd.Vec[int16]) simd.Vec[int16] {
	return simd.FromFunc(8, func(i int) int16 {
		switch {
		case b.Get(i) < 0:
			return -a.Get(i)
		case b.Get(i) > 0:
			return a.Get(i)
		}
		return 0
	})
}

func psignd128(a, b simd.Vec[int32]) simd.Vec[int32] {
	return simd.FromFunc(4, func(i int) int32 {
		switch {
		case b.Get(i) < 0:
			return -a.Get(i)
		case b.Get(i) > 0:
			return a.Get(i)
		}
		return 0
	})
}

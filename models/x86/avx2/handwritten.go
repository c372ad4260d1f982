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

package avx2

import "github.com/go-highway/simd-models/simd"

// Handwritten primitives. The horizontal and byte-addressed instructions
// treat the register as two independent 128-bit halves.

func phaddw(a, b simd.Vec[int16]) simd.Vec[int16] {
	return simd.FromFunc(16, func(i int) int16 {
		switch {
		case i < 4:
			return a.Get(2*i) + a.Get(2*i+1)
		case i < 8:
			return b.Get(2*(i-4)) + b.Get(2*(i-4)+1)
		case i < 12:
			return a.Get(2*(i-4)) + a.Get(2*(i-4)+1)
		}
		return b.Get(2*(i-8)) + b.Get(2*(i-8)+1)
	})
}

func phaddsw(a, b simd.Vec[int16]) simd.Vec[int16] {
	sa := simd.SaturatingAdd(a, simd.FromFunc(16, func(i int) int16 { return a.Get(i ^ 1) }))
	sb := simd.SaturatingAdd(b, simd.FromFunc(16, func(i int) int16 { return b.Get(i ^ 1) }))
	return simd.FromFunc(16, func(i int) int16 {
		switch {
		case i < 4:
			return sa.Get(2 * i)
		case i < 8:
			return sb.Get(2 * (i - 4))
		case i < 12:
			return sa.Get(2 * (i - 4))
		}
		return sb.Get(2 * (i - 8))
	})
}

func phaddd(a, b simd.Vec[int32]) simd.Vec[int32] {
	return simd.FromFunc(8, func(i int) int32 {
		switch {
		case i < 2:
			return a.Get(2*i) + a.Get(2*i+1)
		case i < 4:
			return b.Get(2*(i-2)) + b.Get(2*(i-2)+1)
		case i < 6:
			return a.Get(2*(i-2)) + a.Get(2*(i-2)+1)
		}
		return b.Get(2*(i-4)) + b.Get(2*(i-4)+1)
	})
}

func pmaddubsw(a simd.Vec[uint8], b simd.Vec[int8]) simd.Vec[int16] {
	lo := simd.FromFunc(16, func(i int) int16 {
		return int16(uint16(a.Get(2*i))) * int16(b.Get(2*i))
	})
	hi := simd.FromFunc(16, func(i int) int16 {
		return int16(uint16(a.Get(2*i+1))) * int16(b.Get(2*i+1))
	})
	return simd.SaturatingAdd(lo, hi)
}

func pmulhrsw(a, b simd.Vec[int16]) simd.Vec[int16] {
	return simd.FromFunc(16, func(i int) int16 {
		t := int32(a.Get(i)) * int32(b.Get(i))
		return int16(((t >> 14) + 1) >> 1)
	})
}

// pshufb indexes within the half each destination byte lives in.
func pshufb(a, b simd.Vec[uint8]) simd.Vec[uint8] {
	return simd.FromFunc(32, func(i int) uint8 {
		if b.Get(i) > 127 {
			return 0
		}
		base := i / 16 * 16
		return a.Get(base + int(b.Get(i)%16))
	})
}

func packsswb(a, b simd.Vec[int16]) simd.Vec[int8] {
	sat := func(v int16) int8 {
		switch {
		case v > 127:
			return 127
		case v < -128:
			return -128
		}
		return int8(v)
	}
	return simd.FromFunc(32, func(i int) int8 {
		h, j := i/16, i%16
		if j < 8 {
			return sat(a.Get(8*h + j))
		}
		return sat(b.Get(8*h + j - 8))
	})
}

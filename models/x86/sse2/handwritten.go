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

import "github.com/go-highway/simd-models/simd"

// Handwritten primitives transcribed from Intel's instruction
// descriptions. These cover the behaviors the generic vector operations
// cannot express: packing with saturation, multiply-accumulate pairs, sum
// of absolute differences, and the shift-by-count-register family with its
// oversized-count saturation.

func packsswb(a, b simd.Vec[int16]) simd.Vec[int8] {
	return simd.FromFunc(16, func(i int) int8 {
		var v int16
		if i < 8 {
			v = a.Get(i)
		} else {
			v = b.Get(i - 8)
		}
		switch {
		case v > 127:
			return 127
		case v < -128:
			return -128
		}
		return int8(v)
	})
}

func packssdw(a, b simd.Vec[int32]) simd.Vec[int16] {
	return simd.FromFunc(8, func(i int) int16 {
		var v int32
		if i < 4 {
			v = a.Get(i)
		} else {
			v = b.Get(i - 4)
		}
		switch {
		case v > 32767:
			return 32767
		case v < -32768:
			return -32768
		}
		return int16(v)
	})
}

func packuswb(a, b simd.Vec[int16]) simd.Vec[uint8] {
	return simd.FromFunc(16, func(i int) uint8 {
		var v int16
		if i < 8 {
			v = a.Get(i)
		} else {
			v = b.Get(i - 8)
		}
		switch {
		case v > 255:
			return 255
		case v < 0:
			return 0
		}
		return uint8(v)
	})
}

func pmaddwd(a, b simd.Vec[int16]) simd.Vec[int32] {
	return simd.FromFunc(4, func(i int) int32 {
		return int32(a.Get(2*i))*int32(b.Get(2*i)) +
			int32(a.Get(2*i+1))*int32(b.Get(2*i+1))
	})
}

func psadbw(a, b simd.Vec[uint8]) simd.Vec[uint64] {
	diff := simd.AbsDiff(a, b)
	return simd.FromFunc(2, func(i int) uint64 {
		var sum uint16
		for j := range 8 {
			sum += uint16(diff.Get(8*i + j))
		}
		return uint64(sum)
	})
}

// shiftCount assembles the shift amount from the low 64 bits of the count
// register. Counts are not masked: anything past the lane width saturates
// in the callers below.
func shiftCount(count simd.Bits) uint64 {
	return count.U64x2().Get(0)
}

func psllw(a simd.Vec[int16], count simd.Bits) simd.Vec[int16] {
	c := shiftCount(count)
	return simd.FromFunc(8, func(i int) int16 {
		if c > 15 {
			return 0
		}
		return int16(uint16(a.Get(i)) << c)
	})
}

func pslld(a simd.Vec[int32], count simd.Bits) simd.Vec[int32] {
	c := shiftCount(count)
	return simd.FromFunc(4, func(i int) int32 {
		if c > 31 {
			return 0
		}
		return int32(uint32(a.Get(i)) << c)
	})
}

func psllq(a simd.Vec[int64], count simd.Bits) simd.Vec[int64] {
	c := shiftCount(count)
	return simd.FromFunc(2, func(i int) int64 {
		if c > 63 {
			return 0
		}
		return int64(uint64(a.Get(i)) << c)
	})
}

func psrlw(a simd.Vec[int16], count simd.Bits) simd.Vec[int16] {
	c := shiftCount(count)
	return simd.FromFunc(8, func(i int) int16 {
		if c > 15 {
			return 0
		}
		return int16(uint16(a.Get(i)) >> c)
	})
}

func psrld(a simd.Vec[int32], count simd.Bits) simd.Vec[int32] {
	c := shiftCount(count)
	return simd.FromFunc(4, func(i int) int32 {
		if c > 31 {
			return 0
		}
		return int32(uint32(a.Get(i)) >> c)
	})
}

func psrlq(a simd.Vec[int64], count simd.Bits) simd.Vec[int64] {
	c := shiftCount(count)
	return simd.FromFunc(2, func(i int) int64 {
		if c > 63 {
			return 0
		}
		return int64(uint64(a.Get(i)) >> c)
	})
}

func psraw(a simd.Vec[int16], count simd.Bits) simd.Vec[int16] {
	c := shiftCount(count)
	return simd.FromFunc(8, func(i int) int16 {
		if c > 15 {
			if a.Get(i) < 0 {
				return -1
			}
			return 0
		}
		return a.Get(i) >> c
	})
}

func psrad(a simd.Vec[int32], count simd.Bits) simd.Vec[int32] {
	c := shiftCount(count)
	return simd.FromFunc(4, func(i int) int32 {
		if c > 31 {
			if a.Get(i) < 0 {
				return -1
			}
			return 0
		}
		return a.Get(i) >> c
	})
}

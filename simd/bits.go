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

package simd

import (
	"encoding/hex"
	"math"
)

// Bits is a flat little-endian bit vector standing in for a hardware
// register value. It carries no lane structure of its own: any lane view of
// matching total width can be read out of it or written into it, and
// round-tripping through any view is the identity.
//
// Widths are whole bytes. The shape methods (I16x8, U8x32, ...) panic when
// the register width does not match; passing a 64-bit value where a 128-bit
// one is expected is a programming error in the calling model.
type Bits struct {
	width int
	data  []byte
}

// BitsFromBytes constructs a register value from a little-endian byte
// image. The bytes are copied.
func BitsFromBytes(b []byte) Bits {
	data := make([]byte, len(b))
	copy(data, b)
	return Bits{width: 8 * len(b), data: data}
}

// ZeroBits constructs an all-zero register value of the given width in
// bits. The width must be a multiple of 8.
func ZeroBits(width int) Bits {
	if width%8 != 0 {
		panic("simd: register width must be a whole number of bytes")
	}
	return Bits{width: width, data: make([]byte, width/8)}
}

// Len returns the register width in bits.
func (b Bits) Len() int {
	return b.width
}

// Bytes returns the little-endian byte image as a copy.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Bit reports bit i, counting from the least significant bit of the lowest
// byte. It panics if i is out of range.
func (b Bits) Bit(i int) bool {
	if i < 0 || i >= b.width {
		panic("simd: bit index out of range")
	}
	return b.data[i/8]>>(i%8)&1 == 1
}

// EqualBits reports whether a and b have the same width and identical bits.
func EqualBits(a, b Bits) bool {
	if a.width != b.width {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Slice returns the bits of b from bit lo up to bit hi as a new register
// value. Both bounds must be byte-aligned.
func (b Bits) Slice(lo, hi int) Bits {
	if lo%8 != 0 || hi%8 != 0 || lo < 0 || hi > b.width || lo > hi {
		panic("simd: invalid register slice bounds")
	}
	return BitsFromBytes(b.data[lo/8 : hi/8])
}

// ConcatBits concatenates lo and hi into one register value, with lo
// occupying the least significant bits.
func ConcatBits(lo, hi Bits) Bits {
	data := make([]byte, 0, len(lo.data)+len(hi.data))
	data = append(data, lo.data...)
	data = append(data, hi.data...)
	return Bits{width: lo.width + hi.width, data: data}
}

// String renders the byte image as lowercase hex, lowest byte first.
func (b Bits) String() string {
	return hex.EncodeToString(b.data)
}

// laneToU64 returns the raw bits of a lane, zero-extended to 64 bits.
// Floats contribute their IEEE 754 bit pattern.
func laneToU64[T Lanes](x T) uint64 {
	switch v := any(x).(type) {
	case int8:
		return uint64(uint8(v))
	case uint8:
		return uint64(v)
	case int16:
		return uint64(uint16(v))
	case uint16:
		return uint64(v)
	case int32:
		return uint64(uint32(v))
	case uint32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint64:
		return v
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	panic("simd: unsupported lane type")
}

// laneFromU64 reconstructs a lane from its raw bits.
func laneFromU64[T Lanes](u uint64) T {
	var z T
	switch any(z).(type) {
	case int8:
		return T(int8(uint8(u)))
	case uint8:
		return T(uint8(u))
	case int16:
		return T(int16(uint16(u)))
	case uint16:
		return T(uint16(u))
	case int32:
		return T(int32(uint32(u)))
	case uint32:
		return T(uint32(u))
	case int64:
		return T(int64(u))
	case uint64:
		return T(u)
	case float32:
		return T(math.Float32frombits(uint32(u)))
	case float64:
		return T(math.Float64frombits(u))
	}
	panic("simd: unsupported lane type")
}

// FromLanes encodes a vector into a register value, lane 0 in the least
// significant bits, each lane little-endian.
func FromLanes[T Lanes](v Vec[T]) Bits {
	lb := laneBits[T]()
	data := make([]byte, v.NumLanes()*lb/8)
	for i, x := range v.data {
		u := laneToU64(x)
		for j := 0; j < lb/8; j++ {
			data[i*lb/8+j] = byte(u >> (8 * j))
		}
	}
	return Bits{width: 8 * len(data), data: data}
}

// AsLanes decodes a register value as a vector of T lanes. The register
// width must be a multiple of the lane width.
func AsLanes[T Lanes](b Bits) Vec[T] {
	lb := laneBits[T]()
	if b.width%lb != 0 {
		panic("simd: register width is not a multiple of the lane width")
	}
	n := b.width / lb
	return FromFunc(n, func(i int) T {
		var u uint64
		for j := lb/8 - 1; j >= 0; j-- {
			u = u<<8 | uint64(b.data[i*lb/8+j])
		}
		return laneFromU64[T](u)
	})
}

// mustWidth panics unless the register is exactly w bits wide.
func (b Bits) mustWidth(w int) {
	if b.width != w {
		panic("simd: register width mismatch")
	}
}

// 64-bit shapes.

func (b Bits) I8x8() Vec[int8]    { b.mustWidth(64); return AsLanes[int8](b) }
func (b Bits) U8x8() Vec[uint8]   { b.mustWidth(64); return AsLanes[uint8](b) }
func (b Bits) I16x4() Vec[int16]  { b.mustWidth(64); return AsLanes[int16](b) }
func (b Bits) U16x4() Vec[uint16] { b.mustWidth(64); return AsLanes[uint16](b) }
func (b Bits) I32x2() Vec[int32]  { b.mustWidth(64); return AsLanes[int32](b) }
func (b Bits) U32x2() Vec[uint32] { b.mustWidth(64); return AsLanes[uint32](b) }

// 128-bit shapes.

func (b Bits) I8x16() Vec[int8]    { b.mustWidth(128); return AsLanes[int8](b) }
func (b Bits) U8x16() Vec[uint8]   { b.mustWidth(128); return AsLanes[uint8](b) }
func (b Bits) I16x8() Vec[int16]   { b.mustWidth(128); return AsLanes[int16](b) }
func (b Bits) U16x8() Vec[uint16]  { b.mustWidth(128); return AsLanes[uint16](b) }
func (b Bits) I32x4() Vec[int32]   { b.mustWidth(128); return AsLanes[int32](b) }
func (b Bits) U32x4() Vec[uint32]  { b.mustWidth(128); return AsLanes[uint32](b) }
func (b Bits) I64x2() Vec[int64]   { b.mustWidth(128); return AsLanes[int64](b) }
func (b Bits) U64x2() Vec[uint64]  { b.mustWidth(128); return AsLanes[uint64](b) }
func (b Bits) F32x4() Vec[float32] { b.mustWidth(128); return AsLanes[float32](b) }
func (b Bits) F64x2() Vec[float64] { b.mustWidth(128); return AsLanes[float64](b) }

// 256-bit shapes.

func (b Bits) I8x32() Vec[int8]    { b.mustWidth(256); return AsLanes[int8](b) }
func (b Bits) U8x32() Vec[uint8]   { b.mustWidth(256); return AsLanes[uint8](b) }
func (b Bits) I16x16() Vec[int16]  { b.mustWidth(256); return AsLanes[int16](b) }
func (b Bits) U16x16() Vec[uint16] { b.mustWidth(256); return AsLanes[uint16](b) }
func (b Bits) I32x8() Vec[int32]   { b.mustWidth(256); return AsLanes[int32](b) }
func (b Bits) U32x8() Vec[uint32]  { b.mustWidth(256); return AsLanes[uint32](b) }
func (b Bits) I64x4() Vec[int64]   { b.mustWidth(256); return AsLanes[int64](b) }
func (b Bits) U64x4() Vec[uint64]  { b.mustWidth(256); return AsLanes[uint64](b) }
func (b Bits) F32x8() Vec[float32] { b.mustWidth(256); return AsLanes[float32](b) }
func (b Bits) F64x4() Vec[float64] { b.mustWidth(256); return AsLanes[float64](b) }

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

// Package upstream holds the implementations under test: register-level
// renditions of vendor intrinsics with the real argument and return shapes.
// They are written imperatively over raw byte images and share no code with
// the reference models, so a defect on either side surfaces as a mismatch
// instead of canceling out.
package upstream

import "encoding/binary"

// M64 is a 64-bit integer register image, lowest byte first.
type M64 [8]byte

// M128i is a 128-bit integer register image, lowest byte first.
type M128i [16]byte

// M256i is a 256-bit integer register image, lowest byte first.
type M256i [32]byte

// M64FromBytes builds a register from an 8-byte little-endian image.
func M64FromBytes(b []byte) M64 {
	var r M64
	copy(r[:], b)
	return r
}

// M128iFromBytes builds a register from a 16-byte little-endian image.
func M128iFromBytes(b []byte) M128i {
	var r M128i
	copy(r[:], b)
	return r
}

// M256iFromBytes builds a register from a 32-byte little-endian image.
func M256iFromBytes(b []byte) M256i {
	var r M256i
	copy(r[:], b)
	return r
}

// Bytes returns the little-endian byte image.
func (a M64) Bytes() []byte   { return append([]byte(nil), a[:]...) }
func (a M128i) Bytes() []byte { return append([]byte(nil), a[:]...) }
func (a M256i) Bytes() []byte { return append([]byte(nil), a[:]...) }

// Lane accessors. Registers are plain byte arrays; every element view is a
// little-endian read or write at the lane offset.

func (a M64) u8(i int) uint8  { return a[i] }
func (a M64) i8(i int) int8   { return int8(a[i]) }
func (a M64) u16(i int) uint16 { return binary.LittleEndian.Uint16(a[2*i:]) }
func (a M64) i16(i int) int16  { return int16(a.u16(i)) }
func (a M64) u32(i int) uint32 { return binary.LittleEndian.Uint32(a[4*i:]) }
func (a M64) i32(i int) int32  { return int32(a.u32(i)) }

func (a *M64) setU8(i int, v uint8)   { a[i] = v }
func (a *M64) setI8(i int, v int8)    { a[i] = byte(v) }
func (a *M64) setU16(i int, v uint16) { binary.LittleEndian.PutUint16(a[2*i:], v) }
func (a *M64) setI16(i int, v int16)  { a.setU16(i, uint16(v)) }
func (a *M64) setU32(i int, v uint32) { binary.LittleEndian.PutUint32(a[4*i:], v) }
func (a *M64) setI32(i int, v int32)  { a.setU32(i, uint32(v)) }

func (a M128i) u8(i int) uint8  { return a[i] }
func (a M128i) i8(i int) int8   { return int8(a[i]) }
func (a M128i) u16(i int) uint16 { return binary.LittleEndian.Uint16(a[2*i:]) }
func (a M128i) i16(i int) int16  { return int16(a.u16(i)) }
func (a M128i) u32(i int) uint32 { return binary.LittleEndian.Uint32(a[4*i:]) }
func (a M128i) i32(i int) int32  { return int32(a.u32(i)) }
func (a M128i) u64(i int) uint64 { return binary.LittleEndian.Uint64(a[8*i:]) }
func (a M128i) i64(i int) int64  { return int64(a.u64(i)) }

func (a *M128i) setU8(i int, v uint8)   { a[i] = v }
func (a *M128i) setI8(i int, v int8)    { a[i] = byte(v) }
func (a *M128i) setU16(i int, v uint16) { binary.LittleEndian.PutUint16(a[2*i:], v) }
func (a *M128i) setI16(i int, v int16)  { a.setU16(i, uint16(v)) }
func (a *M128i) setU32(i int, v uint32) { binary.LittleEndian.PutUint32(a[4*i:], v) }
func (a *M128i) setI32(i int, v int32)  { a.setU32(i, uint32(v)) }
func (a *M128i) setU64(i int, v uint64) { binary.LittleEndian.PutUint64(a[8*i:], v) }
func (a *M128i) setI64(i int, v int64)  { a.setU64(i, uint64(v)) }

func (a M256i) u8(i int) uint8  { return a[i] }
func (a M256i) i8(i int) int8   { return int8(a[i]) }
func (a M256i) u16(i int) uint16 { return binary.LittleEndian.Uint16(a[2*i:]) }
func (a M256i) i16(i int) int16  { return int16(a.u16(i)) }
func (a M256i) u32(i int) uint32 { return binary.LittleEndian.Uint32(a[4*i:]) }
func (a M256i) i32(i int) int32  { return int32(a.u32(i)) }
func (a M256i) u64(i int) uint64 { return binary.LittleEndian.Uint64(a[8*i:]) }
func (a M256i) i64(i int) int64  { return int64(a.u64(i)) }

func (a *M256i) setU8(i int, v uint8)   { a[i] = v }
func (a *M256i) setI8(i int, v int8)    { a[i] = byte(v) }
func (a *M256i) setU16(i int, v uint16) { binary.LittleEndian.PutUint16(a[2*i:], v) }
func (a *M256i) setI16(i int, v int16)  { a.setU16(i, uint16(v)) }
func (a *M256i) setU32(i int, v uint32) { binary.LittleEndian.PutUint32(a[4*i:], v) }
func (a *M256i) setI32(i int, v int32)  { a.setU32(i, uint32(v)) }
func (a *M256i) setU64(i int, v uint64) { binary.LittleEndian.PutUint64(a[8*i:], v) }
func (a *M256i) setI64(i int, v int64)  { a.setU64(i, uint64(v)) }

// Float register images. The float instructions modeled here move, blend
// and mask 32/64-bit elements without arithmetic, so the element accessors
// stay integral and bit patterns (NaN payloads included) pass through
// untouched.

// M128 is a 128-bit single-precision register image, lowest byte first.
type M128 [16]byte

// M128d is a 128-bit double-precision register image, lowest byte first.
type M128d [16]byte

// M256 is a 256-bit single-precision register image, lowest byte first.
type M256 [32]byte

// M256d is a 256-bit double-precision register image, lowest byte first.
type M256d [32]byte

func (a M128) Bytes() []byte  { return append([]byte(nil), a[:]...) }
func (a M128d) Bytes() []byte { return append([]byte(nil), a[:]...) }
func (a M256) Bytes() []byte  { return append([]byte(nil), a[:]...) }
func (a M256d) Bytes() []byte { return append([]byte(nil), a[:]...) }

func (a M128) u32(i int) uint32 { return binary.LittleEndian.Uint32(a[4*i:]) }
func (a M128) i32(i int) int32  { return int32(a.u32(i)) }
func (a *M128) setU32(i int, v uint32) { binary.LittleEndian.PutUint32(a[4*i:], v) }

func (a M128d) u64(i int) uint64 { return binary.LittleEndian.Uint64(a[8*i:]) }
func (a M128d) i64(i int) int64  { return int64(a.u64(i)) }
func (a *M128d) setU64(i int, v uint64) { binary.LittleEndian.PutUint64(a[8*i:], v) }

func (a M256) u32(i int) uint32 { return binary.LittleEndian.Uint32(a[4*i:]) }
func (a M256) i32(i int) int32  { return int32(a.u32(i)) }
func (a *M256) setU32(i int, v uint32) { binary.LittleEndian.PutUint32(a[4*i:], v) }

func (a M256d) u64(i int) uint64 { return binary.LittleEndian.Uint64(a[8*i:]) }
func (a M256d) i64(i int) int64  { return int64(a.u64(i)) }
func (a *M256d) setU64(i int, v uint64) { binary.LittleEndian.PutUint64(a[8*i:], v) }

// Scalar saturation helpers shared by the pack and saturating-arithmetic
// instructions.

func satI8(v int32) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

func satU8(v int32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func satI16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

func satU16(v int32) uint16 {
	if v > 65535 {
		return 65535
	}
	if v < 0 {
		return 0
	}
	return uint16(v)
}

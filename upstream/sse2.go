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

package upstream

// SSE2 integer instructions. Semantics follow Intel's intrinsics guide;
// each function is a direct scalar transcription of the documented
// per-element operation.

func AddEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setI8(i, a.i8(i)+b.i8(i))
	}
	return r
}

func AddEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, a.i16(i)+b.i16(i))
	}
	return r
}

func AddEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setI32(i, a.i32(i)+b.i32(i))
	}
	return r
}

func AddEpi64(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setI64(i, a.i64(i)+b.i64(i))
	}
	return r
}

func AddsEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setI8(i, satI8(int32(a.i8(i))+int32(b.i8(i))))
	}
	return r
}

func AddsEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, satI16(int32(a.i16(i))+int32(b.i16(i))))
	}
	return r
}

func AddsEpu8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setU8(i, satU8(int32(a.u8(i))+int32(b.u8(i))))
	}
	return r
}

func AddsEpu16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setU16(i, satU16(int32(a.u16(i))+int32(b.u16(i))))
	}
	return r
}

func SubEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setI8(i, a.i8(i)-b.i8(i))
	}
	return r
}

func SubEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, a.i16(i)-b.i16(i))
	}
	return r
}

func SubEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setI32(i, a.i32(i)-b.i32(i))
	}
	return r
}

func SubEpi64(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setI64(i, a.i64(i)-b.i64(i))
	}
	return r
}

func SubsEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setI8(i, satI8(int32(a.i8(i))-int32(b.i8(i))))
	}
	return r
}

func SubsEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, satI16(int32(a.i16(i))-int32(b.i16(i))))
	}
	return r
}

func SubsEpu8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setU8(i, satU8(int32(a.u8(i))-int32(b.u8(i))))
	}
	return r
}

func SubsEpu16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setU16(i, satU16(int32(a.u16(i))-int32(b.u16(i))))
	}
	return r
}

func AvgEpu8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setU8(i, uint8((uint16(a.u8(i))+uint16(b.u8(i))+1)>>1))
	}
	return r
}

func AvgEpu16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setU16(i, uint16((uint32(a.u16(i))+uint32(b.u16(i))+1)>>1))
	}
	return r
}

func MaddEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		lo := int32(a.i16(2*i)) * int32(b.i16(2*i))
		hi := int32(a.i16(2*i+1)) * int32(b.i16(2*i+1))
		r.setI32(i, lo+hi)
	}
	return r
}

func MaxEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, max(a.i16(i), b.i16(i)))
	}
	return r
}

func MaxEpu8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setU8(i, max(a.u8(i), b.u8(i)))
	}
	return r
}

func MinEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, min(a.i16(i), b.i16(i)))
	}
	return r
}

func MinEpu8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r.setU8(i, min(a.u8(i), b.u8(i)))
	}
	return r
}

func MulhiEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, int16((int32(a.i16(i))*int32(b.i16(i)))>>16))
	}
	return r
}

func MulhiEpu16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setU16(i, uint16((uint32(a.u16(i))*uint32(b.u16(i)))>>16))
	}
	return r
}

func MulloEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, a.i16(i)*b.i16(i))
	}
	return r
}

func MulEpu32(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setU64(i, uint64(a.u32(2*i))*uint64(b.u32(2*i)))
	}
	return r
}

func SadEpu8(a, b M128i) M128i {
	var r M128i
	for g := range 2 {
		var sum uint16
		for i := range 8 {
			x, y := a.u8(8*g+i), b.u8(8*g+i)
			if x > y {
				sum += uint16(x - y)
			} else {
				sum += uint16(y - x)
			}
		}
		r.setU64(g, uint64(sum))
	}
	return r
}

func SlliEpi16(a M128i, imm int) M128i {
	var r M128i
	if imm > 15 {
		return r
	}
	for i := range 8 {
		r.setU16(i, a.u16(i)<<uint(imm))
	}
	return r
}

func SlliEpi32(a M128i, imm int) M128i {
	var r M128i
	if imm > 31 {
		return r
	}
	for i := range 4 {
		r.setU32(i, a.u32(i)<<uint(imm))
	}
	return r
}

func SlliEpi64(a M128i, imm int) M128i {
	var r M128i
	if imm > 63 {
		return r
	}
	for i := range 2 {
		r.setU64(i, a.u64(i)<<uint(imm))
	}
	return r
}

func SrliEpi16(a M128i, imm int) M128i {
	var r M128i
	if imm > 15 {
		return r
	}
	for i := range 8 {
		r.setU16(i, a.u16(i)>>uint(imm))
	}
	return r
}

func SrliEpi32(a M128i, imm int) M128i {
	var r M128i
	if imm > 31 {
		return r
	}
	for i := range 4 {
		r.setU32(i, a.u32(i)>>uint(imm))
	}
	return r
}

func SrliEpi64(a M128i, imm int) M128i {
	var r M128i
	if imm > 63 {
		return r
	}
	for i := range 2 {
		r.setU64(i, a.u64(i)>>uint(imm))
	}
	return r
}

func SraiEpi16(a M128i, imm int) M128i {
	var r M128i
	sh := min(imm, 15)
	for i := range 8 {
		r.setI16(i, a.i16(i)>>uint(sh))
	}
	return r
}

func SraiEpi32(a M128i, imm int) M128i {
	var r M128i
	sh := min(imm, 31)
	for i := range 4 {
		r.setI32(i, a.i32(i)>>uint(sh))
	}
	return r
}

// The variable shift instructions read the whole low 64 bits of the count
// register, not just the low lane.

func SllEpi16(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 15 {
		return r
	}
	for i := range 8 {
		r.setU16(i, a.u16(i)<<uint(c))
	}
	return r
}

func SllEpi32(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 31 {
		return r
	}
	for i := range 4 {
		r.setU32(i, a.u32(i)<<uint(c))
	}
	return r
}

func SllEpi64(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 63 {
		return r
	}
	for i := range 2 {
		r.setU64(i, a.u64(i)<<uint(c))
	}
	return r
}

func SrlEpi16(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 15 {
		return r
	}
	for i := range 8 {
		r.setU16(i, a.u16(i)>>uint(c))
	}
	return r
}

func SrlEpi32(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 31 {
		return r
	}
	for i := range 4 {
		r.setU32(i, a.u32(i)>>uint(c))
	}
	return r
}

func SrlEpi64(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 63 {
		return r
	}
	for i := range 2 {
		r.setU64(i, a.u64(i)>>uint(c))
	}
	return r
}

func SraEpi16(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 15 {
		c = 15
	}
	for i := range 8 {
		r.setI16(i, a.i16(i)>>uint(c))
	}
	return r
}

func SraEpi32(a, count M128i) M128i {
	var r M128i
	c := count.u64(0)
	if c > 31 {
		c = 31
	}
	for i := range 4 {
		r.setI32(i, a.i32(i)>>uint(c))
	}
	return r
}

func SlliSi128(a M128i, imm int) M128i {
	var r M128i
	sh := imm & 0xFF
	if sh > 15 {
		return r
	}
	for i := sh; i < 16; i++ {
		r[i] = a[i-sh]
	}
	return r
}

func SrliSi128(a M128i, imm int) M128i {
	var r M128i
	sh := imm & 0xFF
	if sh > 15 {
		return r
	}
	for i := 0; i < 16-sh; i++ {
		r[i] = a[i+sh]
	}
	return r
}

func AndSi128(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r[i] = a[i] & b[i]
	}
	return r
}

func AndnotSi128(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r[i] = ^a[i] & b[i]
	}
	return r
}

func OrSi128(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r[i] = a[i] | b[i]
	}
	return r
}

func XorSi128(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func CmpeqEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		if a.i8(i) == b.i8(i) {
			r.setI8(i, -1)
		}
	}
	return r
}

func CmpeqEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		if a.i16(i) == b.i16(i) {
			r.setI16(i, -1)
		}
	}
	return r
}

func CmpeqEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		if a.i32(i) == b.i32(i) {
			r.setI32(i, -1)
		}
	}
	return r
}

func CmpgtEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		if a.i8(i) > b.i8(i) {
			r.setI8(i, -1)
		}
	}
	return r
}

func CmpgtEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		if a.i16(i) > b.i16(i) {
			r.setI16(i, -1)
		}
	}
	return r
}

func CmpgtEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		if a.i32(i) > b.i32(i) {
			r.setI32(i, -1)
		}
	}
	return r
}

func CmpltEpi8(a, b M128i) M128i  { return CmpgtEpi8(b, a) }
func CmpltEpi16(a, b M128i) M128i { return CmpgtEpi16(b, a) }
func CmpltEpi32(a, b M128i) M128i { return CmpgtEpi32(b, a) }

func PacksEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI8(i, satI8(int32(a.i16(i))))
		r.setI8(i+8, satI8(int32(b.i16(i))))
	}
	return r
}

func PacksEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setI16(i, satI16(a.i32(i)))
		r.setI16(i+4, satI16(b.i32(i)))
	}
	return r
}

func PackusEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setU8(i, satU8(int32(a.i16(i))))
		r.setU8(i+8, satU8(int32(b.i16(i))))
	}
	return r
}

func UnpackhiEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r[2*i] = a[8+i]
		r[2*i+1] = b[8+i]
	}
	return r
}

func UnpackhiEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setU16(2*i, a.u16(4+i))
		r.setU16(2*i+1, b.u16(4+i))
	}
	return r
}

func UnpackhiEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setU32(2*i, a.u32(2+i))
		r.setU32(2*i+1, b.u32(2+i))
	}
	return r
}

func UnpackhiEpi64(a, b M128i) M128i {
	var r M128i
	r.setU64(0, a.u64(1))
	r.setU64(1, b.u64(1))
	return r
}

func UnpackloEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r[2*i] = a[i]
		r[2*i+1] = b[i]
	}
	return r
}

func UnpackloEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setU16(2*i, a.u16(i))
		r.setU16(2*i+1, b.u16(i))
	}
	return r
}

func UnpackloEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setU32(2*i, a.u32(i))
		r.setU32(2*i+1, b.u32(i))
	}
	return r
}

func UnpackloEpi64(a, b M128i) M128i {
	var r M128i
	r.setU64(0, a.u64(0))
	r.setU64(1, b.u64(0))
	return r
}

func ShuffleEpi32(a M128i, imm int) M128i {
	var r M128i
	for i := range 4 {
		r.setU32(i, a.u32((imm>>(2*i))&3))
	}
	return r
}

func ShufflehiEpi16(a M128i, imm int) M128i {
	r := a
	for i := range 4 {
		r.setU16(4+i, a.u16(4+((imm>>(2*i))&3)))
	}
	return r
}

func ShuffleloEpi16(a M128i, imm int) M128i {
	r := a
	for i := range 4 {
		r.setU16(i, a.u16((imm>>(2*i))&3))
	}
	return r
}

func MovemaskEpi8(a M128i) int {
	mask := 0
	for i := range 16 {
		if a[i]&0x80 != 0 {
			mask |= 1 << i
		}
	}
	return mask
}

func MoveEpi64(a M128i) M128i {
	var r M128i
	r.setU64(0, a.u64(0))
	return r
}

func ExtractEpi16(a M128i, imm int) int {
	return int(a.u16(imm & 7))
}

func InsertEpi16(a M128i, v int, imm int) M128i {
	r := a
	r.setI16(imm&7, int16(v))
	return r
}

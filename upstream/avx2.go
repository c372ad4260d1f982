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

// AVX2 instructions, prefixed V. Most operate on two independent 128-bit
// halves; the horizontal and byte-shift instructions never cross the
// half boundary.

func VAbsEpi8(a M256i) M256i {
	var r M256i
	for i := range 32 {
		v := a.i8(i)
		if v < 0 {
			v = -v
		}
		r.setI8(i, v)
	}
	return r
}

func VAbsEpi16(a M256i) M256i {
	var r M256i
	for i := range 16 {
		v := a.i16(i)
		if v < 0 {
			v = -v
		}
		r.setI16(i, v)
	}
	return r
}

func VAbsEpi32(a M256i) M256i {
	var r M256i
	for i := range 8 {
		v := a.i32(i)
		if v < 0 {
			v = -v
		}
		r.setI32(i, v)
	}
	return r
}

func VAddEpi8(a, b M256i) M256i {
	var r M256i
	for i := range 32 {
		r.setI8(i, a.i8(i)+b.i8(i))
	}
	return r
}

func VAddEpi16(a, b M256i) M256i {
	var r M256i
	for i := range 16 {
		r.setI16(i, a.i16(i)+b.i16(i))
	}
	return r
}

func VAddEpi32(a, b M256i) M256i {
	var r M256i
	for i := range 8 {
		r.setI32(i, a.i32(i)+b.i32(i))
	}
	return r
}

func VAddEpi64(a, b M256i) M256i {
	var r M256i
	for i := range 4 {
		r.setI64(i, a.i64(i)+b.i64(i))
	}
	return r
}

func VAddsEpi16(a, b M256i) M256i {
	var r M256i
	for i := range 16 {
		r.setI16(i, satI16(int32(a.i16(i))+int32(b.i16(i))))
	}
	return r
}

func VAddsEpu8(a, b M256i) M256i {
	var r M256i
	for i := range 32 {
		r.setU8(i, satU8(int32(a.u8(i))+int32(b.u8(i))))
	}
	return r
}

func VAvgEpu8(a, b M256i) M256i {
	var r M256i
	for i := range 32 {
		r.setU8(i, uint8((uint16(a.u8(i))+uint16(b.u8(i))+1)>>1))
	}
	return r
}

func VAvgEpu16(a, b M256i) M256i {
	var r M256i
	for i := range 16 {
		r.setU16(i, uint16((uint32(a.u16(i))+uint32(b.u16(i))+1)>>1))
	}
	return r
}

func VAndSi256(a, b M256i) M256i {
	var r M256i
	for i := range 32 {
		r[i] = a[i] & b[i]
	}
	return r
}

func VAndnotSi256(a, b M256i) M256i {
	var r M256i
	for i := range 32 {
		r[i] = ^a[i] & b[i]
	}
	return r
}

func VOrSi256(a, b M256i) M256i {
	var r M256i
	for i := range 32 {
		r[i] = a[i] | b[i]
	}
	return r
}

func VXorSi256(a, b M256i) M256i {
	var r M256i
	for i := range 32 {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func VCmpeqEpi32(a, b M256i) M256i {
	var r M256i
	for i := range 8 {
		if a.i32(i) == b.i32(i) {
			r.setI32(i, -1)
		}
	}
	return r
}

func VCmpgtEpi16(a, b M256i) M256i {
	var r M256i
	for i := range 16 {
		if a.i16(i) > b.i16(i) {
			r.setI16(i, -1)
		}
	}
	return r
}

func VHaddEpi16(a, b M256i) M256i {
	var r M256i
	for h := range 2 {
		for i := range 4 {
			r.setI16(8*h+i, a.i16(8*h+2*i)+a.i16(8*h+2*i+1))
			r.setI16(8*h+i+4, b.i16(8*h+2*i)+b.i16(8*h+2*i+1))
		}
	}
	return r
}

func VHaddsEpi16(a, b M256i) M256i {
	var r M256i
	for h := range 2 {
		for i := range 4 {
			r.setI16(8*h+i, satI16(int32(a.i16(8*h+2*i))+int32(a.i16(8*h+2*i+1))))
			r.setI16(8*h+i+4, satI16(int32(b.i16(8*h+2*i))+int32(b.i16(8*h+2*i+1))))
		}
	}
	return r
}

func VHaddEpi32(a, b M256i) M256i {
	var r M256i
	for h := range 2 {
		for i := range 2 {
			r.setI32(4*h+i, a.i32(4*h+2*i)+a.i32(4*h+2*i+1))
			r.setI32(4*h+i+2, b.i32(4*h+2*i)+b.i32(4*h+2*i+1))
		}
	}
	return r
}

func VMaddubsEpi16(a, b M256i) M256i {
	var r M256i
	for i := range 16 {
		lo := int32(int16(uint16(a.u8(2*i)))) * int32(b.i8(2*i))
		hi := int32(int16(uint16(a.u8(2*i+1)))) * int32(b.i8(2*i+1))
		r.setI16(i, satI16(lo+hi))
	}
	return r
}

func VMulhrsEpi16(a, b M256i) M256i {
	var r M256i
	for i := range 16 {
		t := int32(a.i16(i)) * int32(b.i16(i))
		r.setI16(i, int16(((t>>14)+1)>>1))
	}
	return r
}

func VPacksEpi16(a, b M256i) M256i {
	var r M256i
	for h := range 2 {
		for i := range 8 {
			r.setI8(16*h+i, satI8(int32(a.i16(8*h+i))))
			r.setI8(16*h+i+8, satI8(int32(b.i16(8*h+i))))
		}
	}
	return r
}

func VShuffleEpi8(a, b M256i) M256i {
	var r M256i
	for h := range 2 {
		for i := range 16 {
			if b[16*h+i]&0x80 == 0 {
				r[16*h+i] = a[16*h+int(b[16*h+i]&0x0F)]
			}
		}
	}
	return r
}

func VAlignrEpi8(a, b M256i, imm int) M256i {
	var r M256i
	if imm >= 32 {
		return r
	}
	if imm == 16 {
		return a
	}
	if imm > 16 {
		b, a = a, M256i{}
		imm -= 16
	}
	for h := range 2 {
		for i := range 16 {
			if i+imm < 16 {
				r[16*h+i] = b[16*h+i+imm]
			} else {
				r[16*h+i] = a[16*h+i+imm-16]
			}
		}
	}
	return r
}

func VSlliEpi16(a M256i, imm int) M256i {
	var r M256i
	if imm > 15 {
		return r
	}
	for i := range 16 {
		r.setU16(i, a.u16(i)<<uint(imm))
	}
	return r
}

func VSraiEpi16(a M256i, imm int) M256i {
	var r M256i
	sh := min(imm, 15)
	for i := range 16 {
		r.setI16(i, a.i16(i)>>uint(sh))
	}
	return r
}

func VSlliSi256(a M256i, imm int) M256i {
	var r M256i
	sh := imm & 0xFF
	if sh > 15 {
		return r
	}
	for h := range 2 {
		for i := sh; i < 16; i++ {
			r[16*h+i] = a[16*h+i-sh]
		}
	}
	return r
}

func VSrliSi256(a M256i, imm int) M256i {
	var r M256i
	sh := imm & 0xFF
	if sh > 15 {
		return r
	}
	for h := range 2 {
		for i := 0; i < 16-sh; i++ {
			r[16*h+i] = a[16*h+i+sh]
		}
	}
	return r
}

func VBlendvEpi8(a, b, mask M256i) M256i {
	var r M256i
	for i := range 32 {
		if mask[i]&0x80 != 0 {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}

func VExtracti128Si256(a M256i, imm int) M128i {
	var r M128i
	copy(r[:], a[16*(imm&1):])
	return r
}

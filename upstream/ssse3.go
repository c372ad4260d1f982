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

// SSSE3 instructions.

func AbsEpi8(a M128i) M128i {
	var r M128i
	for i := range 16 {
		v := a.i8(i)
		if v < 0 {
			v = -v
		}
		r.setI8(i, v)
	}
	return r
}

func AbsEpi16(a M128i) M128i {
	var r M128i
	for i := range 8 {
		v := a.i16(i)
		if v < 0 {
			v = -v
		}
		r.setI16(i, v)
	}
	return r
}

func AbsEpi32(a M128i) M128i {
	var r M128i
	for i := range 4 {
		v := a.i32(i)
		if v < 0 {
			v = -v
		}
		r.setI32(i, v)
	}
	return r
}

func ShuffleEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		if b[i]&0x80 == 0 {
			r[i] = a[b[i]&0x0F]
		}
	}
	return r
}

func AlignrEpi8(a, b M128i, imm int) M128i {
	var r M128i
	if imm > 32 {
		return r
	}
	if imm > 16 {
		b, a = a, M128i{}
		imm -= 16
	}
	for i := range 16 {
		if i+imm < 16 {
			r[i] = b[i+imm]
		} else {
			r[i] = a[i+imm-16]
		}
	}
	return r
}

func HaddEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setI16(i, a.i16(2*i)+a.i16(2*i+1))
		r.setI16(i+4, b.i16(2*i)+b.i16(2*i+1))
	}
	return r
}

func HaddsEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setI16(i, satI16(int32(a.i16(2*i))+int32(a.i16(2*i+1))))
		r.setI16(i+4, satI16(int32(b.i16(2*i))+int32(b.i16(2*i+1))))
	}
	return r
}

func HaddEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setI32(i, a.i32(2*i)+a.i32(2*i+1))
		r.setI32(i+2, b.i32(2*i)+b.i32(2*i+1))
	}
	return r
}

func HsubEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setI16(i, a.i16(2*i)-a.i16(2*i+1))
		r.setI16(i+4, b.i16(2*i)-b.i16(2*i+1))
	}
	return r
}

func HsubsEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		r.setI16(i, satI16(int32(a.i16(2*i))-int32(a.i16(2*i+1))))
		r.setI16(i+4, satI16(int32(b.i16(2*i))-int32(b.i16(2*i+1))))
	}
	return r
}

func HsubEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setI32(i, a.i32(2*i)-a.i32(2*i+1))
		r.setI32(i+2, b.i32(2*i)-b.i32(2*i+1))
	}
	return r
}

func MaddubsEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		lo := int32(int16(uint16(a.u8(2*i)))) * int32(b.i8(2*i))
		hi := int32(int16(uint16(a.u8(2*i+1)))) * int32(b.i8(2*i+1))
		r.setI16(i, satI16(lo+hi))
	}
	return r
}

func MulhrsEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		t := int32(a.i16(i)) * int32(b.i16(i))
		r.setI16(i, int16(((t>>14)+1)>>1))
	}
	return r
}

func SignEpi8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		switch {
		case b.i8(i) < 0:
			r.setI8(i, -a.i8(i))
		case b.i8(i) > 0:
			r.setI8(i, a.i8(i))
		}
	}
	return r
}

func SignEpi16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		switch {
		case b.i16(i) < 0:
			r.setI16(i, -a.i16(i))
		case b.i16(i) > 0:
			r.setI16(i, a.i16(i))
		}
	}
	return r
}

func SignEpi32(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		switch {
		case b.i32(i) < 0:
			r.setI32(i, -a.i32(i))
		case b.i32(i) > 0:
			r.setI32(i, a.i32(i))
		}
	}
	return r
}

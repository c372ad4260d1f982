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

// NEON instructions. The q forms read full 128-bit registers; the widening
// (l), narrowing (hn) and wide (w) forms mix 64-bit and 128-bit registers.

func VaddqS16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, a.i16(i)+b.i16(i))
	}
	return r
}

func VaddqU64(a, b M128i) M128i {
	var r M128i
	for i := range 2 {
		r.setU64(i, a.u64(i)+b.u64(i))
	}
	return r
}

func VaddlS8(a, b M64) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, int16(a.i8(i))+int16(b.i8(i)))
	}
	return r
}

func VaddwS8(a M128i, b M64) M128i {
	var r M128i
	for i := range 8 {
		r.setI16(i, a.i16(i)+int16(b.i8(i)))
	}
	return r
}

func VaddhnS16(a, b M128i) M64 {
	var r M64
	for i := range 8 {
		r.setI8(i, int8((a.i16(i)+b.i16(i))>>8))
	}
	return r
}

func VabdqS8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		x, y := a.i8(i), b.i8(i)
		if x > y {
			r.setI8(i, x-y)
		} else {
			r.setI8(i, y-x)
		}
	}
	return r
}

func VabdqU16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		x, y := a.u16(i), b.u16(i)
		if x > y {
			r.setU16(i, x-y)
		} else {
			r.setU16(i, y-x)
		}
	}
	return r
}

func VabdlU8(a, b M64) M128i {
	var r M128i
	for i := range 8 {
		x, y := a.u8(i), b.u8(i)
		if x > y {
			r.setU16(i, uint16(x-y))
		} else {
			r.setU16(i, uint16(y-x))
		}
	}
	return r
}

func VabaqS8(a, b, c M128i) M128i {
	return AddEpi8(a, VabdqS8(b, c))
}

func VabalU8(a M128i, b, c M64) M128i {
	var r M128i
	d := VabdlU8(b, c)
	for i := range 8 {
		r.setU16(i, a.u16(i)+d.u16(i))
	}
	return r
}

func VabsqS8(a M128i) M128i {
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

func VabsqS16(a M128i) M128i {
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

func VandqS8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r[i] = a[i] & b[i]
	}
	return r
}

func VbicqS8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r[i] = a[i] &^ b[i]
	}
	return r
}

func VbslqS8(mask, a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		r[i] = mask[i]&a[i] | ^mask[i]&b[i]
	}
	return r
}

func VceqqS8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		if a.i8(i) == b.i8(i) {
			r.setU8(i, 0xFF)
		}
	}
	return r
}

func VcgeqS16(a, b M128i) M128i {
	var r M128i
	for i := range 8 {
		if a.i16(i) >= b.i16(i) {
			r.setU16(i, 0xFFFF)
		}
	}
	return r
}

func VcgtqS32(a, b M128i) M128i {
	var r M128i
	for i := range 4 {
		if a.i32(i) > b.i32(i) {
			r.setU32(i, 0xFFFFFFFF)
		}
	}
	return r
}

func VcleqU8(a, b M128i) M128i {
	var r M128i
	for i := range 16 {
		if a.u8(i) <= b.u8(i) {
			r.setU8(i, 0xFF)
		}
	}
	return r
}

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

// AVX float instructions, prefixed V. These are the bitwise, blend, shuffle
// and lane-movement forms on single and double precision registers; element
// bit patterns are moved or masked, never computed on.

func VAndPs(a, b M256) M256 {
	var r M256
	for i := range 32 {
		r[i] = a[i] & b[i]
	}
	return r
}

func VAndnotPs(a, b M256) M256 {
	var r M256
	for i := range 32 {
		r[i] = ^a[i] & b[i]
	}
	return r
}

func VOrPs(a, b M256) M256 {
	var r M256
	for i := range 32 {
		r[i] = a[i] | b[i]
	}
	return r
}

func VXorPs(a, b M256) M256 {
	var r M256
	for i := range 32 {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func VAndPd(a, b M256d) M256d {
	var r M256d
	for i := range 32 {
		r[i] = a[i] & b[i]
	}
	return r
}

func VAndnotPd(a, b M256d) M256d {
	var r M256d
	for i := range 32 {
		r[i] = ^a[i] & b[i]
	}
	return r
}

func VOrPd(a, b M256d) M256d {
	var r M256d
	for i := range 32 {
		r[i] = a[i] | b[i]
	}
	return r
}

func VXorPd(a, b M256d) M256d {
	var r M256d
	for i := range 32 {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func VShufflePs(a, b M256, imm int) M256 {
	var r M256
	for h := range 2 {
		r.setU32(4*h+0, a.u32(4*h+(imm&3)))
		r.setU32(4*h+1, a.u32(4*h+((imm>>2)&3)))
		r.setU32(4*h+2, b.u32(4*h+((imm>>4)&3)))
		r.setU32(4*h+3, b.u32(4*h+((imm>>6)&3)))
	}
	return r
}

func VShufflePd(a, b M256d, imm int) M256d {
	var r M256d
	for h := range 2 {
		r.setU64(2*h+0, a.u64(2*h+((imm>>(2*h))&1)))
		r.setU64(2*h+1, b.u64(2*h+((imm>>(2*h+1))&1)))
	}
	return r
}

func VBlendPs(a, b M256, imm int) M256 {
	var r M256
	for i := range 8 {
		if imm>>i&1 == 1 {
			r.setU32(i, b.u32(i))
		} else {
			r.setU32(i, a.u32(i))
		}
	}
	return r
}

func VBlendPd(a, b M256d, imm int) M256d {
	var r M256d
	for i := range 4 {
		if imm>>i&1 == 1 {
			r.setU64(i, b.u64(i))
		} else {
			r.setU64(i, a.u64(i))
		}
	}
	return r
}

func VBlendvPs(a, b, c M256) M256 {
	var r M256
	for i := range 8 {
		if c.i32(i) < 0 {
			r.setU32(i, b.u32(i))
		} else {
			r.setU32(i, a.u32(i))
		}
	}
	return r
}

func VBlendvPd(a, b, c M256d) M256d {
	var r M256d
	for i := range 4 {
		if c.i64(i) < 0 {
			r.setU64(i, b.u64(i))
		} else {
			r.setU64(i, a.u64(i))
		}
	}
	return r
}

func VPermutePs(a M256, imm int) M256 {
	var r M256
	for h := range 2 {
		for j := range 4 {
			r.setU32(4*h+j, a.u32(4*h+((imm>>(2*j))&3)))
		}
	}
	return r
}

func VPermutePs128(a M128, imm int) M128 {
	var r M128
	for j := range 4 {
		r.setU32(j, a.u32((imm>>(2*j))&3))
	}
	return r
}

func VPermutePd(a M256d, imm int) M256d {
	var r M256d
	for h := range 2 {
		for j := range 2 {
			r.setU64(2*h+j, a.u64(2*h+((imm>>(2*h+j))&1)))
		}
	}
	return r
}

func VPermutePd128(a M128d, imm int) M128d {
	var r M128d
	for j := range 2 {
		r.setU64(j, a.u64((imm>>j)&1))
	}
	return r
}

func VMovehdupPs(a M256) M256 {
	var r M256
	for i := range 8 {
		r.setU32(i, a.u32(i|1))
	}
	return r
}

func VMoveldupPs(a M256) M256 {
	var r M256
	for i := range 8 {
		r.setU32(i, a.u32(i&^1))
	}
	return r
}

func VMovedupPd(a M256d) M256d {
	var r M256d
	for i := range 4 {
		r.setU64(i, a.u64(i&^1))
	}
	return r
}

func VUnpackhiPs(a, b M256) M256 {
	var r M256
	for h := range 2 {
		r.setU32(4*h+0, a.u32(4*h+2))
		r.setU32(4*h+1, b.u32(4*h+2))
		r.setU32(4*h+2, a.u32(4*h+3))
		r.setU32(4*h+3, b.u32(4*h+3))
	}
	return r
}

func VUnpackloPs(a, b M256) M256 {
	var r M256
	for h := range 2 {
		r.setU32(4*h+0, a.u32(4*h+0))
		r.setU32(4*h+1, b.u32(4*h+0))
		r.setU32(4*h+2, a.u32(4*h+1))
		r.setU32(4*h+3, b.u32(4*h+1))
	}
	return r
}

func VUnpackhiPd(a, b M256d) M256d {
	var r M256d
	for h := range 2 {
		r.setU64(2*h+0, a.u64(2*h+1))
		r.setU64(2*h+1, b.u64(2*h+1))
	}
	return r
}

func VUnpackloPd(a, b M256d) M256d {
	var r M256d
	for h := range 2 {
		r.setU64(2*h+0, a.u64(2*h+0))
		r.setU64(2*h+1, b.u64(2*h+0))
	}
	return r
}

func VMovemaskPs(a M256) int {
	m := 0
	for i := range 8 {
		if a.i32(i) < 0 {
			m |= 1 << i
		}
	}
	return m
}

func VMovemaskPd(a M256d) int {
	m := 0
	for i := range 4 {
		if a.i64(i) < 0 {
			m |= 1 << i
		}
	}
	return m
}

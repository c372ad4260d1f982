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

import "github.com/go-highway/simd-models/simd"

// Adapters between register images and the model layer's Bits values. The
// differential tests use these to feed one random bit pattern to both
// sides; the instruction implementations above never touch Bits.

// Bits returns the register as a flat bit vector.
func (a M64) Bits() simd.Bits   { return simd.BitsFromBytes(a[:]) }
func (a M128i) Bits() simd.Bits { return simd.BitsFromBytes(a[:]) }
func (a M256i) Bits() simd.Bits { return simd.BitsFromBytes(a[:]) }
func (a M128) Bits() simd.Bits  { return simd.BitsFromBytes(a[:]) }
func (a M128d) Bits() simd.Bits { return simd.BitsFromBytes(a[:]) }
func (a M256) Bits() simd.Bits  { return simd.BitsFromBytes(a[:]) }
func (a M256d) Bits() simd.Bits { return simd.BitsFromBytes(a[:]) }

// ToM64 reinterprets a 64-bit value as a register. It panics on any other
// width.
func ToM64(b simd.Bits) M64 {
	if b.Len() != 64 {
		panic("upstream: expected a 64-bit value")
	}
	return M64FromBytes(b.Bytes())
}

// ToM128i reinterprets a 128-bit value as a register. It panics on any
// other width.
func ToM128i(b simd.Bits) M128i {
	if b.Len() != 128 {
		panic("upstream: expected a 128-bit value")
	}
	return M128iFromBytes(b.Bytes())
}

// ToM256i reinterprets a 256-bit value as a register. It panics on any
// other width.
func ToM256i(b simd.Bits) M256i {
	if b.Len() != 256 {
		panic("upstream: expected a 256-bit value")
	}
	return M256iFromBytes(b.Bytes())
}

// ToM128 reinterprets a 128-bit value as a single-precision register. It
// panics on any other width.
func ToM128(b simd.Bits) M128 {
	if b.Len() != 128 {
		panic("upstream: expected a 128-bit value")
	}
	var r M128
	copy(r[:], b.Bytes())
	return r
}

// ToM128d reinterprets a 128-bit value as a double-precision register. It
// panics on any other width.
func ToM128d(b simd.Bits) M128d {
	if b.Len() != 128 {
		panic("upstream: expected a 128-bit value")
	}
	var r M128d
	copy(r[:], b.Bytes())
	return r
}

// ToM256 reinterprets a 256-bit value as a single-precision register. It
// panics on any other width.
func ToM256(b simd.Bits) M256 {
	if b.Len() != 256 {
		panic("upstream: expected a 256-bit value")
	}
	var r M256
	copy(r[:], b.Bytes())
	return r
}

// ToM256d reinterprets a 256-bit value as a double-precision register. It
// panics on any other width.
func ToM256d(b simd.Bits) M256d {
	if b.Len() != 256 {
		panic("upstream: expected a 256-bit value")
	}
	var r M256d
	copy(r[:], b.Bytes())
	return r
}

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

import "math"

// SaturatingAdd adds two vectors elementwise, clamping each lane to the
// representable range of T instead of wrapping.
func SaturatingAdd[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		return satAdd(a.data[i], b.data[i])
	})
}

// SaturatingSub subtracts b from a elementwise, clamping each lane to the
// representable range of T instead of wrapping.
func SaturatingSub[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		return satSub(a.data[i], b.data[i])
	})
}

// satAdd computes a+b clamped to the range of T. Lanes up to 32 bits widen
// into the next integer size; 64-bit lanes detect overflow from the sign of
// the wrapped result.
func satAdd[T Integers](a, b T) T {
	switch x := any(a).(type) {
	case int8:
		y := any(b).(int8)
		return T(clampS(int64(x)+int64(y), math.MinInt8, math.MaxInt8))
	case int16:
		y := any(b).(int16)
		return T(clampS(int64(x)+int64(y), math.MinInt16, math.MaxInt16))
	case int32:
		y := any(b).(int32)
		return T(clampS(int64(x)+int64(y), math.MinInt32, math.MaxInt32))
	case int64:
		y := any(b).(int64)
		r := x + y
		if (x^r)&(y^r) < 0 {
			if x < 0 {
				lo := int64(math.MinInt64)
				return T(lo)
			}
			hi := int64(math.MaxInt64)
			return T(hi)
		}
		return T(r)
	case uint8:
		y := any(b).(uint8)
		return T(clampU(uint64(x)+uint64(y), math.MaxUint8))
	case uint16:
		y := any(b).(uint16)
		return T(clampU(uint64(x)+uint64(y), math.MaxUint16))
	case uint32:
		y := any(b).(uint32)
		return T(clampU(uint64(x)+uint64(y), math.MaxUint32))
	case uint64:
		y := any(b).(uint64)
		r := x + y
		if r < x {
			hi := uint64(math.MaxUint64)
			return T(hi)
		}
		return T(r)
	}
	panic("simd: unsupported lane type")
}

// satSub computes a-b clamped to the range of T.
func satSub[T Integers](a, b T) T {
	switch x := any(a).(type) {
	case int8:
		y := any(b).(int8)
		return T(clampS(int64(x)-int64(y), math.MinInt8, math.MaxInt8))
	case int16:
		y := any(b).(int16)
		return T(clampS(int64(x)-int64(y), math.MinInt16, math.MaxInt16))
	case int32:
		y := any(b).(int32)
		return T(clampS(int64(x)-int64(y), math.MinInt32, math.MaxInt32))
	case int64:
		y := any(b).(int64)
		r := x - y
		if (x^y)&(x^r) < 0 {
			if x < 0 {
				lo := int64(math.MinInt64)
				return T(lo)
			}
			hi := int64(math.MaxInt64)
			return T(hi)
		}
		return T(r)
	case uint8:
		y := any(b).(uint8)
		if y > x {
			return 0
		}
		return T(x - y)
	case uint16:
		y := any(b).(uint16)
		if y > x {
			return 0
		}
		return T(x - y)
	case uint32:
		y := any(b).(uint32)
		if y > x {
			return 0
		}
		return T(x - y)
	case uint64:
		y := any(b).(uint64)
		if y > x {
			return 0
		}
		return T(x - y)
	}
	panic("simd: unsupported lane type")
}

func clampS(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU(v, hi uint64) uint64 {
	if v > hi {
		return hi
	}
	return v
}

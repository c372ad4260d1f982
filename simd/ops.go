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

// This file provides the generic element-wise operations models are
// composed from. Integer arithmetic wraps modulo the lane width; shift
// amounts are masked to the lane width; comparisons produce all-ones or
// all-zeros lanes.

// laneBits returns the width in bits of lane type T.
func laneBits[T Lanes]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int64, uint64, float64:
		return 64
	}
	panic("simd: unsupported lane type")
}

// onesOf returns the lane value with every bit set.
func onesOf[T Integers]() T {
	var z T
	return ^z
}

// Add adds two vectors elementwise. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T { return a.data[i] + b.data[i] })
}

// Sub subtracts b from a elementwise. Integer lanes wrap on underflow.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T { return a.data[i] - b.data[i] })
}

// Mul multiplies two vectors elementwise. Integer lanes keep the low bits
// of the product (wrapping).
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T { return a.data[i] * b.data[i] })
}

// Neg negates a vector elementwise. The minimum signed value negates to
// itself (two's complement wrap).
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return FromFunc(len(v.data), func(i int) T { return -v.data[i] })
}

// Abs computes the elementwise absolute value. Unsigned lanes are returned
// untouched; the minimum signed value maps to itself.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return FromFunc(len(v.data), func(i int) T {
		if v.data[i] < 0 {
			return -v.data[i]
		}
		return v.data[i]
	})
}

// AbsDiff computes the elementwise absolute difference: the smaller lane
// subtracted from the larger, wrapping for signed lanes whose true
// difference is not representable.
func AbsDiff[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		if a.data[i] > b.data[i] {
			return a.data[i] - b.data[i]
		}
		return b.data[i] - a.data[i]
	})
}

// And computes the elementwise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T { return a.data[i] & b.data[i] })
}

// AndNot computes the elementwise NOT a AND b.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T { return ^a.data[i] & b.data[i] })
}

// Or computes the elementwise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T { return a.data[i] | b.data[i] })
}

// Xor computes the elementwise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T { return a.data[i] ^ b.data[i] })
}

// Not computes the elementwise bitwise complement.
func Not[T Integers](v Vec[T]) Vec[T] {
	return FromFunc(len(v.data), func(i int) T { return ^v.data[i] })
}

// Shl shifts a left elementwise by the corresponding lane of count.
// The shift amount is masked to the lane width, so shifting an n-bit lane
// by n is a shift by zero. Instructions that instead saturate oversized
// counts to zero model that explicitly.
func Shl[T Integers](a, count Vec[T]) Vec[T] {
	sameShape(a, count)
	mask := uint64(laneBits[T]() - 1)
	return FromFunc(len(a.data), func(i int) T {
		return a.data[i] << (uint64(count.data[i]) & mask)
	})
}

// Shr shifts a right elementwise by the corresponding lane of count,
// shifting in sign bits for signed lane types. The shift amount is masked
// to the lane width.
func Shr[T Integers](a, count Vec[T]) Vec[T] {
	sameShape(a, count)
	mask := uint64(laneBits[T]() - 1)
	return FromFunc(len(a.data), func(i int) T {
		return a.data[i] >> (uint64(count.data[i]) & mask)
	})
}

// Eq compares two vectors for elementwise equality, producing all-ones
// lanes where equal and zero lanes elsewhere.
func Eq[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		if a.data[i] == b.data[i] {
			return onesOf[T]()
		}
		return 0
	})
}

// Ne compares two vectors for elementwise inequality, producing all-ones
// lanes where unequal and zero lanes elsewhere.
func Ne[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		if a.data[i] != b.data[i] {
			return onesOf[T]()
		}
		return 0
	})
}

// Lt tests a < b elementwise, producing all-ones lanes where true.
func Lt[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		if a.data[i] < b.data[i] {
			return onesOf[T]()
		}
		return 0
	})
}

// Le tests a <= b elementwise, producing all-ones lanes where true.
func Le[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		if a.data[i] <= b.data[i] {
			return onesOf[T]()
		}
		return 0
	})
}

// Gt tests a > b elementwise, producing all-ones lanes where true.
func Gt[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		if a.data[i] > b.data[i] {
			return onesOf[T]()
		}
		return 0
	})
}

// Ge tests a >= b elementwise, producing all-ones lanes where true.
func Ge[T Integers](a, b Vec[T]) Vec[T] {
	sameShape(a, b)
	return FromFunc(len(a.data), func(i int) T {
		if a.data[i] >= b.data[i] {
			return onesOf[T]()
		}
		return 0
	})
}

// Select picks lanes from ifTrue where the mask lane is all-ones and from
// ifFalse elsewhere. Masks come from the comparison operations and must
// contain only zero or all-ones lanes.
func Select[M Integers, T Lanes](mask Vec[M], ifTrue, ifFalse Vec[T]) Vec[T] {
	sameShape(ifTrue, ifFalse)
	if mask.NumLanes() != ifTrue.NumLanes() {
		panic("simd: mask shape does not match value shape")
	}
	return FromFunc(ifTrue.NumLanes(), func(i int) T {
		if mask.data[i] == onesOf[M]() {
			return ifTrue.data[i]
		}
		return ifFalse.data[i]
	})
}

// Shuffle2 gathers lanes from the concatenation of x and y by the index
// table idx: lane i of the result is x[idx[i]] when idx[i] < x.NumLanes(),
// otherwise y[idx[i]-x.NumLanes()]. The result has len(idx) lanes.
func Shuffle2[T Lanes](x, y Vec[T], idx []int) Vec[T] {
	n := x.NumLanes()
	return FromFunc(len(idx), func(i int) T {
		j := idx[i]
		if j < n {
			return x.data[j]
		}
		return y.data[j-n]
	})
}

// Insert returns a copy of v with lane i replaced by value.
func Insert[T Lanes](v Vec[T], i int, value T) Vec[T] {
	return FromFunc(len(v.data), func(j int) T {
		if j == i {
			return value
		}
		return v.data[j]
	})
}

// Extract returns lane i of v. It panics if i is out of range.
func Extract[T Lanes](v Vec[T], i int) T {
	return v.data[i]
}

// Cast converts a vector elementwise with the supplied lane conversion.
// Go cannot express numeric conversion generically over two type
// parameters, so the caller names it: widening follows signedness,
// narrowing truncates, exactly as the corresponding Go conversion does.
func Cast[U Lanes, T Lanes](v Vec[T], conv func(T) U) Vec[U] {
	return FromFunc(len(v.data), func(i int) U { return conv(v.data[i]) })
}

// sameShape panics if a and b differ in length. Mismatched shapes are a
// programming error in the calling model, not a runtime condition.
func sameShape[T Lanes](a, b Vec[T]) {
	if len(a.data) != len(b.data) {
		panic("simd: vectors differ in lane count")
	}
}

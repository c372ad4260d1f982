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

// Package simd provides the lane and vector abstraction that reference
// models of SIMD intrinsics are written against.
//
// A model never touches raw memory or architecture registers: it works on
// Vec[T], a fixed-length indexed container of scalar lanes, and on Bits, a
// flat little-endian bit vector that stands in for a hardware register.
// Every operation is a pure function built in generator form: lane i of the
// result is f(selected lanes of the inputs).
//
// The numeric semantics of each operation family are pinned explicitly:
// integer arithmetic wraps modulo the lane width, saturating arithmetic
// clamps to the representable range, and shift amounts are masked to the
// lane width. Models layer instruction-specific behavior (such as
// shift-count saturation) on top of these primitives.
package simd

// Floats is a constraint for floating-point lane types. The constraints
// admit exactly the built-in types: lane values are reflected on by exact
// type, so named types with a lane underlying type are not lanes.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a vector lane.
type Lanes interface {
	Floats | Integers
}

// Vec is an ordered, fixed-length container of lanes. The length is fixed
// at construction and never changes. Indexing outside [0, NumLanes()) is a
// programming error and panics.
//
// Vec values are immutable: operations return fresh vectors and never
// modify their inputs.
type Vec[T Lanes] struct {
	data []T
}

// FromFunc constructs a vector of n lanes where lane i is f(i).
// f must be total over [0, n).
func FromFunc[T Lanes](n int, f func(i int) T) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = f(i)
	}
	return Vec[T]{data: data}
}

// FromSlice constructs a vector holding a copy of src.
func FromSlice[T Lanes](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// Splat constructs a vector of n lanes all set to value.
func Splat[T Lanes](n int, value T) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero constructs a vector of n zero lanes.
func Zero[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

// NumLanes returns the number of lanes in the vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Get returns lane i. It panics if i is out of range.
func (v Vec[T]) Get(i int) T {
	return v.data[i]
}

// Data returns the lanes as a slice copy.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Equal reports whether a and b have the same length and identical lanes.
// Comparison uses ==, so NaN lanes never compare equal; use Bits for
// bit-exact float comparison.
func Equal[T Lanes](a, b Vec[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

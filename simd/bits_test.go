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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneViewRoundTrip(t *testing.T) {
	b := BitsFromBytes([]byte{
		0x01, 0x80, 0xFF, 0x00, 0x12, 0x34, 0x56, 0x78,
		0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0xFF, 0x7F, 0x80,
	})

	assert.True(t, EqualBits(b, FromLanes(b.I8x16())))
	assert.True(t, EqualBits(b, FromLanes(b.U8x16())))
	assert.True(t, EqualBits(b, FromLanes(b.I16x8())))
	assert.True(t, EqualBits(b, FromLanes(b.U32x4())))
	assert.True(t, EqualBits(b, FromLanes(b.I64x2())))
	assert.True(t, EqualBits(b, FromLanes(b.F32x4())))
	assert.True(t, EqualBits(b, FromLanes(b.F64x2())))
}

func TestFloatBitsExact(t *testing.T) {
	// A signaling-style NaN payload must survive the round trip untouched.
	nan := math.Float32frombits(0x7FC00001)
	v := FromSlice([]float32{1.5, nan, -0.0, math.MaxFloat32})
	b := FromLanes(v)
	require.Equal(t, 128, b.Len())
	got := b.F32x4()
	assert.Equal(t, uint32(0x7FC00001), math.Float32bits(got.Get(1)))
	assert.True(t, EqualBits(b, FromLanes(got)))
}

func TestLaneOrderLittleEndian(t *testing.T) {
	v := FromSlice([]uint16{0x0201, 0x0403, 0x0605, 0x0807})
	b := FromLanes(v)
	require.Equal(t, 64, b.Len())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b.Bytes())
	assert.Equal(t, uint16(0x0201), b.U16x4().Get(0))
}

func TestBitIndexing(t *testing.T) {
	b := BitsFromBytes([]byte{0x01, 0x80})
	assert.True(t, b.Bit(0))
	assert.False(t, b.Bit(1))
	assert.True(t, b.Bit(15))
	assert.Panics(t, func() { b.Bit(16) })
}

func TestShapeWidthChecked(t *testing.T) {
	b := ZeroBits(64)
	assert.Panics(t, func() { b.I16x8() })
	assert.Panics(t, func() { b.U8x32() })
	assert.NotPanics(t, func() { b.I16x4() })
}

func TestSliceAndConcat(t *testing.T) {
	b := BitsFromBytes([]byte{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	})
	lo := b.Slice(0, 128)
	hi := b.Slice(128, 256)
	require.Equal(t, 128, lo.Len())
	assert.Equal(t, byte(1), lo.Bytes()[0])
	assert.Equal(t, byte(17), hi.Bytes()[0])
	assert.True(t, EqualBits(b, ConcatBits(lo, hi)))
}

func TestZeroBitsRejectsPartialBytes(t *testing.T) {
	assert.Panics(t, func() { ZeroBits(12) })
}

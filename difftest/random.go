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

package difftest

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/go-highway/simd-models/simd"
)

// testSeed derives a per-intrinsic seed from the run seed and the intrinsic
// name, so every intrinsic's random stream is independent of declaration
// order and reproducible from the logged value alone.
func testSeed(runSeed uint64, name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return runSeed ^ h.Sum64()
}

// newRng returns a PCG stream for one (seed, stream) pair. Constant values
// of a domain use their value as the stream so each constant's trials are
// reproducible in isolation.
func newRng(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// randomBits draws a register value uniform over all 2^width bit patterns.
func randomBits(rng *rand.Rand, width int) simd.Bits {
	data := make([]byte, width/8)
	for i := 0; i < len(data); i += 8 {
		u := rng.Uint64()
		for j := 0; j < 8 && i+j < len(data); j++ {
			data[i+j] = byte(u >> (8 * j))
		}
	}
	return simd.BitsFromBytes(data)
}

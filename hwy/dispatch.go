// Copyright 2025 go-vgi Authors
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

package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the vector register class detected at startup.
// It decides how many lanes a Vec holds.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable vector unit, or VGI_NO_SIMD is set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit x86-64 registers.
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit x86-64 registers.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit x86-64 registers.
	DispatchAVX512

	// DispatchNEON indicates 128-bit ARM registers.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 16 for SSE2/NEON/scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected level.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether the VGI_NO_SIMD environment variable is set.
// When set, kernels run with the scalar lane width regardless of CPU.
func NoSimdEnv() bool {
	val := os.Getenv("VGI_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T for the current width.
//
// With AVX2 (32 bytes): float32 gives 8 lanes, float64 gives 4.
func MaxLanes[T Floats]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // same block size as SSE2/NEON so tails behave identically
}

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

// Package hwy provides the portable lane vectors that spectral index kernels
// are written against.
//
// A Vec holds MaxLanes[T]() band samples. Kernels load a block of co-registered
// samples from each band, combine them with lane-wise arithmetic and store the
// block of index values:
//
//	import "github.com/sr2vgi/go-vgi/hwy"
//
//	nir := hwy.Load(b8[i:])
//	red := hwy.Load(b4[i:])
//	ndvi := hwy.Div(hwy.Sub(nir, red), hwy.Add(nir, red))
//	hwy.Store(ndvi, out[i:])
//
// All operations follow IEEE-754: division by zero gives ±Inf or NaN and
// square roots of negative values give NaN. Nothing is clamped.
package hwy

// Floats is the constraint for band values and index results.
type Floats interface {
	~float32 | ~float64
}

// Vec is a block of lanes holding one sample per lane.
//
// Vec instances should not be created directly; use Load, Set or Zero instead.
type Vec[T Floats] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying lanes. It is meant for tests.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst, truncating to len(dst).
func (v Vec[T]) Store(dst []T) {
	n := min(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// Mask is the result of a lane-wise comparison, used with IfThenElse.
type Mask[T Floats] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AnyTrue returns true if at least one lane is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

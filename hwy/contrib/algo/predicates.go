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

package algo

import (
	"math"

	"github.com/sr2vgi/go-vgi/hwy"
)

// MaskAbove replaces, in place, every element of data strictly greater than
// threshold with NaN. Elements equal to the threshold, below it, or already
// NaN are left untouched. It returns the number of elements replaced.
func MaskAbove[T hwy.Floats](data []T, threshold T) int {
	threshVec := hwy.Set(threshold)
	nanVec := hwy.Set(T(math.NaN()))
	lanes := hwy.MaxLanes[T]()
	masked := 0
	i := 0

	for ; i+lanes <= len(data); i += lanes {
		v := hwy.Load(data[i:])
		mask := hwy.GreaterThan(v, threshVec)
		if !mask.AnyTrue() {
			continue
		}
		masked += mask.CountTrue()
		hwy.Store(hwy.IfThenElse(mask, nanVec, v), data[i:])
	}

	if remaining := len(data) - i; remaining > 0 {
		buf := make([]T, lanes)
		copy(buf, data[i:])
		v := hwy.Load(buf)
		mask := hwy.GreaterThan(v, threshVec)
		for j := 0; j < remaining; j++ {
			if mask.GetBit(j) {
				masked++
			}
		}
		hwy.Store(hwy.IfThenElse(mask, nanVec, v), buf)
		copy(data[i:], buf[:remaining])
	}
	return masked
}

// ReduceMax returns the largest element of data. NaN anywhere makes the
// result NaN; an empty slice gives -Inf.
func ReduceMax[T hwy.Floats](data []T) T {
	result := T(math.Inf(-1))
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= len(data); i += lanes {
		m := hwy.ReduceMax(hwy.Load(data[i:]))
		if m != m {
			return m
		}
		result = max(result, m)
	}
	if i < len(data) {
		m := hwy.ReduceMax(hwy.Load(data[i:]))
		if m != m {
			return m
		}
		result = max(result, m)
	}
	return result
}

// ReduceMin returns the smallest element of data. NaN anywhere makes the
// result NaN; an empty slice gives +Inf.
func ReduceMin[T hwy.Floats](data []T) T {
	result := T(math.Inf(1))
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= len(data); i += lanes {
		m := hwy.ReduceMin(hwy.Load(data[i:]))
		if m != m {
			return m
		}
		result = min(result, m)
	}
	if i < len(data) {
		m := hwy.ReduceMin(hwy.Load(data[i:]))
		if m != m {
			return m
		}
		result = min(result, m)
	}
	return result
}

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

// ProcessWithTail walks [0, size) in blocks of MaxLanes[T]().
//
// It calls:
//   - fullFn(offset) for each full block
//   - tailFn(offset, count) once for the remainder, if any
//
// Example:
//
//	hwy.ProcessWithTail[float32](len(nir),
//	    func(offset int) {
//	        v := hwy.Sub(hwy.Load(nir[offset:]), hwy.Load(red[offset:]))
//	        hwy.Store(v, out[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            out[i] = nir[i] - red[i]
//	        }
//	    },
//	)
func ProcessWithTail[T Floats](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	if remaining := size % maxLanes; remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of the lane count.
func AlignedSize[T Floats](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned returns true if size is a multiple of the lane count.
func IsAligned[T Floats](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}

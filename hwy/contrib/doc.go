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

// Package contrib holds the building blocks index formulas are evaluated
// with. It has no code of its own.
//
// # Subpackages
//
//   - algo: apply per-pixel kernels of one to five bands to slices
//   - spectral: formula shapes shared by many indices (normalized
//     difference, simple ratio, blends)
//   - raster: aligned 2-D band grids and per-row evaluation
//   - workerpool: persistent goroutine pool for splitting long bands
//
// # Algorithm Utilities (hwy/contrib/algo)
//
//	import "github.com/sr2vgi/go-vgi/hwy/contrib/algo"
//
//	out := make([]float64, len(red))
//	err := algo.Apply2(red, nir, out, func(r, n float64) float64 {
//	    return (n - r) / (n + r)
//	})
//
// # Formula Shapes (hwy/contrib/spectral)
//
//	import "github.com/sr2vgi/go-vgi/hwy/contrib/spectral"
//
//	v := spectral.NormalizedDifference(nir, red)
//	err := spectral.NormalizedDifferenceSlice(nir, red, out)
//
// Lane width follows hwy.CurrentLevel; set VGI_NO_SIMD=1 to force the
// 16-byte scalar blocking.
package contrib

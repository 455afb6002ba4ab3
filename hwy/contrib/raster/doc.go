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

// Package raster holds single-band 2D grids and evaluates per-pixel index
// functions over them.
//
// A Grid stores one band with rows padded to the vector width, so row
// kernels never need a tail case. Eval1 through Eval5 apply a kernel of the
// matching arity to same-sized grids and return a grid of the same shape:
//
//	red := raster.FromSlice(w, h, b4)
//	nir := raster.FromSlice(w, h, b8)
//	ndvi, err := raster.Eval2(red, nir, vgi.NDVI[float32])
//
// EvalN accepts any number of bands and an optional worker pool that splits
// the work by rows.
package raster

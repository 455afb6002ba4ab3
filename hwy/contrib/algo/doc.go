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

// Package algo applies per-pixel kernels to co-registered band slices.
//
// # Apply API
//
// The Apply functions evaluate a scalar kernel element by element, writing
// into a caller-supplied output. The Map functions allocate the output:
//
//   - Apply1 .. Apply5(bands..., out, fn)
//   - Map1 .. Map5(fn, bands...) ([]T, error)
//   - ApplyN(bands, out, fn) for a variable number of bands
//
// Every input band and the output must have the same length; otherwise
// ErrShapeMismatch is returned and nothing is written.
//
// # Lane API
//
// ApplyVec1 .. ApplyVec3 take a kernel written against hwy.Vec and run it in
// blocks of hwy.MaxLanes, handling the tail through a padded buffer.
//
// # Post-processing
//
//   - MaskAbove(out, threshold) replaces elements > threshold with NaN in place
//   - ReduceMax, ReduceMin reduce a band to one value, propagating NaN
//
// # Example Usage
//
//	import "github.com/sr2vgi/go-vgi/hwy/contrib/algo"
//
//	ndvi, err := algo.Map2(vgi.NDVI[float32], b4, b8)
package algo

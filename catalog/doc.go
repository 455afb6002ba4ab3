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

// Package catalog describes vegetation-index functions by name so they can be
// evaluated without compile-time knowledge of their signatures.
//
// The index functions themselves live in the catalog/vgi (Sentinel-2 band
// numbers) and catalog/indices (named bands) packages as plain generic
// functions. Each of those packages exposes a Registry generated by
// cmd/vgigen from its //vgi:index directives.
//
// # Lookup
//
//	reg := vgi.Registry()
//	e, err := reg.Lookup("ndvi")
//	fmt.Println(e.Bands) // [b4 b8]
//
// Keys are the historical function names and are matched exactly first,
// then case-insensitively when that match is unique.
//
// # Evaluation
//
//	out, err := reg.Evaluate("ndvi", catalog.Input{
//	    Bands: map[string][]float64{"b4": red, "b8": nir},
//	})
//
// Tunable coefficients not present in Input.Params take their defaults.
// Bands must all have the same length; otherwise algo.ErrShapeMismatch is
// returned. Index arithmetic itself never fails: IEEE-754 NaN and ±Inf
// propagate to the result.
package catalog

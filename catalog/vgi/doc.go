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

// Package vgi implements vegetation, water, soil and burn indices over
// Sentinel-2 MSI bands.
//
// Every function takes its bands as scalars named after the Sentinel-2 band
// numbers, in ascending band order:
//
//	b1  coastal aerosol  443 nm     b7  red edge 3     783 nm
//	b2  blue             490 nm     b8  NIR            842 nm
//	b3  green            560 nm     b8a narrow NIR     865 nm
//	b4  red              665 nm     b11 SWIR 1        1610 nm
//	b5  red edge 1       705 nm     b12 SWIR 2        2190 nm
//	b6  red edge 2       740 nm
//
// Inputs are surface reflectance in [0, 1], but nothing is validated or
// clamped: division by zero yields ±Inf or NaN as IEEE-754 prescribes, and
// non-finite inputs propagate. Apply a function to whole bands with
// algo.Map2 and friends, or to grids with raster.Eval2.
//
// Functions with tunable coefficients take them as trailing arguments;
// the conventional values are exported as Default* constants.
//
// Registry returns a catalog.Registry describing every function by its
// historical key, e.g. "ndwi_gao" for NDWIGao.
package vgi

//go:generate go run ../../cmd/vgigen -dir . -catalog vgi

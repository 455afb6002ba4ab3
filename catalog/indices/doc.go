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

// Package indices implements spectral indices over bands named by their
// spectral role rather than by sensor band number.
//
// Band parameters use these names:
//
//	coastal  coastal aerosol      redge1  red edge 1
//	blue     blue                 redge2  red edge 2
//	green    green                redge3  red edge 3
//	red      red                  nir     NIR
//	swir1    SWIR 1               bnir    narrow (band 8A) NIR
//	swir2    SWIR 2
//
// Argument order follows the historical signatures and is not sorted by
// wavelength; a few functions take bands they do not use. Arithmetic is
// unguarded IEEE-754, except GEMI, which replaces results above
// GEMIMaskThreshold with NaN. RSR normalizes SWIR 1 against the scene's
// own range, so it is only defined over whole bands.
package indices

//go:generate go run ../../cmd/vgigen -dir . -catalog indices

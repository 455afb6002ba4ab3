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

package vgi

import (
	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/spectral"
)

// NDVI is the Normalized Difference Vegetation Index (Rouse et al., 1974).
//
//	NDVI = (b8 - b4) / (b8 + b4)
//
//vgi:index ndvi normalized-difference
func NDVI[T hwy.Floats](b4, b8 T) T {
	return spectral.NormalizedDifference(b8, b4)
}

// NDWIGao is the Normalized Difference Water Index of vegetation liquid
// water content (Gao, 1996).
//
//	NDWI = (b8 - b11) / (b8 + b11)
//
//vgi:index ndwi_gao normalized-difference
func NDWIGao[T hwy.Floats](b8, b11 T) T {
	return spectral.NormalizedDifference(b8, b11)
}

// NDWIMcFeeters is the Normalized Difference Water Index of open water
// features (McFeeters, 1996).
//
//	NDWI = (b3 - b8) / (b3 + b8)
//
//vgi:index ndwi_mcfeeters normalized-difference
func NDWIMcFeeters[T hwy.Floats](b3, b8 T) T {
	return spectral.NormalizedDifference(b3, b8)
}

// GNDVI is the Green Normalized Difference Vegetation Index (Gitelson et
// al., 1996).
//
//	GNDVI = (b8 - b3) / (b8 + b3)
//
//vgi:index gndvi normalized-difference
func GNDVI[T hwy.Floats](b3, b8 T) T {
	return spectral.NormalizedDifference(b8, b3)
}

// GRVI is the Green-Red Vegetation Index.
//
//	GRVI = (b3 - b4) / (b3 + b4)
//
//vgi:index grvi normalized-difference
func GRVI[T hwy.Floats](b3, b4 T) T {
	return spectral.NormalizedDifference(b3, b4)
}

// LSWI is the Land Surface Water Index.
//
//	LSWI = (b8 - b11) / (b8 + b11)
//
//vgi:index lswi normalized-difference
func LSWI[T hwy.Floats](b8, b11 T) T {
	return spectral.NormalizedDifference(b8, b11)
}

// MNDBI is the Modified Normalized Difference Built-up Index.
//
//	MNDBI = (b12 - b8) / (b12 + b8)
//
//vgi:index mndbi normalized-difference
func MNDBI[T hwy.Floats](b8, b12 T) T {
	return spectral.NormalizedDifference(b12, b8)
}

// MNDWI is the Modified Normalized Difference Water Index (Xu, 2006).
//
//	MNDWI = (b3 - b11) / (b3 + b11)
//
//vgi:index mndwi normalized-difference
func MNDWI[T hwy.Floats](b3, b11 T) T {
	return spectral.NormalizedDifference(b3, b11)
}

// NBR is the Normalized Burn Ratio.
//
//	NBR = (b8 - b12) / (b8 + b12)
//
//vgi:index nbr normalized-difference
func NBR[T hwy.Floats](b8, b12 T) T {
	return spectral.NormalizedDifference(b8, b12)
}

// NBR2 is the Normalized Burn Ratio 2, built on the two SWIR bands.
//
//	NBR2 = (b11 - b12) / (b11 + b12)
//
//vgi:index nbr2 normalized-difference
func NBR2[T hwy.Floats](b11, b12 T) T {
	return spectral.NormalizedDifference(b11, b12)
}

// NBAI is the Normalized Built-up Area Index.
//
//	NBAI = (b6 - b11) / (b6 + b11)
//
//vgi:index nbai normalized-difference
func NBAI[T hwy.Floats](b6, b11 T) T {
	return spectral.NormalizedDifference(b6, b11)
}

// NDBI is the Normalized Difference Built-up Index (Zha et al., 2003).
//
//	NDBI = (b11 - b8) / (b11 + b8)
//
//vgi:index ndbi normalized-difference
func NDBI[T hwy.Floats](b8, b11 T) T {
	return spectral.NormalizedDifference(b11, b8)
}

// NDII is the Normalized Difference Infrared Index.
//
//	NDII = (b8 - b11) / (b8 + b11)
//
//vgi:index ndii normalized-difference
func NDII[T hwy.Floats](b8, b11 T) T {
	return spectral.NormalizedDifference(b8, b11)
}

// NDMI is the Normalized Difference Moisture Index.
//
//	NDMI = (b8 - b11) / (b8 + b11)
//
//vgi:index ndmi normalized-difference
func NDMI[T hwy.Floats](b8, b11 T) T {
	return spectral.NormalizedDifference(b8, b11)
}

// NDRE1 is the Normalized Difference Red-Edge index 1.
//
//	NDRE1 = (b6 - b5) / (b6 + b5)
//
//vgi:index ndre1 normalized-difference
func NDRE1[T hwy.Floats](b5, b6 T) T {
	return spectral.NormalizedDifference(b6, b5)
}

// NDRE2 is the Normalized Difference Red-Edge index 2.
//
//	NDRE2 = (b7 - b5) / (b7 + b5)
//
//vgi:index ndre2 normalized-difference
func NDRE2[T hwy.Floats](b5, b7 T) T {
	return spectral.NormalizedDifference(b7, b5)
}

// NDREDGESWIR is the Normalized Difference Red-Edge and SWIR2 index.
//
//	NDREDGESWIR = (b6 - b12) / (b6 + b12)
//
//vgi:index ndredgeswir normalized-difference
func NDREDGESWIR[T hwy.Floats](b6, b12 T) T {
	return spectral.NormalizedDifference(b6, b12)
}

// NDSWIR is the Normalized Difference NIR/SWIR2 index.
//
//	NDSWIR = (b8 - b12) / (b8 + b12)
//
//vgi:index ndswir normalized-difference
func NDSWIR[T hwy.Floats](b8, b12 T) T {
	return spectral.NormalizedDifference(b8, b12)
}

// NDTI is the Normalized Difference Tillage Index.
//
//	NDTI = (b11 - b12) / (b11 + b12)
//
//vgi:index ndti normalized-difference
func NDTI[T hwy.Floats](b11, b12 T) T {
	return spectral.NormalizedDifference(b11, b12)
}

// NDVIRE is the red-edge NDVI using red edge 1.
//
//	NDVIRE = (b8 - b5) / (b8 + b5)
//
//vgi:index ndvire normalized-difference
func NDVIRE[T hwy.Floats](b5, b8 T) T {
	return spectral.NormalizedDifference(b8, b5)
}

// NDVIRE1n is the red-edge NDVI using narrow NIR and red edge 1.
//
//	NDVIRE1n = (b8a - b5) / (b8a + b5)
//
//vgi:index ndvire1n normalized-difference
func NDVIRE1n[T hwy.Floats](b5, b8a T) T {
	return spectral.NormalizedDifference(b8a, b5)
}

// NDVIRE2 is the red-edge NDVI using red edge 2.
//
//	NDVIRE2 = (b8 - b6) / (b8 + b6)
//
//vgi:index ndvire2 normalized-difference
func NDVIRE2[T hwy.Floats](b6, b8 T) T {
	return spectral.NormalizedDifference(b8, b6)
}

// NDVIRE2n is the red-edge NDVI using narrow NIR and red edge 2.
//
//	NDVIRE2n = (b8a - b6) / (b8a + b6)
//
//vgi:index ndvire2n normalized-difference
func NDVIRE2n[T hwy.Floats](b6, b8a T) T {
	return spectral.NormalizedDifference(b8a, b6)
}

// NDVIRE3 is the red-edge NDVI using red edge 3.
//
//	NDVIRE3 = (b8 - b7) / (b8 + b7)
//
//vgi:index ndvire3 normalized-difference
func NDVIRE3[T hwy.Floats](b7, b8 T) T {
	return spectral.NormalizedDifference(b8, b7)
}

// NDVIRE3n is the red-edge NDVI using narrow NIR and red edge 3.
//
//	NDVIRE3n = (b8a - b7) / (b8a + b7)
//
//vgi:index ndvire3n normalized-difference
func NDVIRE3n[T hwy.Floats](b7, b8a T) T {
	return spectral.NormalizedDifference(b8a, b7)
}

// NDVI705 is the Red-Edge Normalized Difference Vegetation Index (Gitelson
// and Merzlyak, 1994).
//
//	NDVI705 = (b6 - b5) / (b6 + b5)
//
//vgi:index ndvi705 normalized-difference
func NDVI705[T hwy.Floats](b5, b6 T) T {
	return spectral.NormalizedDifference(b6, b5)
}

// NGRDI is the Normalized Green Red-Edge Difference Index.
//
//	NGRDI = (b3 - b5) / (b3 + b5)
//
//vgi:index ngrdi normalized-difference
func NGRDI[T hwy.Floats](b3, b5 T) T {
	return spectral.NormalizedDifference(b3, b5)
}

// NHI is the Normalized Humidity Index.
//
//	NHI = (b11 - b3) / (b11 + b3)
//
//vgi:index nhi normalized-difference
func NHI[T hwy.Floats](b3, b11 T) T {
	return spectral.NormalizedDifference(b11, b3)
}

// PPR is the Plant Pigment Ratio.
//
//	PPR = (b3 - b2) / (b3 + b2)
//
//vgi:index ppr normalized-difference
func PPR[T hwy.Floats](b2, b3 T) T {
	return spectral.NormalizedDifference(b3, b2)
}

// PVR is the Photosynthetic Vigour Ratio.
//
//	PVR = (b3 - b4) / (b3 + b4)
//
//vgi:index pvr normalized-difference
func PVR[T hwy.Floats](b3, b4 T) T {
	return spectral.NormalizedDifference(b3, b4)
}

// SIWSI is the Shortwave Infrared Water Stress Index.
//
//	SIWSI = (b8a - b11) / (b8a + b11)
//
//vgi:index siwsi normalized-difference
func SIWSI[T hwy.Floats](b8a, b11 T) T {
	return spectral.NormalizedDifference(b8a, b11)
}

// VI700 is the Vegetation Index 700 (Gitelson et al., 2002).
//
//	VI700 = (b5 - b4) / (b5 + b4)
//
//vgi:index vi700 normalized-difference
func VI700[T hwy.Floats](b4, b5 T) T {
	return spectral.NormalizedDifference(b5, b4)
}

// WBI is the Water Body Index.
//
//	WBI = (b2 - b4) / (b2 + b4)
//
//vgi:index wbi normalized-difference
func WBI[T hwy.Floats](b2, b4 T) T {
	return spectral.NormalizedDifference(b2, b4)
}

// MNDVI is the Modified Normalized Difference Vegetation Index. The blue
// band corrects for specular reflection.
//
//	MNDVI = (b8 - b4) / (b8 + b4 - 2*b2)
//
//vgi:index mndvi normalized-difference
func MNDVI[T hwy.Floats](b2, b4, b8 T) T {
	return (b8 - b4) / (b8 + b4 - 2*b2)
}

// NDRE1M is the modified NDRE1, correcting with the coastal aerosol band.
//
//	NDRE1M = (b6 - b5) / (b6 + b5 - 2*b1)
//
//vgi:index ndre1m normalized-difference
func NDRE1M[T hwy.Floats](b1, b5, b6 T) T {
	return (b6 - b5) / (b6 + b5 - 2*b1)
}

// NDRE2M is the modified NDRE2.
//
//	NDRE2M = (b7 - b5) / (b7 + b5 - 2*b1)
//
//vgi:index ndre2m normalized-difference
func NDRE2M[T hwy.Floats](b1, b5, b7 T) T {
	return (b7 - b5) / (b7 + b5 - 2*b1)
}

// NMDI is the Normalized Multi-band Drought Index (Wang and Qu, 2007).
//
//	NMDI = (b8 - (b11 - b12)) / (b8 + (b11 - b12))
//
//vgi:index nmdi normalized-difference
func NMDI[T hwy.Floats](b8, b11, b12 T) T {
	swir := b11 - b12
	return (b8 - swir) / (b8 + swir)
}

// RBNDVI is the Red-Blue NDVI.
//
//	RBNDVI = (b8 - (b4 + b2)) / (b8 + (b4 + b2))
//
//vgi:index rbndvi normalized-difference
func RBNDVI[T hwy.Floats](b2, b4, b8 T) T {
	return spectral.NormalizedDifference(b8, b4+b2)
}

// VARIGreen is the Visible Atmospherically Resistant Index (Gitelson et
// al., 2002).
//
//	VARIgreen = (b3 - b4) / (b3 + b4 - b2)
//
//vgi:index varigreen normalized-difference
func VARIGreen[T hwy.Floats](b2, b3, b4 T) T {
	return (b3 - b4) / (b3 + b4 - b2)
}

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

package indices

import (
	"math"

	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
	"github.com/sr2vgi/go-vgi/hwy/contrib/spectral"
)

// GEMIMaskThreshold is the largest GEMI value returned; anything strictly
// greater becomes NaN.
const GEMIMaskThreshold = 1.5

// Soil line slope 0.149 and intercept terms from Richardson and Wiegand.
var pviScale = 1 / math.Sqrt(math.Pow(0.149, 2)+1)

func reip[T hwy.Floats](base, slope, redge3, redge2, redge1, red T) T {
	return base + slope*((((red+redge3)/2)-redge1)/(redge2-redge1))
}

// REIP1 is the Red-Edge Inflection Point with base 700 nm.
//
//	REIP1 = 700 + 40*(((red + redge3)/2 - redge1) / (redge2 - redge1))
//
//vgi:index REIP1 polynomial
func REIP1[T hwy.Floats](redge3, redge2, redge1, red T) T {
	return reip(700, 40, redge3, redge2, redge1, red)
}

// REIP2 is REIP1 with base 702 nm.
//
//vgi:index REIP2 polynomial
func REIP2[T hwy.Floats](redge3, redge2, redge1, red T) T {
	return reip(702, 40, redge3, redge2, redge1, red)
}

// REIP3 is REIP1 with base 705 nm and slope 35.
//
//vgi:index REIP3 polynomial
func REIP3[T hwy.Floats](redge3, redge2, redge1, red T) T {
	return reip(705, 35, redge3, redge2, redge1, red)
}

// MCARI is the Modified Chlorophyll Absorption Ratio Index.
//
//	MCARI = ((redge1 - red) - 0.2*(redge1 - green)) * (redge1/red)
//
//vgi:index mcari polynomial
func MCARI[T hwy.Floats](red, green, redge1 T) T {
	return ((redge1 - red) - 0.2*(redge1-green)) * (redge1 / red)
}

// NMDI is the Normalized Multi-band Drought Index, in the form this
// catalog has always evaluated:
//
//	NMDI = bnir - (swir1 - swir2) / (bnir + (swir1 - swir2))
//
//vgi:index nmdi polynomial
func NMDI[T hwy.Floats](bnir, swir1, swir2 T) T {
	swir := swir1 - swir2
	return bnir - swir/(bnir+swir)
}

// RedEdgePeak is the Red-edge Peak Area.
//
//vgi:index rededge_peak polynomial
func RedEdgePeak[T hwy.Floats](bnir, redge1, redge2, redge3, red T) T {
	return red + redge1 + redge2 + redge3 + bnir
}

// RTVICore is the core Red-edge Triangular Vegetation Index.
//
//vgi:index rtvicore polynomial
func RTVICore[T hwy.Floats](bnir, redge1, green T) T {
	return 100*(bnir-redge1) - 10*(bnir-green)
}

func gemi[T hwy.Floats](red, nir T) T {
	num := 2*(nir*nir-red*red) + 1.5*nir + 0.5*red
	den := nir + red + 0.5
	return num/den*(1-0.25*num/den) - (red-0.125)/(1-red)
}

// GEMI is the Global Environment Monitoring Index (Pinty and Verstraete,
// 1992). Values above GEMIMaskThreshold are returned as NaN.
//
//	g    = (2*(nir^2 - red^2) + 1.5*nir + 0.5*red) / (nir + red + 0.5)
//	GEMI = g*(1 - 0.25*g) - (red - 0.125)/(1 - red)
//
//vgi:index gemi polynomial
func GEMI[T hwy.Floats](red, nir T) T {
	v := gemi(red, nir)
	if v > GEMIMaskThreshold {
		return T(math.NaN())
	}
	return v
}

// GEMIArray computes GEMI over whole bands, masking in place.
func GEMIArray[T hwy.Floats](red, nir []T) ([]T, error) {
	out, err := algo.Map2(gemi[T], red, nir)
	if err != nil {
		return nil, err
	}
	algo.MaskAbove(out, GEMIMaskThreshold)
	return out, nil
}

// PVI is the Perpendicular Vegetation Index.
//
//	PVI = (nir - 0.374 - 0.735) / sqrt(0.149^2 + 1)
//
//vgi:index pvi polynomial
func PVI[T hwy.Floats](nir T) T {
	return T(pviScale) * (nir - 0.374 - 0.735)
}

// TCARI1 is the Transformed Chlorophyll Absorption in Reflectance Index.
//
//	TCARI1 = 3*((redge1 - red) - 0.2*(redge1 - green)*(redge1/red))
//
//vgi:index tcari1 polynomial
func TCARI1[T hwy.Floats](redge1, red, green T) T {
	return 3 * ((redge1 - red) - 0.2*(redge1-green)*(redge1/red))
}

// TCARI2 is TCARI1 with red edge 2 in place of red edge 1.
//
//vgi:index tcari2 polynomial
func TCARI2[T hwy.Floats](redge2, red, green T) T {
	return 3 * ((redge2 - red) - 0.2*(redge2-green)*(redge2/red))
}

// TVI is the Triangular Vegetation Index.
//
//vgi:index tvi polynomial
func TVI[T hwy.Floats](green, red, redge2 T) T {
	return 0.5 * (120*(redge2-green) - 200*(red-green))
}

// MTVI1 is the Modified Triangular Vegetation Index 1.
//
//vgi:index mtvi1 polynomial
func MTVI1[T hwy.Floats](nir, green, red T) T {
	return 1.2 * (1.2*(nir-green) - 2.5*(red-green))
}

// SAVI is the Soil-Adjusted Vegetation Index with L = 0.5.
//
//vgi:index savi polynomial
func SAVI[T hwy.Floats](nir, red T) T {
	return (nir - red) / (nir + red + 0.5) * 1.5
}

// S2REP is the Sentinel-2 Red-Edge Position with base 705 nm.
//
//	S2REP = 705 + 35*(((redge3 + red/2) - redge1)/redge2 - redge1)
//
//vgi:index S2REP polynomial
func S2REP[T hwy.Floats](red, redge1, redge2, redge3 T) T {
	return 705 + 35*(((redge3+red/2)-redge1)/redge2-redge1)
}

// AFRI is the Aerosol Free Vegetation Index.
//
//	AFRI = (nir - 0.66*swir1) / (nir + 0.66*swir1)
//
//vgi:index AFRI polynomial
func AFRI[T hwy.Floats](nir, swir1 T) T {
	return spectral.NormalizedDifference(nir, 0.66*swir1)
}

// AVI is the Ashburn Vegetation Index.
//
//vgi:index AVI polynomial
func AVI[T hwy.Floats](nir, red T) T {
	return 2*nir - red
}

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
	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/spectral"
)

// NDVIRE is the Normalized Difference Vegetation Index 690-710.
//
//vgi:index ndvi_re normalized-difference
func NDVIRE[T hwy.Floats](redge1, nir T) T {
	return spectral.NormalizedDifference(nir, redge1)
}

// NDSWIR2 is the normalized difference of NIR and SWIR 2.
//
//vgi:index NDSWIR2 normalized-difference
func NDSWIR2[T hwy.Floats](nir, swir2 T) T {
	return spectral.NormalizedDifference(nir, swir2)
}

// MNDWI is the Modified Normalized Difference Water Index.
//
//vgi:index MNDWI normalized-difference
func MNDWI[T hwy.Floats](green, swir1 T) T {
	return spectral.NormalizedDifference(green, swir1)
}

// NDVIRE2 is the red edge 2 NDVI.
//
//vgi:index ndvi_re2 normalized-difference
func NDVIRE2[T hwy.Floats](redge2, red T) T {
	return spectral.NormalizedDifference(redge2, red)
}

// NDVIRESW is the Normalized Difference Vegetation Red-edge SWIR 2 index.
//
//vgi:index ndvi_resw normalized-difference
func NDVIRESW[T hwy.Floats](redge2, swir2 T) T {
	return spectral.NormalizedDifference(redge2, swir2)
}

// NDII is the Normalized Difference Infrared Index.
//
//vgi:index ndii normalized-difference
func NDII[T hwy.Floats](bnir, swir1 T) T {
	return spectral.NormalizedDifference(bnir, swir1)
}

// NBR2 is the narrow-NIR Normalized Burn Ratio.
//
//vgi:index nbr2 normalized-difference
func NBR2[T hwy.Floats](bnir, swir2 T) T {
	return spectral.NormalizedDifference(bnir, swir2)
}

// REDGEI2 is the normalized red-edge index 2.
//
//vgi:index redgei2 normalized-difference
func REDGEI2[T hwy.Floats](redge1, red T) T {
	return spectral.NormalizedDifference(redge1, red)
}

// PVR is the Photosynthetic Vigour Ratio.
//
//vgi:index PVR normalized-difference
func PVR[T hwy.Floats](green, red T) T {
	return spectral.NormalizedDifference(green, red)
}

// PVR2 is PVR registered under its second historical name.
//
//vgi:index PVR_2 normalized-difference
func PVR2[T hwy.Floats](green, red T) T {
	return spectral.NormalizedDifference(green, red)
}

// GNDVI is the Green Normalized Difference Vegetation Index.
//
//vgi:index gndvi normalized-difference
func GNDVI[T hwy.Floats](nir, green T) T {
	return spectral.NormalizedDifference(nir, green)
}

// NDWI1 is the Normalized Difference Water Index of Gao.
//
//	NDWI1 = (nir - swir1) / (nir + swir1)
//
//vgi:index ndwi1 normalized-difference
func NDWI1[T hwy.Floats](swir1, nir T) T {
	return spectral.NormalizedDifference(nir, swir1)
}

// NDWI2 is the Normalized Difference Water Index of McFeeters.
//
//	NDWI2 = (green - nir) / (green + nir)
//
//vgi:index ndwi2 normalized-difference
func NDWI2[T hwy.Floats](green, nir T) T {
	return spectral.NormalizedDifference(green, nir)
}

// NHI is the Normalized Humidity Index.
//
//vgi:index nhi normalized-difference
func NHI[T hwy.Floats](swir1, green T) T {
	return spectral.NormalizedDifference(swir1, green)
}

// NDBI is the Normalized Difference Built-up Index.
//
//vgi:index ndbi normalized-difference
func NDBI[T hwy.Floats](swir1, nir T) T {
	return spectral.NormalizedDifference(swir1, nir)
}

// VI700 is the Vegetation Index 700.
//
//vgi:index vi700 normalized-difference
func VI700[T hwy.Floats](redge1, red T) T {
	return spectral.NormalizedDifference(redge1, red)
}

// NGRDI is the normalized green/red-edge difference index.
//
//vgi:index ngrdi normalized-difference
func NGRDI[T hwy.Floats](green, redge1 T) T {
	return spectral.NormalizedDifference(green, redge1)
}

// NGRDI2 is the Normalized Green-Red Difference Index.
//
//vgi:index ngrdi2 normalized-difference
func NGRDI2[T hwy.Floats](green, red T) T {
	return spectral.NormalizedDifference(green, red)
}

// NDTI is the Normalized Difference Tillage Index.
//
//vgi:index NDTI normalized-difference
func NDTI[T hwy.Floats](swir1, swir2 T) T {
	return spectral.NormalizedDifference(swir1, swir2)
}

// NDRedEdgeSWIR is the normalized difference of red edge 2 and SWIR 2.
//
//vgi:index NDrededgeSWIR normalized-difference
func NDRedEdgeSWIR[T hwy.Floats](redge2, swir2 T) T {
	return spectral.NormalizedDifference(redge2, swir2)
}

// NDRE1 is the normalized difference of red edge 2 and red edge 1.
//
//vgi:index NDre1 normalized-difference
func NDRE1[T hwy.Floats](redge1, redge2 T) T {
	return spectral.NormalizedDifference(redge2, redge1)
}

// NDRE1M is the coastal-corrected red-edge 1 normalized difference.
//
//	NDRE1M = (redge2 - redge1) / (redge2 + redge1 - 2*coastal)
//
//vgi:index NDre1m normalized-difference
func NDRE1M[T hwy.Floats](coastal, redge1, redge2 T) T {
	return (redge2 - redge1) / (redge2 + redge1 - 2*coastal)
}

// NDRE2M is the coastal-corrected red-edge 2 normalized difference.
//
//vgi:index NDre2m normalized-difference
func NDRE2M[T hwy.Floats](coastal, redge1, redge3 T) T {
	return (redge3 - redge1) / (redge3 + redge1 - 2*coastal)
}

// RBNDVI is the Red-Blue NDVI.
//
//vgi:index RBNDVI normalized-difference
func RBNDVI[T hwy.Floats](nir, red, blue T) T {
	return spectral.NormalizedDifference(nir, red+blue)
}

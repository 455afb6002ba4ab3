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
	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
	"github.com/sr2vgi/go-vgi/hwy/contrib/spectral"
)

// CIIRE is the Red-Edge Chlorophyll Index.
//
//vgi:index cii_re ratio
func CIIRE[T hwy.Floats](redge1, nir T) T {
	return spectral.RatioMinusOne(nir, redge1)
}

// GCVI is the green chlorophyll index over narrow NIR.
//
//vgi:index gcvi ratio
func GCVI[T hwy.Floats](bnir, green T) T {
	return spectral.RatioMinusOne(bnir, green)
}

// MSR is the Modified Simple Ratio. coastal is accepted for compatibility
// and not used.
//
//	MSR = (nir/red - 1) / (nir/red*0.5 + 1)
//
//vgi:index msr ratio
func MSR[T hwy.Floats](nir, red, coastal T) T {
	return (nir/red - 1) / (nir/red*0.5 + 1)
}

// RERVI is the red-edge ratio vegetation index.
//
//vgi:index rervi ratio
func RERVI[T hwy.Floats](nir, redge1 T) T {
	return spectral.SimpleRatio(nir, redge1)
}

// IRECI is the Inverted Red-Edge Chlorophyll Index.
//
//	IRECI = (redge3 - red) / (redge1 / redge2)
//
//vgi:index ireci ratio
func IRECI[T hwy.Floats](red, redge1, redge2, redge3 T) T {
	return (redge3 - red) / (redge1 / redge2)
}

// IRECI2 is IRECI with NIR in place of red edge 3.
//
//vgi:index IRECI2 ratio
func IRECI2[T hwy.Floats](red, redge1, redge2, nir T) T {
	return (nir - red) / (redge1 / redge2)
}

// SRRE1 is the coastal-corrected simple ratio of red edge 2 to red edge 1.
//
//vgi:index SRre1 ratio
func SRRE1[T hwy.Floats](coastal, redge1, redge2 T) T {
	return (redge2 - coastal) / (redge1 - coastal)
}

// SRRE2 is the coastal-corrected simple ratio of red edge 3 to red edge 1.
//
//vgi:index SRre2 ratio
func SRRE2[T hwy.Floats](coastal, redge1, redge3 T) T {
	return (redge3 - coastal) / (redge1 - coastal)
}

// PSRI is the Plant Senescence Reflectance Index.
//
//	PSRI = (red - green) / redge2
//
//vgi:index psri ratio
func PSRI[T hwy.Floats](red, redge2, green T) T {
	return (red - green) / redge2
}

// MTCI is the MERIS Terrestrial Chlorophyll Index.
//
//	MTCI = (redge2 - redge1) / (redge1 + red)
//
//vgi:index mtci ratio
func MTCI[T hwy.Floats](red, redge2, redge1 T) T {
	return (redge2 - redge1) / (redge1 + red)
}

// CLIndexGreen is the green chlorophyll index.
//
//vgi:index cl_indexgreen ratio
func CLIndexGreen[T hwy.Floats](nir, green T) T {
	return spectral.RatioMinusOne(nir, green)
}

// CLIndexGreenSen is the green chlorophyll index over red edge 1. nir is
// accepted for compatibility and not used.
//
//vgi:index cl_indexgreensen ratio
func CLIndexGreenSen[T hwy.Floats](nir, green, redge1 T) T {
	return spectral.RatioMinusOne(redge1, green)
}

// CLIndexGreen1 is nir/green less red edge 1.
//
//vgi:index cl_indexgreen1 ratio
func CLIndexGreen1[T hwy.Floats](nir, green, redge1 T) T {
	return nir/green - redge1
}

// CLIndexGreen2 is nir/green less red edge 2.
//
//vgi:index cl_indexgreen2 ratio
func CLIndexGreen2[T hwy.Floats](nir, green, redge2 T) T {
	return nir/green - redge2
}

// CLIndexGreen3 is nir/green less red edge 3.
//
//vgi:index cl_indexgreen3 ratio
func CLIndexGreen3[T hwy.Floats](nir, green, redge3 T) T {
	return nir/green - redge3
}

// REDGEI1 is the red-edge index 1.
//
//vgi:index redgei1 ratio
func REDGEI1[T hwy.Floats](redge1, red T) T {
	return spectral.SimpleRatio(redge1, red)
}

// ARI is the Anthocyanin Reflectance Index.
//
//vgi:index ari ratio
func ARI[T hwy.Floats](green, redge1 T) T {
	return spectral.InverseDifference(green, redge1)
}

// CRI700 is the Carotenoid Reflectance Index 700.
//
//vgi:index CRI700 ratio
func CRI700[T hwy.Floats](blue, redge1 T) T {
	return spectral.InverseDifference(blue, redge1)
}

// SIPI is the Structure Insensitive Pigment Index.
//
//	SIPI = (nir - green) / (nir - red)
//
//vgi:index SIPI ratio
func SIPI[T hwy.Floats](nir, green, red T) T {
	return (nir - green) / (nir - red)
}

// RSR is the Reduced Simple Ratio. SWIR 1 is rescaled by the minimum and
// maximum over the whole band, so a NaN anywhere in swir1 makes every
// result NaN. redge3 is accepted for compatibility and not used.
//
//	RSR = nir/red * (max(swir1) - swir1) / (max(swir1) - min(swir1))
//
//vgi:index rsr ratio
func RSR[T hwy.Floats](nir, redge3, red, swir1 []T) ([]T, error) {
	if err := algo.CheckShape(len(nir), len(redge3), len(red), len(swir1)); err != nil {
		return nil, err
	}
	hi := algo.ReduceMax(swir1)
	lo := algo.ReduceMin(swir1)
	span := hi - lo

	out := make([]T, len(nir))
	for i := range out {
		out[i] = (nir[i] / red[i]) * ((hi - swir1[i]) / span)
	}
	return out, nil
}

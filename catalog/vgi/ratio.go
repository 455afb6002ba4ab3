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

// DefaultCIREDREA is the red weight of the blended red/red-edge band used
// by CIREDRE.
const DefaultCIREDREA = 0.7

// CIGreen is the Green Chlorophyll Index (Gitelson et al., 2003).
//
//	CIgreen = b8/b3 - 1
//
//vgi:index cigreen ratio
func CIGreen[T hwy.Floats](b3, b8 T) T {
	return spectral.RatioMinusOne(b8, b3)
}

// CIRE is the Red-Edge Chlorophyll Index.
//
//	CIre = b7/b5 - 1
//
//vgi:index cire ratio
func CIRE[T hwy.Floats](b5, b7 T) T {
	return spectral.RatioMinusOne(b7, b5)
}

// CIREDRE is the Chlorophyll Index computed against a blend of red and
// red edge 1, weighted by a.
//
//	CIredre = b8 / (a*b4 + (1-a)*b5) - 1
//
//vgi:index cired_re ratio
//vgi:default a=DefaultCIREDREA
func CIREDRE[T hwy.Floats](b4, b5, b8, a T) T {
	return spectral.RatioMinusOne(b8, spectral.Blend(a, b4, b5))
}

// CRI700 is the Carotenoid Reflectance Index 700.
//
//	CRI700 = 1/b2 - 1/b5
//
//vgi:index cri700 ratio
func CRI700[T hwy.Floats](b2, b5 T) T {
	return spectral.InverseDifference(b2, b5)
}

// ARI is the Anthocyanin Reflectance Index (Gitelson et al., 2001).
//
//	ARI = 1/b3 - 1/b5
//
//vgi:index ari ratio
func ARI[T hwy.Floats](b3, b5 T) T {
	return spectral.InverseDifference(b3, b5)
}

// CVI is the Chlorophyll Vegetation Index (Vincini et al., 2008).
//
//	CVI = b8/b3 * (b4/b3)
//
//vgi:index cvi ratio
func CVI[T hwy.Floats](b3, b4, b8 T) T {
	return b8 / b3 * (b4 / b3)
}

// DATT1 is the first Datt chlorophyll index (Datt, 1999).
//
//	DATT1 = (b8 - b5) / (b8 - b4)
//
//vgi:index datt1 ratio
func DATT1[T hwy.Floats](b4, b5, b8 T) T {
	return (b8 - b5) / (b8 - b4)
}

// DATT3 is the third Datt chlorophyll index.
//
//	DATT3 = b8a / (b3 * b5)
//
//vgi:index datt3 ratio
func DATT3[T hwy.Floats](b3, b5, b8a T) T {
	return b8a / (b3 * b5)
}

// GCVI is the Green Chlorophyll Vegetation Index.
//
//	GCVI = b8/b3 - 1
//
//vgi:index gcvi ratio
func GCVI[T hwy.Floats](b3, b8 T) T {
	return spectral.RatioMinusOne(b8, b3)
}

// IRECI is the Inverted Red-Edge Chlorophyll Index (Frampton et al., 2013).
//
//	IRECI = (b7 - b4) / (b5 / b6)
//
//vgi:index ireci ratio
func IRECI[T hwy.Floats](b4, b5, b6, b7 T) T {
	return (b7 - b4) / (b5 / b6)
}

// LAnthoC is the Leaf Anthocyanid Content index.
//
//	LAnthoC = b7 / (b3 - b5)
//
//vgi:index lanthoc ratio
func LAnthoC[T hwy.Floats](b3, b5, b7 T) T {
	return b7 / (b3 - b5)
}

// LCaroC is the Leaf Carotenoid Content index.
//
//	LCaroC = b7 / (b2 - b5)
//
//vgi:index lcaroc ratio
func LCaroC[T hwy.Floats](b2, b5, b7 T) T {
	return b7 / (b2 - b5)
}

// LChloC is the Leaf Chlorophyll Content index.
//
//	LChloC = b7 / b5
//
//vgi:index lchloc ratio
func LChloC[T hwy.Floats](b5, b7 T) T {
	return spectral.SimpleRatio(b7, b5)
}

// Maccioni is the Maccioni chlorophyll index (Maccioni et al., 2001).
//
//	Maccioni = (b7 - b5) / (b7 - b4)
//
//vgi:index maccioni ratio
func Maccioni[T hwy.Floats](b4, b5, b7 T) T {
	return (b7 - b5) / (b7 - b4)
}

// MSI is the Moisture Stress Index.
//
//	MSI = b11 / b8a
//
//vgi:index msi ratio
func MSI[T hwy.Floats](b8a, b11 T) T {
	return spectral.SimpleRatio(b11, b8a)
}

// MTCI is the MERIS Terrestrial Chlorophyll Index (Dash and Curran, 2004).
//
//	MTCI = (b6 - b5) / (b5 + b4)
//
//vgi:index mtci ratio
func MTCI[T hwy.Floats](b4, b5, b6 T) T {
	return (b6 - b5) / (b5 + b4)
}

// PSRI is the Plant Senescence Reflectance Index (Merzlyak et al., 1999).
//
//	PSRI = (b4 - b3) / b6
//
//vgi:index psri ratio
func PSRI[T hwy.Floats](b3, b4, b6 T) T {
	return (b4 - b3) / b6
}

// RERVI is the Red-Edge Ratio Vegetation Index.
//
//	RERVI = b8 / b5
//
//vgi:index rervi ratio
func RERVI[T hwy.Floats](b5, b8 T) T {
	return spectral.SimpleRatio(b8, b5)
}

// SIPI is the Structure Insensitive Pigment Index, in the form
// b3/b8 - b4 used by this catalog.
//
//	SIPI = b3/b8 - b4
//
//vgi:index sipi ratio
func SIPI[T hwy.Floats](b3, b4, b8 T) T {
	return b3/b8 - b4
}

// SRI is the Simple Ratio Index (Jordan, 1969).
//
//	SRI = b8 / b4
//
//vgi:index sri ratio
func SRI[T hwy.Floats](b4, b8 T) T {
	return spectral.SimpleRatio(b8, b4)
}

// SRNIRNarrowGreen is the simple ratio of narrow NIR to green.
//
//vgi:index srnirnarrowgreen ratio
func SRNIRNarrowGreen[T hwy.Floats](b3, b8a T) T {
	return spectral.SimpleRatio(b8a, b3)
}

// SNRIRNarrowRed is the simple ratio of narrow NIR to red.
//
//vgi:index snrirnarrowred ratio
func SNRIRNarrowRed[T hwy.Floats](b4, b8a T) T {
	return spectral.SimpleRatio(b8a, b4)
}

// SRNIRNarrowRE1 is the simple ratio of narrow NIR to red edge 1.
//
//vgi:index srnirnarrowre1 ratio
func SRNIRNarrowRE1[T hwy.Floats](b5, b8a T) T {
	return spectral.SimpleRatio(b8a, b5)
}

// SRNIRNarrowRE2 is the simple ratio of narrow NIR to red edge 2.
//
//vgi:index srnirnarrowre2 ratio
func SRNIRNarrowRE2[T hwy.Floats](b6, b8a T) T {
	return spectral.SimpleRatio(b8a, b6)
}

// SRNIRNarrowRE3 is the simple ratio of narrow NIR to red edge 3.
//
//vgi:index srnirnarrowre3 ratio
func SRNIRNarrowRE3[T hwy.Floats](b7, b8a T) T {
	return spectral.SimpleRatio(b8a, b7)
}

// SRRE1 is the coastal-corrected red-edge simple ratio 1.
//
//	SRRE1 = (b6 - b1) / (b5 - b1)
//
//vgi:index srre1 ratio
func SRRE1[T hwy.Floats](b1, b5, b6 T) T {
	return (b6 - b1) / (b5 - b1)
}

// SRRE2 is the coastal-corrected red-edge simple ratio 2.
//
//	SRRE2 = (b7 - b1) / (b5 - b1)
//
//vgi:index srre2 ratio
func SRRE2[T hwy.Floats](b1, b5, b7 T) T {
	return (b7 - b1) / (b5 - b1)
}

// STI is the Soil Tillage Index.
//
//	STI = b11 / b12
//
//vgi:index sti ratio
func STI[T hwy.Floats](b11, b12 T) T {
	return spectral.SimpleRatio(b11, b12)
}

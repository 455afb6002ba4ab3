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

// DefaultMSRREDREA is the red weight of the blended band used by MSRREDRE.
const DefaultMSRREDREA = 0.4

// MSAVI is the Modified Soil Adjusted Vegetation Index (Qi et al., 1994). It
// is taken here against red edge 1.
//
//	MSAVI = (2*b8 + 1 - sqrt((2*b8 + 1)^2 - 8*(b8 - b5))) / 2
//
//vgi:index msavi root
func MSAVI[T hwy.Floats](b5, b8 T) T {
	k := 2*b8 + 1
	return (k - spectral.Sqrt(spectral.Square(k)-8*(b8-b5))) / 2
}

// BAI is the Burned Area Index for Sentinel-2 (Filipponi, 2018).
//
//	BAIS2 = (1 - sqrt(b6*b7*b8a / b4)) * ((b12 - b8a) / sqrt(b12 + b8a) + 1)
//
// A negative radicand yields NaN.
//
//vgi:index bai root
func BAI[T hwy.Floats](b4, b6, b7, b8a, b12 T) T {
	top := 1 - spectral.Sqrt(b6*b7*b8a/b4)
	bottom := (b12-b8a)/spectral.Sqrt(b12+b8a) + 1
	return top * bottom
}

// DNVI is the Difference NIR/VIS index over the coastal and blue bands.
//
//	DNVI = (b1 - b2)^2 / sqrt(b1 + b2)
//
//vgi:index dnvi root
func DNVI[T hwy.Floats](b1, b2 T) T {
	return spectral.Square(b1-b2) / spectral.Sqrt(b1+b2)
}

// MSR2 is the Modified Simple Ratio with a red-edge denominator.
//
//	MSR2 = (b8/b4 - 1) / sqrt(b8/b5 + 1)
//
//vgi:index msr2 root
func MSR2[T hwy.Floats](b4, b5, b8 T) T {
	return (b8/b4 - 1) / spectral.Sqrt(b8/b5+1)
}

// MSRREDRE is the Modified Simple Ratio against a blend of red and red
// edge 1, weighted by a.
//
//	mix      = a*b4 + (1-a)*b5
//	MSRredre = (b8/mix - 1) / sqrt(b8*mix + 1)
//
//vgi:index msrredre root
//vgi:default a=DefaultMSRREDREA
func MSRREDRE[T hwy.Floats](b4, b5, b8, a T) T {
	mix := spectral.Blend(a, b4, b5)
	top := b8/mix - 1
	bottom := spectral.Sqrt(b8*mix + 1)
	return top / bottom
}

// MSRRE is the red-edge Modified Simple Ratio (Chen, 1996).
//
//	MSRre = (b8/b5 - 1) / sqrt(b8/b5 + 1)
//
//vgi:index msrre root
func MSRRE[T hwy.Floats](b5, b8 T) T {
	return spectral.ModifiedSimpleRatio(b8, b5)
}

// MSRREn is MSRRE with narrow NIR.
//
//	MSRREn = (b8a/b5 - 1) / sqrt(b8a/b5 + 1)
//
//vgi:index MSRREn root
func MSRREn[T hwy.Floats](b5, b8a T) T {
	return spectral.ModifiedSimpleRatio(b8a, b5)
}

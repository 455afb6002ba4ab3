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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sr2vgi/go-vgi/catalog"
	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
	"github.com/sr2vgi/go-vgi/hwy/contrib/raster"
)

// closeEnough allows for FMA contraction, which Go permits on some
// architectures.
func closeEnough(got, want float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	if math.IsInf(want, 0) {
		return got == want
	}
	return math.Abs(got-want) <= 1e-12*math.Max(1, math.Abs(want))
}

func TestLiteralExamples(t *testing.T) {
	tests := []struct {
		key  string
		args []float64
		got  float64
		want float64
	}{
		{"ndvi", []float64{0.1, 0.5}, NDVI(0.1, 0.5), (0.5 - 0.1) / (0.5 + 0.1)},
		// 2.5*0.4 / (0.5 + 0.6 - 0.375 + 1) = 1/1.725. The 0.7936... figure
		// quoted alongside this example does not follow from the formula.
		{"evi", []float64{0.05, 0.1, 0.5}, EVI(0.05, 0.1, 0.5), 0.5797101449275363},
		{"savi", []float64{0.1, 0.5}, SAVI(0.1, 0.5), 0.5454545454545454},
	}
	for _, tc := range tests {
		if !closeEnough(tc.got, tc.want) {
			t.Errorf("%s(%v) = %v, want %v", tc.key, tc.args, tc.got, tc.want)
		}
		e, err := Registry().Lookup(tc.key)
		if err != nil {
			t.Fatal(err)
		}
		got, err := e.EvaluateScalar(tc.args...)
		if err != nil {
			t.Fatal(err)
		}
		if !closeEnough(got, tc.want) {
			t.Errorf("registry %s(%v) = %v, want %v", tc.key, tc.args, got, tc.want)
		}
	}

	if got := NDVI[float32](0.1, 0.5); math.Abs(float64(got)-2.0/3) > 1e-6 {
		t.Errorf("NDVI[float32] = %v, want ~0.6667", got)
	}
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	if reg.Name() != "vgi" {
		t.Errorf("Name() = %q, want vgi", reg.Name())
	}
	if reg.Len() != 94 {
		t.Errorf("Len() = %d, want 94", reg.Len())
	}

	order := map[string]int{
		"b1": 1, "b2": 2, "b3": 3, "b4": 4, "b5": 5, "b6": 6,
		"b7": 7, "b8": 8, "b8a": 9, "b11": 11, "b12": 12,
	}
	for _, e := range reg.Entries() {
		if e.Eval == nil {
			t.Errorf("%s has no Eval", e.Key)
		}
		if n := len(e.Bands); n < 2 || n > 5 {
			t.Errorf("%s takes %d bands, want 2..5", e.Key, n)
		}
		prev := 0
		for _, b := range e.Bands {
			pos, ok := order[b]
			if !ok {
				t.Errorf("%s uses unknown band %q", e.Key, b)
				continue
			}
			if pos <= prev {
				t.Errorf("%s bands %v not in ascending band order", e.Key, e.Bands)
			}
			prev = pos
		}
	}

	e, err := reg.Lookup("ndwi_gao")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b8", "b11"}, e.Bands); diff != "" {
		t.Errorf("ndwi_gao bands (-want +got):\n%s", diff)
	}
	if e.Name != "NDWIGao" || e.Family != catalog.NormalizedDifference {
		t.Errorf("ndwi_gao = %s/%s, want NDWIGao/normalized-difference", e.Name, e.Family)
	}
}

func TestNormalizedDifferenceEntries(t *testing.T) {
	values := []float64{0.02, 0.1, 0.33, 0.5, 0.87, 1}
	n := 0
	for _, e := range Registry().Family(catalog.NormalizedDifference) {
		if len(e.Bands) != 2 || len(e.Params) != 0 {
			continue
		}
		n++
		f := func(a, b float64) float64 { return e.Eval([]float64{a, b}) }
		for _, a := range values {
			for _, b := range values {
				if got, want := f(a, b), -f(b, a); got != want {
					t.Errorf("%s(%v,%v) = %v, want -%s(%v,%v) = %v", e.Key, a, b, got, e.Key, b, a, want)
				}
			}
			if got := f(a, a); got != 0 {
				t.Errorf("%s(%v,%v) = %v, want 0", e.Key, a, a, got)
			}
			if got := f(a, -a); !math.IsInf(got, 0) {
				t.Errorf("%s(%v,%v) = %v, want ±Inf", e.Key, a, -a, got)
			}
		}
		if got := f(0, 0); !math.IsNaN(got) {
			t.Errorf("%s(0,0) = %v, want NaN", e.Key, got)
		}
	}
	if n != 33 {
		t.Errorf("checked %d two-band normalized differences, want 33", n)
	}
}

func TestRatioMinusOneIndices(t *testing.T) {
	tests := []struct {
		name string
		fn   func(x, y float64) float64
	}{
		{"CIGreen", func(x, y float64) float64 { return CIGreen(y, x) }},
		{"CIRE", func(x, y float64) float64 { return CIRE(y, x) }},
		{"GCVI", func(x, y float64) float64 { return GCVI(y, x) }},
	}
	for _, tc := range tests {
		for _, y := range []float64{0.05, 0.3, 0.9} {
			if got := tc.fn(y, y); got != 0 {
				t.Errorf("%s with X == Y = %v, want 0", tc.name, got)
			}
			prev := math.Inf(-1)
			for x := 0.0; x <= 1; x += 0.1 {
				got := tc.fn(x, y)
				if !(got > prev) {
					t.Errorf("%s not increasing at X=%v, Y=%v: %v after %v", tc.name, x, y, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestNDTIReturnsComputedValue(t *testing.T) {
	// The historical ndti returned an undefined name; the computed
	// normalized difference is returned instead.
	if got, want := NDTI(0.3, 0.1), (0.3-0.1)/(0.3+0.1); !closeEnough(got, want) {
		t.Errorf("NDTI(0.3, 0.1) = %v, want %v", got, want)
	}
	if got, want := NDTI(0.1, 0.3), -NDTI(0.3, 0.1); got != want {
		t.Errorf("NDTI(0.1, 0.3) = %v, want %v", got, want)
	}
}

func TestFormulas(t *testing.T) {
	const (
		b1, b2, b3, b4, b5, b6 = 0.03, 0.05, 0.08, 0.06, 0.12, 0.25
		b7, b8, b8a, b11, b12  = 0.31, 0.35, 0.36, 0.22, 0.14
	)
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"MSAVI", MSAVI(b5, b8), (2*b8 + 1 - math.Sqrt((2*b8+1)*(2*b8+1)-8*(b8-b5))) / 2},
		{"OSAVI", OSAVI(b4, b8), 1.16*b8 - b4/b8 + b4 + 0.16},
		{"AFRI16", AFRI16(b8a, b11), b8a - 0.66*(b11/b8a) + 0.66*b11},
		{"BAI", BAI(b4, b6, b7, b8a, b12), (1 - math.Sqrt(b6*b7*b8a/b4)) * ((b12-b8a)/math.Sqrt(b12+b8a) + 1)},
		{"CIREDRE", CIREDRE(b4, b5, b8, DefaultCIREDREA), b8/(0.7*b4+0.3*b5) - 1},
		{"CVI", CVI(b3, b4, b8), b8 / b3 * (b4 / b3)},
		{"DNVI", DNVI(b1, b2), (b1 - b2) * (b1 - b2) / math.Sqrt(b1+b2)},
		{"GARI", GARI(b2, b3, b4, b8), b8 - (b3-(b2-b4))/b8 + (b3 - (b2 - b4))},
		{"IRECI", IRECI(b4, b5, b6, b7), (b7 - b4) / (b5 / b6)},
		{"MCARI", MCARI(b3, b4, b5), (b5 - b4 - 0.2*(b5-b3)) * (b5 / b4)},
		{"MSR2", MSR2(b4, b5, b8), (b8/b4 - 1) / math.Sqrt(b8/b5+1)},
		{"MSRREDRE", MSRREDRE(b4, b5, b8, DefaultMSRREDREA),
			(b8/(0.4*b4+0.6*b5) - 1) / math.Sqrt(b8*(0.4*b4+0.6*b5)+1)},
		{"MSRRE", MSRRE(b5, b8), (b8/b5 - 1) / math.Sqrt(b8/b5+1)},
		{"MTCI", MTCI(b4, b5, b6), (b6 - b5) / (b5 + b4)},
		{"NMDI", NMDI(b8, b11, b12), (b8 - (b11 - b12)) / (b8 + (b11 - b12))},
		{"REIP", REIP(b4, b5, b6, b7), 700 + 40*(((b4+b7)/2-b5)/(b6-b5))},
		{"S2REP", S2REP(b4, b5, b6, b7), 700 + 35*((b7-b4/2-b5)/b6-b5)},
		{"SAVIRRE", SAVIRRE(b4, b5, b8, DefaultSAVIRREA, DefaultSAVIRREL),
			(1 + 0.5) * (b8 - (0.4*b4 + 0.6*b5)) / (b5 + 0.5 + (0.4*b4 + 0.6*b5))},
		{"SIPI", SIPI(b3, b4, b8), b3/b8 - b4},
		{"TCARI", TCARI(b3, b4, b5), 3 * (b5 - b4 - 0.2*(b5-b3)*(b5/4))},
		{"TVI", TVI(b3, b4, b6), 0.5 * (120*(b6-b3) - 200*(b4-b3))},
		{"VSDI", VSDI(b2, b4, b11), 1 - (b11 - b2 + (b4 - b2))},
		{"WDRVIRE", WDRVIRE(b5, b7, DefaultWDRVIREAlpha),
			(0.01*b7-b5)/(0.01*b7+b5) + (1-0.01)/(1+0.01)},
		{"REPA", REPA(b4, b5, b6, b7, b8a), b4 + b5 + b6 + b7 + b8a},
	}
	for _, tc := range tests {
		if !closeEnough(tc.got, tc.want) {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestRootFormulasNaN(t *testing.T) {
	if got := MSAVI(-10.0, 0.5); !math.IsNaN(got) {
		t.Errorf("MSAVI with negative discriminant = %v, want NaN", got)
	}
	if got := MSRRE(0.5, -2.0); !math.IsNaN(got) {
		t.Errorf("MSRRE with negative radicand = %v, want NaN", got)
	}
}

func TestParamsThroughRegistry(t *testing.T) {
	reg := Registry()
	in := catalog.Input{Bands: map[string][]float64{
		"b4": {0.06, 0.1},
		"b5": {0.12, 0.15},
		"b8": {0.35, 0.4},
	}}

	got, err := reg.Evaluate("cired_re", in)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{CIREDRE(0.06, 0.12, 0.35, 0.7), CIREDRE(0.1, 0.15, 0.4, 0.7)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("cired_re defaults (-want +got):\n%s", diff)
	}

	in.Params = map[string]float64{"a": 0.2}
	got, err = reg.Evaluate("cired_re", in)
	if err != nil {
		t.Fatal(err)
	}
	want = []float64{CIREDRE(0.06, 0.12, 0.35, 0.2), CIREDRE(0.1, 0.15, 0.4, 0.2)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("cired_re a=0.2 (-want +got):\n%s", diff)
	}

	e, _ := reg.Lookup("savirre")
	if diff := cmp.Diff([]float64{0.4, 0.5}, e.Defaults()); diff != "" {
		t.Errorf("savirre defaults (-want +got):\n%s", diff)
	}
}

func TestShapePreservation(t *testing.T) {
	red := []float64{0.1, 0.2, 0, 0.3, -0.3}
	nir := []float64{0.5, 0.4, 0, 0.3, 0.3}

	got, err := algo.Map2(NDVI[float64], red, nir)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{NDVI(0.1, 0.5), NDVI(0.2, 0.4), math.NaN(), 0, math.Inf(1)}
	opts := cmp.Options{cmpopts.EquateNaNs(), cmpopts.EquateApprox(1e-12, 0)}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("Map2(NDVI) (-want +got):\n%s", diff)
	}

	gRed, _ := raster.FromSlice(5, 1, red)
	gNir, _ := raster.FromSlice(5, 1, nir)
	grid, err := raster.Eval2(gRed, gNir, NDVI[float64])
	if err != nil {
		t.Fatal(err)
	}
	if grid.Width() != 5 || grid.Height() != 1 {
		t.Errorf("grid shape %dx%d, want 5x1", grid.Width(), grid.Height())
	}
	if diff := cmp.Diff(want, grid.Samples(), opts); diff != "" {
		t.Errorf("Eval2(NDVI) (-want +got):\n%s", diff)
	}
}

func BenchmarkNDVI(b *testing.B) {
	red := make([]float32, 1<<16)
	nir := make([]float32, len(red))
	for i := range red {
		red[i] = float32(i%97) / 97
		nir[i] = float32(i%89) / 89
	}
	out := make([]float32, len(red))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = algo.Apply2(red, nir, out, NDVI[float32])
	}
}

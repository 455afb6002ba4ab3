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

package algo

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sr2vgi/go-vgi/hwy"
)

func normDiff(a, b float64) float64 { return (a - b) / (a + b) }

func TestApply2(t *testing.T) {
	a := []float64{0.5, 0.4, 0.3, 0}
	b := []float64{0.1, 0.4, 0.6, 0}
	out := make([]float64, len(a))

	if err := Apply2(a, b, out, normDiff); err != nil {
		t.Fatalf("Apply2: %v", err)
	}

	// Expected values go through normDiff at run time; constant expressions
	// are folded exactly and can differ in the last bit.
	want := make([]float64, len(a))
	for i := range a {
		want[i] = normDiff(a[i], b[i])
	}
	if diff := cmp.Diff(want, out, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("Apply2 mismatch (-want +got):\n%s", diff)
	}
	if out[1] != 0 || !math.IsNaN(out[3]) {
		t.Errorf("Apply2 edge cases: got %v, %v; want 0, NaN", out[1], out[3])
	}
	if math.Abs(out[0]-2.0/3) > 1e-12 || math.Abs(out[2]+1.0/3) > 1e-12 {
		t.Errorf("Apply2 values: got %v, %v; want ~2/3, ~-1/3", out[0], out[2])
	}
}

func TestApplyShapeMismatch(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2}
	out := []float32{-1, -1, -1}

	err := Apply2(a, b, out, func(x, y float32) float32 { return x + y })
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Apply2: got %v, want ErrShapeMismatch", err)
	}
	for i, v := range out {
		if v != -1 {
			t.Errorf("out[%d] written on shape mismatch: %v", i, v)
		}
	}

	if _, err := Map3(func(x, y, z float32) float32 { return x }, a, a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Map3: got %v, want ErrShapeMismatch", err)
	}
}

func TestMapArities(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, 4}
	c := []float64{5, 6}
	d := []float64{7, 8}
	e := []float64{9, 10}

	tests := []struct {
		name string
		run  func() ([]float64, error)
		want []float64
	}{
		{"Map1", func() ([]float64, error) { return Map1(func(x float64) float64 { return -x }, a) }, []float64{-1, -2}},
		{"Map2", func() ([]float64, error) { return Map2(func(x, y float64) float64 { return x + y }, a, b) }, []float64{4, 6}},
		{"Map3", func() ([]float64, error) {
			return Map3(func(x, y, z float64) float64 { return x + y + z }, a, b, c)
		}, []float64{9, 12}},
		{"Map4", func() ([]float64, error) {
			return Map4(func(x, y, z, w float64) float64 { return x + y + z + w }, a, b, c, d)
		}, []float64{16, 20}},
		{"Map5", func() ([]float64, error) {
			return Map5(func(x, y, z, w, v float64) float64 { return x + y + z + w + v }, a, b, c, d, e)
		}, []float64{25, 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tc.name, diff)
			}
		})
	}
}

func TestApplyN(t *testing.T) {
	bands := [][]float64{{1, 2, 3}, {10, 20, 30}, {100, 200, 300}}
	out := make([]float64, 3)

	err := ApplyN(bands, out, func(px []float64) float64 { return px[0] + px[1] + px[2] })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{111, 222, 333}, out); diff != "" {
		t.Errorf("ApplyN mismatch (-want +got):\n%s", diff)
	}

	if err := ApplyN([][]float64{{1}, {1, 2}}, make([]float64, 1), func(px []float64) float64 { return 0 }); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("ApplyN: got %v, want ErrShapeMismatch", err)
	}
}

func TestApplyVecMatchesScalar(t *testing.T) {
	lanes := hwy.MaxLanes[float32]()
	for _, n := range []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := make([]float32, n)
			b := make([]float32, n)
			c := make([]float32, n)
			for i := range n {
				a[i] = float32(i+1) * 0.05
				b[i] = float32(n-i) * 0.03
				c[i] = 0.01 * float32(i%5)
			}

			gotVec := make([]float32, n)
			gotScalar := make([]float32, n)

			err := ApplyVec2(a, b, gotVec, func(x, y hwy.Vec[float32]) hwy.Vec[float32] {
				return hwy.Div(hwy.Sub(x, y), hwy.Add(x, y))
			})
			if err != nil {
				t.Fatal(err)
			}
			_ = Apply2(a, b, gotScalar, func(x, y float32) float32 { return (x - y) / (x + y) })
			if diff := cmp.Diff(gotScalar, gotVec, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("ApplyVec2 mismatch (-scalar +vec):\n%s", diff)
			}

			_ = ApplyVec1(a, gotVec, func(x hwy.Vec[float32]) hwy.Vec[float32] { return hwy.Sqrt(x) })
			_ = Apply1(a, gotScalar, func(x float32) float32 { return float32(math.Sqrt(float64(x))) })
			if diff := cmp.Diff(gotScalar, gotVec); diff != "" {
				t.Errorf("ApplyVec1 mismatch (-scalar +vec):\n%s", diff)
			}

			_ = ApplyVec3(a, b, c, gotVec, func(x, y, z hwy.Vec[float32]) hwy.Vec[float32] {
				return hwy.Sub(hwy.Add(x, y), hwy.Mul(hwy.Set[float32](2), z))
			})
			_ = Apply3(a, b, c, gotScalar, func(x, y, z float32) float32 { return x + y - 2*z })
			if diff := cmp.Diff(gotScalar, gotVec); diff != "" {
				t.Errorf("ApplyVec3 mismatch (-scalar +vec):\n%s", diff)
			}
		})
	}
}

func TestMaskAbove(t *testing.T) {
	lanes := hwy.MaxLanes[float64]()
	n := 2*lanes + 3
	data := make([]float64, n)
	for i := range data {
		// Straddle 1.5: 1.25, 1.5, 1.75, 1.25, ...
		data[i] = 1.25 + 0.25*float64(i%3)
	}
	data[1] = math.NaN()

	want := make([]float64, n)
	wantMasked := 0
	for i, v := range data {
		if v > 1.5 {
			want[i] = math.NaN()
			wantMasked++
		} else {
			want[i] = v
		}
	}

	masked := MaskAbove(data, 1.5)
	if masked != wantMasked {
		t.Errorf("MaskAbove: masked %d, want %d", masked, wantMasked)
	}
	if diff := cmp.Diff(want, data, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("MaskAbove mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceMaxMin(t *testing.T) {
	data := []float32{0.3, -0.2, 0.9, 0.1, 0.4, 0.8, 0.05, 0.7, 0.6}
	if got := ReduceMax(data); got != 0.9 {
		t.Errorf("ReduceMax: got %v, want 0.9", got)
	}
	if got := ReduceMin(data); got != -0.2 {
		t.Errorf("ReduceMin: got %v, want -0.2", got)
	}

	data[len(data)-1] = float32(math.NaN())
	if got := ReduceMax(data); !math.IsNaN(float64(got)) {
		t.Errorf("ReduceMax with NaN: got %v, want NaN", got)
	}
	if got := ReduceMin(data); !math.IsNaN(float64(got)) {
		t.Errorf("ReduceMin with NaN: got %v, want NaN", got)
	}

	if got := ReduceMax([]float64{}); !math.IsInf(got, -1) {
		t.Errorf("ReduceMax(empty): got %v, want -Inf", got)
	}
}

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

package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid[float32](100, 50)
	if g.Width() != 100 || g.Height() != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", g.Width(), g.Height())
	}
	lanes := hwy.MaxLanes[float32]()
	if g.Stride() < 100 || g.Stride()%lanes != 0 {
		t.Errorf("Stride: got %d, want multiple of %d >= 100", g.Stride(), lanes)
	}

	empty := NewGrid[float64](-1, 10)
	if empty.Width() != 0 || empty.Height() != 0 || empty.Row(0) != nil {
		t.Errorf("negative width: got %dx%d", empty.Width(), empty.Height())
	}
}

func TestGridAccess(t *testing.T) {
	g := NewGrid[float64](10, 5)
	g.Set(3, 4, 0.75)
	if got := g.At(3, 4); got != 0.75 {
		t.Errorf("At(3,4) = %v, want 0.75", got)
	}
	if got := g.At(10, 0); got != 0 {
		t.Errorf("At(10,0) = %v, want 0", got)
	}
	g.Set(-1, 0, 9)

	if len(g.RowSlice(0)) != 10 {
		t.Errorf("RowSlice length = %d, want 10", len(g.RowSlice(0)))
	}
	if len(g.Row(0)) != g.Stride() {
		t.Errorf("Row length = %d, want %d", len(g.Row(0)), g.Stride())
	}
	if g.RowSlice(5) != nil {
		t.Error("RowSlice(5) should be nil")
	}
}

func TestFromSliceRoundTrip(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6}
	g, err := FromSlice(3, 2, samples)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.At(2, 1); got != 6 {
		t.Errorf("At(2,1) = %v, want 6", got)
	}
	if diff := cmp.Diff(samples, g.Samples()); diff != "" {
		t.Errorf("Samples mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromSlice(4, 2, samples); !errors.Is(err, algo.ErrShapeMismatch) {
		t.Errorf("FromSlice(4,2) error = %v, want ErrShapeMismatch", err)
	}
}

func ndvi(red, nir float64) float64 { return (nir - red) / (nir + red) }

func TestEval2PreservesShape(t *testing.T) {
	red, _ := FromSlice(3, 2, []float64{0.1, 0.2, 0.3, 0, 0.5, 0.05})
	nir, _ := FromSlice(3, 2, []float64{0.5, 0.4, 0.3, 0, 0.1, 0.6})

	out, err := Eval2(red, nir, ndvi)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 3 || out.Height() != 2 {
		t.Fatalf("shape: got %dx%d, want 3x2", out.Width(), out.Height())
	}
	want := make([]float64, 0, 6)
	for i, r := range red.Samples() {
		want = append(want, ndvi(r, nir.Samples()[i]))
	}
	opts := cmp.Options{cmpopts.EquateNaNs(), cmpopts.EquateApprox(1e-12, 0)}
	if diff := cmp.Diff(want, out.Samples(), opts); diff != "" {
		t.Errorf("Eval2 mismatch (-want +got):\n%s", diff)
	}
	if got := out.At(0, 1); !math.IsNaN(got) {
		t.Errorf("At(0,1) = %v, want NaN", got)
	}
	if got := out.At(1, 0); math.Abs(got-1.0/3) > 1e-12 {
		t.Errorf("At(1,0) = %v, want ~1/3", got)
	}
}

func TestEvalSizeMismatch(t *testing.T) {
	a := NewGrid[float32](4, 4)
	b := NewGrid[float32](4, 3)
	if _, err := Eval2(a, b, func(x, y float32) float32 { return x + y }); !errors.Is(err, algo.ErrShapeMismatch) {
		t.Errorf("Eval2 error = %v, want ErrShapeMismatch", err)
	}
	if _, err := Eval5(a, a, a, a, b, func(p, q, r, s, u float32) float32 { return p }); !errors.Is(err, algo.ErrShapeMismatch) {
		t.Errorf("Eval5 error = %v, want ErrShapeMismatch", err)
	}
	if _, err := EvalN(nil, []*Grid[float32]{a, b}, func(px []float32) float32 { return 0 }); !errors.Is(err, algo.ErrShapeMismatch) {
		t.Errorf("EvalN error = %v, want ErrShapeMismatch", err)
	}
}

func TestEvalArities(t *testing.T) {
	a := NewGrid[float64](5, 3)
	a.Fill(1)
	sum := func(px []float64) float64 {
		s := 0.0
		for _, v := range px {
			s += v
		}
		return s
	}

	g1, _ := Eval1(a, func(x float64) float64 { return x })
	g3, _ := Eval3(a, a, a, func(x, y, z float64) float64 { return x + y + z })
	g4, _ := Eval4(a, a, a, a, func(x, y, z, w float64) float64 { return x + y + z + w })
	g5, _ := Eval5(a, a, a, a, a, func(x, y, z, w, v float64) float64 { return x + y + z + w + v })
	gN, _ := EvalN(nil, []*Grid[float64]{a, a, a, a, a, a}, sum)

	for _, tc := range []struct {
		g    *Grid[float64]
		want float64
	}{{g1, 1}, {g3, 3}, {g4, 4}, {g5, 5}, {gN, 6}} {
		for _, v := range tc.g.Samples() {
			if v != tc.want {
				t.Errorf("got %v, want %v", v, tc.want)
				break
			}
		}
	}
}

func TestEvalNParallelMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()
	pool.SetMinChunk(16)

	const w, h = 37, 29
	red := NewGrid[float64](w, h)
	nir := NewGrid[float64](w, h)
	for y := range h {
		for x := range w {
			red.Set(x, y, float64(x+1)/float64(w))
			nir.Set(x, y, float64(y+1)/float64(h))
		}
	}
	kernel := func(px []float64) float64 { return ndvi(px[0], px[1]) }

	seq, err := EvalN(nil, []*Grid[float64]{red, nir}, kernel)
	if err != nil {
		t.Fatal(err)
	}
	par, err := EvalN(pool, []*Grid[float64]{red, nir}, kernel)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(seq.Samples(), par.Samples(), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("parallel mismatch (-seq +par):\n%s", diff)
	}
}

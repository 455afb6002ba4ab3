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
	"fmt"

	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
	"github.com/sr2vgi/go-vgi/hwy/contrib/workerpool"
)

func checkSize[T hwy.Floats](grids ...*Grid[T]) error {
	for i := 1; i < len(grids); i++ {
		if !SameSize(grids[0], grids[i]) {
			return fmt.Errorf("%w: grid %d is %dx%d, want %dx%d", algo.ErrShapeMismatch, i,
				grids[i].width, grids[i].height, grids[0].width, grids[0].height)
		}
	}
	return nil
}

// Eval1 returns fn applied to every pixel of a.
func Eval1[T hwy.Floats](a *Grid[T], fn algo.Kernel1[T]) (*Grid[T], error) {
	out := NewGrid[T](a.width, a.height)
	for y := range out.height {
		if err := algo.Apply1(a.RowSlice(y), out.RowSlice(y), fn); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Eval2 returns fn applied pixel by pixel to a and b.
func Eval2[T hwy.Floats](a, b *Grid[T], fn algo.Kernel2[T]) (*Grid[T], error) {
	if err := checkSize(a, b); err != nil {
		return nil, err
	}
	out := NewGrid[T](a.width, a.height)
	for y := range out.height {
		if err := algo.Apply2(a.RowSlice(y), b.RowSlice(y), out.RowSlice(y), fn); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Eval3 returns fn applied pixel by pixel to a, b and c.
func Eval3[T hwy.Floats](a, b, c *Grid[T], fn algo.Kernel3[T]) (*Grid[T], error) {
	if err := checkSize(a, b, c); err != nil {
		return nil, err
	}
	out := NewGrid[T](a.width, a.height)
	for y := range out.height {
		err := algo.Apply3(a.RowSlice(y), b.RowSlice(y), c.RowSlice(y), out.RowSlice(y), fn)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Eval4 returns fn applied pixel by pixel to four grids.
func Eval4[T hwy.Floats](a, b, c, d *Grid[T], fn algo.Kernel4[T]) (*Grid[T], error) {
	if err := checkSize(a, b, c, d); err != nil {
		return nil, err
	}
	out := NewGrid[T](a.width, a.height)
	for y := range out.height {
		err := algo.Apply4(a.RowSlice(y), b.RowSlice(y), c.RowSlice(y), d.RowSlice(y), out.RowSlice(y), fn)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Eval5 returns fn applied pixel by pixel to five grids.
func Eval5[T hwy.Floats](a, b, c, d, e *Grid[T], fn algo.Kernel5[T]) (*Grid[T], error) {
	if err := checkSize(a, b, c, d, e); err != nil {
		return nil, err
	}
	out := NewGrid[T](a.width, a.height)
	for y := range out.height {
		err := algo.Apply5(a.RowSlice(y), b.RowSlice(y), c.RowSlice(y), d.RowSlice(y), e.RowSlice(y),
			out.RowSlice(y), fn)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EvalN applies fn to any number of same-sized grids. fn receives one
// pixel's samples in band order and must not retain the slice. With a
// non-nil pool, rows are handed out to its workers in batches.
func EvalN[T hwy.Floats](pool *workerpool.Pool, bands []*Grid[T], fn func(px []T) T) (*Grid[T], error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no bands", algo.ErrShapeMismatch)
	}
	if err := checkSize(bands...); err != nil {
		return nil, err
	}

	out := NewGrid[T](bands[0].width, bands[0].height)
	rows := func(start, end int) {
		rowBands := make([][]T, len(bands))
		for y := start; y < end; y++ {
			for i, g := range bands {
				rowBands[i] = g.RowSlice(y)
			}
			// Shapes were checked above.
			_ = algo.ApplyN(rowBands, out.RowSlice(y), fn)
		}
	}

	if pool == nil {
		rows(0, out.height)
		return out, nil
	}
	batch := max(1, pool.MinChunk()/max(out.width, 1))
	pool.ParallelForBatched(out.height, batch, rows)
	return out, nil
}

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
)

// Grid is one band of a scene. Rows are padded to a multiple of the vector
// width; padding is never part of the band.
type Grid[T hwy.Floats] struct {
	data   []T
	width  int
	height int
	stride int // elements per row, padding included
}

// NewGrid returns a zeroed width x height grid. Non-positive dimensions give
// an empty grid.
func NewGrid[T hwy.Floats](width, height int) *Grid[T] {
	if width <= 0 || height <= 0 {
		return &Grid[T]{}
	}
	stride := hwy.AlignedSize[T](width)
	return &Grid[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// FromSlice copies row-major samples into a new grid. len(samples) must be
// width*height.
func FromSlice[T hwy.Floats](width, height int, samples []T) (*Grid[T], error) {
	if width*height != len(samples) || width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d samples for a %dx%d grid", algo.ErrShapeMismatch, len(samples), width, height)
	}
	g := NewGrid[T](width, height)
	for y := range g.height {
		copy(g.RowSlice(y), samples[y*width:(y+1)*width])
	}
	return g, nil
}

// Width returns the grid width in pixels.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid[T]) Height() int { return g.height }

// Stride returns the number of elements per row, padding included.
func (g *Grid[T]) Stride() int { return g.stride }

// Row returns row y including its padding, or nil when y is out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.height {
		return nil
	}
	start := y * g.stride
	return g.data[start : start+g.stride]
}

// RowSlice returns row y without padding, or nil when y is out of range.
func (g *Grid[T]) RowSlice(y int) []T {
	if y < 0 || y >= g.height {
		return nil
	}
	start := y * g.stride
	return g.data[start : start+g.width]
}

// At returns the sample at (x, y), or zero outside the grid.
func (g *Grid[T]) At(x, y int) T {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		var zero T
		return zero
	}
	return g.data[y*g.stride+x]
}

// Set stores v at (x, y). Writes outside the grid are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.data[y*g.stride+x] = v
}

// Fill sets every pixel, padding included, to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Samples returns a new row-major slice of the grid's pixels.
func (g *Grid[T]) Samples() []T {
	out := make([]T, 0, g.width*g.height)
	for y := range g.height {
		out = append(out, g.RowSlice(y)...)
	}
	return out
}

// SameSize reports whether a and b have equal dimensions.
func SameSize[T, U hwy.Floats](a *Grid[T], b *Grid[U]) bool {
	return a.width == b.width && a.height == b.height
}

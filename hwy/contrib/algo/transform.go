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

	"github.com/sr2vgi/go-vgi/hwy"
)

// ErrShapeMismatch is returned when co-registered bands differ in length.
var ErrShapeMismatch = errors.New("algo: band shapes differ")

// CheckShape returns ErrShapeMismatch, wrapped with the offending lengths,
// unless every length equals the first.
func CheckShape(lengths ...int) error {
	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			return fmt.Errorf("%w: length %d at position %d, want %d", ErrShapeMismatch, lengths[i], i, lengths[0])
		}
	}
	return nil
}

type (
	// Kernel1 is a per-pixel function of one band.
	Kernel1[T hwy.Floats] func(a T) T

	// Kernel2 is a per-pixel function of two bands.
	Kernel2[T hwy.Floats] func(a, b T) T

	// Kernel3 is a per-pixel function of three bands.
	Kernel3[T hwy.Floats] func(a, b, c T) T

	// Kernel4 is a per-pixel function of four bands.
	Kernel4[T hwy.Floats] func(a, b, c, d T) T

	// Kernel5 is a per-pixel function of five bands.
	Kernel5[T hwy.Floats] func(a, b, c, d, e T) T
)

// Apply1 writes fn(a[i]) to out[i].
func Apply1[T hwy.Floats](a, out []T, fn Kernel1[T]) error {
	if err := CheckShape(len(a), len(out)); err != nil {
		return err
	}
	for i := range out {
		out[i] = fn(a[i])
	}
	return nil
}

// Apply2 writes fn(a[i], b[i]) to out[i].
func Apply2[T hwy.Floats](a, b, out []T, fn Kernel2[T]) error {
	if err := CheckShape(len(a), len(b), len(out)); err != nil {
		return err
	}
	for i := range out {
		out[i] = fn(a[i], b[i])
	}
	return nil
}

// Apply3 writes fn(a[i], b[i], c[i]) to out[i].
func Apply3[T hwy.Floats](a, b, c, out []T, fn Kernel3[T]) error {
	if err := CheckShape(len(a), len(b), len(c), len(out)); err != nil {
		return err
	}
	for i := range out {
		out[i] = fn(a[i], b[i], c[i])
	}
	return nil
}

// Apply4 writes fn(a[i], b[i], c[i], d[i]) to out[i].
func Apply4[T hwy.Floats](a, b, c, d, out []T, fn Kernel4[T]) error {
	if err := CheckShape(len(a), len(b), len(c), len(d), len(out)); err != nil {
		return err
	}
	for i := range out {
		out[i] = fn(a[i], b[i], c[i], d[i])
	}
	return nil
}

// Apply5 writes fn(a[i], b[i], c[i], d[i], e[i]) to out[i].
func Apply5[T hwy.Floats](a, b, c, d, e, out []T, fn Kernel5[T]) error {
	if err := CheckShape(len(a), len(b), len(c), len(d), len(e), len(out)); err != nil {
		return err
	}
	for i := range out {
		out[i] = fn(a[i], b[i], c[i], d[i], e[i])
	}
	return nil
}

// ApplyN evaluates fn over any number of bands. fn receives the samples of
// one pixel in band order; the slice is reused between calls.
func ApplyN[T hwy.Floats](bands [][]T, out []T, fn func(px []T) T) error {
	lengths := make([]int, 0, len(bands)+1)
	lengths = append(lengths, len(out))
	for _, band := range bands {
		lengths = append(lengths, len(band))
	}
	if err := CheckShape(lengths...); err != nil {
		return err
	}

	px := make([]T, len(bands))
	for i := range out {
		for j, band := range bands {
			px[j] = band[i]
		}
		out[i] = fn(px)
	}
	return nil
}

// Map1 returns a new slice holding fn(a[i]).
func Map1[T hwy.Floats](fn Kernel1[T], a []T) ([]T, error) {
	out := make([]T, len(a))
	return out, Apply1(a, out, fn)
}

// Map2 returns a new slice holding fn(a[i], b[i]).
func Map2[T hwy.Floats](fn Kernel2[T], a, b []T) ([]T, error) {
	if err := CheckShape(len(a), len(b)); err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	return out, Apply2(a, b, out, fn)
}

// Map3 returns a new slice holding fn(a[i], b[i], c[i]).
func Map3[T hwy.Floats](fn Kernel3[T], a, b, c []T) ([]T, error) {
	if err := CheckShape(len(a), len(b), len(c)); err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	return out, Apply3(a, b, c, out, fn)
}

// Map4 returns a new slice holding fn(a[i], b[i], c[i], d[i]).
func Map4[T hwy.Floats](fn Kernel4[T], a, b, c, d []T) ([]T, error) {
	if err := CheckShape(len(a), len(b), len(c), len(d)); err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	return out, Apply4(a, b, c, d, out, fn)
}

// Map5 returns a new slice holding fn(a[i], b[i], c[i], d[i], e[i]).
func Map5[T hwy.Floats](fn Kernel5[T], a, b, c, d, e []T) ([]T, error) {
	if err := CheckShape(len(a), len(b), len(c), len(d), len(e)); err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	return out, Apply5(a, b, c, d, e, out, fn)
}

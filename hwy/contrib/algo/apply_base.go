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

import "github.com/sr2vgi/go-vgi/hwy"

// ApplyVec1 runs a lane kernel over a, storing into out.
// Tail elements are handled through a padded buffer, so fn never sees a
// partial vector.
func ApplyVec1[T hwy.Floats](a, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) error {
	if err := CheckShape(len(a), len(out)); err != nil {
		return err
	}
	n := len(out)
	lanes := hwy.MaxLanes[T]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		hwy.Store(fn(hwy.Load(a[i:])), out[i:])
	}

	if remaining := n - i; remaining > 0 {
		buf := make([]T, lanes)
		copy(buf, a[i:])
		hwy.Store(fn(hwy.Load(buf)), buf)
		copy(out[i:], buf[:remaining])
	}
	return nil
}

// ApplyVec2 runs a two-band lane kernel over a and b, storing into out.
func ApplyVec2[T hwy.Floats](a, b, out []T, fn func(a, b hwy.Vec[T]) hwy.Vec[T]) error {
	if err := CheckShape(len(a), len(b), len(out)); err != nil {
		return err
	}
	n := len(out)
	lanes := hwy.MaxLanes[T]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		hwy.Store(fn(hwy.Load(a[i:]), hwy.Load(b[i:])), out[i:])
	}

	if remaining := n - i; remaining > 0 {
		bufA := make([]T, lanes)
		bufB := make([]T, lanes)
		copy(bufA, a[i:])
		copy(bufB, b[i:])
		hwy.Store(fn(hwy.Load(bufA), hwy.Load(bufB)), bufA)
		copy(out[i:], bufA[:remaining])
	}
	return nil
}

// ApplyVec3 runs a three-band lane kernel over a, b and c, storing into out.
func ApplyVec3[T hwy.Floats](a, b, c, out []T, fn func(a, b, c hwy.Vec[T]) hwy.Vec[T]) error {
	if err := CheckShape(len(a), len(b), len(c), len(out)); err != nil {
		return err
	}
	n := len(out)
	lanes := hwy.MaxLanes[T]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		hwy.Store(fn(hwy.Load(a[i:]), hwy.Load(b[i:]), hwy.Load(c[i:])), out[i:])
	}

	if remaining := n - i; remaining > 0 {
		bufA := make([]T, lanes)
		bufB := make([]T, lanes)
		bufC := make([]T, lanes)
		copy(bufA, a[i:])
		copy(bufB, b[i:])
		copy(bufC, c[i:])
		hwy.Store(fn(hwy.Load(bufA), hwy.Load(bufB), hwy.Load(bufC)), bufA)
		copy(out[i:], bufA[:remaining])
	}
	return nil
}

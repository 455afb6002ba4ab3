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

package spectral

import (
	"github.com/sr2vgi/go-vgi/hwy"
	"github.com/sr2vgi/go-vgi/hwy/contrib/algo"
)

// NormalizedDifferenceVec is the lane form of NormalizedDifference.
func NormalizedDifferenceVec[T hwy.Floats](a, b hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Div(hwy.Sub(a, b), hwy.Add(a, b))
}

// SimpleRatioVec is the lane form of SimpleRatio.
func SimpleRatioVec[T hwy.Floats](a, b hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Div(a, b)
}

// RatioMinusOneVec is the lane form of RatioMinusOne.
func RatioMinusOneVec[T hwy.Floats](a, b hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Sub(hwy.Div(a, b), hwy.Set[T](1))
}

// ModifiedSimpleRatioVec is the lane form of ModifiedSimpleRatio.
func ModifiedSimpleRatioVec[T hwy.Floats](a, b hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	ratio := hwy.Div(a, b)
	return hwy.Div(hwy.Sub(ratio, one), hwy.Sqrt(hwy.Add(ratio, one)))
}

// InverseDifferenceVec is the lane form of InverseDifference.
func InverseDifferenceVec[T hwy.Floats](a, b hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	return hwy.Sub(hwy.Div(one, a), hwy.Div(one, b))
}

// BlendVec returns a lane kernel mixing two bands with weight w.
func BlendVec[T hwy.Floats](w T) func(a, b hwy.Vec[T]) hwy.Vec[T] {
	wVec := hwy.Set(w)
	rest := hwy.Set(1 - w)
	return func(a, b hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Add(hwy.Mul(wVec, a), hwy.Mul(rest, b))
	}
}

// NormalizedDifferenceSlice writes (a[i] - b[i]) / (a[i] + b[i]) to out[i].
func NormalizedDifferenceSlice[T hwy.Floats](a, b, out []T) error {
	return algo.ApplyVec2(a, b, out, NormalizedDifferenceVec[T])
}

// SimpleRatioSlice writes a[i] / b[i] to out[i].
func SimpleRatioSlice[T hwy.Floats](a, b, out []T) error {
	return algo.ApplyVec2(a, b, out, SimpleRatioVec[T])
}

// RatioMinusOneSlice writes a[i] / b[i] - 1 to out[i].
func RatioMinusOneSlice[T hwy.Floats](a, b, out []T) error {
	return algo.ApplyVec2(a, b, out, RatioMinusOneVec[T])
}

// ModifiedSimpleRatioSlice writes the modified simple ratio of a and b to out.
func ModifiedSimpleRatioSlice[T hwy.Floats](a, b, out []T) error {
	return algo.ApplyVec2(a, b, out, ModifiedSimpleRatioVec[T])
}

// InverseDifferenceSlice writes 1/a[i] - 1/b[i] to out[i].
func InverseDifferenceSlice[T hwy.Floats](a, b, out []T) error {
	return algo.ApplyVec2(a, b, out, InverseDifferenceVec[T])
}

// BlendSlice writes w*a[i] + (1-w)*b[i] to out[i].
func BlendSlice[T hwy.Floats](w T, a, b, out []T) error {
	return algo.ApplyVec2(a, b, out, BlendVec(w))
}

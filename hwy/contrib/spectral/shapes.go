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
	"math"

	"github.com/sr2vgi/go-vgi/hwy"
)

// NormalizedDifference returns (a - b) / (a + b).
func NormalizedDifference[T hwy.Floats](a, b T) T {
	return (a - b) / (a + b)
}

// SimpleRatio returns a / b.
func SimpleRatio[T hwy.Floats](a, b T) T {
	return a / b
}

// RatioMinusOne returns a / b - 1.
func RatioMinusOne[T hwy.Floats](a, b T) T {
	return a/b - 1
}

// ModifiedSimpleRatio returns (a/b - 1) / sqrt(a/b + 1).
func ModifiedSimpleRatio[T hwy.Floats](a, b T) T {
	top := a/b - 1
	bottom := Sqrt(a/b + 1)
	return top / bottom
}

// InverseDifference returns 1/a - 1/b.
func InverseDifference[T hwy.Floats](a, b T) T {
	return 1/a - 1/b
}

// Blend mixes two bands linearly: w*a + (1-w)*b.
func Blend[T hwy.Floats](w, a, b T) T {
	return w*a + (1-w)*b
}

// Sqrt is math.Sqrt for any band type.
func Sqrt[T hwy.Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Pow is math.Pow for any band type.
func Pow[T hwy.Floats](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Abs is math.Abs for any band type.
func Abs[T hwy.Floats](x T) T {
	return T(math.Abs(float64(x)))
}

// Square returns x*x.
func Square[T hwy.Floats](x T) T {
	return x * x
}

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

package hwy

import "math"

// This file holds the portable implementations of every lane operation.
// Each lane is computed with the same IEEE-754 operation a scalar
// expression would use, so a kernel written with Vec ops and one written
// with plain arithmetic produce the same values.

// Load creates a vector from the first MaxLanes[T]() elements of src.
// A shorter src yields a shorter vector; use a padded buffer for tails.
func Load[T Floats](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes v's lanes to dst.
func Store[T Floats](v Vec[T], dst []T) {
	v.Store(dst)
}

// Set creates a vector with every lane equal to value.
func Set[T Floats](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// lanewise applies fn to corresponding lanes of a and b. The result has as
// many lanes as the shorter operand.
func lanewise[T Floats](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: data}
}

func unary[T Floats](v Vec[T], fn func(x T) T) Vec[T] {
	data := make([]T, len(v.data))
	for i, x := range v.data {
		data[i] = fn(x)
	}
	return Vec[T]{data: data}
}

// Add returns a + b lane-wise.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b lane-wise.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b lane-wise.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b lane-wise. Zero divisors give ±Inf or NaN.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x / y })
}

// Neg returns -v lane-wise.
func Neg[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs returns |v| lane-wise.
func Abs[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Abs(float64(x))) })
}

// Sqrt returns the square root of each lane. Negative lanes give NaN.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// Pow returns base raised to exp lane-wise.
func Pow[T Floats](base, exp Vec[T]) Vec[T] {
	return lanewise(base, exp, func(x, y T) T { return T(math.Pow(float64(x), float64(y))) })
}

// Min returns the lane-wise minimum. NaN lanes propagate.
func Min[T Floats](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return T(math.Min(float64(x), float64(y))) })
}

// Max returns the lane-wise maximum. NaN lanes propagate.
func Max[T Floats](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return T(math.Max(float64(x), float64(y))) })
}

func compare[T Floats](a, b Vec[T], fn func(x, y T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = fn(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// GreaterThan returns a mask of lanes where a > b. NaN compares false.
func GreaterThan[T Floats](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// IsNaN returns a mask of lanes holding NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = x != x
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a where mask is set and b elsewhere.
func IfThenElse[T Floats](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			data[i] = a.data[i]
		} else {
			data[i] = b.data[i]
		}
	}
	return Vec[T]{data: data}
}

// ReduceMax returns the largest lane. Any NaN lane makes the result NaN.
// An empty vector reduces to -Inf.
func ReduceMax[T Floats](v Vec[T]) T {
	result := T(math.Inf(-1))
	for _, x := range v.data {
		if x != x {
			return x
		}
		if x > result {
			result = x
		}
	}
	return result
}

// ReduceMin returns the smallest lane. Any NaN lane makes the result NaN.
// An empty vector reduces to +Inf.
func ReduceMin[T Floats](v Vec[T]) T {
	result := T(math.Inf(1))
	for _, x := range v.data {
		if x != x {
			return x
		}
		if x < result {
			result = x
		}
	}
	return result
}

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

// Package spectral provides the formula shapes that vegetation indices are
// built from.
//
// # Shapes
//
//	NormalizedDifference(a, b)  // (a - b) / (a + b)
//	SimpleRatio(a, b)           // a / b
//	RatioMinusOne(a, b)         // a / b - 1
//	ModifiedSimpleRatio(a, b)   // (a/b - 1) / sqrt(a/b + 1)
//	InverseDifference(a, b)     // 1/a - 1/b
//	Blend(w, a, b)              // w*a + (1-w)*b
//
// Each shape comes in three forms: a scalar function over T, a lane
// function over hwy.Vec[T] (suffix Vec), and a slice function that writes
// into an output slice (suffix Slice). All three evaluate the same IEEE-754
// operations in the same order.
//
// Nothing is guarded: a zero denominator yields ±Inf or NaN, and a negative
// radicand yields NaN.
package spectral

// Copyright 2025 go-highway Authors
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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/chewxy/math32"
)

// Sqrt computes the square root of each lane. It is the core hwy.Sqrt op,
// re-exported so callers find it next to the other roots.
func Sqrt[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Sqrt(v)
}

// Cbrt computes the cube root of each lane.
func Cbrt[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Cbrt, stdmath.Cbrt)
}

// RootN computes the n-th root of each lane.
//
// Special cases:
//   - RootN(x, 0) = NaN
//   - RootN(x < 0, even n) = NaN
//   - RootN(x < 0, odd n) = -RootN(-x, n)
//   - RootN(±0, n < 0) = ±Inf for odd n, +Inf for even n
func RootN[T hwy.Floats](v hwy.Vec[T], n int) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return rootN(x, n) })
}

func rootN(x float64, n int) float64 {
	switch {
	case n == 0 || stdmath.IsNaN(x):
		return stdmath.NaN()
	case n == 1:
		return x
	case n == 2:
		return stdmath.Sqrt(x)
	case n == 3:
		return stdmath.Cbrt(x)
	case n == -1:
		return 1 / x
	}
	odd := n%2 != 0
	if x == 0 {
		if n > 0 {
			if odd {
				return x
			}
			return 0
		}
		if odd {
			return stdmath.Copysign(stdmath.Inf(1), x)
		}
		return stdmath.Inf(1)
	}
	if x < 0 {
		if !odd {
			return stdmath.NaN()
		}
		return -stdmath.Pow(-x, 1/float64(n))
	}
	return stdmath.Pow(x, 1/float64(n))
}

// Hypot computes sqrt(x^2 + y^2) for each pair of elements.
//
// Algorithm: Applies math32.Hypot or stdmath.Hypot to each pair of lanes
// independently. Both are numerically stable and avoid overflow/underflow.
func Hypot[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return binary(x, y, math32.Hypot, stdmath.Hypot)
}

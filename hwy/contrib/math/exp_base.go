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

// Exp computes e^x for each lane.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Exp, stdmath.Exp)
}

// ExpM1 computes e^x - 1 for each lane, accurate near zero.
func ExpM1[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Expm1, stdmath.Expm1)
}

// Exp2 computes 2^x for each lane.
func Exp2[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Exp2, stdmath.Exp2)
}

// Exp2M1 computes 2^x - 1 for each lane.
func Exp2M1[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Expm1(x * stdmath.Ln2) })
}

// Exp10 computes 10^x for each lane.
func Exp10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Pow(10, x) })
}

// Exp10M1 computes 10^x - 1 for each lane.
func Exp10M1[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Expm1(x * stdmath.Ln10) })
}

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

// Sinh computes the hyperbolic sine of each lane.
func Sinh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Sinh, stdmath.Sinh)
}

// Cosh computes the hyperbolic cosine of each lane.
func Cosh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Cosh, stdmath.Cosh)
}

// Tanh computes the hyperbolic tangent of each lane.
func Tanh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Tanh, stdmath.Tanh)
}

// Asinh computes the inverse hyperbolic sine of each lane.
func Asinh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Asinh, stdmath.Asinh)
}

// Acosh computes the inverse hyperbolic cosine of each lane.
// Lanes below 1 produce NaN.
func Acosh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Acosh, stdmath.Acosh)
}

// Atanh computes the inverse hyperbolic tangent of each lane.
// Lanes outside [-1, 1] produce NaN; ±1 produce ±Inf.
func Atanh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Atanh, stdmath.Atanh)
}

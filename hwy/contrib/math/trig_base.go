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

// Sin computes sin(x) for each lane, x in radians.
func Sin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Sin, stdmath.Sin)
}

// Cos computes cos(x) for each lane, x in radians.
func Cos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Cos, stdmath.Cos)
}

// Tan computes tan(x) for each lane, x in radians.
func Tan[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Tan, stdmath.Tan)
}

// SinCos computes sin(x) and cos(x) for each lane.
func SinCos[T hwy.Floats](v hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	return Sin(v), Cos(v)
}

// SinPi computes sin(πx) for each lane. Integer x gives an exact signed
// zero and half-integer x an exact ±1.
func SinPi[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, sinPi)
}

// CosPi computes cos(πx) for each lane. Half-integer x gives an exact +0
// and integer x an exact ±1.
func CosPi[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, cosPi)
}

// TanPi computes tan(πx) for each lane as SinPi/CosPi, so half-integer x
// gives ±Inf.
func TanPi[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return sinPi(x) / cosPi(x) })
}

// SinCosPi computes SinPi and CosPi for each lane.
func SinCosPi[T hwy.Floats](v hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	return SinPi(v), CosPi(v)
}

func sinPi(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	r := stdmath.Mod(x, 2)
	switch r {
	case 0.5, -1.5:
		return 1
	case -0.5, 1.5:
		return -1
	}
	if r == stdmath.Trunc(r) {
		return stdmath.Copysign(0, x)
	}
	return stdmath.Sin(stdmath.Pi * r)
}

func cosPi(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	r := stdmath.Abs(stdmath.Mod(x, 2))
	switch r {
	case 0:
		return 1
	case 1:
		return -1
	case 0.5, 1.5:
		return 0
	}
	return stdmath.Cos(stdmath.Pi * r)
}

// Asin computes arcsin(x) for each lane.
func Asin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Asin, stdmath.Asin)
}

// Acos computes arccos(x) for each lane.
func Acos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Acos, stdmath.Acos)
}

// Atan computes arctan(x) for each lane.
func Atan[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Atan, stdmath.Atan)
}

// Atan2 computes atan2(y, x) for each pair of lanes.
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	return binary(y, x, math32.Atan2, stdmath.Atan2)
}

// AsinPi computes arcsin(x)/π for each lane.
func AsinPi[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Asin(x) / stdmath.Pi })
}

// AcosPi computes arccos(x)/π for each lane.
func AcosPi[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Acos(x) / stdmath.Pi })
}

// AtanPi computes arctan(x)/π for each lane.
func AtanPi[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Atan(x) / stdmath.Pi })
}

// Atan2Pi computes atan2(y, x)/π for each pair of lanes.
func Atan2Pi[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(y, x, func(a, b T) T {
		return T(stdmath.Atan2(float64(a), float64(b)) / stdmath.Pi)
	})
}

// DegreesToRadians computes x·π/180 for each lane.
func DegreesToRadians[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	pi := T(stdmath.Pi)
	return lanes(v, func(x T) T { return (x * pi) / 180 })
}

// RadiansToDegrees computes x·180/π for each lane.
func RadiansToDegrees[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	pi := T(stdmath.Pi)
	return lanes(v, func(x T) T { return (x * 180) / pi })
}

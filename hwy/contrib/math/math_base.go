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
	"github.com/ajroetker/go-vecn/hwy"
)

// is32 reports whether T is single precision.
func is32[T hwy.Floats]() bool {
	return hwy.SizeOf[T]() == 4
}

// unary applies a scalar kernel to each lane, picking the single or
// double precision variant by lane size.
func unary[T hwy.Floats](v hwy.Vec[T], f32 func(float32) float32, f64 func(float64) float64) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	if is32[T]() {
		for i, x := range data {
			result[i] = T(f32(float32(x)))
		}
	} else {
		for i, x := range data {
			result[i] = T(f64(float64(x)))
		}
	}
	return hwy.LoadSlice(result)
}

// binary applies a two-argument scalar kernel to each pair of lanes.
func binary[T hwy.Floats](x, y hwy.Vec[T], f32 func(a, b float32) float32, f64 func(a, b float64) float64) hwy.Vec[T] {
	xData := x.Data()
	yData := y.Data()
	n := min(len(xData), len(yData))
	result := make([]T, n)
	if is32[T]() {
		for i := range n {
			result[i] = T(f32(float32(xData[i]), float32(yData[i])))
		}
	} else {
		for i := range n {
			result[i] = T(f64(float64(xData[i]), float64(yData[i])))
		}
	}
	return hwy.LoadSlice(result)
}

// viaFloat64 evaluates f in double precision and rounds the result to T.
func viaFloat64[T hwy.Floats](v hwy.Vec[T], f func(float64) float64) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = T(f(float64(x)))
	}
	return hwy.LoadSlice(result)
}

// lanes applies f to every lane without leaving T.
func lanes[T hwy.Lanes](v hwy.Vec[T], f func(T) T) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = f(x)
	}
	return hwy.LoadSlice(result)
}

// lanes2 applies f to every pair of lanes without leaving T.
func lanes2[T hwy.Lanes](x, y hwy.Vec[T], f func(a, b T) T) hwy.Vec[T] {
	xData := x.Data()
	yData := y.Data()
	n := min(len(xData), len(yData))
	result := make([]T, n)
	for i := range n {
		result[i] = f(xData[i], yData[i])
	}
	return hwy.LoadSlice(result)
}

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

// Log computes the natural logarithm of each lane.
//
// Special cases:
//   - Log(+Inf) = +Inf
//   - Log(0) = -Inf
//   - Log(x < 0) = NaN
//   - Log(NaN) = NaN
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Log, stdmath.Log)
}

// LogBase computes the logarithm of each x lane in the matching base lane.
//
// Special cases follow the ratio Log(x)/Log(base), except that base 1
// and base NaN give NaN, and x = 1 gives 0 for any finite base other
// than 0 and 1.
func LogBase[T hwy.Floats](x, base hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(x, base, func(a, b T) T {
		return T(logBase(float64(a), float64(b)))
	})
}

func logBase(x, base float64) float64 {
	switch {
	case stdmath.IsNaN(x) || stdmath.IsNaN(base):
		return stdmath.NaN()
	case base == 1:
		return stdmath.NaN()
	case x != 1 && (base == 0 || stdmath.IsInf(base, 1)):
		return stdmath.NaN()
	}
	return stdmath.Log(x) / stdmath.Log(base)
}

// LogP1 computes ln(1 + x) for each lane, accurate near zero.
func LogP1[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Log1p, stdmath.Log1p)
}

// Log2 computes the base-2 logarithm of each lane.
func Log2[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Log2, stdmath.Log2)
}

// Log2P1 computes log2(1 + x) for each lane.
func Log2P1[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Log1p(x) / stdmath.Ln2 })
}

// Log10 computes the base-10 logarithm of each lane.
func Log10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v, math32.Log10, stdmath.Log10)
}

// Log10P1 computes log10(1 + x) for each lane.
func Log10P1[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, func(x float64) float64 { return stdmath.Log1p(x) / stdmath.Ln10 })
}

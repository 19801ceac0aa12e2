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

// Package math provides elementwise transcendental, rounding and
// bit-level math functions over hwy.Vec lanes.
//
// Every function applies a scalar kernel to each lane independently; no
// lane influences another. float32 lanes use github.com/chewxy/math32 so
// they are computed in single precision; float64 lanes use the standard
// library.
//
// # Function families
//
// Roots and distances:
//   - Sqrt, Cbrt, RootN, Hypot
//
// Trigonometric (plain, π-scaled and inverse):
//   - Sin, Cos, Tan, SinCos, SinPi, CosPi, TanPi, SinCosPi
//   - Asin, Acos, Atan, Atan2, AsinPi, AcosPi, AtanPi, Atan2Pi
//   - DegreesToRadians, RadiansToDegrees
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh, Asinh, Acosh, Atanh
//
// Exponential and logarithmic:
//   - Exp, ExpM1, Exp2, Exp2M1, Exp10, Exp10M1, Pow
//   - Log, LogBase, LogP1, Log2, Log2P1, Log10, Log10P1
//
// Rounding:
//   - Round, RoundMode, RoundDigits, Floor, Ceiling, Truncate
//
// IEEE-754 helpers:
//   - BitIncrement, BitDecrement, ReciprocalEstimate, ReciprocalSqrtEstimate
//   - ScaleB, ILogB, FusedMultiplyAdd, CopySign, Sign, MaxNumber, MinNumber
//
// Integer lanes:
//   - PopCount, Log2Int
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-vecn/hwy"
//	    "github.com/ajroetker/go-vecn/hwy/contrib/math"
//	)
//
//	v := hwy.LoadSlice([]float32{0, 0.5, 1})
//	s, c := math.SinCosPi(v) // [0 1 0], [1 0 -1]
package math

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

// BitIncrement returns the smallest value that compares greater than each
// lane. +Inf and NaN lanes are returned unchanged.
func BitIncrement[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v,
		func(x float32) float32 { return math32.Nextafter(x, math32.Inf(1)) },
		func(x float64) float64 { return stdmath.Nextafter(x, stdmath.Inf(1)) })
}

// BitDecrement returns the largest value that compares less than each
// lane. -Inf and NaN lanes are returned unchanged.
func BitDecrement[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return unary(v,
		func(x float32) float32 { return math32.Nextafter(x, math32.Inf(-1)) },
		func(x float64) float64 { return stdmath.Nextafter(x, stdmath.Inf(-1)) })
}

// ReciprocalEstimate computes 1/x for each lane.
func ReciprocalEstimate[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Div(hwy.SetN(T(1), v.NumLanes()), v)
}

// ReciprocalSqrtEstimate computes 1/sqrt(x) for each lane.
func ReciprocalSqrtEstimate[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return ReciprocalEstimate(hwy.Sqrt(v))
}

// ScaleB computes x·2^n for each lane with its own exponent.
func ScaleB[T hwy.Floats](v hwy.Vec[T], n []int) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, min(len(data), len(n)))
	for i := range result {
		result[i] = scaleB(data[i], n[i])
	}
	return hwy.LoadSlice(result)
}

// ScaleBScalar computes x·2^n for each lane with a shared exponent.
func ScaleBScalar[T hwy.Floats](v hwy.Vec[T], n int) hwy.Vec[T] {
	return lanes(v, func(x T) T { return scaleB(x, n) })
}

func scaleB[T hwy.Floats](x T, n int) T {
	if is32[T]() {
		return T(math32.Ldexp(float32(x), n))
	}
	return T(stdmath.Ldexp(float64(x), n))
}

// ILogB returns the unbiased binary exponent of each lane.
//
// Special cases:
//   - ILogB(±0) = math.MinInt32
//   - ILogB(±Inf) = math.MaxInt32
//   - ILogB(NaN) = math.MaxInt32
func ILogB[T hwy.Floats](v hwy.Vec[T]) []int {
	data := v.Data()
	result := make([]int, len(data))
	for i, x := range data {
		result[i] = stdmath.Ilogb(float64(x))
	}
	return result
}

// FusedMultiplyAdd computes a·b + c for each lane with a single rounding
// in double precision.
func FusedMultiplyAdd[T hwy.Floats](a, b, c hwy.Vec[T]) hwy.Vec[T] {
	aData, bData, cData := a.Data(), b.Data(), c.Data()
	n := min(len(aData), len(bData), len(cData))
	result := make([]T, n)
	for i := range n {
		result[i] = T(stdmath.FMA(float64(aData[i]), float64(bData[i]), float64(cData[i])))
	}
	return hwy.LoadSlice(result)
}

// CopySign returns each magnitude lane with the sign of the matching sign lane.
func CopySign[T hwy.Floats](mag, sign hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(mag, sign, copySign[T])
}

func copySign[T hwy.Floats](mag, sign T) T {
	mask := uint64(1) << (uint(hwy.SizeOf[T]())*8 - 1)
	return hwy.FromBits[T](hwy.BitsOf(mag)&^mask | hwy.BitsOf(sign)&mask)
}

// Sign returns -1, 0 or 1 for each lane by its sign. Zero lanes of either
// sign give 0 and NaN lanes give NaN.
func Sign[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return lanes(v, func(x T) T {
		switch {
		case x < 0:
			return -1
		case x > 0:
			return 1
		case x == 0:
			return 0
		default:
			return x
		}
	})
}

// MaxNumber returns the larger of each pair of lanes, preferring the
// number when one lane is NaN and +0 over -0.
func MaxNumber[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(x, y, func(a, b T) T {
		if a != b {
			switch {
			case b != b:
				return a
			case a != a:
				return b
			case b < a:
				return a
			default:
				return b
			}
		}
		if signBit(b) {
			return a
		}
		return b
	})
}

// MinNumber returns the smaller of each pair of lanes, preferring the
// number when one lane is NaN and -0 over +0.
func MinNumber[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(x, y, func(a, b T) T {
		if a != b {
			switch {
			case b != b:
				return a
			case a != a:
				return b
			case a < b:
				return a
			default:
				return b
			}
		}
		if signBit(a) {
			return a
		}
		return b
	})
}

func signBit[T hwy.Floats](x T) bool {
	return hwy.BitsOf(x)>>(uint(hwy.SizeOf[T]())*8-1) != 0
}

// MaxMagnitude returns, per lane, the operand with the larger absolute
// value. Ties go to the positive operand and a NaN operand is returned.
// The minimum signed integer outranks every other value.
func MaxMagnitude[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(x, y, func(a, b T) T { return pickMagnitude(a, b, true, true) })
}

// MaxMagnitudeNumber is MaxMagnitude preferring a number over NaN.
func MaxMagnitudeNumber[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(x, y, func(a, b T) T { return pickMagnitude(a, b, true, false) })
}

// MinMagnitude returns, per lane, the operand with the smaller absolute
// value. Ties go to the negative operand and a NaN operand is returned.
func MinMagnitude[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(x, y, func(a, b T) T { return pickMagnitude(a, b, false, true) })
}

// MinMagnitudeNumber is MinMagnitude preferring a number over NaN.
func MinMagnitudeNumber[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return lanes2(x, y, func(a, b T) T { return pickMagnitude(a, b, false, false) })
}

func pickMagnitude[T hwy.Lanes](x, y T, larger, propagateNaN bool) T {
	var xWins, tie bool
	if hwy.IsFloat[T]() {
		ax, ay := stdmath.Abs(float64(x)), stdmath.Abs(float64(y))
		nan := ay != ay
		if propagateNaN {
			nan = ax != ax
		}
		xWins = nan || (larger && ax > ay) || (!larger && ax < ay)
		tie = ax == ay
	} else {
		ax, ay := absUint(x), absUint(y)
		xWins = (larger && ax > ay) || (!larger && ax < ay)
		tie = ax == ay
	}
	switch {
	case xWins:
		return x
	case tie && larger == isNegative(x):
		return y
	case tie:
		return x
	default:
		return y
	}
}

// absUint returns |x| for an integer lane. The minimum signed value maps
// to its true magnitude.
func absUint[T hwy.Lanes](x T) uint64 {
	if hwy.IsSigned[T]() && x < 0 {
		return uint64(-int64(x))
	}
	return uint64(x)
}

func isNegative[T hwy.Lanes](x T) bool {
	if hwy.IsFloat[T]() {
		return hwy.BitsOf(x)>>(uint(hwy.SizeOf[T]())*8-1) != 0
	}
	return x < 0
}

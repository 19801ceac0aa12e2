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
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-vecn/hwy"
)

// MidpointRounding selects how a value exactly halfway between two
// candidates is rounded.
type MidpointRounding int

const (
	// ToEven rounds halfway values to the nearest even candidate.
	ToEven MidpointRounding = iota
	// AwayFromZero rounds halfway values to the candidate farther from zero.
	AwayFromZero
	// ToZero rounds toward zero (truncation).
	ToZero
	// ToNegativeInfinity rounds down (floor).
	ToNegativeInfinity
	// ToPositiveInfinity rounds up (ceiling).
	ToPositiveInfinity
)

// String returns the mode name.
func (m MidpointRounding) String() string {
	switch m {
	case ToEven:
		return "ToEven"
	case AwayFromZero:
		return "AwayFromZero"
	case ToZero:
		return "ToZero"
	case ToNegativeInfinity:
		return "ToNegativeInfinity"
	case ToPositiveInfinity:
		return "ToPositiveInfinity"
	default:
		return fmt.Sprintf("MidpointRounding(%d)", int(m))
	}
}

func (m MidpointRounding) kernel() func(float64) float64 {
	switch m {
	case ToEven:
		return stdmath.RoundToEven
	case AwayFromZero:
		return stdmath.Round
	case ToZero:
		return stdmath.Trunc
	case ToNegativeInfinity:
		return stdmath.Floor
	case ToPositiveInfinity:
		return stdmath.Ceil
	default:
		panic(fmt.Sprintf("math: invalid rounding mode %d", int(m)))
	}
}

// MaxRoundingDigits returns the largest digit count RoundDigits accepts
// for T: 6 for float32 and 15 for float64.
func MaxRoundingDigits[T hwy.Floats]() int {
	if is32[T]() {
		return 6
	}
	return 15
}

// Rounding to an integer is exact in double precision, so every kernel
// below evaluates through float64 for both lane types.

// Round rounds each lane to the nearest integer, halfway values to even.
func Round[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, stdmath.RoundToEven)
}

// RoundMode rounds each lane to an integer using mode.
func RoundMode[T hwy.Floats](v hwy.Vec[T], mode MidpointRounding) hwy.Vec[T] {
	return viaFloat64(v, mode.kernel())
}

// RoundDigits rounds each lane to digits fractional decimal digits using
// mode. Lanes whose magnitude is too large to carry a fraction are
// returned unchanged.
//
// It panics if digits is negative or above MaxRoundingDigits[T]().
func RoundDigits[T hwy.Floats](v hwy.Vec[T], digits int, mode MidpointRounding) hwy.Vec[T] {
	if digits < 0 || digits > MaxRoundingDigits[T]() {
		panic(fmt.Sprintf("math: rounding digits %d out of range [0, %d]", digits, MaxRoundingDigits[T]()))
	}
	round := mode.kernel()
	limit := T(1e16)
	if is32[T]() {
		limit = T(1e8)
	}
	power10 := T(stdmath.Pow10(digits))
	return lanes(v, func(x T) T {
		if hwy.AbsScalar(x) >= limit || x != x {
			return x
		}
		return T(round(float64(x*power10))) / power10
	})
}

// Floor rounds each lane toward negative infinity.
func Floor[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, stdmath.Floor)
}

// Ceiling rounds each lane toward positive infinity.
func Ceiling[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, stdmath.Ceil)
}

// Truncate rounds each lane toward zero.
func Truncate[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return viaFloat64(v, stdmath.Trunc)
}

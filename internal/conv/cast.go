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

// Package conv converts scalars between lane types under an explicit
// overflow policy.
package conv

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/ajroetker/go-vecn/hwy"
)

// ErrOverflow is wrapped by every error a checked conversion returns.
var ErrOverflow = errors.New("integer overflow")

// OverflowError reports a value that does not fit its target type.
type OverflowError struct {
	Value  string
	Target string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %s cannot be converted to %s", e.Value, e.Target)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

func overflow[U, T hwy.Lanes](v T) error {
	var zero U
	return &OverflowError{Value: fmt.Sprint(v), Target: fmt.Sprintf("%T", zero)}
}

// limits describes the representable range of a lane type.
type limits struct {
	float  bool
	signed bool
	bits   int
}

func limitsOf[T hwy.Lanes]() limits {
	return limits{float: hwy.IsFloat[T](), signed: hwy.IsSigned[T](), bits: hwy.SizeOf[T]() * 8}
}

func (l limits) minInt() int64 {
	if !l.signed {
		return 0
	}
	return -1 << uint(l.bits-1)
}

func (l limits) maxUint() uint64 {
	if l.signed {
		return 1<<uint(l.bits-1) - 1
	}
	if l.bits == 64 {
		return math.MaxUint64
	}
	return 1<<uint(l.bits) - 1
}

// floatBounds returns the integer range as [lo, hi) in float64. Both are
// powers of two (or zero) and therefore exact.
func (l limits) floatBounds() (lo, hi float64) {
	if l.signed {
		return -math.Ldexp(1, l.bits-1), math.Ldexp(1, l.bits-1)
	}
	return 0, math.Ldexp(1, l.bits)
}

// SameRepresentation reports whether U and T share a bit-identical
// representation: same kind and same size.
func SameRepresentation[U, T hwy.Lanes]() bool {
	return limitsOf[U]() == limitsOf[T]()
}

// Reinterpret returns the bits of v as a U. It must only be used when
// SameRepresentation[U, T]() holds.
func Reinterpret[U, T hwy.Lanes](v T) U {
	return *(*U)(unsafe.Pointer(&v))
}

// Checked converts v to U and fails with an *OverflowError when the
// value cannot be represented.
//
// Float to integer conversions truncate toward zero and fail only when
// the truncated value is out of range or v is NaN. Conversions to a float
// type never fail; a value beyond float32 range becomes ±Inf.
func Checked[U, T hwy.Lanes](v T) (U, error) {
	src, dst := limitsOf[T](), limitsOf[U]()
	switch {
	case dst.float:
		return U(v), nil
	case src.float:
		x := float64(v)
		if x != x {
			return 0, overflow[U](v)
		}
		t := math.Trunc(x)
		lo, hi := dst.floatBounds()
		if t < lo || t >= hi {
			return 0, overflow[U](v)
		}
		return fromTruncated[U](t, dst), nil
	case src.signed:
		s := int64(v)
		if s < dst.minInt() || (s > 0 && uint64(s) > dst.maxUint()) {
			return 0, overflow[U](v)
		}
		return U(v), nil
	default:
		if uint64(v) > dst.maxUint() {
			return 0, overflow[U](v)
		}
		return U(v), nil
	}
}

// Saturating converts v to U, clamping out-of-range values to U's
// minimum or maximum. Float to integer conversions truncate toward zero
// and map NaN to 0.
func Saturating[U, T hwy.Lanes](v T) U {
	src, dst := limitsOf[T](), limitsOf[U]()
	switch {
	case dst.float:
		return U(v)
	case src.float:
		return saturateFloat[U](float64(v), dst)
	case src.signed:
		s := int64(v)
		if s < dst.minInt() {
			return U(dst.minInt())
		}
		if s > 0 && uint64(s) > dst.maxUint() {
			return U(dst.maxUint())
		}
		return U(v)
	default:
		if uint64(v) > dst.maxUint() {
			return U(dst.maxUint())
		}
		return U(v)
	}
}

// Truncating converts v to U the way a plain Go conversion does between
// integer types: keeping the low bits. Float to integer conversions
// truncate toward zero and saturate out-of-range values (NaN gives 0), so
// results do not depend on the platform.
func Truncating[U, T hwy.Lanes](v T) U {
	src, dst := limitsOf[T](), limitsOf[U]()
	if src.float && !dst.float {
		return saturateFloat[U](float64(v), dst)
	}
	return U(v)
}

func saturateFloat[U hwy.Lanes](x float64, dst limits) U {
	if x != x {
		return 0
	}
	t := math.Trunc(x)
	lo, hi := dst.floatBounds()
	switch {
	case t < lo:
		return U(dst.minInt())
	case t >= hi:
		return U(dst.maxUint())
	default:
		return fromTruncated[U](t, dst)
	}
}

// fromTruncated converts an in-range integral float64 to U exactly.
func fromTruncated[U hwy.Lanes](t float64, dst limits) U {
	if dst.signed {
		return U(int64(t))
	}
	return U(uint64(t))
}

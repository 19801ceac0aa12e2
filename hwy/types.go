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

// Package hwy provides the lane engine behind the vector types: scalar
// capability constraints, register-width dispatch and elementwise lane
// operations with a portable scalar fallback.
//
// It follows the Highway C++ library's design philosophy: the same
// operation runs on a hardware-width register when the CPU offers one for
// the lane type, and on plain Go loops otherwise. Both paths produce
// bit-identical results.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vecn/hwy"
//
//	// Pick the narrowest register that holds 3 float32 lanes
//	tag, ok := hwy.RegisterFor[float32](3)
//
//	// Load data into registers, padding unused lanes
//	a := hwy.LoadPadded(data1, tag, 0)
//	b := hwy.LoadPadded(data2, tag, 0)
//
//	// Perform the lane operation and keep the first 3 lanes
//	hwy.StoreN(hwy.Add(a, b), output, 3)
package hwy

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in register lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable register handle. In base (scalar) mode it wraps a
// slice whose length is the lane count of the register it models.
//
// Vec instances should not be created directly; use LoadSlice, LoadPadded
// or SetN instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask represents the result of a comparison operation.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, or MaskFromBits.
type Mask[T Lanes] struct {
	// bits[i] is true if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// Bits packs the first n lanes into a bitset, lane i at bit i.
// n is capped at 64.
func (m Mask[T]) Bits(n int) uint64 {
	n = min(n, len(m.bits), 64)
	var out uint64
	for i := range n {
		if m.bits[i] {
			out |= 1 << uint(i)
		}
	}
	return out
}

// SizeOf returns the size of one lane of type T in bytes.
func SizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// IsFloat reports whether T is a floating-point lane type.
// It works for named types whose underlying type is float32 or float64.
func IsFloat[T Lanes]() bool {
	var one T = 1
	return one/2 != 0
}

// IsSigned reports whether T can hold negative values.
// Floating-point lane types are signed.
func IsSigned[T Lanes]() bool {
	var zero, one T = 0, 1
	return zero-one < zero
}

// BitsOf returns the raw bit pattern of x, zero-extended to 64 bits.
func BitsOf[T Lanes](x T) uint64 {
	switch SizeOf[T]() {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&x)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&x)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	default:
		return *(*uint64)(unsafe.Pointer(&x))
	}
}

// FromBits reinterprets the low SizeOf[T]() bytes of b as a T.
func FromBits[T Lanes](b uint64) T {
	var x T
	switch SizeOf[T]() {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(b)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(b)
	default:
		*(*uint64)(unsafe.Pointer(&x)) = b
	}
	return x
}

// PopCount returns the number of set bits in x's representation.
func PopCount[T Integers](x T) int {
	return bits.OnesCount64(BitsOf(x))
}

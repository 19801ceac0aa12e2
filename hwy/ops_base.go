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

package hwy

import "math"

// This file provides the portable lane implementations of all operations.
// Float kernels in kernels.go replace Add, Sub, Mul and Div for float32
// and float64, and Sqrt for float64, when the CPU accelerates them; every
// other operation runs lane by lane. Lane semantics here define the
// results of both paths.

// LoadSlice creates a vector holding every element of src, one per lane,
// regardless of the register width.
func LoadSlice[T Lanes](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// LoadPadded loads src into a register described by tag. Lanes past
// len(src) are filled with pad, so callers choose a value that cannot
// fault (1 for divisors).
func LoadPadded[T Lanes](src []T, tag Tag, pad T) Vec[T] {
	n := LanesOf[T](tag)
	data := make([]T, n)
	m := copy(data, src)
	for i := m; i < n; i++ {
		data[i] = pad
	}
	return Vec[T]{data: data}
}

// StoreN writes the first n lanes of v to dst.
func StoreN[T Lanes](v Vec[T], dst []T, n int) {
	n = min(n, len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// SetN creates a vector of n lanes all set to value.
func SetN[T Lanes](value T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

func lanes2[T Lanes](a, b Vec[T], f func(x, y T) T) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func lanes1[T Lanes](v Vec[T], f func(x T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = f(x)
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition. Integer lanes wrap.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	if r, ok := addKernel(a, b); ok {
		return r
	}
	return lanes2(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction. Integer lanes wrap.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	if r, ok := subKernel(a, b); ok {
		return r
	}
	return lanes2(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication. Integer lanes wrap.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	if r, ok := mulKernel(a, b); ok {
		return r
	}
	return lanes2(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division. Integer lanes truncate toward zero
// and panic on a zero divisor, like the Go operator.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	if r, ok := divKernel(a, b); ok {
		return r
	}
	return lanes2(a, b, func(x, y T) T { return x / y })
}

// Rem performs element-wise remainder with the sign of the dividend.
// Float lanes use math.Mod.
func Rem[T Lanes](a, b Vec[T]) Vec[T] {
	return lanes2(a, b, RemScalar[T])
}

// RemScalar returns x rem y with the semantics of Rem.
func RemScalar[T Lanes](x, y T) T {
	switch {
	case IsFloat[T]():
		return T(math.Mod(float64(x), float64(y)))
	case IsSigned[T]():
		return T(int64(x) % int64(y))
	default:
		return T(uint64(x) % uint64(y))
	}
}

// Neg negates each lane. Unsigned lanes wrap.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return lanes1(v, func(x T) T { return -x })
}

// Abs computes absolute value. Float lanes clear the sign bit, so -0
// becomes +0 and NaN stays NaN. Signed integer lanes wrap at the minimum.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return lanes1(v, AbsScalar[T])
}

// AbsScalar returns |x| with the semantics of Abs.
func AbsScalar[T Lanes](x T) T {
	if IsFloat[T]() {
		return FromBits[T](BitsOf(x) &^ signMask[T]())
	}
	if x < 0 {
		return -x
	}
	return x
}

func signMask[T Lanes]() uint64 {
	return 1 << (uint(SizeOf[T]())*8 - 1)
}

// Min returns the element-wise minimum, taking a where a < b and b
// otherwise. With a NaN operand the result is the second operand.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return lanes2(a, b, MinScalar[T])
}

// MinScalar is the lane rule of Min.
func MinScalar[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the element-wise maximum, taking a where a > b and b
// otherwise.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return lanes2(a, b, MaxScalar[T])
}

// MaxScalar is the lane rule of Max.
func MaxScalar[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Sqrt computes square root, correctly rounded. float32 lanes are widened
// to float64, where the root rounds back to float32 exactly.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	if r, ok := sqrtKernel(v); ok {
		return r
	}
	return lanes1(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// ReduceSumN sums the first n lanes from the lowest index upward.
func ReduceSumN[T Lanes](v Vec[T], n int) T {
	var sum T
	for _, val := range v.data[:min(n, len(v.data))] {
		sum += val
	}
	return sum
}

func compare[T Lanes](a, b Vec[T], f func(x, y T) bool) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = f(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Equal performs element-wise equality comparison. NaN lanes compare false.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// LessThan performs element-wise less-than comparison. NaN lanes compare
// false.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// IsNaN returns a mask of the lanes holding NaN. Integer lanes are never
// NaN.
func IsNaN[T Lanes](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = x != x
	}
	return Mask[T]{bits: bits}
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	return lanes2(a, b, func(x, y T) T { return x & y })
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	return lanes2(a, b, func(x, y T) T { return x | y })
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	return lanes2(a, b, func(x, y T) T { return x ^ y })
}

// Not performs element-wise bitwise NOT.
func Not[T Integers](v Vec[T]) Vec[T] {
	return lanes1(v, func(x T) T { return ^x })
}

// AndNot computes a AND NOT b.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	return lanes2(a, b, func(x, y T) T { return x &^ y })
}

// ShiftLeft shifts each lane left by bits. Shifts of the lane width or
// more produce zero.
func ShiftLeft[T Integers](v Vec[T], bits uint) Vec[T] {
	return lanes1(v, func(x T) T { return x << bits })
}

// ShiftRight shifts each lane right by bits: arithmetic for signed lanes,
// logical for unsigned ones.
func ShiftRight[T Integers](v Vec[T], bits uint) Vec[T] {
	return lanes1(v, func(x T) T { return x >> bits })
}

// Clamp clamps each element to [lo, hi] as Min(Max(v, lo), hi). When a
// lo lane exceeds its hi lane the hi lane wins.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

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

package vector

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/ajroetker/go-vecn/hwy"
)

// Vector is an immutable vector of N components of type T, where N is the
// length of the backing array type A.
//
// The zero value is the zero vector. Vectors are comparable with == (IEEE
// semantics per component) and can be used as map keys.
type Vector[T Number, A Components[T]] struct {
	c A
}

type (
	// Vector2 is a two-component vector (X, Y).
	Vector2[T Number] = Vector[T, [2]T]

	// Vector3 is a three-component vector (X, Y, Z).
	Vector3[T Number] = Vector[T, [3]T]

	// Vector4 is a four-component vector (X, Y, Z, W).
	Vector4[T Number] = Vector[T, [4]T]

	// Vector5 is a five-component vector (X, Y, Z, W, V).
	Vector5[T Number] = Vector[T, [5]T]
)

// FromArray returns the vector with components a.
func FromArray[T Number, A Components[T]](a A) Vector[T, A] {
	return Vector[T, A]{c: a}
}

// Splat returns a vector with every component set to s.
func Splat[T Number, A Components[T]](s T) (r Vector[T, A]) {
	for i := range len(r.c) {
		r.c[i] = s
	}
	return r
}

// FromSlice returns a vector holding the first N elements of s. Elements
// past N are ignored. It fails with a *LengthError wrapping
// ErrShortSequence when len(s) < N.
func FromSlice[T Number, A Components[T]](s []T) (r Vector[T, A], err error) {
	n := len(r.c)
	if len(s) < n {
		return r, lengthError(n, len(s), ErrShortSequence)
	}
	copy(r.lanes(), s[:n])
	return r, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T Number, A Components[T]](s []T) Vector[T, A] {
	v, err := FromSlice[T, A](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Unit returns the vector whose component i is one and all others zero.
// It panics with an *IndexError if i is outside [0, N).
func Unit[T Number, A Components[T]](i int) (r Vector[T, A]) {
	if i < 0 || i >= len(r.c) {
		panic(indexError(i, len(r.c)))
	}
	r.c[i] = 1
	return r
}

// lanes returns the components as a slice aliasing v.
func (v *Vector[T, A]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.c)), len(v.c))
}

// Len returns the number of components.
func (v Vector[T, A]) Len() int {
	return len(v.c)
}

// At returns component i. It panics with an *IndexError if i is outside
// [0, N).
func (v Vector[T, A]) At(i int) T {
	if i < 0 || i >= len(v.c) {
		panic(indexError(i, len(v.c)))
	}
	return v.c[i]
}

// Get returns component i, or an *IndexError if i is outside [0, N).
func (v Vector[T, A]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.c) {
		return 0, indexError(i, len(v.c))
	}
	return v.c[i], nil
}

// With returns a copy of v with component i replaced by x.
// It panics with an *IndexError if i is outside [0, N).
func (v Vector[T, A]) With(i int, x T) Vector[T, A] {
	if i < 0 || i >= len(v.c) {
		panic(indexError(i, len(v.c)))
	}
	v.c[i] = x
	return v
}

// X returns the first component.
func (v Vector[T, A]) X() T { return v.c[0] }

// Y returns the second component.
func (v Vector[T, A]) Y() T { return v.c[1] }

// Z returns the third component. It panics for two-component vectors.
func (v Vector[T, A]) Z() T { return v.At(2) }

// W returns the fourth component. It panics for vectors with fewer than
// four components.
func (v Vector[T, A]) W() T { return v.At(3) }

// V returns the fifth component. It panics for vectors with fewer than
// five components.
func (v Vector[T, A]) V() T { return v.At(4) }

// Array returns the components as an array.
func (v Vector[T, A]) Array() A {
	return v.c
}

// Components returns a new slice holding the components.
func (v Vector[T, A]) Components() []T {
	out := make([]T, len(v.c))
	copy(out, v.lanes())
	return out
}

// CopyTo writes the components to dst starting at offset. It fails with an
// *IndexError for a negative offset and a *LengthError wrapping
// ErrShortBuffer when dst has fewer than N elements after offset; dst is
// left untouched on failure.
func (v Vector[T, A]) CopyTo(dst []T, offset int) error {
	n := len(v.c)
	if offset < 0 {
		return indexError(offset, len(dst))
	}
	if have := len(dst) - offset; have < n {
		return lengthError(n, max(have, 0), ErrShortBuffer)
	}
	copy(dst[offset:], v.lanes())
	return nil
}

// TryCopyTo writes the components to the start of dst and reports whether
// dst was large enough.
func (v Vector[T, A]) TryCopyTo(dst []T) bool {
	return v.CopyTo(dst, 0) == nil
}

// Equal reports whether every component of v equals the matching component
// of o. Float components compare with IEEE semantics: NaN is unequal to
// everything and -0 equals +0.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	for i := range len(v.c) {
		if v.c[i] != o.c[i] {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit xxHash of the components. Vectors that are Equal
// hash the same.
func (v Vector[T, A]) Hash() uint64 {
	var buf [5 * 8]byte
	size := hwy.SizeOf[T]()
	n := 0
	for i := range len(v.c) {
		x := v.c[i]
		if x == 0 {
			x = 0 // folds -0 into +0
		}
		binary.LittleEndian.PutUint64(buf[n:], hwy.BitsOf(x))
		n += size
	}
	return xxhash.Sum64(buf[:n])
}

// IsNaN reports whether any component is NaN.
func (v Vector[T, A]) IsNaN() bool {
	return hwy.IsNaN(hwy.LoadSlice(v.lanes())).AnyTrue()
}

// IsInf reports whether any component is an infinity.
func (v Vector[T, A]) IsInf() bool {
	if !hwy.IsFloat[T]() {
		return false
	}
	for i := range len(v.c) {
		if math.IsInf(float64(v.c[i]), 0) {
			return true
		}
	}
	return false
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vector[T, A]) IsFinite() bool {
	for i := range len(v.c) {
		if x := float64(v.c[i]); math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// IsZero reports whether every component is zero.
func (v Vector[T, A]) IsZero() bool {
	for i := range len(v.c) {
		if v.c[i] != 0 {
			return false
		}
	}
	return true
}

// IsNegative reports whether every component is negative. Float
// components count as negative when their sign bit is set, so -0 and
// negative NaNs do.
func (v Vector[T, A]) IsNegative() bool {
	if !hwy.IsSigned[T]() {
		return false
	}
	sign := uint64(1) << (uint(hwy.SizeOf[T]())*8 - 1)
	for i := range len(v.c) {
		if hwy.BitsOf(v.c[i])&sign == 0 {
			return false
		}
	}
	return true
}

// IsInteger reports whether every component is a whole number.
func (v Vector[T, A]) IsInteger() bool {
	if !hwy.IsFloat[T]() {
		return true
	}
	for i := range len(v.c) {
		x := float64(v.c[i])
		if math.IsInf(x, 0) || math.Trunc(x) != x {
			return false
		}
	}
	return true
}

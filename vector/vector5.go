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

import "github.com/ajroetker/go-vecn/numfmt"

// Constructors and conversions specific to 5-component vectors.

// New5 returns the vector (x, y, z, w, v).
func New5[T Number](x, y, z, w, v T) Vector5[T] {
	return Vector5[T]{c: [5]T{x, y, z, w, v}}
}

// New5From2 widens v by appending z, w and vv.
func New5From2[T Number](v Vector2[T], z, w, vv T) Vector5[T] {
	return New5(v.c[0], v.c[1], z, w, vv)
}

// New5From3 widens v by appending w and vv.
func New5From3[T Number](v Vector3[T], w, vv T) Vector5[T] {
	return New5(v.c[0], v.c[1], v.c[2], w, vv)
}

// New5From4 widens v by appending vv.
func New5From4[T Number](v Vector4[T], vv T) Vector5[T] {
	return New5(v.c[0], v.c[1], v.c[2], v.c[3], vv)
}

// Splat5 returns a vector with every component set to s.
func Splat5[T Number](s T) Vector5[T] {
	return Splat[T, [5]T](s)
}

// FromSlice5 returns a vector holding the first 5 elements of s; see FromSlice.
func FromSlice5[T Number](s []T) (Vector5[T], error) {
	return FromSlice[T, [5]T](s)
}

// MustFromSlice5 is like FromSlice5 but panics on error.
func MustFromSlice5[T Number](s []T) Vector5[T] {
	return MustFromSlice[T, [5]T](s)
}

// Zero5 returns the zero vector.
func Zero5[T Number]() Vector5[T] {
	return Vector5[T]{}
}

// One5 returns a vector of ones.
func One5[T Number]() Vector5[T] {
	return Splat5[T](1)
}

// UnitX5 returns the unit vector along X.
func UnitX5[T Number]() Vector5[T] {
	return Unit[T, [5]T](0)
}

// UnitY5 returns the unit vector along Y.
func UnitY5[T Number]() Vector5[T] {
	return Unit[T, [5]T](1)
}

// UnitZ5 returns the unit vector along Z.
func UnitZ5[T Number]() Vector5[T] {
	return Unit[T, [5]T](2)
}

// UnitW5 returns the unit vector along W.
func UnitW5[T Number]() Vector5[T] {
	return Unit[T, [5]T](3)
}

// UnitV5 returns the unit vector along V.
func UnitV5[T Number]() Vector5[T] {
	return Unit[T, [5]T](4)
}

// Narrow5To4 drops the V component.
func Narrow5To4[T Number](v Vector5[T]) Vector4[T] {
	return New4(v.c[0], v.c[1], v.c[2], v.c[3])
}

// Parse5 parses text of the form <c1, c2, c3, c4, c5>; see Parse.
func Parse5[T Number](s string, p numfmt.Provider) (Vector5[T], error) {
	return Parse[T, [5]T](s, p)
}

// TryParse5 is like Parse5 but reports failure with a boolean.
func TryParse5[T Number](s string, p numfmt.Provider) (Vector5[T], bool) {
	return TryParse[T, [5]T](s, p)
}

// Parse5UTF8 is Parse5 over UTF-8 encoded bytes.
func Parse5UTF8[T Number](b []byte, p numfmt.Provider) (Vector5[T], error) {
	return ParseUTF8[T, [5]T](b, p)
}

// TryParse5UTF8 is like Parse5UTF8 but reports failure with a boolean.
func TryParse5UTF8[T Number](b []byte, p numfmt.Provider) (Vector5[T], bool) {
	return TryParseUTF8[T, [5]T](b, p)
}

// ReadLittleEndian5 decodes a vector from little-endian bytes.
func ReadLittleEndian5[T Number](src []byte) (Vector5[T], bool) {
	return ReadLittleEndian[T, [5]T](src)
}

// ReadBigEndian5 decodes a vector from big-endian bytes.
func ReadBigEndian5[T Number](src []byte) (Vector5[T], bool) {
	return ReadBigEndian[T, [5]T](src)
}

// ToChecked5 converts v to U, failing if a component does not fit.
func ToChecked5[U, T Number](v Vector5[T]) (Vector5[U], error) {
	return Convert[U, T, [5]U](v, Checked)
}

// ToSaturating5 converts v to U, clamping components to U's range.
func ToSaturating5[U, T Number](v Vector5[T]) Vector5[U] {
	return mustConvert[U, T, [5]U](v, Saturating)
}

// ToTruncating5 converts v to U, keeping the low bits of integers.
func ToTruncating5[U, T Number](v Vector5[T]) Vector5[U] {
	return mustConvert[U, T, [5]U](v, Truncating)
}

// ScaleB5 returns v[i]·2**n[i] for each component.
func ScaleB5[T Float](v Vector5[T], n Vector5[int]) Vector5[T] {
	return scaleB(v, n.Components())
}

// ILogB5 returns the unbiased binary exponent of each component.
func ILogB5[T Float](v Vector5[T]) Vector5[int] {
	return fromInts[int, [5]int](ilogB(v))
}

// RoundToInt5 rounds each component to even and converts it to I, saturating.
func RoundToInt5[I Integer, T Float](v Vector5[T]) Vector5[I] {
	return mustConvert[I, T, [5]I](Round(v), Saturating)
}

// FloorToInt5 rounds each component down and converts it to I, saturating.
func FloorToInt5[I Integer, T Float](v Vector5[T]) Vector5[I] {
	return mustConvert[I, T, [5]I](Floor(v), Saturating)
}

// CeilingToInt5 rounds each component up and converts it to I, saturating.
func CeilingToInt5[I Integer, T Float](v Vector5[T]) Vector5[I] {
	return mustConvert[I, T, [5]I](Ceiling(v), Saturating)
}

// LerpAs5 interpolates a and b converted to F; see LerpAs.
func LerpAs5[F Float, T Number](a, b Vector5[T], t F) Vector5[F] {
	return LerpAs[F, T, [5]F](a, b, t)
}

// LerpClampedAs5 is LerpAs5 with t first clamped to [0, 1].
func LerpClampedAs5[F Float, T Number](a, b Vector5[T], t F) Vector5[F] {
	return LerpClampedAs[F, T, [5]F](a, b, t)
}

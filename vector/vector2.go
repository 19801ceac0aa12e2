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

// Constructors and conversions specific to 2-component vectors.

// New2 returns the vector (x, y).
func New2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{c: [2]T{x, y}}
}

// Splat2 returns a vector with every component set to s.
func Splat2[T Number](s T) Vector2[T] {
	return Splat[T, [2]T](s)
}

// FromSlice2 returns a vector holding the first 2 elements of s; see FromSlice.
func FromSlice2[T Number](s []T) (Vector2[T], error) {
	return FromSlice[T, [2]T](s)
}

// MustFromSlice2 is like FromSlice2 but panics on error.
func MustFromSlice2[T Number](s []T) Vector2[T] {
	return MustFromSlice[T, [2]T](s)
}

// Zero2 returns the zero vector.
func Zero2[T Number]() Vector2[T] {
	return Vector2[T]{}
}

// One2 returns a vector of ones.
func One2[T Number]() Vector2[T] {
	return Splat2[T](1)
}

// UnitX2 returns the unit vector along X.
func UnitX2[T Number]() Vector2[T] {
	return Unit[T, [2]T](0)
}

// UnitY2 returns the unit vector along Y.
func UnitY2[T Number]() Vector2[T] {
	return Unit[T, [2]T](1)
}

// Parse2 parses text of the form <c1, c2>; see Parse.
func Parse2[T Number](s string, p numfmt.Provider) (Vector2[T], error) {
	return Parse[T, [2]T](s, p)
}

// TryParse2 is like Parse2 but reports failure with a boolean.
func TryParse2[T Number](s string, p numfmt.Provider) (Vector2[T], bool) {
	return TryParse[T, [2]T](s, p)
}

// Parse2UTF8 is Parse2 over UTF-8 encoded bytes.
func Parse2UTF8[T Number](b []byte, p numfmt.Provider) (Vector2[T], error) {
	return ParseUTF8[T, [2]T](b, p)
}

// TryParse2UTF8 is like Parse2UTF8 but reports failure with a boolean.
func TryParse2UTF8[T Number](b []byte, p numfmt.Provider) (Vector2[T], bool) {
	return TryParseUTF8[T, [2]T](b, p)
}

// ReadLittleEndian2 decodes a vector from little-endian bytes.
func ReadLittleEndian2[T Number](src []byte) (Vector2[T], bool) {
	return ReadLittleEndian[T, [2]T](src)
}

// ReadBigEndian2 decodes a vector from big-endian bytes.
func ReadBigEndian2[T Number](src []byte) (Vector2[T], bool) {
	return ReadBigEndian[T, [2]T](src)
}

// ToChecked2 converts v to U, failing if a component does not fit.
func ToChecked2[U, T Number](v Vector2[T]) (Vector2[U], error) {
	return Convert[U, T, [2]U](v, Checked)
}

// ToSaturating2 converts v to U, clamping components to U's range.
func ToSaturating2[U, T Number](v Vector2[T]) Vector2[U] {
	return mustConvert[U, T, [2]U](v, Saturating)
}

// ToTruncating2 converts v to U, keeping the low bits of integers.
func ToTruncating2[U, T Number](v Vector2[T]) Vector2[U] {
	return mustConvert[U, T, [2]U](v, Truncating)
}

// ScaleB2 returns v[i]·2**n[i] for each component.
func ScaleB2[T Float](v Vector2[T], n Vector2[int]) Vector2[T] {
	return scaleB(v, n.Components())
}

// ILogB2 returns the unbiased binary exponent of each component.
func ILogB2[T Float](v Vector2[T]) Vector2[int] {
	return fromInts[int, [2]int](ilogB(v))
}

// RoundToInt2 rounds each component to even and converts it to I, saturating.
func RoundToInt2[I Integer, T Float](v Vector2[T]) Vector2[I] {
	return mustConvert[I, T, [2]I](Round(v), Saturating)
}

// FloorToInt2 rounds each component down and converts it to I, saturating.
func FloorToInt2[I Integer, T Float](v Vector2[T]) Vector2[I] {
	return mustConvert[I, T, [2]I](Floor(v), Saturating)
}

// CeilingToInt2 rounds each component up and converts it to I, saturating.
func CeilingToInt2[I Integer, T Float](v Vector2[T]) Vector2[I] {
	return mustConvert[I, T, [2]I](Ceiling(v), Saturating)
}

// LerpAs2 interpolates a and b converted to F; see LerpAs.
func LerpAs2[F Float, T Number](a, b Vector2[T], t F) Vector2[F] {
	return LerpAs[F, T, [2]F](a, b, t)
}

// LerpClampedAs2 is LerpAs2 with t first clamped to [0, 1].
func LerpClampedAs2[F Float, T Number](a, b Vector2[T], t F) Vector2[F] {
	return LerpClampedAs[F, T, [2]F](a, b, t)
}

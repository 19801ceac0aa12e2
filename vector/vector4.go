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

// Constructors and conversions specific to 4-component vectors.

// New4 returns the vector (x, y, z, w).
func New4[T Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{c: [4]T{x, y, z, w}}
}

// New4From2 widens v by appending z and w.
func New4From2[T Number](v Vector2[T], z, w T) Vector4[T] {
	return New4(v.c[0], v.c[1], z, w)
}

// New4From3 widens v by appending w.
func New4From3[T Number](v Vector3[T], w T) Vector4[T] {
	return New4(v.c[0], v.c[1], v.c[2], w)
}

// Splat4 returns a vector with every component set to s.
func Splat4[T Number](s T) Vector4[T] {
	return Splat[T, [4]T](s)
}

// FromSlice4 returns a vector holding the first 4 elements of s; see FromSlice.
func FromSlice4[T Number](s []T) (Vector4[T], error) {
	return FromSlice[T, [4]T](s)
}

// MustFromSlice4 is like FromSlice4 but panics on error.
func MustFromSlice4[T Number](s []T) Vector4[T] {
	return MustFromSlice[T, [4]T](s)
}

// Zero4 returns the zero vector.
func Zero4[T Number]() Vector4[T] {
	return Vector4[T]{}
}

// One4 returns a vector of ones.
func One4[T Number]() Vector4[T] {
	return Splat4[T](1)
}

// UnitX4 returns the unit vector along X.
func UnitX4[T Number]() Vector4[T] {
	return Unit[T, [4]T](0)
}

// UnitY4 returns the unit vector along Y.
func UnitY4[T Number]() Vector4[T] {
	return Unit[T, [4]T](1)
}

// UnitZ4 returns the unit vector along Z.
func UnitZ4[T Number]() Vector4[T] {
	return Unit[T, [4]T](2)
}

// UnitW4 returns the unit vector along W.
func UnitW4[T Number]() Vector4[T] {
	return Unit[T, [4]T](3)
}

// Narrow4To3 drops the W component.
func Narrow4To3[T Number](v Vector4[T]) Vector3[T] {
	return New3(v.c[0], v.c[1], v.c[2])
}

// Parse4 parses text of the form <c1, c2, c3, c4>; see Parse.
func Parse4[T Number](s string, p numfmt.Provider) (Vector4[T], error) {
	return Parse[T, [4]T](s, p)
}

// TryParse4 is like Parse4 but reports failure with a boolean.
func TryParse4[T Number](s string, p numfmt.Provider) (Vector4[T], bool) {
	return TryParse[T, [4]T](s, p)
}

// Parse4UTF8 is Parse4 over UTF-8 encoded bytes.
func Parse4UTF8[T Number](b []byte, p numfmt.Provider) (Vector4[T], error) {
	return ParseUTF8[T, [4]T](b, p)
}

// TryParse4UTF8 is like Parse4UTF8 but reports failure with a boolean.
func TryParse4UTF8[T Number](b []byte, p numfmt.Provider) (Vector4[T], bool) {
	return TryParseUTF8[T, [4]T](b, p)
}

// ReadLittleEndian4 decodes a vector from little-endian bytes.
func ReadLittleEndian4[T Number](src []byte) (Vector4[T], bool) {
	return ReadLittleEndian[T, [4]T](src)
}

// ReadBigEndian4 decodes a vector from big-endian bytes.
func ReadBigEndian4[T Number](src []byte) (Vector4[T], bool) {
	return ReadBigEndian[T, [4]T](src)
}

// ToChecked4 converts v to U, failing if a component does not fit.
func ToChecked4[U, T Number](v Vector4[T]) (Vector4[U], error) {
	return Convert[U, T, [4]U](v, Checked)
}

// ToSaturating4 converts v to U, clamping components to U's range.
func ToSaturating4[U, T Number](v Vector4[T]) Vector4[U] {
	return mustConvert[U, T, [4]U](v, Saturating)
}

// ToTruncating4 converts v to U, keeping the low bits of integers.
func ToTruncating4[U, T Number](v Vector4[T]) Vector4[U] {
	return mustConvert[U, T, [4]U](v, Truncating)
}

// ScaleB4 returns v[i]·2**n[i] for each component.
func ScaleB4[T Float](v Vector4[T], n Vector4[int]) Vector4[T] {
	return scaleB(v, n.Components())
}

// ILogB4 returns the unbiased binary exponent of each component.
func ILogB4[T Float](v Vector4[T]) Vector4[int] {
	return fromInts[int, [4]int](ilogB(v))
}

// RoundToInt4 rounds each component to even and converts it to I, saturating.
func RoundToInt4[I Integer, T Float](v Vector4[T]) Vector4[I] {
	return mustConvert[I, T, [4]I](Round(v), Saturating)
}

// FloorToInt4 rounds each component down and converts it to I, saturating.
func FloorToInt4[I Integer, T Float](v Vector4[T]) Vector4[I] {
	return mustConvert[I, T, [4]I](Floor(v), Saturating)
}

// CeilingToInt4 rounds each component up and converts it to I, saturating.
func CeilingToInt4[I Integer, T Float](v Vector4[T]) Vector4[I] {
	return mustConvert[I, T, [4]I](Ceiling(v), Saturating)
}

// LerpAs4 interpolates a and b converted to F; see LerpAs.
func LerpAs4[F Float, T Number](a, b Vector4[T], t F) Vector4[F] {
	return LerpAs[F, T, [4]F](a, b, t)
}

// LerpClampedAs4 is LerpAs4 with t first clamped to [0, 1].
func LerpClampedAs4[F Float, T Number](a, b Vector4[T], t F) Vector4[F] {
	return LerpClampedAs[F, T, [4]F](a, b, t)
}

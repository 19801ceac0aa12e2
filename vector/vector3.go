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

// Constructors and conversions specific to 3-component vectors.

// New3 returns the vector (x, y, z).
func New3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{c: [3]T{x, y, z}}
}

// New3From2 widens v by appending z.
func New3From2[T Number](v Vector2[T], z T) Vector3[T] {
	return New3(v.c[0], v.c[1], z)
}

// Splat3 returns a vector with every component set to s.
func Splat3[T Number](s T) Vector3[T] {
	return Splat[T, [3]T](s)
}

// FromSlice3 returns a vector holding the first 3 elements of s; see FromSlice.
func FromSlice3[T Number](s []T) (Vector3[T], error) {
	return FromSlice[T, [3]T](s)
}

// MustFromSlice3 is like FromSlice3 but panics on error.
func MustFromSlice3[T Number](s []T) Vector3[T] {
	return MustFromSlice[T, [3]T](s)
}

// Zero3 returns the zero vector.
func Zero3[T Number]() Vector3[T] {
	return Vector3[T]{}
}

// One3 returns a vector of ones.
func One3[T Number]() Vector3[T] {
	return Splat3[T](1)
}

// UnitX3 returns the unit vector along X.
func UnitX3[T Number]() Vector3[T] {
	return Unit[T, [3]T](0)
}

// UnitY3 returns the unit vector along Y.
func UnitY3[T Number]() Vector3[T] {
	return Unit[T, [3]T](1)
}

// UnitZ3 returns the unit vector along Z.
func UnitZ3[T Number]() Vector3[T] {
	return Unit[T, [3]T](2)
}

// Narrow3To2 drops the Z component.
func Narrow3To2[T Number](v Vector3[T]) Vector2[T] {
	return New2(v.c[0], v.c[1])
}

// Parse3 parses text of the form <c1, c2, c3>; see Parse.
func Parse3[T Number](s string, p numfmt.Provider) (Vector3[T], error) {
	return Parse[T, [3]T](s, p)
}

// TryParse3 is like Parse3 but reports failure with a boolean.
func TryParse3[T Number](s string, p numfmt.Provider) (Vector3[T], bool) {
	return TryParse[T, [3]T](s, p)
}

// Parse3UTF8 is Parse3 over UTF-8 encoded bytes.
func Parse3UTF8[T Number](b []byte, p numfmt.Provider) (Vector3[T], error) {
	return ParseUTF8[T, [3]T](b, p)
}

// TryParse3UTF8 is like Parse3UTF8 but reports failure with a boolean.
func TryParse3UTF8[T Number](b []byte, p numfmt.Provider) (Vector3[T], bool) {
	return TryParseUTF8[T, [3]T](b, p)
}

// ReadLittleEndian3 decodes a vector from little-endian bytes.
func ReadLittleEndian3[T Number](src []byte) (Vector3[T], bool) {
	return ReadLittleEndian[T, [3]T](src)
}

// ReadBigEndian3 decodes a vector from big-endian bytes.
func ReadBigEndian3[T Number](src []byte) (Vector3[T], bool) {
	return ReadBigEndian[T, [3]T](src)
}

// ToChecked3 converts v to U, failing if a component does not fit.
func ToChecked3[U, T Number](v Vector3[T]) (Vector3[U], error) {
	return Convert[U, T, [3]U](v, Checked)
}

// ToSaturating3 converts v to U, clamping components to U's range.
func ToSaturating3[U, T Number](v Vector3[T]) Vector3[U] {
	return mustConvert[U, T, [3]U](v, Saturating)
}

// ToTruncating3 converts v to U, keeping the low bits of integers.
func ToTruncating3[U, T Number](v Vector3[T]) Vector3[U] {
	return mustConvert[U, T, [3]U](v, Truncating)
}

// ScaleB3 returns v[i]·2**n[i] for each component.
func ScaleB3[T Float](v Vector3[T], n Vector3[int]) Vector3[T] {
	return scaleB(v, n.Components())
}

// ILogB3 returns the unbiased binary exponent of each component.
func ILogB3[T Float](v Vector3[T]) Vector3[int] {
	return fromInts[int, [3]int](ilogB(v))
}

// RoundToInt3 rounds each component to even and converts it to I, saturating.
func RoundToInt3[I Integer, T Float](v Vector3[T]) Vector3[I] {
	return mustConvert[I, T, [3]I](Round(v), Saturating)
}

// FloorToInt3 rounds each component down and converts it to I, saturating.
func FloorToInt3[I Integer, T Float](v Vector3[T]) Vector3[I] {
	return mustConvert[I, T, [3]I](Floor(v), Saturating)
}

// CeilingToInt3 rounds each component up and converts it to I, saturating.
func CeilingToInt3[I Integer, T Float](v Vector3[T]) Vector3[I] {
	return mustConvert[I, T, [3]I](Ceiling(v), Saturating)
}

// LerpAs3 interpolates a and b converted to F; see LerpAs.
func LerpAs3[F Float, T Number](a, b Vector3[T], t F) Vector3[F] {
	return LerpAs[F, T, [3]F](a, b, t)
}

// LerpClampedAs3 is LerpAs3 with t first clamped to [0, 1].
func LerpClampedAs3[F Float, T Number](a, b Vector3[T], t F) Vector3[F] {
	return LerpClampedAs[F, T, [3]F](a, b, t)
}

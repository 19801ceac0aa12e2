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
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Interop with the fixed-size vector types of golang.org/x/image/math.
// They share the component layout, so float32 and float64 vectors convert
// by reinterpretation; other scalar types convert under the Truncating
// policy.

// FromF32Vec2 converts an f32.Vec2 to a Vector2[T].
func FromF32Vec2[T Number](v f32.Vec2) Vector2[T] {
	return mustConvert[T, float32, [2]T](Vector2[float32]{c: v}, Truncating)
}

// FromF32Vec3 converts an f32.Vec3 to a Vector3[T].
func FromF32Vec3[T Number](v f32.Vec3) Vector3[T] {
	return mustConvert[T, float32, [3]T](Vector3[float32]{c: v}, Truncating)
}

// FromF32Vec4 converts an f32.Vec4 to a Vector4[T].
func FromF32Vec4[T Number](v f32.Vec4) Vector4[T] {
	return mustConvert[T, float32, [4]T](Vector4[float32]{c: v}, Truncating)
}

// ToF32Vec2 converts v to an f32.Vec2.
func ToF32Vec2[T Number](v Vector2[T]) f32.Vec2 {
	return mustConvert[float32, T, [2]float32](v, Truncating).c
}

// ToF32Vec3 converts v to an f32.Vec3.
func ToF32Vec3[T Number](v Vector3[T]) f32.Vec3 {
	return mustConvert[float32, T, [3]float32](v, Truncating).c
}

// ToF32Vec4 converts v to an f32.Vec4.
func ToF32Vec4[T Number](v Vector4[T]) f32.Vec4 {
	return mustConvert[float32, T, [4]float32](v, Truncating).c
}

// FromF64Vec2 converts an f64.Vec2 to a Vector2[T].
func FromF64Vec2[T Number](v f64.Vec2) Vector2[T] {
	return mustConvert[T, float64, [2]T](Vector2[float64]{c: v}, Truncating)
}

// FromF64Vec3 converts an f64.Vec3 to a Vector3[T].
func FromF64Vec3[T Number](v f64.Vec3) Vector3[T] {
	return mustConvert[T, float64, [3]T](Vector3[float64]{c: v}, Truncating)
}

// FromF64Vec4 converts an f64.Vec4 to a Vector4[T].
func FromF64Vec4[T Number](v f64.Vec4) Vector4[T] {
	return mustConvert[T, float64, [4]T](Vector4[float64]{c: v}, Truncating)
}

// ToF64Vec2 converts v to an f64.Vec2.
func ToF64Vec2[T Number](v Vector2[T]) f64.Vec2 {
	return mustConvert[float64, T, [2]float64](v, Truncating).c
}

// ToF64Vec3 converts v to an f64.Vec3.
func ToF64Vec3[T Number](v Vector3[T]) f64.Vec3 {
	return mustConvert[float64, T, [3]float64](v, Truncating).c
}

// ToF64Vec4 converts v to an f64.Vec4.
func ToF64Vec4[T Number](v Vector4[T]) f64.Vec4 {
	return mustConvert[float64, T, [4]float64](v, Truncating).c
}

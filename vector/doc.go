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

// Package vector provides fixed-arity numeric vectors generic over their
// scalar type.
//
// One generic type, Vector[T, A], covers every arity: A is the backing
// array type [2]T through [5]T, and the aliases Vector2 through Vector5
// name the common instantiations. Vectors are plain comparable values laid
// out as N consecutive T with no hidden fields.
//
// Elementwise operators run on a hardware register from package hwy when
// the CPU has one wide enough for all N lanes of T, and component by
// component otherwise. Both paths give bit-identical results.
//
// Example:
//
//	a := vector.New3[float32](1, 2, 3)
//	b := vector.New3[float32](4, 5, 6)
//	fmt.Println(a.Add(b))  // <5, 7, 9>
//	fmt.Println(a.Dot(b))  // 32
//	n := vector.Normalize(a)
//
// Text uses the form <c1, c2, ..., cN>, where the separator is the group
// separator of a numfmt.Provider followed by a space.
package vector

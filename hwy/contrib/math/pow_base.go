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
package math

import (
	stdmath "math"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/chewxy/math32"
)

// Pow computes base^exp for each pair of lanes.
//
// Special cases follow stdmath.Pow: Pow(x, ±0) = 1 for any x, Pow(1, y) = 1
// for any y, and Pow(x < 0, non-integer y) = NaN.
func Pow[T hwy.Floats](base, exp hwy.Vec[T]) hwy.Vec[T] {
	return binary(base, exp, math32.Pow, stdmath.Pow)
}

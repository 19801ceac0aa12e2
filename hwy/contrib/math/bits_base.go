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
	"fmt"
	"math/bits"

	"github.com/ajroetker/go-vecn/hwy"
)

// PopCount counts the set bits of each lane.
func PopCount[T hwy.Integers](v hwy.Vec[T]) hwy.Vec[T] {
	return lanes(v, func(x T) T { return T(hwy.PopCount(x)) })
}

// Log2Int returns floor(log2(x)) for each lane, with Log2Int(0) = 0.
//
// It panics if a signed lane is negative.
func Log2Int[T hwy.Integers](v hwy.Vec[T]) hwy.Vec[T] {
	return lanes(v, func(x T) T {
		if x < 0 {
			panic(fmt.Sprintf("math: Log2Int of negative value %v", x))
		}
		if x == 0 {
			return 0
		}
		return T(bits.Len64(hwy.BitsOf(x)) - 1)
	})
}

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

import "github.com/ajroetker/go-vecn/hwy"

// Number is any scalar a vector can hold. It provides zero and one,
// arithmetic and ordering.
type Number interface {
	hwy.Lanes
}

// Integer scalars support bitwise operations.
type Integer interface {
	hwy.Integers
}

// Signed scalars have a sign: signed integers and floats.
type Signed interface {
	hwy.SignedInts | hwy.Floats
}

// Float scalars support roots and the transcendental functions.
type Float interface {
	hwy.Floats
}

// Components is the set of backing arrays, one per supported arity.
type Components[T Number] interface {
	~[2]T | ~[3]T | ~[4]T | ~[5]T
}

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

package hwy

import "testing"

func TestMaskFromBits(t *testing.T) {
	m := MaskFromBits[int32](0b1011, 3)
	if m.NumLanes() != 3 {
		t.Fatalf("MaskFromBits: got %d lanes, want 3", m.NumLanes())
	}
	want := []bool{true, true, false}
	for i, w := range want {
		if m.GetBit(i) != w {
			t.Errorf("MaskFromBits: lane %d: got %v, want %v", i, m.GetBit(i), w)
		}
	}
	if got := m.Bits(64); got != 0b011 {
		t.Errorf("Bits: got %b, want 11", got)
	}
}

func TestMaskOr(t *testing.T) {
	a := MaskFromBits[uint8](0b0110, 4)
	b := MaskFromBits[uint8](0b0011, 4)

	if got := MaskOr(a, b).Bits(4); got != 0b0111 {
		t.Errorf("MaskOr: got %04b", got)
	}
	if got := MaskOr(a, MaskFromBits[uint8](0b1111, 2)); got.NumLanes() != 2 {
		t.Errorf("MaskOr of unequal masks: got %d lanes, want 2", got.NumLanes())
	}
}

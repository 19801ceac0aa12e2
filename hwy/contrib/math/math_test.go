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
	"testing"

	"github.com/ajroetker/go-vecn/hwy"
)

func near(a, b, tol float64) bool {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	}
	if stdmath.IsInf(a, 0) || stdmath.IsInf(b, 0) {
		return a == b
	}
	return stdmath.Abs(a-b) <= tol
}

func TestUnaryFloat64(t *testing.T) {
	in := []float64{0.25, 0.5, 2}
	tests := []struct {
		name string
		fn   func(hwy.Vec[float64]) hwy.Vec[float64]
		ref  func(float64) float64
	}{
		{"Sin", Sin[float64], stdmath.Sin},
		{"Cos", Cos[float64], stdmath.Cos},
		{"Tan", Tan[float64], stdmath.Tan},
		{"Atan", Atan[float64], stdmath.Atan},
		{"Sinh", Sinh[float64], stdmath.Sinh},
		{"Cosh", Cosh[float64], stdmath.Cosh},
		{"Tanh", Tanh[float64], stdmath.Tanh},
		{"Asinh", Asinh[float64], stdmath.Asinh},
		{"Exp", Exp[float64], stdmath.Exp},
		{"ExpM1", ExpM1[float64], stdmath.Expm1},
		{"Exp2", Exp2[float64], stdmath.Exp2},
		{"Exp10", Exp10[float64], func(x float64) float64 { return stdmath.Pow(10, x) }},
		{"Exp2M1", Exp2M1[float64], func(x float64) float64 { return stdmath.Exp2(x) - 1 }},
		{"Exp10M1", Exp10M1[float64], func(x float64) float64 { return stdmath.Pow(10, x) - 1 }},
		{"Log", Log[float64], stdmath.Log},
		{"LogP1", LogP1[float64], stdmath.Log1p},
		{"Log2", Log2[float64], stdmath.Log2},
		{"Log2P1", Log2P1[float64], func(x float64) float64 { return stdmath.Log2(1 + x) }},
		{"Log10", Log10[float64], stdmath.Log10},
		{"Log10P1", Log10P1[float64], func(x float64) float64 { return stdmath.Log10(1 + x) }},
		{"Cbrt", Cbrt[float64], stdmath.Cbrt},
		{"Sqrt", Sqrt[float64], stdmath.Sqrt},
		{"Floor", Floor[float64], stdmath.Floor},
		{"Ceiling", Ceiling[float64], stdmath.Ceil},
		{"Truncate", Truncate[float64], stdmath.Trunc},
		{"Round", Round[float64], stdmath.RoundToEven},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(hwy.LoadSlice(in)).Data()
			if len(got) != len(in) {
				t.Fatalf("%s: got %d lanes, want %d", tt.name, len(got), len(in))
			}
			for i, x := range in {
				if want := tt.ref(x); !near(got[i], want, 1e-12) {
					t.Errorf("%s(%v) = %v, want %v", tt.name, x, got[i], want)
				}
			}
		})
	}
}

func TestUnaryFloat32(t *testing.T) {
	in := []float32{0.25, 0.5, 2}
	tests := []struct {
		name string
		fn   func(hwy.Vec[float32]) hwy.Vec[float32]
		ref  func(float64) float64
	}{
		{"Sin", Sin[float32], stdmath.Sin},
		{"Cos", Cos[float32], stdmath.Cos},
		{"Exp", Exp[float32], stdmath.Exp},
		{"Log", Log[float32], stdmath.Log},
		{"Cbrt", Cbrt[float32], stdmath.Cbrt},
		{"Tanh", Tanh[float32], stdmath.Tanh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(hwy.LoadSlice(in)).Data()
			for i, x := range in {
				if want := tt.ref(float64(x)); !near(float64(got[i]), want, 1e-5) {
					t.Errorf("%s(%v) = %v, want %v", tt.name, x, got[i], want)
				}
			}
		})
	}
}

func TestPiScaledTrig(t *testing.T) {
	in := hwy.LoadSlice([]float64{0, 0.5, 1, 1.5, -0.5, 2, 0.25})
	sin, cos := SinCosPi(in)

	wantSin := []float64{0, 1, 0, -1, -1, 0, stdmath.Sqrt2 / 2}
	wantCos := []float64{1, 0, -1, 0, 0, 1, stdmath.Sqrt2 / 2}
	for i := range wantSin {
		if !near(sin.Data()[i], wantSin[i], 1e-15) {
			t.Errorf("SinPi lane %d: got %v, want %v", i, sin.Data()[i], wantSin[i])
		}
		if !near(cos.Data()[i], wantCos[i], 1e-15) {
			t.Errorf("CosPi lane %d: got %v, want %v", i, cos.Data()[i], wantCos[i])
		}
	}

	tan := TanPi(hwy.LoadSlice([]float64{0.5, 0.25})).Data()
	if !stdmath.IsInf(tan[0], 1) {
		t.Errorf("TanPi(0.5) = %v, want +Inf", tan[0])
	}
	if !near(tan[1], 1, 1e-15) {
		t.Errorf("TanPi(0.25) = %v, want 1", tan[1])
	}

	neg := SinPi(hwy.LoadSlice([]float64{-1})).Data()[0]
	if neg != 0 || !stdmath.Signbit(neg) {
		t.Errorf("SinPi(-1) = %v, want -0", neg)
	}
}

func TestInverseTrigPi(t *testing.T) {
	got := []float64{
		AsinPi(hwy.LoadSlice([]float64{1})).Data()[0],
		AcosPi(hwy.LoadSlice([]float64{-1})).Data()[0],
		AtanPi(hwy.LoadSlice([]float64{1})).Data()[0],
		Atan2Pi(hwy.LoadSlice([]float64{1}), hwy.LoadSlice([]float64{0})).Data()[0],
	}
	want := []float64{0.5, 1, 0.25, 0.5}
	for i := range want {
		if !near(got[i], want[i], 1e-15) {
			t.Errorf("case %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if a := Atan2(hwy.LoadSlice([]float32{1}), hwy.LoadSlice([]float32{-1})).Data()[0]; !near(float64(a), 3*stdmath.Pi/4, 1e-6) {
		t.Errorf("Atan2(1, -1) = %v", a)
	}
}

func TestDegreesRadians(t *testing.T) {
	r := DegreesToRadians(hwy.LoadSlice([]float64{180, 90})).Data()
	if !near(r[0], stdmath.Pi, 1e-15) || !near(r[1], stdmath.Pi/2, 1e-15) {
		t.Errorf("DegreesToRadians: got %v", r)
	}
	d := RadiansToDegrees(hwy.LoadSlice([]float64{stdmath.Pi})).Data()
	if !near(d[0], 180, 1e-12) {
		t.Errorf("RadiansToDegrees(π) = %v, want 180", d[0])
	}
}

func TestRootN(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{27, 3, 3},
		{16, 4, 2},
		{-32, 5, -2},
		{-16, 4, stdmath.NaN()},
		{5, 0, stdmath.NaN()},
		{4, -2, 0.5},
		{0, -3, stdmath.Inf(1)},
		{7, 1, 7},
	}
	for _, tt := range tests {
		got := RootN(hwy.LoadSlice([]float64{tt.x}), tt.n).Data()[0]
		if !near(got, tt.want, 1e-14) {
			t.Errorf("RootN(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}
}

func TestHypotAndPow(t *testing.T) {
	h := Hypot(hwy.LoadSlice([]float32{3, 5}), hwy.LoadSlice([]float32{4, 12})).Data()
	if !near(float64(h[0]), 5, 1e-5) || !near(float64(h[1]), 13, 1e-5) {
		t.Errorf("Hypot: got %v, want [5 13]", h)
	}
	p := Pow(hwy.LoadSlice([]float64{2, -8, 9}), hwy.LoadSlice([]float64{10, 1.0 / 3, 0.5})).Data()
	if p[0] != 1024 || !stdmath.IsNaN(p[1]) || p[2] != 3 {
		t.Errorf("Pow: got %v", p)
	}
}

func TestLogBase(t *testing.T) {
	tests := []struct {
		x, base, want float64
	}{
		{8, 2, 3},
		{1000, 10, 3},
		{1, 0, 0},
		{5, 1, stdmath.NaN()},
		{5, stdmath.NaN(), stdmath.NaN()},
	}
	for _, tt := range tests {
		got := LogBase(hwy.LoadSlice([]float64{tt.x}), hwy.LoadSlice([]float64{tt.base})).Data()[0]
		if !near(got, tt.want, 1e-14) {
			t.Errorf("LogBase(%v, %v) = %v, want %v", tt.x, tt.base, got, tt.want)
		}
	}
}

func TestRoundModes(t *testing.T) {
	in := hwy.LoadSlice([]float64{2.5, -2.5, 1.5, -1.7})
	tests := []struct {
		mode MidpointRounding
		want []float64
	}{
		{ToEven, []float64{2, -2, 2, -2}},
		{AwayFromZero, []float64{3, -3, 2, -2}},
		{ToZero, []float64{2, -2, 1, -1}},
		{ToNegativeInfinity, []float64{2, -3, 1, -2}},
		{ToPositiveInfinity, []float64{3, -2, 2, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := RoundMode(in, tt.mode).Data()
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("lane %d: got %v, want %v", i, got[i], w)
				}
			}
		})
	}
}

func TestRoundDigits(t *testing.T) {
	got := RoundDigits(hwy.LoadSlice([]float64{1.2345, -2.675, 1e17}), 2, AwayFromZero).Data()
	if got[0] != 1.23 {
		t.Errorf("RoundDigits(1.2345, 2) = %v, want 1.23", got[0])
	}
	if got[2] != 1e17 {
		t.Errorf("RoundDigits left a huge value changed: %v", got[2])
	}

	f := RoundDigits(hwy.LoadSlice([]float32{3.14159}), 3, ToEven).Data()
	if f[0] != 3.142 {
		t.Errorf("RoundDigits float32: got %v, want 3.142", f[0])
	}

	defer func() {
		if recover() == nil {
			t.Error("RoundDigits with 7 digits on float32 did not panic")
		}
	}()
	RoundDigits(hwy.LoadSlice([]float32{1}), 7, ToEven)
}

func TestBitIncrementDecrement(t *testing.T) {
	inc := BitIncrement(hwy.LoadSlice([]float64{1, stdmath.Copysign(0, -1), stdmath.Inf(1)})).Data()
	if inc[0] != stdmath.Nextafter(1, 2) {
		t.Errorf("BitIncrement(1) = %v", inc[0])
	}
	if inc[1] != stdmath.SmallestNonzeroFloat64 {
		t.Errorf("BitIncrement(-0) = %v", inc[1])
	}
	if !stdmath.IsInf(inc[2], 1) {
		t.Errorf("BitIncrement(+Inf) = %v", inc[2])
	}

	dec := BitDecrement(hwy.LoadSlice([]float32{1})).Data()
	if dec[0] != stdmath.Nextafter32(1, 0) {
		t.Errorf("BitDecrement(float32 1) = %v", dec[0])
	}
}

func TestReciprocals(t *testing.T) {
	r := ReciprocalEstimate(hwy.LoadSlice([]float64{4, 0})).Data()
	if r[0] != 0.25 || !stdmath.IsInf(r[1], 1) {
		t.Errorf("ReciprocalEstimate: got %v", r)
	}
	s := ReciprocalSqrtEstimate(hwy.LoadSlice([]float32{16})).Data()
	if s[0] != 0.25 {
		t.Errorf("ReciprocalSqrtEstimate(16) = %v", s[0])
	}
}

func TestScaleBAndILogB(t *testing.T) {
	v := hwy.LoadSlice([]float64{1.5, 3})
	got := ScaleB(v, []int{2, -1}).Data()
	if got[0] != 6 || got[1] != 1.5 {
		t.Errorf("ScaleB: got %v", got)
	}
	if s := ScaleBScalar(hwy.LoadSlice([]float32{1}), 10).Data()[0]; s != 1024 {
		t.Errorf("ScaleBScalar: got %v", s)
	}

	e := ILogB(hwy.LoadSlice([]float64{8, 0.5, 0, stdmath.Inf(1)}))
	want := []int{3, -1, stdmath.MinInt32, stdmath.MaxInt32}
	for i, w := range want {
		if e[i] != w {
			t.Errorf("ILogB lane %d: got %d, want %d", i, e[i], w)
		}
	}
}

func TestSignHelpers(t *testing.T) {
	nan := stdmath.NaN()
	s := Sign(hwy.LoadSlice([]float64{-3, 0, 7, nan})).Data()
	if s[0] != -1 || s[1] != 0 || s[2] != 1 || !stdmath.IsNaN(s[3]) {
		t.Errorf("Sign: got %v", s)
	}

	c := CopySign(hwy.LoadSlice([]float32{3, -4}), hwy.LoadSlice([]float32{-1, 1})).Data()
	if c[0] != -3 || c[1] != 4 {
		t.Errorf("CopySign: got %v", c)
	}

	negZero := stdmath.Copysign(0, -1)
	mx := MaxNumber(hwy.LoadSlice([]float64{nan, negZero, 1}), hwy.LoadSlice([]float64{2, 0, nan})).Data()
	if mx[0] != 2 || stdmath.Signbit(mx[1]) || mx[2] != 1 {
		t.Errorf("MaxNumber: got %v", mx)
	}
	mn := MinNumber(hwy.LoadSlice([]float64{nan, 0, 1}), hwy.LoadSlice([]float64{2, negZero, -1})).Data()
	if mn[0] != 2 || !stdmath.Signbit(mn[1]) || mn[2] != -1 {
		t.Errorf("MinNumber: got %v", mn)
	}
}

func TestMagnitudes(t *testing.T) {
	nan := stdmath.NaN()
	negZero := stdmath.Copysign(0, -1)
	x := hwy.LoadSlice([]float64{-3, 2, nan, 1, -2, negZero})
	y := hwy.LoadSlice([]float64{2, -3, 1, nan, 2, 0})

	mx := MaxMagnitude(x, y).Data()
	if mx[0] != -3 || mx[1] != -3 || !stdmath.IsNaN(mx[2]) || !stdmath.IsNaN(mx[3]) || mx[4] != 2 || stdmath.Signbit(mx[5]) {
		t.Errorf("MaxMagnitude: got %v", mx)
	}
	mxn := MaxMagnitudeNumber(x, y).Data()
	if mxn[2] != 1 || mxn[3] != 1 || mxn[4] != 2 {
		t.Errorf("MaxMagnitudeNumber: got %v", mxn)
	}
	mn := MinMagnitude(x, y).Data()
	if mn[0] != 2 || mn[1] != 2 || !stdmath.IsNaN(mn[2]) || !stdmath.IsNaN(mn[3]) || mn[4] != -2 || !stdmath.Signbit(mn[5]) {
		t.Errorf("MinMagnitude: got %v", mn)
	}
	mnn := MinMagnitudeNumber(x, y).Data()
	if mnn[2] != 1 || mnn[3] != 1 || mnn[4] != -2 {
		t.Errorf("MinMagnitudeNumber: got %v", mnn)
	}

	ints := MaxMagnitude(hwy.LoadSlice([]int8{-128, 5, -5}), hwy.LoadSlice([]int8{127, -6, 5})).Data()
	if ints[0] != -128 || ints[1] != -6 || ints[2] != 5 {
		t.Errorf("MaxMagnitude int8: got %v", ints)
	}
	ints = MinMagnitude(hwy.LoadSlice([]int8{-128, 5, -5}), hwy.LoadSlice([]int8{127, -6, 5})).Data()
	if ints[0] != 127 || ints[1] != 5 || ints[2] != -5 {
		t.Errorf("MinMagnitude int8: got %v", ints)
	}
	if got := MaxMagnitude(hwy.LoadSlice([]uint16{3}), hwy.LoadSlice([]uint16{9})).Data(); got[0] != 9 {
		t.Errorf("MaxMagnitude uint16: got %v", got)
	}
}

func TestFusedMultiplyAdd(t *testing.T) {
	got := FusedMultiplyAdd(hwy.LoadSlice([]float64{2}), hwy.LoadSlice([]float64{3}), hwy.LoadSlice([]float64{4})).Data()
	if got[0] != 10 {
		t.Errorf("FusedMultiplyAdd(2, 3, 4) = %v", got[0])
	}
}

func TestIntegerBits(t *testing.T) {
	p := PopCount(hwy.LoadSlice([]uint8{0, 7, 255})).Data()
	if p[0] != 0 || p[1] != 3 || p[2] != 8 {
		t.Errorf("PopCount: got %v", p)
	}
	l := Log2Int(hwy.LoadSlice([]int32{0, 1, 8, 1000})).Data()
	want := []int32{0, 0, 3, 9}
	for i, w := range want {
		if l[i] != w {
			t.Errorf("Log2Int lane %d: got %d, want %d", i, l[i], w)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Log2Int(-1) did not panic")
		}
	}()
	Log2Int(hwy.LoadSlice([]int16{-1}))
}

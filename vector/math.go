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
	"github.com/ajroetker/go-vecn/hwy"
	hwymath "github.com/ajroetker/go-vecn/hwy/contrib/math"
)

// The math catalogue maps a scalar kernel from hwy/contrib/math over every
// component. Components never interact: two-vector forms pair components
// by index and scalar forms broadcast the scalar.

// MidpointRounding selects how halfway values are rounded.
type MidpointRounding = hwymath.MidpointRounding

// Rounding modes.
const (
	ToEven             = hwymath.ToEven
	AwayFromZero       = hwymath.AwayFromZero
	ToZero             = hwymath.ToZero
	ToNegativeInfinity = hwymath.ToNegativeInfinity
	ToPositiveInfinity = hwymath.ToPositiveInfinity
)

// apply runs a lane kernel over the components, one lane per component.
func apply[T Number, A Components[T]](v Vector[T, A], f func(hwy.Vec[T]) hwy.Vec[T]) (r Vector[T, A]) {
	hwy.StoreN(f(hwy.LoadSlice(v.lanes())), r.lanes(), len(r.c))
	return r
}

// apply2 runs a two-operand lane kernel over matching components.
func apply2[T Number, A Components[T]](a, b Vector[T, A], f func(x, y hwy.Vec[T]) hwy.Vec[T]) (r Vector[T, A]) {
	hwy.StoreN(f(hwy.LoadSlice(a.lanes()), hwy.LoadSlice(b.lanes())), r.lanes(), len(r.c))
	return r
}

// Sqrt returns the square root of each component.
func Sqrt[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Sqrt[T])
}

// Cbrt returns the cube root of each component.
func Cbrt[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Cbrt[T])
}

// RootN returns the n-th root of each component.
func RootN[T Float, A Components[T]](v Vector[T, A], n int) Vector[T, A] {
	return apply(v, func(x hwy.Vec[T]) hwy.Vec[T] { return hwymath.RootN(x, n) })
}

// Hypot returns sqrt(a*a + b*b) per component without undue overflow.
func Hypot[T Float, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return apply2(a, b, hwymath.Hypot[T])
}

// HypotScalar returns Hypot(v, Splat(s)).
func HypotScalar[T Float, A Components[T]](v Vector[T, A], s T) Vector[T, A] {
	return Hypot(v, Splat[T, A](s))
}

// Sin returns the sine of each component, in radians.
func Sin[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Sin[T])
}

// Cos returns the cosine of each component, in radians.
func Cos[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Cos[T])
}

// Tan returns the tangent of each component, in radians.
func Tan[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Tan[T])
}

// SinCos returns Sin(v) and Cos(v).
func SinCos[T Float, A Components[T]](v Vector[T, A]) (sin, cos Vector[T, A]) {
	s, c := hwymath.SinCos(hwy.LoadSlice(v.lanes()))
	hwy.StoreN(s, sin.lanes(), len(sin.c))
	hwy.StoreN(c, cos.lanes(), len(cos.c))
	return sin, cos
}

// SinPi returns sin(πx) for each component.
func SinPi[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.SinPi[T])
}

// CosPi returns cos(πx) for each component.
func CosPi[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.CosPi[T])
}

// TanPi returns tan(πx) for each component.
func TanPi[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.TanPi[T])
}

// SinCosPi returns SinPi(v) and CosPi(v).
func SinCosPi[T Float, A Components[T]](v Vector[T, A]) (sin, cos Vector[T, A]) {
	s, c := hwymath.SinCosPi(hwy.LoadSlice(v.lanes()))
	hwy.StoreN(s, sin.lanes(), len(sin.c))
	hwy.StoreN(c, cos.lanes(), len(cos.c))
	return sin, cos
}

// Asin returns the arcsine of each component.
func Asin[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Asin[T])
}

// Acos returns the arccosine of each component.
func Acos[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Acos[T])
}

// Atan returns the arctangent of each component.
func Atan[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Atan[T])
}

// AsinPi returns asin(x)/π for each component.
func AsinPi[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.AsinPi[T])
}

// AcosPi returns acos(x)/π for each component.
func AcosPi[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.AcosPi[T])
}

// AtanPi returns atan(x)/π for each component.
func AtanPi[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.AtanPi[T])
}

// Atan2 returns the arctangent of y/x per component, using the signs of
// both to pick the quadrant.
func Atan2[T Float, A Components[T]](y, x Vector[T, A]) Vector[T, A] {
	return apply2(y, x, hwymath.Atan2[T])
}

// Atan2Scalar returns Atan2(y, Splat(x)).
func Atan2Scalar[T Float, A Components[T]](y Vector[T, A], x T) Vector[T, A] {
	return Atan2(y, Splat[T, A](x))
}

// Atan2Pi returns Atan2(y, x)/π per component.
func Atan2Pi[T Float, A Components[T]](y, x Vector[T, A]) Vector[T, A] {
	return apply2(y, x, hwymath.Atan2Pi[T])
}

// Atan2PiScalar returns Atan2Pi(y, Splat(x)).
func Atan2PiScalar[T Float, A Components[T]](y Vector[T, A], x T) Vector[T, A] {
	return Atan2Pi(y, Splat[T, A](x))
}

// DegreesToRadians converts each component from degrees to radians.
func DegreesToRadians[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.DegreesToRadians[T])
}

// RadiansToDegrees converts each component from radians to degrees.
func RadiansToDegrees[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.RadiansToDegrees[T])
}

// Sinh returns the hyperbolic sine of each component.
func Sinh[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Sinh[T])
}

// Cosh returns the hyperbolic cosine of each component.
func Cosh[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Cosh[T])
}

// Tanh returns the hyperbolic tangent of each component.
func Tanh[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Tanh[T])
}

// Asinh returns the inverse hyperbolic sine of each component.
func Asinh[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Asinh[T])
}

// Acosh returns the inverse hyperbolic cosine of each component.
func Acosh[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Acosh[T])
}

// Atanh returns the inverse hyperbolic tangent of each component.
func Atanh[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Atanh[T])
}

// Exp returns e**x for each component.
func Exp[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Exp[T])
}

// ExpM1 returns e**x - 1 for each component.
func ExpM1[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.ExpM1[T])
}

// Exp2 returns 2**x for each component.
func Exp2[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Exp2[T])
}

// Exp2M1 returns 2**x - 1 for each component.
func Exp2M1[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Exp2M1[T])
}

// Exp10 returns 10**x for each component.
func Exp10[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Exp10[T])
}

// Exp10M1 returns 10**x - 1 for each component.
func Exp10M1[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Exp10M1[T])
}

// Log returns the natural logarithm of each component.
func Log[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Log[T])
}

// LogBase returns the logarithm of each component of v in the base given
// by the matching component of base.
func LogBase[T Float, A Components[T]](v, base Vector[T, A]) Vector[T, A] {
	return apply2(v, base, hwymath.LogBase[T])
}

// LogBaseScalar returns LogBase(v, Splat(base)).
func LogBaseScalar[T Float, A Components[T]](v Vector[T, A], base T) Vector[T, A] {
	return LogBase(v, Splat[T, A](base))
}

// LogP1 returns log(1 + x) for each component.
func LogP1[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.LogP1[T])
}

// Log2 returns the binary logarithm of each component.
func Log2[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Log2[T])
}

// Log2P1 returns log2(1 + x) for each component.
func Log2P1[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Log2P1[T])
}

// Log10 returns the decimal logarithm of each component.
func Log10[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Log10[T])
}

// Log10P1 returns log10(1 + x) for each component.
func Log10P1[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Log10P1[T])
}

// Pow returns base**exp per component.
func Pow[T Float, A Components[T]](base, exp Vector[T, A]) Vector[T, A] {
	return apply2(base, exp, hwymath.Pow[T])
}

// PowScalar returns Pow(base, Splat(exp)).
func PowScalar[T Float, A Components[T]](base Vector[T, A], exp T) Vector[T, A] {
	return Pow(base, Splat[T, A](exp))
}

// Round rounds each component to the nearest integer, halfway values to
// even.
func Round[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Round[T])
}

// RoundMode rounds each component to an integer using mode.
func RoundMode[T Float, A Components[T]](v Vector[T, A], mode MidpointRounding) Vector[T, A] {
	return apply(v, func(x hwy.Vec[T]) hwy.Vec[T] { return hwymath.RoundMode(x, mode) })
}

// RoundDigits rounds each component to digits fractional digits, halfway
// values to even. It panics if digits is outside [0, 6] for float32 or
// [0, 15] for float64.
func RoundDigits[T Float, A Components[T]](v Vector[T, A], digits int) Vector[T, A] {
	return RoundDigitsMode(v, digits, ToEven)
}

// RoundDigitsMode rounds each component to digits fractional digits using
// mode. It panics on the same digit counts as RoundDigits.
func RoundDigitsMode[T Float, A Components[T]](v Vector[T, A], digits int, mode MidpointRounding) Vector[T, A] {
	return apply(v, func(x hwy.Vec[T]) hwy.Vec[T] { return hwymath.RoundDigits(x, digits, mode) })
}

// Floor rounds each component toward negative infinity.
func Floor[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Floor[T])
}

// Ceiling rounds each component toward positive infinity.
func Ceiling[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Ceiling[T])
}

// Truncate rounds each component toward zero.
func Truncate[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Truncate[T])
}

// BitIncrement returns the next representable value above each component.
func BitIncrement[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.BitIncrement[T])
}

// BitDecrement returns the next representable value below each component.
func BitDecrement[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.BitDecrement[T])
}

// ReciprocalEstimate returns 1/x for each component.
func ReciprocalEstimate[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.ReciprocalEstimate[T])
}

// ReciprocalSqrtEstimate returns 1/sqrt(x) for each component.
func ReciprocalSqrtEstimate[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.ReciprocalSqrtEstimate[T])
}

// ScaleBScalar returns x·2**n for each component.
func ScaleBScalar[T Float, A Components[T]](v Vector[T, A], n int) Vector[T, A] {
	return apply(v, func(x hwy.Vec[T]) hwy.Vec[T] { return hwymath.ScaleBScalar(x, n) })
}

// scaleB returns v[i]·2**n[i]; n holds one exponent per component.
func scaleB[T Float, A Components[T]](v Vector[T, A], n []int) Vector[T, A] {
	return apply(v, func(x hwy.Vec[T]) hwy.Vec[T] { return hwymath.ScaleB(x, n) })
}

// ilogB returns the unbiased binary exponent of each component.
func ilogB[T Float, A Components[T]](v Vector[T, A]) []int {
	return hwymath.ILogB(hwy.LoadSlice(v.lanes()))
}

// FusedMultiplyAdd returns a*b + c per component, rounded once.
func FusedMultiplyAdd[T Float, A Components[T]](a, b, c Vector[T, A]) (r Vector[T, A]) {
	out := hwymath.FusedMultiplyAdd(hwy.LoadSlice(a.lanes()), hwy.LoadSlice(b.lanes()), hwy.LoadSlice(c.lanes()))
	hwy.StoreN(out, r.lanes(), len(r.c))
	return r
}

// CopySign returns the magnitude of each component of mag with the sign of
// the matching component of sign.
func CopySign[T Float, A Components[T]](mag, sign Vector[T, A]) Vector[T, A] {
	return apply2(mag, sign, hwymath.CopySign[T])
}

// CopySignScalar returns CopySign(mag, Splat(sign)).
func CopySignScalar[T Float, A Components[T]](mag Vector[T, A], sign T) Vector[T, A] {
	return CopySign(mag, Splat[T, A](sign))
}

// Sign returns -1, 0 or 1 per component by its sign. Float zeros of either
// sign give 0 and NaN gives NaN.
func Sign[T Signed, A Components[T]](v Vector[T, A]) (r Vector[T, A]) {
	for i := range len(v.c) {
		switch x := v.c[i]; {
		case x < 0:
			r.c[i] = -1
		case x > 0:
			r.c[i] = 1
		case x == 0:
			r.c[i] = 0
		default:
			r.c[i] = x
		}
	}
	return r
}

// MaxNumber returns the larger of each pair of components, preferring a
// number over NaN and +0 over -0.
func MaxNumber[T Float, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return apply2(a, b, hwymath.MaxNumber[T])
}

// MinNumber returns the smaller of each pair of components, preferring a
// number over NaN and -0 over +0.
func MinNumber[T Float, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return apply2(a, b, hwymath.MinNumber[T])
}

// MaxMagnitude returns the component of larger absolute value from each
// pair. Ties go to the positive component and NaN propagates. The minimum
// signed integer outranks every other value.
func MaxMagnitude[T Number, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return apply2(a, b, hwymath.MaxMagnitude[T])
}

// MaxMagnitudeNumber is MaxMagnitude preferring a number over NaN.
func MaxMagnitudeNumber[T Number, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return apply2(a, b, hwymath.MaxMagnitudeNumber[T])
}

// MinMagnitude returns the component of smaller absolute value from each
// pair. Ties go to the negative component and NaN propagates.
func MinMagnitude[T Number, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return apply2(a, b, hwymath.MinMagnitude[T])
}

// MinMagnitudeNumber is MinMagnitude preferring a number over NaN.
func MinMagnitudeNumber[T Number, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return apply2(a, b, hwymath.MinMagnitudeNumber[T])
}

// PopCount returns the number of set bits in each component.
func PopCount[T Integer, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.PopCount[T])
}

// Log2Int returns floor(log2(x)) for each component, with 0 for zero.
// It panics if a component is negative.
func Log2Int[T Integer, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return apply(v, hwymath.Log2Int[T])
}

// Lerp interpolates linearly: a*(1-t) + b*t.
func Lerp[T Float, A Components[T]](a, b Vector[T, A], t T) Vector[T, A] {
	return lerp(a, b, Splat[T, A](t))
}

// LerpVec interpolates linearly with a weight per component.
func LerpVec[T Float, A Components[T]](a, b, t Vector[T, A]) Vector[T, A] {
	return lerp(a, b, t)
}

// LerpClamped is Lerp with t first clamped to [0, 1].
func LerpClamped[T Float, A Components[T]](a, b Vector[T, A], t T) Vector[T, A] {
	return lerp(a, b, Splat[T, A](hwy.MinScalar(hwy.MaxScalar(t, 0), 1)))
}

// LerpClampedVec is LerpVec with each weight first clamped to [0, 1].
func LerpClampedVec[T Float, A Components[T]](a, b, t Vector[T, A]) Vector[T, A] {
	return lerp(a, b, t.Clamp(Splat[T, A](0), Splat[T, A](1)))
}

// LerpAs converts a and b to the float type F and interpolates them by t.
// Integer vectors interpolate without truncating the result.
func LerpAs[F Float, T Number, B Components[F], A Components[T]](a, b Vector[T, A], t F) Vector[F, B] {
	return Lerp(mustConvert[F, T, B](a, Truncating), mustConvert[F, T, B](b, Truncating), t)
}

// LerpClampedAs is LerpAs with t first clamped to [0, 1].
func LerpClampedAs[F Float, T Number, B Components[F], A Components[T]](a, b Vector[T, A], t F) Vector[F, B] {
	return LerpClamped(mustConvert[F, T, B](a, Truncating), mustConvert[F, T, B](b, Truncating), t)
}

// lerp is the shared interpolation kernel. It does not validate t.
func lerp[T Float, A Components[T]](a, b, t Vector[T, A]) Vector[T, A] {
	return a.Mul(Splat[T, A](1).Sub(t)).Add(b.Mul(t))
}

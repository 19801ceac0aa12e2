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
	"math"

	"github.com/ajroetker/go-vecn/hwy"
)

// Elementwise operators. Each asks hwy for the narrowest accelerated
// register holding N lanes of T; when there is one, both operands are
// loaded into it, the lane operation runs across the whole register and
// the first N lanes are stored back. Otherwise the scalar lane rule runs
// component by component. The lane rules below are the same ones hwy
// applies, so both paths agree bit for bit.

// zip computes lane(a[i], b[i]) for every component. Unused register lanes
// are filled with pad.
func zip[T Number, A Components[T]](a, b Vector[T, A], pad T, bulk func(x, y hwy.Vec[T]) hwy.Vec[T], lane func(x, y T) T) (r Vector[T, A]) {
	n := len(r.c)
	if tag, ok := hwy.RegisterFor[T](n); ok {
		out := bulk(hwy.LoadPadded(a.lanes(), tag, pad), hwy.LoadPadded(b.lanes(), tag, pad))
		hwy.StoreN(out, r.lanes(), n)
		return r
	}
	for i := range n {
		r.c[i] = lane(a.c[i], b.c[i])
	}
	return r
}

// each computes lane(v[i]) for every component.
func each[T Number, A Components[T]](v Vector[T, A], bulk func(x hwy.Vec[T]) hwy.Vec[T], lane func(x T) T) (r Vector[T, A]) {
	n := len(r.c)
	if tag, ok := hwy.RegisterFor[T](n); ok {
		hwy.StoreN(bulk(hwy.LoadPadded(v.lanes(), tag, 0)), r.lanes(), n)
		return r
	}
	for i := range n {
		r.c[i] = lane(v.c[i])
	}
	return r
}

// Add returns v + o. Integer components wrap.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, 0, hwy.Add[T], func(x, y T) T { return x + y })
}

// Sub returns v - o. Integer components wrap.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, 0, hwy.Sub[T], func(x, y T) T { return x - y })
}

// Mul returns the componentwise product of v and o.
func (v Vector[T, A]) Mul(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, 0, hwy.Mul[T], func(x, y T) T { return x * y })
}

// Div returns the componentwise quotient v / o. Integer division by a zero
// component panics; float division follows IEEE 754.
func (v Vector[T, A]) Div(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, 1, hwy.Div[T], func(x, y T) T { return x / y })
}

// Rem returns the componentwise remainder of v / o, with the sign of v.
// Integer remainder by a zero component panics.
func (v Vector[T, A]) Rem(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, 1, hwy.Rem[T], hwy.RemScalar[T])
}

// Scale returns v with every component multiplied by s.
func (v Vector[T, A]) Scale(s T) Vector[T, A] {
	return v.Mul(Splat[T, A](s))
}

// DivScalar returns v with every component divided by s.
func (v Vector[T, A]) DivScalar(s T) Vector[T, A] {
	return v.Div(Splat[T, A](s))
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector[T, A]) RemScalar(s T) Vector[T, A] {
	return v.Rem(Splat[T, A](s))
}

// Neg returns -v. Unsigned components wrap.
func (v Vector[T, A]) Neg() Vector[T, A] {
	return each(v, hwy.Neg[T], func(x T) T { return -x })
}

// Abs returns the componentwise absolute value. Float components have
// their sign bit cleared; the minimum signed integer stays unchanged.
func (v Vector[T, A]) Abs() Vector[T, A] {
	return each(v, hwy.Abs[T], hwy.AbsScalar[T])
}

// Min returns the componentwise minimum, taking v[i] where v[i] < o[i] and
// o[i] otherwise. A NaN in either operand yields o[i].
func (v Vector[T, A]) Min(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, 0, hwy.Min[T], hwy.MinScalar[T])
}

// Max returns the componentwise maximum, taking v[i] where v[i] > o[i] and
// o[i] otherwise.
func (v Vector[T, A]) Max(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, 0, hwy.Max[T], hwy.MaxScalar[T])
}

// Clamp restricts each component to [lo, hi], evaluated as
// Min(Max(v, lo), hi). When lo[i] > hi[i] the result is hi[i].
func (v Vector[T, A]) Clamp(lo, hi Vector[T, A]) (r Vector[T, A]) {
	n := len(r.c)
	if tag, ok := hwy.RegisterFor[T](n); ok {
		out := hwy.Clamp(hwy.LoadPadded(v.lanes(), tag, 0), hwy.LoadPadded(lo.lanes(), tag, 0), hwy.LoadPadded(hi.lanes(), tag, 0))
		hwy.StoreN(out, r.lanes(), n)
		return r
	}
	for i := range n {
		r.c[i] = hwy.MinScalar(hwy.MaxScalar(v.c[i], lo.c[i]), hi.c[i])
	}
	return r
}

// Inc returns v + 1.
func (v Vector[T, A]) Inc() Vector[T, A] {
	return v.Add(Splat[T, A](1))
}

// Dec returns v - 1.
func (v Vector[T, A]) Dec() Vector[T, A] {
	return v.Sub(Splat[T, A](1))
}

// compare returns the N-lane mask of components where lane(v[i], o[i])
// holds.
func compare[T Number, A Components[T]](v, o Vector[T, A], bulk func(x, y hwy.Vec[T]) hwy.Mask[T], lane func(x, y T) bool) hwy.Mask[T] {
	n := len(v.c)
	if tag, ok := hwy.RegisterFor[T](n); ok {
		m := bulk(hwy.LoadPadded(v.lanes(), tag, 0), hwy.LoadPadded(o.lanes(), tag, 0))
		return hwy.MaskFromBits[T](m.Bits(n), n)
	}
	var bits uint64
	for i := range n {
		if lane(v.c[i], o.c[i]) {
			bits |= 1 << uint(i)
		}
	}
	return hwy.MaskFromBits[T](bits, n)
}

// Equals compares componentwise and returns an N-lane mask with lane i set
// where v[i] == o[i].
func (v Vector[T, A]) Equals(o Vector[T, A]) hwy.Mask[T] {
	return compare(v, o, hwy.Equal[T], func(x, y T) bool { return x == y })
}

// LessThan returns the mask of components where v[i] < o[i]. NaN
// components compare false.
func (v Vector[T, A]) LessThan(o Vector[T, A]) hwy.Mask[T] {
	return compare(v, o, hwy.LessThan[T], func(x, y T) bool { return x < y })
}

// GreaterThan returns the mask of components where v[i] > o[i].
func (v Vector[T, A]) GreaterThan(o Vector[T, A]) hwy.Mask[T] {
	return compare(v, o, hwy.GreaterThan[T], func(x, y T) bool { return x > y })
}

// LessThanOrEqual returns the mask of components where v[i] <= o[i].
func (v Vector[T, A]) LessThanOrEqual(o Vector[T, A]) hwy.Mask[T] {
	return hwy.MaskOr(v.LessThan(o), v.Equals(o))
}

// GreaterThanOrEqual returns the mask of components where v[i] >= o[i].
func (v Vector[T, A]) GreaterThanOrEqual(o Vector[T, A]) hwy.Mask[T] {
	return hwy.MaskOr(v.GreaterThan(o), v.Equals(o))
}

// Sum returns v[0] + v[1] + ... + v[N-1], added in index order.
func (v Vector[T, A]) Sum() T {
	n := len(v.c)
	if tag, ok := hwy.RegisterFor[T](n); ok {
		return hwy.ReduceSumN(hwy.LoadPadded(v.lanes(), tag, 0), n)
	}
	var sum T
	for i := range n {
		sum += v.c[i]
	}
	return sum
}

// Dot returns the dot product of v and o. Products are rounded
// individually and summed in index order.
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	n := len(v.c)
	if tag, ok := hwy.RegisterFor[T](n); ok {
		prod := hwy.Mul(hwy.LoadPadded(v.lanes(), tag, 0), hwy.LoadPadded(o.lanes(), tag, 0))
		return hwy.ReduceSumN(prod, n)
	}
	var sum T
	for i := range n {
		// The conversion forces rounding of the product so no fused
		// multiply-add is formed.
		sum += T(v.c[i] * o.c[i])
	}
	return sum
}

// LengthSquared returns Dot(v, v).
func (v Vector[T, A]) LengthSquared() T {
	return v.Dot(v)
}

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vector[T, A]) DistanceSquared(o Vector[T, A]) T {
	return v.Sub(o).LengthSquared()
}

// Length returns the Euclidean length of v.
func Length[T Float, A Components[T]](v Vector[T, A]) T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Distance returns the Euclidean distance between a and b.
func Distance[T Float, A Components[T]](a, b Vector[T, A]) T {
	return Length(a.Sub(b))
}

// Normalize returns v / Length(v). A zero vector yields NaN components.
func Normalize[T Float, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return v.DivScalar(Length(v))
}

// Reflect returns the reflection of v off a surface with normal n:
// v - 2*(Dot(v, n)*n).
func Reflect[T Float, A Components[T]](v, n Vector[T, A]) Vector[T, A] {
	return v.Sub(n.Scale(v.Dot(n)).Scale(2))
}

// And returns the componentwise bitwise AND of a and b.
func And[T Integer, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return zip(a, b, 0, hwy.And[T], func(x, y T) T { return x & y })
}

// Or returns the componentwise bitwise OR of a and b.
func Or[T Integer, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return zip(a, b, 0, hwy.Or[T], func(x, y T) T { return x | y })
}

// Xor returns the componentwise bitwise XOR of a and b.
func Xor[T Integer, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return zip(a, b, 0, hwy.Xor[T], func(x, y T) T { return x ^ y })
}

// AndNot returns a &^ b componentwise.
func AndNot[T Integer, A Components[T]](a, b Vector[T, A]) Vector[T, A] {
	return zip(a, b, 0, hwy.AndNot[T], func(x, y T) T { return x &^ y })
}

// Not returns the componentwise bitwise complement of v.
func Not[T Integer, A Components[T]](v Vector[T, A]) Vector[T, A] {
	return each(v, hwy.Not[T], func(x T) T { return ^x })
}

// ShiftLeft shifts every component left by bits.
func ShiftLeft[T Integer, A Components[T]](v Vector[T, A], bits uint) Vector[T, A] {
	return each(v, func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.ShiftLeft(x, bits) }, func(x T) T { return x << bits })
}

// ShiftRight shifts every component right by bits. Signed components
// shift arithmetically.
func ShiftRight[T Integer, A Components[T]](v Vector[T, A], bits uint) Vector[T, A] {
	return each(v, func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.ShiftRight(x, bits) }, func(x T) T { return x >> bits })
}

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

package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/numfmt"
	"github.com/ajroetker/go-vecn/vector"
)

var errUnknownOp = errors.New("unknown operation")

// env is what an evaluation needs besides its operands.
type env struct {
	p      numfmt.Provider
	format string
}

// evalFunc evaluates op over textual operands for one component type.
type evalFunc func(op string, args []string, e env) (string, error)

var evaluators = map[string]evalFunc{
	"float32": floatEvaluator[float32],
	"float64": floatEvaluator[float64],
	"int8":    intEvaluator[int8],
	"int16":   intEvaluator[int16],
	"int32":   intEvaluator[int32],
	"int64":   intEvaluator[int64],
	"uint8":   intEvaluator[uint8],
	"uint16":  intEvaluator[uint16],
	"uint32":  intEvaluator[uint32],
	"uint64":  intEvaluator[uint64],
}

var (
	commonOps = []string{"abs", "add", "clamp", "dec", "div", "dot", "equals", "greater", "hash", "inc", "lengthsq", "less", "max", "maxmag", "min", "minmag", "mul", "neg", "rem", "scale", "sub", "sum"}
	floatOps  = []string{"ceiling", "cos", "distance", "exp", "floor", "length", "lerp", "log", "normalize", "reflect", "round", "sin", "sqrt"}
	intOps    = []string{"and", "not", "or", "popcount", "shl", "shr", "xor"}
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval OP VECTOR [OPERAND...]",
		Short: "Apply a vector operation",
		Long: `Apply a vector operation and print the result.

Operations for every type: ` + strings.Join(commonOps, ", ") + `
Float types only: ` + strings.Join(floatOps, ", ") + `
Integer types only: ` + strings.Join(intOps, ", ") + `

Operands after the first vector are vectors of the same arity, except for
scale and lerp (a scalar last operand) and shl/shr (a shift count).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.eval(args[0], args[1:])
			if err != nil {
				return err
			}
			a.println(cmd, out)
			return nil
		},
	}
	cmd.Flags().String("type", "", "component type: "+strings.Join(typeNames(), ", ")+" (default float64)")
	return cmd
}

func typeNames() []string {
	names := lo.Keys(evaluators)
	slices.Sort(names)
	return names
}

func (a *app) eval(op string, args []string) (string, error) {
	eval, ok := evaluators[a.cfg.Type]
	if !ok {
		return "", fmt.Errorf("unknown component type %q (want one of %s)", a.cfg.Type, strings.Join(typeNames(), ", "))
	}
	a.logger.Debug("eval", "op", op, "type", a.cfg.Type, "operands", len(args))
	args = lo.Map(args, func(s string, _ int) string { return strings.TrimSpace(s) })
	return eval(strings.ToLower(op), args, env{p: a.provider, format: a.cfg.Format})
}

// arityOf counts the components of the first operand, which must already
// be trimmed.
func arityOf(args []string, p numfmt.Provider) (int, error) {
	text := args[0]
	if len(text) < 2 || text[0] != '<' || text[len(text)-1] != '>' {
		return 0, fmt.Errorf("operand %q is not of the form <c1, c2, ...>", args[0])
	}
	n := strings.Count(text, numfmt.Group(p)) + 1
	if n < 2 || n > 5 {
		return 0, fmt.Errorf("operand %q has %d components; vectors have 2 to 5", args[0], n)
	}
	return n, nil
}

func floatEvaluator[T vector.Float](op string, args []string, e env) (string, error) {
	n, err := arityOf(args, e.p)
	if err != nil {
		return "", err
	}
	switch n {
	case 2:
		return evalFloat[T, [2]T](op, args, e)
	case 3:
		return evalFloat[T, [3]T](op, args, e)
	case 4:
		return evalFloat[T, [4]T](op, args, e)
	default:
		return evalFloat[T, [5]T](op, args, e)
	}
}

func intEvaluator[T vector.Integer](op string, args []string, e env) (string, error) {
	n, err := arityOf(args, e.p)
	if err != nil {
		return "", err
	}
	switch n {
	case 2:
		return evalInt[T, [2]T](op, args, e)
	case 3:
		return evalInt[T, [3]T](op, args, e)
	case 4:
		return evalInt[T, [4]T](op, args, e)
	default:
		return evalInt[T, [5]T](op, args, e)
	}
}

// operands parses textual operands on demand.
type operands[T vector.Number, A vector.Components[T]] struct {
	args []string
	e    env
}

func (o operands[T, A]) vec(i int) (vector.Vector[T, A], error) {
	if i >= len(o.args) {
		return vector.Vector[T, A]{}, fmt.Errorf("missing operand %d", i+1)
	}
	return vector.Parse[T, A](o.args[i], o.e.p)
}

func (o operands[T, A]) vecs(n int) ([]vector.Vector[T, A], error) {
	if len(o.args) != n {
		return nil, fmt.Errorf("want %d operands, have %d", n, len(o.args))
	}
	out := make([]vector.Vector[T, A], n)
	for i := range n {
		v, err := o.vec(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (o operands[T, A]) scalar(i int) (T, error) {
	if i >= len(o.args) {
		return 0, fmt.Errorf("missing operand %d", i+1)
	}
	return numfmt.ParseScalar[T](o.args[i], o.e.p)
}

func (o operands[T, A]) vecScalar() (vector.Vector[T, A], T, error) {
	if len(o.args) != 2 {
		return vector.Vector[T, A]{}, 0, fmt.Errorf("want a vector and a scalar, have %d operands", len(o.args))
	}
	v, err := o.vec(0)
	if err != nil {
		return v, 0, err
	}
	s, err := o.scalar(1)
	return v, s, err
}

func (o operands[T, A]) formatVec(v vector.Vector[T, A]) (string, error) {
	return v.FormatText(o.e.format, o.e.p)
}

func (o operands[T, A]) formatScalar(x T) (string, error) {
	return numfmt.FormatScalar(x, o.e.format, o.e.p)
}

// unary and binary look up operations that map vectors to a vector.
func (o operands[T, A]) unary(f func(vector.Vector[T, A]) vector.Vector[T, A]) (string, error) {
	vs, err := o.vecs(1)
	if err != nil {
		return "", err
	}
	return o.formatVec(f(vs[0]))
}

func (o operands[T, A]) binary(f func(a, b vector.Vector[T, A]) vector.Vector[T, A]) (string, error) {
	vs, err := o.vecs(2)
	if err != nil {
		return "", err
	}
	return o.formatVec(f(vs[0], vs[1]))
}

// evalCommon handles operations defined for every component type. It
// reports false when op is not one of them.
func evalCommon[T vector.Number, A vector.Components[T]](op string, o operands[T, A]) (string, bool, error) {
	binaries := map[string]func(a, b vector.Vector[T, A]) vector.Vector[T, A]{
		"add": vector.Vector[T, A].Add,
		"sub": vector.Vector[T, A].Sub,
		"mul": vector.Vector[T, A].Mul,
		"div": vector.Vector[T, A].Div,
		"rem": vector.Vector[T, A].Rem,
		"min": vector.Vector[T, A].Min,
		"max": vector.Vector[T, A].Max,

		"maxmag": vector.MaxMagnitude[T, A],
		"minmag": vector.MinMagnitude[T, A],
	}
	masks := map[string]func(a, b vector.Vector[T, A]) hwy.Mask[T]{
		"equals":  vector.Vector[T, A].Equals,
		"less":    vector.Vector[T, A].LessThan,
		"greater": vector.Vector[T, A].GreaterThan,
	}
	unaries := map[string]func(vector.Vector[T, A]) vector.Vector[T, A]{
		"neg": vector.Vector[T, A].Neg,
		"abs": vector.Vector[T, A].Abs,
		"inc": vector.Vector[T, A].Inc,
		"dec": vector.Vector[T, A].Dec,
	}
	if f, ok := binaries[op]; ok {
		out, err := o.binary(f)
		return out, true, err
	}
	if f, ok := unaries[op]; ok {
		out, err := o.unary(f)
		return out, true, err
	}
	if f, ok := masks[op]; ok {
		vs, err := o.vecs(2)
		if err != nil {
			return "", true, err
		}
		m := f(vs[0], vs[1])
		return "<" + strings.Join(lo.Times(m.NumLanes(), func(i int) string { return strconv.FormatBool(m.GetBit(i)) }), ", ") + ">", true, nil
	}

	var (
		out string
		err error
	)
	switch op {
	case "dot":
		var vs []vector.Vector[T, A]
		if vs, err = o.vecs(2); err == nil {
			out, err = o.formatScalar(vs[0].Dot(vs[1]))
		}
	case "lengthsq":
		var vs []vector.Vector[T, A]
		if vs, err = o.vecs(1); err == nil {
			out, err = o.formatScalar(vs[0].LengthSquared())
		}
	case "sum":
		var vs []vector.Vector[T, A]
		if vs, err = o.vecs(1); err == nil {
			out, err = o.formatScalar(vs[0].Sum())
		}
	case "scale":
		v, s, perr := o.vecScalar()
		if err = perr; err == nil {
			out, err = o.formatVec(v.Scale(s))
		}
	case "clamp":
		var vs []vector.Vector[T, A]
		if vs, err = o.vecs(3); err == nil {
			out, err = o.formatVec(vs[0].Clamp(vs[1], vs[2]))
		}
	case "hash":
		var vs []vector.Vector[T, A]
		if vs, err = o.vecs(1); err == nil {
			out = fmt.Sprintf("%016x", vs[0].Hash())
		}
	default:
		return "", false, nil
	}
	return out, true, err
}

func evalFloat[T vector.Float, A vector.Components[T]](op string, args []string, e env) (string, error) {
	o := operands[T, A]{args: args, e: e}
	if out, ok, err := evalCommon(op, o); ok {
		return out, err
	}

	unaries := map[string]func(vector.Vector[T, A]) vector.Vector[T, A]{
		"normalize": vector.Normalize[T, A],
		"sqrt":      vector.Sqrt[T, A],
		"round":     vector.Round[T, A],
		"floor":     vector.Floor[T, A],
		"ceiling":   vector.Ceiling[T, A],
		"sin":       vector.Sin[T, A],
		"cos":       vector.Cos[T, A],
		"exp":       vector.Exp[T, A],
		"log":       vector.Log[T, A],
	}
	if f, ok := unaries[op]; ok {
		return o.unary(f)
	}
	switch op {
	case "reflect":
		return o.binary(vector.Reflect[T, A])
	case "length":
		vs, err := o.vecs(1)
		if err != nil {
			return "", err
		}
		return o.formatScalar(vector.Length(vs[0]))
	case "distance":
		vs, err := o.vecs(2)
		if err != nil {
			return "", err
		}
		return o.formatScalar(vector.Distance(vs[0], vs[1]))
	case "lerp":
		if len(args) != 3 {
			return "", fmt.Errorf("lerp wants two vectors and a weight, have %d operands", len(args))
		}
		a, err := o.vec(0)
		if err != nil {
			return "", err
		}
		b, err := o.vec(1)
		if err != nil {
			return "", err
		}
		t, err := o.scalar(2)
		if err != nil {
			return "", err
		}
		return o.formatVec(vector.Lerp(a, b, t))
	}
	return "", fmt.Errorf("%w %q for floating-point vectors", errUnknownOp, op)
}

func evalInt[T vector.Integer, A vector.Components[T]](op string, args []string, e env) (string, error) {
	o := operands[T, A]{args: args, e: e}
	if out, ok, err := evalCommon(op, o); ok {
		return out, err
	}

	switch op {
	case "and":
		return o.binary(vector.And[T, A])
	case "or":
		return o.binary(vector.Or[T, A])
	case "xor":
		return o.binary(vector.Xor[T, A])
	case "not":
		return o.unary(vector.Not[T, A])
	case "popcount":
		return o.unary(vector.PopCount[T, A])
	case "shl", "shr":
		if len(args) != 2 {
			return "", fmt.Errorf("%s wants a vector and a shift count, have %d operands", op, len(args))
		}
		v, err := o.vec(0)
		if err != nil {
			return "", err
		}
		bits, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return "", fmt.Errorf("invalid shift count: %w", err)
		}
		if op == "shl" {
			return o.formatVec(vector.ShiftLeft(v, uint(bits)))
		}
		return o.formatVec(vector.ShiftRight(v, uint(bits)))
	}
	return "", fmt.Errorf("%w %q for integer vectors", errUnknownOp, op)
}

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
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vecn/vector"
)

// convertFunc parses a float64 vector and converts it to one target type.
type convertFunc func(arg string, policy vector.Policy, e env) (string, error)

var converters = map[string]convertFunc{
	"float32": convertVector[float32],
	"float64": convertVector[float64],
	"int8":    convertVector[int8],
	"int16":   convertVector[int16],
	"int32":   convertVector[int32],
	"int64":   convertVector[int64],
	"uint8":   convertVector[uint8],
	"uint16":  convertVector[uint16],
	"uint32":  convertVector[uint32],
	"uint64":  convertVector[uint64],
}

var policies = map[string]vector.Policy{
	"checked":    vector.Checked,
	"saturating": vector.Saturating,
	"truncating": vector.Truncating,
}

func sortedKeys[V any](m map[string]V) string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert --to TYPE VECTOR",
		Short: "Convert a vector to another component type",
		Long: `Convert a vector to another component type.

With the checked policy a component outside the target range is an error.
Saturating clamps to the target range and maps NaN to zero. Truncating
keeps the low bits of integers and saturates floating-point sources.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := cmd.Flags().GetString("to")
			if err != nil {
				return err
			}
			out, err := a.convert(to, args[0])
			if err != nil {
				return err
			}
			a.println(cmd, out)
			return nil
		},
	}
	cmd.Flags().String("to", "", "target component type: "+sortedKeys(converters))
	cmd.Flags().String("policy", "", "overflow policy: "+sortedKeys(policies)+" (default checked)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) convert(to, arg string) (string, error) {
	conv, ok := converters[to]
	if !ok {
		return "", fmt.Errorf("unknown target type %q (want one of %s)", to, sortedKeys(converters))
	}
	policy, ok := policies[strings.ToLower(a.cfg.Policy)]
	if !ok {
		return "", fmt.Errorf("unknown policy %q (want one of %s)", a.cfg.Policy, sortedKeys(policies))
	}
	a.logger.Debug("convert", "to", to, "policy", policy)
	return conv(arg, policy, env{p: a.provider, format: a.cfg.Format})
}

func convertVector[U vector.Number](arg string, policy vector.Policy, e env) (string, error) {
	n, err := arityOf([]string{arg}, e.p)
	if err != nil {
		return "", err
	}
	switch n {
	case 2:
		return convertN[U, [2]float64, [2]U](arg, policy, e)
	case 3:
		return convertN[U, [3]float64, [3]U](arg, policy, e)
	case 4:
		return convertN[U, [4]float64, [4]U](arg, policy, e)
	default:
		return convertN[U, [5]float64, [5]U](arg, policy, e)
	}
}

func convertN[U vector.Number, A vector.Components[float64], B vector.Components[U]](arg string, policy vector.Policy, e env) (string, error) {
	v, err := vector.Parse[float64, A](arg, e.p)
	if err != nil {
		return "", err
	}
	r, err := vector.Convert[U, float64, B](v, policy)
	if err != nil {
		return "", err
	}
	return r.FormatText(e.format, e.p)
}


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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/numfmt"
)

// laneType describes one component type for the info table.
type laneType struct {
	name     string
	size     int
	maxLanes func() int
	register func(n int) (hwy.Tag, bool)
}

func laneTypeOf[T hwy.Lanes](name string) laneType {
	return laneType{name: name, size: hwy.SizeOf[T](), maxLanes: hwy.MaxLanes[T], register: hwy.RegisterFor[T]}
}

var laneTypes = []laneType{
	laneTypeOf[int8]("int8"),
	laneTypeOf[int16]("int16"),
	laneTypeOf[int32]("int32"),
	laneTypeOf[int64]("int64"),
	laneTypeOf[uint8]("uint8"),
	laneTypeOf[uint16]("uint16"),
	laneTypeOf[uint32]("uint32"),
	laneTypeOf[uint64]("uint64"),
	laneTypeOf[float32]("float32"),
	laneTypeOf[float64]("float64"),
}

var arities = []int{2, 3, 4, 5}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch target, locale and register use per vector type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, line := range a.info() {
				a.println(cmd, line)
			}
			return nil
		},
	}
}

func (a *app) info() []string {
	sep, err := numfmt.SeparatorUTF8(a.provider)
	if err != nil {
		return []string{err.Error()}
	}
	lines := []string{
		fmt.Sprintf("target:   %s (detected %s, %d-byte registers)", hwy.CurrentName(), hwy.DetectedLevel(), hwy.CurrentWidth()),
		fmt.Sprintf("kernels:  accelerated=%t no_simd_env=%t", hwy.KernelsAccelerated(), hwy.NoSimdEnv()),
		fmt.Sprintf("locale:   %s (group %q, decimal %q)", a.provider.Name(), sep, a.provider.DecimalSeparator()),
		"",
		"type     size  lanes " + strings.Join(lo.Map(arities, func(n int, _ int) string { return fmt.Sprintf("N=%d     ", n) }), ""),
	}
	rows := lo.Map(laneTypes, func(lt laneType, _ int) string {
		cells := lo.Map(arities, func(n int, _ int) string {
			tag, ok := lt.register(n)
			if !ok {
				return fmt.Sprintf("%-9s", "scalar")
			}
			return fmt.Sprintf("%-9s", tag.Name())
		})
		return fmt.Sprintf("%-8s %-5d %-5d %s", lt.name, lt.size, lt.maxLanes(), strings.Join(cells, " "))
	})
	return append(lines, rows...)
}

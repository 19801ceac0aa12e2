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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vecn/batch"
	"github.com/ajroetker/go-vecn/vector"
)

// sumFunc parses lines as vectors of one component type and sums them.
type sumFunc func(ctx context.Context, lines []string, pool *batch.Pool, e env) (string, error)

var summers = map[string]sumFunc{
	"float32": sumVectors[float32],
	"float64": sumVectors[float64],
	"int8":    sumVectors[int8],
	"int16":   sumVectors[int16],
	"int32":   sumVectors[int32],
	"int64":   sumVectors[int64],
	"uint8":   sumVectors[uint8],
	"uint16":  sumVectors[uint16],
	"uint32":  sumVectors[uint32],
	"uint64":  sumVectors[uint64],
}

func newSumCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Sum vectors read one per line",
		Long: `Sum vectors read one per line from the named files, or from standard
input when none are given. Blank lines are skipped. All vectors must have
the arity of the first one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			pool := batch.NewPool(workers)
			defer pool.Close()
			out, err := a.sum(cmd.Context(), lines, pool)
			if err != nil {
				return err
			}
			a.println(cmd, out)
			return nil
		},
	}
	cmd.Flags().String("type", "", "component type (default float64)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (default GOMAXPROCS)")
	return cmd
}

func (a *app) sum(ctx context.Context, lines []string, pool *batch.Pool) (string, error) {
	sum, ok := summers[a.cfg.Type]
	if !ok {
		return "", fmt.Errorf("unknown component type %q (want one of %s)", a.cfg.Type, strings.Join(typeNames(), ", "))
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("no vectors to sum")
	}
	a.logger.Debug("sum", "type", a.cfg.Type, "vectors", len(lines), "workers", pool.Workers())
	return sum(ctx, lines, pool, env{p: a.provider, format: a.cfg.Format})
}

func readLines(stdin io.Reader, paths []string) ([]string, error) {
	var lines []string
	scan := func(r io.Reader) error {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		return sc.Err()
	}
	if len(paths) == 0 {
		return lines, scan(stdin)
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = scan(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return lines, nil
}

func sumVectors[T vector.Number](ctx context.Context, lines []string, pool *batch.Pool, e env) (string, error) {
	n, err := arityOf(lines, e.p)
	if err != nil {
		return "", err
	}
	switch n {
	case 2:
		return sumN[T, [2]T](ctx, lines, pool, e)
	case 3:
		return sumN[T, [3]T](ctx, lines, pool, e)
	case 4:
		return sumN[T, [4]T](ctx, lines, pool, e)
	default:
		return sumN[T, [5]T](ctx, lines, pool, e)
	}
}

func sumN[T vector.Number, A vector.Components[T]](ctx context.Context, lines []string, pool *batch.Pool, e env) (string, error) {
	vs, err := batch.Parse[T, A](ctx, lines, e.p, pool.Workers())
	if err != nil {
		return "", err
	}
	return batch.Sum(pool, vs).FormatText(e.format, e.p)
}

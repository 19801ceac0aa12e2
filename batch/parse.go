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

package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-vecn/numfmt"
	"github.com/ajroetker/go-vecn/vector"
)

// Parse parses every element of texts with p. Each goroutine handles up
// to DefaultGrain texts and at most limit run at once; limit <= 0 leaves
// them unbounded. Parsing stops at the first failure, whose error is
// returned wrapped with its 1-based line number. Cancelling ctx stops it
// early with ctx's error.
func Parse[T vector.Number, A vector.Components[T]](ctx context.Context, texts []string, p numfmt.Provider, limit int) ([]vector.Vector[T, A], error) {
	out := make([]vector.Vector[T, A], len(texts))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for start := 0; start < len(texts); start += DefaultGrain {
		end := min(start+DefaultGrain, len(texts))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := vector.Parse[T, A](texts[i], p)
				if err != nil {
					return fmt.Errorf("batch: line %d: %w", i+1, err)
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

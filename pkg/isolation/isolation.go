// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package isolation

import (
	"cmp"
	"fmt"
	"slices"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// Pair is two cookjobs where With equals Without plus one ingredient.
type Pair struct {
	Without ingredient.Cookjob `json:"without" yaml:"without"`
	With    ingredient.Cookjob `json:"with" yaml:"with"`
}

// Pairs returns every pair in candidates that isolates bit, ordered by With.
// bit must be one-hot and candidates must be sorted ascending.
func Pairs(bit ingredient.Cookjob, candidates []ingredient.Cookjob) ([]Pair, error) {
	if !bit.IsSingle() {
		return nil, cjerrors.NewWithContext(cjerrors.ErrCodeInvalidBit,
			fmt.Sprintf("bit %s is not a single ingredient", bit), map[string]any{"bit": uint64(bit)})
	}
	if !slices.IsSorted(candidates) {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "candidate cookjobs must be sorted ascending")
	}

	out := make([]Pair, 0)
	for _, job := range candidates {
		if !job.Has(bit) {
			continue
		}
		without := job ^ bit
		if _, ok := slices.BinarySearch(candidates, without); ok {
			out = append(out, Pair{Without: without, With: job})
		}
	}
	return out, nil
}

// Infer returns the contribution of the isolated ingredient from measured
// totals of both cookjobs of a pair.
func Infer(without, with stats.Record) stats.Record {
	return stats.Record{
		Hunger:    with.Hunger - without.Hunger,
		Stress:    with.Stress - without.Stress,
		SellValue: with.SellValue - without.SellValue,
	}
}

// Rank orders pairs by descending load of the Without cookjob, then by
// ascending Without. The input is not modified.
func Rank(pairs []Pair, load func(ingredient.Cookjob) int) []Pair {
	out := slices.Clone(pairs)
	slices.SortStableFunc(out, func(a, b Pair) int {
		if c := cmp.Compare(load(b.Without), load(a.Without)); c != 0 {
			return c
		}
		return cmp.Compare(a.Without, b.Without)
	})
	return out
}

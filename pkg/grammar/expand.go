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

package grammar

import (
	"slices"

	"github.com/mchmarny/cookjob/pkg/defaults"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Expand returns every distinct cookjob the slots can produce, ascending.
//
// The product is walked depth first. A prefix that repeats an ingredient or
// already holds MaxIngredients cannot become valid, so it is cut there;
// the result equals the filtered full product.
func Expand(slots []Slot) []ingredient.Cookjob {
	seen := make(map[ingredient.Cookjob]struct{})

	var walk func(i int, acc ingredient.Cookjob, n int)
	walk = func(i int, acc ingredient.Cookjob, n int) {
		if i == len(slots) {
			if n >= defaults.MinIngredients && n <= defaults.MaxIngredients {
				seen[acc] = struct{}{}
			}
			return
		}
		s := slots[i]
		if !s.Required {
			walk(i+1, acc, n)
		}
		if n >= defaults.MaxIngredients {
			return
		}
		for _, c := range s.Choices {
			if acc&c != 0 {
				continue
			}
			walk(i+1, acc|c, n+1)
		}
	}
	walk(0, 0, 0)

	out := make([]ingredient.Cookjob, 0, len(seen))
	for job := range seen {
		out = append(out, job)
	}
	slices.Sort(out)
	return out
}

// Expand returns the template's cookjobs.
func (t *Template) Expand() []ingredient.Cookjob {
	return Expand(t.Slots)
}

// Matches reports whether the slots can produce exactly job: every ingredient
// of job fills a distinct slot, every required slot is filled and the size is
// within bounds. Matches(slots, j) holds iff j is in Expand(slots).
func Matches(slots []Slot, job ingredient.Cookjob) bool {
	if n := job.Count(); n < defaults.MinIngredients || n > defaults.MaxIngredients {
		return false
	}

	var fill func(i int, remaining ingredient.Cookjob) bool
	fill = func(i int, remaining ingredient.Cookjob) bool {
		if i == len(slots) {
			return remaining == 0
		}
		s := slots[i]
		if !s.Required && fill(i+1, remaining) {
			return true
		}
		for _, c := range s.Choices {
			if remaining&c != 0 && fill(i+1, remaining&^c) {
				return true
			}
		}
		return false
	}
	return fill(0, job)
}

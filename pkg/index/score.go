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

package index

import (
	"cmp"

	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Score is how well one recipe fits one cookjob.
type Score struct {
	RequiredExact    int `json:"required_exact" yaml:"required_exact"`
	RequiredCategory int `json:"required_category" yaml:"required_category"`
	OptionalMatch    int `json:"optional_match" yaml:"optional_match"`
	RequiredTotal    int `json:"required_total" yaml:"required_total"`
	RecipeID         int `json:"recipe_id" yaml:"recipe_id"`
}

// Compare orders scores best first. It returns a negative number when a
// ranks ahead of b. Ranking prefers, in order: more required exact matches,
// more required category matches, more optional matches, fewer required
// slots, lower recipe id.
func Compare(a, b Score) int {
	if c := cmp.Compare(b.RequiredExact, a.RequiredExact); c != 0 {
		return c
	}
	if c := cmp.Compare(b.RequiredCategory, a.RequiredCategory); c != 0 {
		return c
	}
	if c := cmp.Compare(b.OptionalMatch, a.OptionalMatch); c != 0 {
		return c
	}
	if c := cmp.Compare(a.RequiredTotal, b.RequiredTotal); c != 0 {
		return c
	}
	return cmp.Compare(a.RecipeID, b.RecipeID)
}

// Rate scores tmpl against job by walking its slots in order and consuming
// ingredients from job. It returns false when a required slot finds nothing.
//
// An exact slot consumes its ingredient if still present. A category slot
// consumes the lowest remaining member, preferring members that no later
// exact slot names. Optional slots consume whatever they match, even when a
// later required slot is starved by it.
func Rate(tmpl *grammar.Template, job ingredient.Cookjob) (Score, bool) {
	s := Score{RecipeID: tmpl.ID, RequiredTotal: tmpl.Profile().Required()}

	reserved := make([]ingredient.Cookjob, len(tmpl.Slots))
	var later ingredient.Cookjob
	for i := len(tmpl.Slots) - 1; i >= 0; i-- {
		reserved[i] = later
		if tmpl.Slots[i].Kind == grammar.KindExact {
			later |= tmpl.Slots[i].Mask()
		}
	}

	remaining := job
	for i, slot := range tmpl.Slots {
		var pick ingredient.Cookjob
		if slot.Kind == grammar.KindExact {
			pick = remaining & slot.Mask()
		} else {
			avail := remaining & slot.Mask()
			if free := avail &^ reserved[i]; free != 0 {
				pick = lowest(free)
			} else {
				pick = lowest(avail)
			}
		}

		if pick == 0 {
			if slot.Required {
				return s, false
			}
			continue
		}
		remaining &^= pick

		switch {
		case !slot.Required:
			s.OptionalMatch++
		case slot.Kind == grammar.KindExact:
			s.RequiredExact++
		default:
			s.RequiredCategory++
		}
	}
	return s, true
}

func lowest(c ingredient.Cookjob) ingredient.Cookjob {
	return c & -c
}

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

package stats

import (
	"github.com/mchmarny/cookjob/pkg/defaults"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Record holds the stats of one ingredient.
type Record struct {
	Hunger    int  `json:"hunger" yaml:"hunger"`
	Stress    int  `json:"stress" yaml:"stress"`
	SellValue int  `json:"sell_value" yaml:"sell_value"`
	Partial   bool `json:"partial,omitempty" yaml:"partial,omitempty"`
}

// Ingredients maps ingredient names to their stats.
type Ingredients map[string]Record

// Triple is a hunger, stress and sell value delta.
type Triple struct {
	Hunger    int `json:"hunger" yaml:"hunger"`
	Stress    int `json:"stress" yaml:"stress"`
	SellValue int `json:"sell_value" yaml:"sell_value"`
}

// Scale multiplies every component by n.
func (t Triple) Scale(n int) Triple {
	return Triple{t.Hunger * n, t.Stress * n, t.SellValue * n}
}

// Min returns the elementwise minimum of t and o.
func (t Triple) Min(o Triple) Triple {
	return Triple{min(t.Hunger, o.Hunger), min(t.Stress, o.Stress), min(t.SellValue, o.SellValue)}
}

// PenaltyRule configures the category penalty.
type PenaltyRule struct {
	// Baseline is always a candidate penalty.
	Baseline Triple `json:"baseline" yaml:"baseline"`
	// PerIngredient is scaled by the member count of a qualifying category.
	PerIngredient Triple `json:"per_ingredient" yaml:"per_ingredient"`
	// MinCount is the member count at which a category qualifies.
	MinCount int `json:"min_count" yaml:"min_count"`
}

// DefaultPenaltyRule applies no baseline and penalizes categories with two
// or more members present.
func DefaultPenaltyRule() PenaltyRule {
	return PenaltyRule{
		PerIngredient: Triple{
			Hunger:    defaults.PenaltyHungerPerIngredient,
			Stress:    defaults.PenaltyStressPerIngredient,
			SellValue: defaults.PenaltySellPerIngredient,
		},
		MinCount: defaults.PenaltyMinCount,
	}
}

// LegacyPenaltyRule reproduces the in-game observation where every cookjob
// carries one unit of penalty and any category member counts.
func LegacyPenaltyRule() PenaltyRule {
	r := DefaultPenaltyRule()
	r.Baseline = r.PerIngredient
	r.MinCount = 1
	return r
}

// Entry holds the derived stats of one cookjob.
type Entry struct {
	Cookjob            ingredient.Cookjob `json:"cookjob" yaml:"cookjob"`
	Ingredients        []string           `json:"ingredients" yaml:"ingredients"`
	RecipeID           int                `json:"recipe_id" yaml:"recipe_id"`
	RecipeName         string             `json:"recipe_name" yaml:"recipe_name"`
	Hunger             int                `json:"hunger" yaml:"hunger"`
	Stress             int                `json:"stress" yaml:"stress"`
	SellValue          int                `json:"sell_value" yaml:"sell_value"`
	Penalty            Triple             `json:"penalty" yaml:"penalty"`
	MissingIngredients []string           `json:"missing_ingredients,omitempty" yaml:"missing_ingredients,omitempty"`
	AllKnown           bool               `json:"all_known" yaml:"all_known"`
	TravelScore        int                `json:"travel_score" yaml:"travel_score"`
}

// Totals returns the entry's hunger, stress and sell value.
func (e Entry) Totals() Record {
	return Record{Hunger: e.Hunger, Stress: e.Stress, SellValue: e.SellValue}
}

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
	"log/slog"
	"slices"
	"time"

	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Source is the read-only index view the aggregator needs.
type Source interface {
	Cookjobs() []ingredient.Cookjob
	RecipeFor(job ingredient.Cookjob) (int, error)
	RecipeName(id int) string
}

// Aggregator computes cookjob stats.
type Aggregator struct {
	enc  *ingredient.Encoder
	cats *ingredient.Categories
	rule PenaltyRule
}

// NewAggregator creates an aggregator.
func NewAggregator(enc *ingredient.Encoder, cats *ingredient.Categories, rule PenaltyRule) *Aggregator {
	return &Aggregator{enc: enc, cats: cats, rule: rule}
}

// Rule returns the penalty rule in use.
func (a *Aggregator) Rule() PenaltyRule {
	return a.rule
}

// Penalty returns the category penalty for job.
func (a *Aggregator) Penalty(job ingredient.Cookjob) Triple {
	p := a.rule.Baseline
	if a.cats == nil {
		return p
	}
	for _, name := range a.cats.Names() {
		n := (job & a.cats.Mask(name)).Count()
		if n > 0 && n >= a.rule.MinCount {
			p = p.Min(a.rule.PerIngredient.Scale(n))
		}
	}
	return p
}

// Compute derives the entry for one cookjob.
func (a *Aggregator) Compute(job ingredient.Cookjob, recipeID int, recipeName string, ing Ingredients) Entry {
	e := Entry{
		Cookjob:     job,
		Ingredients: a.enc.Decode(job),
		RecipeID:    recipeID,
		RecipeName:  recipeName,
	}
	for _, name := range e.Ingredients {
		rec, ok := ing[name]
		if !ok || rec.Partial {
			e.MissingIngredients = append(e.MissingIngredients, name)
		}
		e.Hunger += rec.Hunger
		e.Stress += rec.Stress
		e.SellValue += rec.SellValue
	}

	e.Penalty = a.Penalty(job)
	e.Hunger += e.Penalty.Hunger
	e.Stress += e.Penalty.Stress
	e.SellValue += e.Penalty.SellValue
	e.AllKnown = len(e.MissingIngredients) == 0
	e.TravelScore = e.Hunger + e.Stress
	return e
}

// Build computes the entry of every cookjob in src.
func (a *Aggregator) Build(src Source, ing Ingredients) (*Table, error) {
	start := time.Now()
	jobs := src.Cookjobs()
	entries := make([]Entry, len(jobs))
	for i, job := range jobs {
		id, err := src.RecipeFor(job)
		if err != nil {
			return nil, err
		}
		entries[i] = a.Compute(job, id, src.RecipeName(id), ing)
	}

	tableBuildDuration.Observe(time.Since(start).Seconds())
	entriesRecomputed.Add(float64(len(entries)))
	slog.Debug("stats table built", slog.Int("entries", len(entries)))
	return &Table{entries: entries, rule: a.rule}, nil
}

// Refresh returns the table Build would produce for ing, reusing entries of
// prev that contain none of the changed ingredients. It falls back to a full
// build when prev was computed over a different cookjob set or rule.
func (a *Aggregator) Refresh(prev *Table, src Source, ing Ingredients, changed []string) (*Table, error) {
	jobs := src.Cookjobs()
	if prev == nil || prev.rule != a.rule || !sameJobs(prev.entries, jobs) {
		return a.Build(src, ing)
	}

	var mask ingredient.Cookjob
	for _, name := range changed {
		if bit, err := a.enc.Bit(name); err == nil {
			mask |= bit
		}
	}

	start := time.Now()
	recomputed := 0
	entries := make([]Entry, len(jobs))
	for i, job := range jobs {
		id, err := src.RecipeFor(job)
		if err != nil {
			return nil, err
		}
		old := prev.entries[i]
		if job&mask == 0 && old.RecipeID == id && old.RecipeName == src.RecipeName(id) {
			entries[i] = old
			continue
		}
		entries[i] = a.Compute(job, id, src.RecipeName(id), ing)
		recomputed++
	}

	tableBuildDuration.Observe(time.Since(start).Seconds())
	entriesRecomputed.Add(float64(recomputed))
	slog.Debug("stats table refreshed",
		slog.Int("entries", len(entries)),
		slog.Int("recomputed", recomputed))
	return &Table{entries: entries, rule: a.rule}, nil
}

func sameJobs(entries []Entry, jobs []ingredient.Cookjob) bool {
	if len(entries) != len(jobs) {
		return false
	}
	for i := range entries {
		if entries[i].Cookjob != jobs[i] {
			return false
		}
	}
	return true
}

// Changed returns the names whose records differ between old and updated,
// including names present in only one of them, in ascending order.
func Changed(old, updated Ingredients) []string {
	var out []string
	for name, rec := range updated {
		if prev, ok := old[name]; !ok || prev != rec {
			out = append(out, name)
		}
	}
	for name := range old {
		if _, ok := updated[name]; !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

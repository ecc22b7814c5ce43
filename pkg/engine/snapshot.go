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

package engine

import (
	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/index"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/isolation"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// Snapshot is an immutable view of one loaded index and stats table.
type Snapshot struct {
	Index            *index.Index
	Stats            *stats.Table
	Ingredients      stats.Ingredients
	IndexFingerprint string
	StatsFingerprint string

	categories *ingredient.Categories
	agg        *stats.Aggregator
}

// Encoder returns the catalog encoder of the snapshot.
func (s *Snapshot) Encoder() *ingredient.Encoder {
	return s.Index.Encoder()
}

// Categories returns the category definitions of the snapshot.
func (s *Snapshot) Categories() *ingredient.Categories {
	return s.categories
}

// Craftable returns the stats entries of every cookjob that can be made
// from avail. With knownOnly set, entries with missing stats are dropped.
func (s *Snapshot) Craftable(avail ingredient.Cookjob, knownOnly bool) []stats.Entry {
	entries := s.Stats.Within(avail)
	if !knownOnly {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if e.AllKnown {
			out = append(out, e)
		}
	}
	return out
}

// Candidate is a recipe able to produce a cookjob.
type Candidate struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Grammar string `json:"grammar" yaml:"grammar"`
	Owner   bool   `json:"owner" yaml:"owner"`
}

// Explanation describes how a cookjob resolves.
type Explanation struct {
	Entry      stats.Entry `json:"entry" yaml:"entry"`
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
}

// Explain returns the canonical recipe, the competing candidates and the
// stats of job. It fails with UNINDEXED_COOKJOB for cookjobs no recipe makes.
func (s *Snapshot) Explain(job ingredient.Cookjob) (*Explanation, error) {
	owner, err := s.Index.RecipeFor(job)
	if err != nil {
		return nil, err
	}
	entry, ok := s.Stats.Get(job)
	if !ok {
		entry = s.agg.Compute(job, owner, s.Index.RecipeName(owner), s.Ingredients)
	}

	ids := s.Index.Candidates(job)
	out := &Explanation{Entry: entry, Candidates: make([]Candidate, 0, len(ids))}
	for _, id := range ids {
		c := Candidate{ID: id, Name: s.Index.RecipeName(id), Owner: id == owner}
		if t, ok := s.Index.Template(id); ok {
			c.Grammar = t.Grammar
		}
		out.Candidates = append(out.Candidates, c)
	}
	return out, nil
}

// IsolationPair is a ranked pair of cookjobs differing by one ingredient.
type IsolationPair struct {
	Without     ingredient.Cookjob `json:"without" yaml:"without"`
	With        ingredient.Cookjob `json:"with" yaml:"with"`
	WithoutJob  []string           `json:"without_ingredients" yaml:"without_ingredients"`
	WithJob     []string           `json:"with_ingredients" yaml:"with_ingredients"`
	WithoutName string             `json:"without_recipe" yaml:"without_recipe"`
	WithName    string             `json:"with_recipe" yaml:"with_recipe"`
	Load        int                `json:"load" yaml:"load"`
}

// Isolate returns the cookjob pairs that isolate the named ingredient among
// the cookjobs craftable from avail. Both members of every pair can be
// cooked from avail, so the ingredient itself must be in avail. Pairs are
// ranked by the summed measured stress of the ingredients in the cookjob
// without it, highest first; ingredients without stats count as zero.
func (s *Snapshot) Isolate(name string, avail ingredient.Cookjob) ([]IsolationPair, error) {
	enc := s.Encoder()
	if resolved, ok := enc.Lookup(name); ok {
		name = resolved
	}
	bit, err := enc.Bit(name)
	if err != nil {
		return nil, err
	}
	pairs, err := isolation.Pairs(bit, s.Index.Within(avail))
	if err != nil {
		return nil, err
	}

	load := func(job ingredient.Cookjob) int {
		total := 0
		for _, n := range enc.Decode(job) {
			total += s.Ingredients[n].Stress
		}
		return total
	}
	ranked := isolation.Rank(pairs, load)

	out := make([]IsolationPair, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, IsolationPair{
			Without:     p.Without,
			With:        p.With,
			WithoutJob:  enc.Decode(p.Without),
			WithJob:     enc.Decode(p.With),
			WithoutName: s.recipeNameOf(p.Without),
			WithName:    s.recipeNameOf(p.With),
			Load:        load(p.Without),
		})
	}
	return out, nil
}

func (s *Snapshot) recipeNameOf(job ingredient.Cookjob) string {
	id, err := s.Index.RecipeFor(job)
	if err != nil {
		return index.UnknownRecipeName
	}
	return s.Index.RecipeName(id)
}

// RecipeSummary describes one indexed recipe.
type RecipeSummary struct {
	ID         int             `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Grammar    string          `json:"grammar" yaml:"grammar"`
	Profile    grammar.Profile `json:"profile" yaml:"profile"`
	Expansions int             `json:"expansions" yaml:"expansions"`
	Owned      int             `json:"owned" yaml:"owned"`
}

// Recipes summarizes every indexed recipe, ascending by id.
func (s *Snapshot) Recipes() []RecipeSummary {
	owned := make(map[int]int)
	for _, id := range s.Index.Owners() {
		owned[id]++
	}

	ids := s.Index.RecipeIDs()
	out := make([]RecipeSummary, 0, len(ids))
	for _, id := range ids {
		t, ok := s.Index.Template(id)
		if !ok {
			continue
		}
		out = append(out, RecipeSummary{
			ID:         id,
			Name:       t.Name,
			Grammar:    t.Grammar,
			Profile:    t.Profile(),
			Expansions: len(t.Expand()),
			Owned:      owned[id],
		})
	}
	return out
}

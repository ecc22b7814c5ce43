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
	"fmt"
	"slices"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// UnknownRecipeName is returned by RecipeName for ids outside the index.
const UnknownRecipeName = "<unknown recipe>"

// Index is the sorted cookjob set with one owning recipe per cookjob.
type Index struct {
	enc       *ingredient.Encoder
	templates map[int]*grammar.Template
	ids       []int
	profiles  map[int]grammar.Profile
	jobs      []ingredient.Cookjob
	owners    []int
	report    BuildReport
}

// Encoder returns the encoder the index was built with.
func (x *Index) Encoder() *ingredient.Encoder {
	return x.enc
}

// Len returns the number of cookjobs.
func (x *Index) Len() int {
	return len(x.jobs)
}

// Cookjobs returns a copy of the sorted cookjob set.
func (x *Index) Cookjobs() []ingredient.Cookjob {
	return slices.Clone(x.jobs)
}

// IsValid reports whether job is in the cookjob set.
func (x *Index) IsValid(job ingredient.Cookjob) bool {
	_, ok := slices.BinarySearch(x.jobs, job)
	return ok
}

// Within returns every cookjob that is a subset of avail, ascending.
func (x *Index) Within(avail ingredient.Cookjob) []ingredient.Cookjob {
	out := make([]ingredient.Cookjob, 0)
	for _, job := range x.jobs {
		if job.Within(avail) {
			out = append(out, job)
		}
	}
	return out
}

// RecipeFor returns the owning recipe of job.
func (x *Index) RecipeFor(job ingredient.Cookjob) (int, error) {
	i, ok := slices.BinarySearch(x.jobs, job)
	if !ok {
		return 0, cjerrors.NewWithContext(cjerrors.ErrCodeUnindexedCookjob,
			fmt.Sprintf("cookjob %s is not indexed", job), map[string]any{"cookjob": uint64(job)})
	}
	return x.owners[i], nil
}

// RecipeIDs returns the ids of all indexed recipes, ascending.
func (x *Index) RecipeIDs() []int {
	return slices.Clone(x.ids)
}

// Template returns the parsed recipe with the given id.
func (x *Index) Template(id int) (*grammar.Template, bool) {
	t, ok := x.templates[id]
	return t, ok
}

// RecipeName returns the recipe name, or UnknownRecipeName.
func (x *Index) RecipeName(id int) string {
	if t, ok := x.templates[id]; ok {
		return t.Name
	}
	return UnknownRecipeName
}

// Profiles returns the slot composition of every indexed recipe.
func (x *Index) Profiles() map[int]grammar.Profile {
	out := make(map[int]grammar.Profile, len(x.profiles))
	for id, p := range x.profiles {
		out[id] = p
	}
	return out
}

// Expansion returns the cookjobs a single recipe produces.
func (x *Index) Expansion(id int) ([]ingredient.Cookjob, error) {
	t, ok := x.templates[id]
	if !ok {
		return nil, cjerrors.NewWithContext(cjerrors.ErrCodeNotFound,
			fmt.Sprintf("recipe %d is not indexed", id), map[string]any{"recipe": id})
	}
	return t.Expand(), nil
}

// Candidates returns every recipe able to produce job, ascending by id.
func (x *Index) Candidates(job ingredient.Cookjob) []int {
	out := make([]int, 0)
	for _, id := range x.ids {
		if grammar.Matches(x.templates[id].Slots, job) {
			out = append(out, id)
		}
	}
	return out
}

// Owners returns the cookjob to recipe mapping.
func (x *Index) Owners() map[ingredient.Cookjob]int {
	out := make(map[ingredient.Cookjob]int, len(x.jobs))
	for i, job := range x.jobs {
		out[job] = x.owners[i]
	}
	return out
}

// Report returns the report of the build or restore that produced the index.
func (x *Index) Report() BuildReport {
	r := x.report
	r.Skipped = slices.Clone(x.report.Skipped)
	return r
}

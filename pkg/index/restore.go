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
	"time"

	"github.com/google/uuid"
	"github.com/mchmarny/cookjob/pkg/defaults"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Restore rebuilds an index from cached artifacts without expanding any
// template. Sources are re-parsed so templates and names are available.
// The cached cookjob set must be strictly ascending with 1..5 ingredients
// per cookjob, every cookjob needs an indexed owner, and cached profiles
// must agree with the parsed templates.
func Restore(p *grammar.Parser, sources []grammar.Source, jobs []ingredient.Cookjob,
	owners map[ingredient.Cookjob]int, profiles map[int]grammar.Profile) (*Index, error) {
	if p == nil {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "parser is required")
	}

	start := time.Now()
	x := &Index{enc: p.Encoder()}
	x.report = BuildReport{ID: uuid.NewString(), Recipes: len(sources), Restored: true}
	x.parse(p, sources)

	for id, want := range profiles {
		got, ok := x.profiles[id]
		if !ok || got != want {
			return nil, invalid(fmt.Sprintf("cached profile for recipe %d does not match its grammar", id))
		}
	}
	if len(profiles) != len(x.profiles) {
		return nil, invalid("cached profiles do not cover the indexed recipes")
	}

	x.jobs = make([]ingredient.Cookjob, len(jobs))
	x.owners = make([]int, len(jobs))
	for i, job := range jobs {
		if i > 0 && job <= jobs[i-1] {
			return nil, invalid(fmt.Sprintf("cached cookjobs are not strictly ascending at position %d", i))
		}
		if n := job.Count(); n < defaults.MinIngredients || n > defaults.MaxIngredients {
			return nil, invalid(fmt.Sprintf("cached cookjob %s has %d ingredients", job, n))
		}
		owner, ok := owners[job]
		if !ok {
			return nil, invalid(fmt.Sprintf("cached cookjob %s has no owner", job))
		}
		if _, ok := x.templates[owner]; !ok {
			return nil, invalid(fmt.Sprintf("cached cookjob %s is owned by unknown recipe %d", job, owner))
		}
		x.jobs[i] = job
		x.owners[i] = owner
	}
	if len(owners) != len(jobs) {
		return nil, invalid("cached owners do not match the cookjob set")
	}

	x.report.Cookjobs = len(x.jobs)
	x.report.Duration = time.Since(start)
	cookjobsIndexed.Set(float64(len(x.jobs)))
	return x, nil
}

func invalid(msg string) error {
	return cjerrors.New(cjerrors.ErrCodeInvalidRequest, msg)
}

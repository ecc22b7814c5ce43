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
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mchmarny/cookjob/pkg/defaults"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"golang.org/x/sync/errgroup"
)

// Option configures Build.
type Option func(*options)

type options struct {
	concurrency int
}

// WithConcurrency sets how many templates are expanded in parallel.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// Build parses and expands sources and resolves one owner per cookjob.
func Build(p *grammar.Parser, sources []grammar.Source, opts ...Option) (*Index, error) {
	if p == nil {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "parser is required")
	}
	o := options{concurrency: defaults.BuildConcurrency}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	x := &Index{enc: p.Encoder()}
	x.report = BuildReport{ID: uuid.NewString(), Recipes: len(sources)}
	x.parse(p, sources)

	expansions := make([][]ingredient.Cookjob, len(x.ids))
	g := new(errgroup.Group)
	g.SetLimit(o.concurrency)
	for i, id := range x.ids {
		tmpl := x.templates[id]
		g.Go(func() error {
			expansions[i] = tmpl.Expand()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, cjerrors.Wrap(cjerrors.ErrCodeInternal, "template expansion failed", err)
	}

	total := 0
	for _, e := range expansions {
		total += len(e)
	}
	jobs := make([]ingredient.Cookjob, 0, total)
	candidates := make(map[ingredient.Cookjob][]int)
	for i, id := range x.ids {
		for _, job := range expansions[i] {
			jobs = append(jobs, job)
			candidates[job] = append(candidates[job], id)
		}
	}
	slices.Sort(jobs)
	x.jobs = slices.Compact(jobs)

	x.owners = make([]int, len(x.jobs))
	for i, job := range x.jobs {
		ids := candidates[job]
		if len(ids) == 1 {
			x.owners[i] = ids[0]
			continue
		}
		x.report.Ambiguous++
		owner, scored := x.choose(ids, job)
		if !scored {
			x.report.Fallbacks++
			ownerFallbacks.Inc()
			slog.Debug("no candidate survived scoring, using lowest recipe id",
				slog.String("cookjob", job.String()),
				slog.Int("recipe", owner))
		}
		x.owners[i] = owner
	}

	x.report.Cookjobs = len(x.jobs)
	x.report.Duration = time.Since(start)
	buildDuration.Observe(x.report.Duration.Seconds())
	cookjobsIndexed.Set(float64(len(x.jobs)))

	slog.Debug("cookjob index built",
		slog.String("id", x.report.ID),
		slog.Int("recipes", x.report.Indexed),
		slog.Int("skipped", len(x.report.Skipped)),
		slog.Int("cookjobs", x.report.Cookjobs),
		slog.Int("ambiguous", x.report.Ambiguous),
		slog.Duration("duration", x.report.Duration))

	return x, nil
}

// choose returns the best scoring candidate, or the lowest id and false when
// every candidate is disqualified. ids must be ascending.
func (x *Index) choose(ids []int, job ingredient.Cookjob) (int, bool) {
	var best Score
	found := false
	for _, id := range ids {
		s, ok := Rate(x.templates[id], job)
		if !ok {
			continue
		}
		if !found || Compare(s, best) < 0 {
			best, found = s, true
		}
	}
	if !found {
		return ids[0], false
	}
	return best.RecipeID, true
}

// parse fills templates, ids and profiles, recording skipped sources.
func (x *Index) parse(p *grammar.Parser, sources []grammar.Source) {
	x.templates = make(map[int]*grammar.Template, len(sources))
	x.profiles = make(map[int]grammar.Profile, len(sources))
	x.ids = make([]int, 0, len(sources))

	for _, src := range sources {
		if _, dup := x.templates[src.ID]; dup {
			x.skip(src, "", fmt.Sprintf("duplicate recipe id %d", src.ID))
			continue
		}
		tmpl, err := p.Template(src)
		if err != nil {
			token := ""
			var se *cjerrors.StructuredError
			if errors.As(err, &se) {
				token, _ = se.Context["token"].(string)
			}
			x.skip(src, token, err.Error())
			continue
		}
		x.templates[src.ID] = tmpl
		x.profiles[src.ID] = tmpl.Profile()
		x.ids = append(x.ids, src.ID)
	}
	slices.Sort(x.ids)
	x.report.Indexed = len(x.ids)
}

func (x *Index) skip(src grammar.Source, token, reason string) {
	slog.Warn("skipping recipe",
		slog.Int("id", src.ID),
		slog.String("name", src.Name),
		slog.String("token", token),
		slog.String("reason", reason))
	skippedRecipes.Inc()
	x.report.Skipped = append(x.report.Skipped, SkippedRecipe{
		ID:     src.ID,
		Name:   src.Name,
		Token:  token,
		Reason: reason,
	})
}

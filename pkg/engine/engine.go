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
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/mchmarny/cookjob/pkg/cache"
	"github.com/mchmarny/cookjob/pkg/config"
	"github.com/mchmarny/cookjob/pkg/defaults"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/gamedata"
	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/header"
	"github.com/mchmarny/cookjob/pkg/index"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// OpenStore opens the artifact store selected by cfg.
func OpenStore(ctx context.Context, cfg *config.Config) (cache.Store, error) {
	switch cfg.CacheBackend() {
	case cache.BackendNone:
		return cache.NewMemoryStore(), nil
	case cache.BackendFile:
		return cache.NewFileStore(cfg.CacheDir(), cfg.CacheFormat())
	case cache.BackendSQLite:
		return cache.NewSQLiteStore(ctx, filepath.Join(cfg.CacheDir(), defaults.CacheDBName))
	default:
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "unsupported cache backend: "+cfg.CacheBackend())
	}
}

// Engine owns the current snapshot.
type Engine struct {
	cfg   *config.Config
	store cache.Store

	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

// New returns an engine using store for cached artifacts. A nil store
// disables persistence.
func New(cfg *config.Config, store cache.Store) *Engine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if store == nil {
		store = cache.NewMemoryStore()
	}
	return &Engine{cfg: cfg, store: store}
}

// Current returns the published snapshot, or nil before the first load.
func (e *Engine) Current() *Snapshot {
	return e.current.Load()
}

// Load reads the configured data and recipe files and publishes a snapshot.
// With force set, cached artifacts are ignored and rewritten.
func (e *Engine) Load(ctx context.Context, force bool) (*Snapshot, error) {
	data, err := gamedata.LoadData(e.cfg.DataPath())
	if err != nil {
		return nil, err
	}
	sources, err := gamedata.LoadRecipes(e.cfg.RecipesPath())
	if err != nil {
		return nil, err
	}
	return e.LoadInputs(ctx, data, sources, force)
}

// LoadInputs publishes a snapshot for already parsed inputs.
func (e *Engine) LoadInputs(ctx context.Context, data *gamedata.Data, sources []grammar.Source, force bool) (*Snapshot, error) {
	if data == nil {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "game data is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	enc, err := ingredient.NewEncoder(data.Catalog)
	if err != nil {
		return nil, err
	}
	cats, err := ingredient.NewCategories(enc, data.Categories)
	if err != nil {
		return nil, err
	}
	p := grammar.NewParser(enc, cats,
		grammar.WithDelimiter(e.cfg.Delimiter()),
		grammar.WithOptionalMarker(e.cfg.OptionalMarker()))

	delimiter, marker := p.Syntax()
	snap := &Snapshot{
		Ingredients:      cloneIngredients(data.Ingredients),
		IndexFingerprint: cache.IndexFingerprint(enc, cats, sources, delimiter, marker),
		categories:       cats,
		agg:              stats.NewAggregator(enc, cats, e.cfg.PenaltyRule()),
	}
	snap.StatsFingerprint = cache.StatsFingerprint(snap.IndexFingerprint, snap.Ingredients, e.cfg.PenaltyRule())

	if !force {
		snap.Index = e.restoreIndex(ctx, p, sources, snap.IndexFingerprint)
	}
	if snap.Index == nil {
		if snap.Index, err = index.Build(p, sources, index.WithConcurrency(e.cfg.Concurrency())); err != nil {
			return nil, err
		}
		e.saveIndex(ctx, snap.Index, snap.IndexFingerprint)
	}

	if !force {
		snap.Stats = e.restoreStats(ctx, snap.StatsFingerprint)
	}
	if snap.Stats == nil {
		if snap.Stats, err = snap.agg.Build(snap.Index, snap.Ingredients); err != nil {
			return nil, err
		}
		e.saveStats(ctx, snap.Stats, snap.StatsFingerprint)
	}

	report := snap.Index.Report()
	slog.Info("snapshot loaded",
		slog.String("build", report.ID),
		slog.Bool("restored", report.Restored),
		slog.Int("recipes", report.Indexed),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("cookjobs", snap.Index.Len()),
		slog.String("fingerprint", snap.IndexFingerprint))

	e.current.Store(snap)
	return snap, nil
}

// UpdateStats recomputes the stats table for new ingredient stats, touching
// only cookjobs that contain a changed ingredient, and publishes the result.
func (e *Engine) UpdateStats(ctx context.Context, ing stats.Ingredients) (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.current.Load()
	if cur == nil {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "no snapshot loaded")
	}
	return e.updateStats(ctx, cur, ing)
}

// Apply records rec as the stats of the named ingredient, typically a
// contribution inferred from an isolation pair, and refreshes the stats of
// every cookjob containing it. It returns the new snapshot and the record
// the ingredient had before, if any.
func (e *Engine) Apply(ctx context.Context, name string, rec stats.Record) (*Snapshot, *stats.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.current.Load()
	if cur == nil {
		return nil, nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "no snapshot loaded")
	}
	if _, err := cur.Encoder().Bit(name); err != nil {
		return nil, nil, err
	}

	var prev *stats.Record
	if p, ok := cur.Ingredients[name]; ok {
		prev = &p
	}
	ing := cloneIngredients(cur.Ingredients)
	rec.Partial = false
	ing[name] = rec

	next, err := e.updateStats(ctx, cur, ing)
	if err != nil {
		return nil, nil, err
	}
	return next, prev, nil
}

func (e *Engine) updateStats(ctx context.Context, cur *Snapshot, ing stats.Ingredients) (*Snapshot, error) {
	changed := stats.Changed(cur.Ingredients, ing)
	if len(changed) == 0 {
		return cur, nil
	}

	tbl, err := cur.agg.Refresh(cur.Stats, cur.Index, ing, changed)
	if err != nil {
		return nil, err
	}

	next := *cur
	next.Ingredients = cloneIngredients(ing)
	next.Stats = tbl
	next.StatsFingerprint = cache.StatsFingerprint(cur.IndexFingerprint, next.Ingredients, cur.agg.Rule())
	e.saveStats(ctx, tbl, next.StatsFingerprint)

	slog.Info("stats updated", slog.Int("changed", len(changed)), slog.String("fingerprint", next.StatsFingerprint))
	e.current.Store(&next)
	return &next, nil
}

func (e *Engine) restoreIndex(ctx context.Context, p *grammar.Parser, sources []grammar.Source, fp string) *index.Index {
	ctx, cancel := context.WithTimeout(ctx, defaults.CacheIOTimeout)
	defer cancel()

	jobs, ok := loadArtifact[[]ingredient.Cookjob](ctx, e.store, cache.KeyCookjobs, header.KindCookjobSet, fp)
	if !ok {
		return nil
	}
	owners, ok := loadArtifact[map[ingredient.Cookjob]int](ctx, e.store, cache.KeyOwners, header.KindRecipeIndex, fp)
	if !ok {
		return nil
	}
	profiles, ok := loadArtifact[map[int]grammar.Profile](ctx, e.store, cache.KeyProfiles, header.KindRecipeProfiles, fp)
	if !ok {
		return nil
	}

	x, err := index.Restore(p, sources, jobs, owners, profiles)
	if err != nil {
		slog.Warn("cached index rejected, rebuilding", slog.String("error", err.Error()))
		return nil
	}
	return x
}

func (e *Engine) restoreStats(ctx context.Context, fp string) *stats.Table {
	ctx, cancel := context.WithTimeout(ctx, defaults.CacheIOTimeout)
	defer cancel()

	entries, ok := loadArtifact[[]stats.Entry](ctx, e.store, cache.KeyStats, header.KindStatsTable, fp)
	if !ok {
		return nil
	}
	tbl, err := stats.NewTable(entries, e.cfg.PenaltyRule())
	if err != nil {
		slog.Warn("cached stats rejected, rebuilding", slog.String("error", err.Error()))
		return nil
	}
	return tbl
}

func (e *Engine) saveIndex(ctx context.Context, x *index.Index, fp string) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CacheIOTimeout)
	defer cancel()

	saveArtifact(ctx, e.store, cache.KeyCookjobs, header.KindCookjobSet, fp, x.Cookjobs())
	saveArtifact(ctx, e.store, cache.KeyOwners, header.KindRecipeIndex, fp, x.Owners())
	saveArtifact(ctx, e.store, cache.KeyProfiles, header.KindRecipeProfiles, fp, x.Profiles())
}

func (e *Engine) saveStats(ctx context.Context, tbl *stats.Table, fp string) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CacheIOTimeout)
	defer cancel()

	saveArtifact(ctx, e.store, cache.KeyStats, header.KindStatsTable, fp, tbl.Entries())
}

// loadArtifact treats store failures as misses; the artifact is rebuilt.
func loadArtifact[T any](ctx context.Context, s cache.Store, key string, kind header.Kind, fp string) (T, bool) {
	v, ok, err := cache.Load[T](ctx, s, key, kind, fp)
	if err != nil {
		slog.Warn("failed to read cached artifact", slog.String("key", key), slog.String("error", err.Error()))
		return v, false
	}
	return v, ok
}

// saveArtifact logs write failures and carries on.
func saveArtifact[T any](ctx context.Context, s cache.Store, key string, kind header.Kind, fp string, v T) {
	if err := cache.Save(ctx, s, key, kind, fp, v); err != nil {
		slog.Warn("failed to cache artifact", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func cloneIngredients(in stats.Ingredients) stats.Ingredients {
	out := make(stats.Ingredients, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

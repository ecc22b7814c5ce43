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
	"path/filepath"
	"sync"
	"testing"

	"github.com/mchmarny/cookjob/pkg/cache"
	"github.com/mchmarny/cookjob/pkg/config"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/gamedata"
	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/header"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/internal/fixture"
	"github.com/mchmarny/cookjob/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureData() *gamedata.Data {
	ing := make(stats.Ingredients)
	for name, s := range fixture.Stats() {
		ing[name] = stats.Record{Hunger: s.Hunger, Stress: s.Stress, SellValue: s.SellValue}
	}
	return &gamedata.Data{
		Catalog:     fixture.Catalog,
		Categories:  fixture.Categories(),
		Ingredients: ing,
	}
}

func fixtureSources() []grammar.Source {
	out := make([]grammar.Source, 0, len(fixture.Recipes))
	for _, r := range fixture.Recipes {
		out = append(out, grammar.Source{ID: r.ID, Name: r.Name, Grammar: r.Grammar})
	}
	return out
}

func loadFixture(t *testing.T, e *Engine, force bool) *Snapshot {
	t.Helper()
	snap, err := e.LoadInputs(context.Background(), fixtureData(), fixtureSources(), force)
	require.NoError(t, err)
	return snap
}

func encode(t *testing.T, snap *Snapshot, names ...string) ingredient.Cookjob {
	t.Helper()
	job, err := snap.Encoder().Encode(names...)
	require.NoError(t, err)
	return job
}

func TestLoadInputsBuildsThenRestores(t *testing.T) {
	store := cache.NewMemoryStore()

	first := New(nil, store)
	assert.Nil(t, first.Current())
	built := loadFixture(t, first, false)
	assert.Same(t, built, first.Current())
	assert.False(t, built.Index.Report().Restored)
	require.Len(t, built.Index.Report().Skipped, 1)
	assert.Equal(t, fixture.BrokenRecipeID, built.Index.Report().Skipped[0].ID)

	second := New(nil, store)
	restored := loadFixture(t, second, false)
	assert.True(t, restored.Index.Report().Restored)
	assert.Equal(t, built.IndexFingerprint, restored.IndexFingerprint)
	assert.Equal(t, built.StatsFingerprint, restored.StatsFingerprint)
	assert.Equal(t, built.Index.Cookjobs(), restored.Index.Cookjobs())
	assert.Equal(t, built.Index.Owners(), restored.Index.Owners())
	assert.Equal(t, built.Stats.Entries(), restored.Stats.Entries())

	forced := loadFixture(t, New(nil, store), true)
	assert.False(t, forced.Index.Report().Restored)
	assert.Equal(t, built.Stats.Entries(), forced.Stats.Entries())
}

func TestLoadInputsRebuildsStaleStats(t *testing.T) {
	store := cache.NewMemoryStore()
	base := loadFixture(t, New(nil, store), false)

	data := fixtureData()
	data.Ingredients["Ham"] = stats.Record{Hunger: 1, Stress: 2, SellValue: 3}
	snap, err := New(nil, store).LoadInputs(context.Background(), data, fixtureSources(), false)
	require.NoError(t, err)

	assert.True(t, snap.Index.Report().Restored)
	assert.Equal(t, base.IndexFingerprint, snap.IndexFingerprint)
	assert.NotEqual(t, base.StatsFingerprint, snap.StatsFingerprint)

	e, ok := snap.Stats.Get(encode(t, snap, "Ham"))
	require.True(t, ok)
	assert.Equal(t, stats.Record{Hunger: 1, Stress: 2, SellValue: 3}, e.Totals())
}

func TestLoadInputsLegacyPenalty(t *testing.T) {
	cfg := config.NewConfig(config.WithPenaltyPreset(config.PenaltyLegacy))
	snap := loadFixture(t, New(cfg, nil), false)

	e, ok := snap.Stats.Get(encode(t, snap, "Ham"))
	require.True(t, ok)
	assert.Equal(t, stats.Record{Hunger: 100, Stress: 31, SellValue: 143}, e.Totals())
}

func TestLoadInputsErrors(t *testing.T) {
	_, err := New(nil, nil).LoadInputs(context.Background(), nil, nil, false)
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))

	data := fixtureData()
	data.Categories = map[string][]string{"Meat": {"Unicorn"}}
	_, err = New(nil, nil).LoadInputs(context.Background(), data, fixtureSources(), false)
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeUnknownIngredient))
}

func TestLoadFromFiles(t *testing.T) {
	cfg := config.NewConfig(
		config.WithDataPath(filepath.Join("..", "gamedata", "testdata", "data.json")),
		config.WithRecipesPath(filepath.Join("..", "gamedata", "testdata", "recipes.csv")),
	)
	snap, err := New(cfg, nil).Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, snap.Index.RecipeIDs())

	cfg = config.NewConfig(config.WithDataPath(filepath.Join(t.TempDir(), "missing.json")))
	_, err = New(cfg, nil).Load(context.Background(), false)
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeNotFound))
}

func TestUpdateStats(t *testing.T) {
	e := New(nil, nil)

	_, err := e.UpdateStats(context.Background(), stats.Ingredients{})
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))

	base := loadFixture(t, e, false)

	same, err := e.UpdateStats(context.Background(), fixtureData().Ingredients)
	require.NoError(t, err)
	assert.Same(t, base, same)

	ing := fixtureData().Ingredients
	ing["Ham"] = stats.Record{Hunger: 10, Stress: 20, SellValue: 30}
	next, err := e.UpdateStats(context.Background(), ing)
	require.NoError(t, err)
	assert.Same(t, next, e.Current())
	assert.NotEqual(t, base.StatsFingerprint, next.StatsFingerprint)
	assert.Equal(t, base.IndexFingerprint, next.IndexFingerprint)

	agg := stats.NewAggregator(next.Encoder(), next.Categories(), stats.DefaultPenaltyRule())
	full, err := agg.Build(next.Index, ing)
	require.NoError(t, err)
	assert.Equal(t, full.Entries(), next.Stats.Entries())

	// the previous snapshot is untouched
	old, ok := base.Stats.Get(encode(t, base, "Ham"))
	require.True(t, ok)
	assert.Equal(t, 100, old.Hunger)
}

func TestApply(t *testing.T) {
	store := cache.NewMemoryStore()
	e := New(nil, store)

	_, _, err := e.Apply(context.Background(), "Ham", stats.Record{})
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))

	base := loadFixture(t, e, false)

	_, _, err = e.Apply(context.Background(), "Unicorn", stats.Record{})
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeUnknownIngredient))
	assert.Same(t, base, e.Current())

	rec := stats.Record{Hunger: 10, Stress: 20, SellValue: 30, Partial: true}
	next, prev, err := e.Apply(context.Background(), "Ham", rec)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, stats.Record{Hunger: 100, Stress: 35, SellValue: 155}, *prev)
	assert.Same(t, next, e.Current())
	assert.Equal(t, stats.Record{Hunger: 10, Stress: 20, SellValue: 30}, next.Ingredients["Ham"])
	assert.Equal(t, 100, base.Ingredients["Ham"].Hunger)

	entry, ok := next.Stats.Get(encode(t, next, "Ham"))
	require.True(t, ok)
	assert.Equal(t, stats.Record{Hunger: 10, Stress: 20, SellValue: 30}, entry.Totals())

	cached, ok, err := cache.Load[[]stats.Entry](context.Background(), store, cache.KeyStats,
		header.KindStatsTable, next.StatsFingerprint)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, next.Stats.Entries(), cached)

	_, prev, err = e.Apply(context.Background(), "Vegetables", stats.Record{Hunger: 1})
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestConcurrentReaders(t *testing.T) {
	e := New(nil, nil)
	loadFixture(t, e, false)
	ham := encode(t, e.Current(), "Ham")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				snap := e.Current()
				entry, ok := snap.Stats.Get(ham)
				if !ok || entry.Hunger != snap.Ingredients["Ham"].Hunger {
					t.Errorf("inconsistent snapshot: %+v", entry)
					return
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		ing := fixtureData().Ingredients
		ing["Ham"] = stats.Record{Hunger: i, Stress: 1, SellValue: 1}
		_, err := e.UpdateStats(context.Background(), ing)
		require.NoError(t, err)
	}
	wg.Wait()
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{cache.BackendFile, cache.BackendSQLite, cache.BackendNone} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.NewConfig(config.WithCacheBackend(backend), config.WithCacheDir(t.TempDir()))
			s, err := OpenStore(ctx, cfg)
			require.NoError(t, err)
			defer s.Close()

			snap := loadFixture(t, New(cfg, s), false)
			again := loadFixture(t, New(cfg, s), false)
			assert.True(t, again.Index.Report().Restored)
			assert.Equal(t, snap.Stats.Entries(), again.Stats.Entries())
		})
	}

	_, err := OpenStore(ctx, config.NewConfig(config.WithCacheBackend("redis")))
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))
}

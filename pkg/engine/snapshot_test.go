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
	"testing"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	snap := loadFixture(t, New(nil, nil), false)

	ex, err := snap.Explain(encode(t, snap, "Ham", "Cheese"))
	require.NoError(t, err)
	assert.Equal(t, 6, ex.Entry.RecipeID)
	assert.Equal(t, stats.Record{Hunger: 200, Stress: 74, SellValue: 322}, ex.Entry.Totals())
	require.Len(t, ex.Candidates, 2)
	assert.Equal(t, Candidate{ID: 6, Name: "Ploughman's", Grammar: "Cheese|Ham?|Bread?", Owner: true}, ex.Candidates[0])
	assert.Equal(t, 7, ex.Candidates[1].ID)
	assert.False(t, ex.Candidates[1].Owner)

	_, err = snap.Explain(encode(t, snap, "Water"))
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeUnindexedCookjob))
}

func TestIsolate(t *testing.T) {
	snap := loadFixture(t, New(nil, nil), false)

	pairs, err := snap.Isolate("eggs", encode(t, snap, "Water", "Salt", "Eggs"))
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	p := pairs[0]
	assert.Equal(t, encode(t, snap, "Water", "Salt"), p.Without)
	assert.Equal(t, encode(t, snap, "Water", "Salt", "Eggs"), p.With)
	assert.Equal(t, []string{"Salt", "Water"}, p.WithoutJob)
	assert.Equal(t, []string{"Eggs", "Salt", "Water"}, p.WithJob)
	assert.Equal(t, "Brine", p.WithoutName)
	assert.Equal(t, "Brine", p.WithName)
	assert.Equal(t, 1, p.Load)

	// the cookjob with eggs cannot be cooked without eggs in the inventory
	pairs, err = snap.Isolate("Eggs", encode(t, snap, "Water", "Salt"))
	require.NoError(t, err)
	assert.Empty(t, pairs)

	_, err = snap.Isolate("Unicorn", 0)
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeUnknownIngredient))
}

func TestIsolateRanksByStress(t *testing.T) {
	snap := loadFixture(t, New(nil, nil), false)

	avail := encode(t, snap, "Ham", "Bacon", "Bread", "Cheese")
	pairs, err := snap.Isolate("Cheese", avail)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, []string{"Ham"}, pairs[0].WithoutJob)
	assert.Equal(t, 35, pairs[0].Load)
	assert.Equal(t, []string{"Bacon"}, pairs[1].WithoutJob)
	assert.Equal(t, 30, pairs[1].Load)
	for _, p := range pairs {
		assert.Equal(t, p.Without|encode(t, snap, "Cheese"), p.With)
		assert.True(t, p.With.Within(avail))
	}
}

func TestIsolateLoadIgnoresPenalty(t *testing.T) {
	snap := loadFixture(t, New(nil, nil), false)

	// Drinks cookjobs carry a category penalty; the load is the raw sum
	pairs, err := snap.Isolate("Honey", encode(t, snap, "Beer", "Liquor", "Honey"))
	require.NoError(t, err)
	require.NotEmpty(t, pairs)
	assert.Equal(t, []string{"Beer", "Liquor"}, pairs[0].WithoutJob)
	assert.Equal(t, 72+70, pairs[0].Load)

	entry, ok := snap.Stats.Get(pairs[0].Without)
	require.True(t, ok)
	assert.Less(t, entry.Stress, pairs[0].Load)
}

func TestCraftable(t *testing.T) {
	data := fixtureData()
	delete(data.Ingredients, "Ham")
	e := New(nil, nil)
	snap, err := e.LoadInputs(t.Context(), data, fixtureSources(), false)
	require.NoError(t, err)

	avail := encode(t, snap, "Ham", "Cheese")
	all := snap.Craftable(avail, false)
	require.Len(t, all, 3)
	for _, entry := range all {
		assert.True(t, entry.Cookjob.Within(avail))
	}

	known := snap.Craftable(avail, true)
	require.Len(t, known, 1)
	assert.Equal(t, encode(t, snap, "Cheese"), known[0].Cookjob)
}

func TestRecipes(t *testing.T) {
	snap := loadFixture(t, New(nil, nil), false)

	recipes := snap.Recipes()
	assert.Len(t, recipes, len(snap.Index.RecipeIDs()))

	owned := 0
	for _, r := range recipes {
		assert.NotEqual(t, 12, r.ID)
		assert.GreaterOrEqual(t, r.Expansions, r.Owned)
		owned += r.Owned
		if r.ID == 1 {
			assert.Equal(t, 6, r.Expansions)
			assert.Equal(t, 1, r.Profile.RequiredCategory)
		}
	}
	assert.Equal(t, snap.Index.Len(), owned)
}

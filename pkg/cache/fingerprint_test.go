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

package cache

import (
	"testing"

	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/internal/fixture"
	"github.com/mchmarny/cookjob/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureInputs(t *testing.T, catalog []string) (*ingredient.Encoder, *ingredient.Categories, []grammar.Source) {
	t.Helper()
	enc, err := ingredient.NewEncoder(catalog)
	require.NoError(t, err)
	cats, err := ingredient.NewCategories(enc, fixture.Categories())
	require.NoError(t, err)
	sources := make([]grammar.Source, 0, len(fixture.Recipes))
	for _, r := range fixture.Recipes {
		sources = append(sources, grammar.Source{ID: r.ID, Name: r.Name, Grammar: r.Grammar})
	}
	return enc, cats, sources
}

func TestIndexFingerprint(t *testing.T) {
	enc, cats, sources := fixtureInputs(t, fixture.Catalog)
	base := IndexFingerprint(enc, cats, sources, "|", "?")
	assert.Len(t, base, 16)
	assert.Equal(t, base, IndexFingerprint(enc, cats, sources, "|", "?"))

	reversed := make([]string, len(fixture.Catalog))
	for i, n := range fixture.Catalog {
		reversed[len(reversed)-1-i] = n
	}
	encR, catsR, _ := fixtureInputs(t, reversed)
	assert.NotEqual(t, base, IndexFingerprint(encR, catsR, sources, "|", "?"), "catalog order")

	assert.NotEqual(t, base, IndexFingerprint(enc, cats, sources, ",", "?"), "delimiter")
	assert.NotEqual(t, base, IndexFingerprint(enc, cats, sources[1:], "|", "?"), "recipes")

	edited := append([]grammar.Source{}, sources...)
	edited[0].Grammar = "Game|Water"
	assert.NotEqual(t, base, IndexFingerprint(enc, cats, edited, "|", "?"), "grammar")

	defs := fixture.Categories()
	defs["Meat"] = []string{"Ham"}
	other, err := ingredient.NewCategories(enc, defs)
	require.NoError(t, err)
	assert.NotEqual(t, base, IndexFingerprint(enc, other, sources, "|", "?"), "categories")
}

func TestStatsFingerprint(t *testing.T) {
	ing := stats.Ingredients{
		"Ham":    {Hunger: 100, Stress: 35, SellValue: 155},
		"Cheese": {Hunger: 100, Stress: 39, SellValue: 167},
	}
	base := StatsFingerprint("idx", ing, stats.DefaultPenaltyRule())
	assert.Equal(t, base, StatsFingerprint("idx", ing, stats.DefaultPenaltyRule()))

	assert.NotEqual(t, base, StatsFingerprint("other", ing, stats.DefaultPenaltyRule()), "index")
	assert.NotEqual(t, base, StatsFingerprint("idx", ing, stats.LegacyPenaltyRule()), "rule")

	changed := stats.Ingredients{
		"Ham":    {Hunger: 101, Stress: 35, SellValue: 155},
		"Cheese": {Hunger: 100, Stress: 39, SellValue: 167},
	}
	assert.NotEqual(t, base, StatsFingerprint("idx", changed, stats.DefaultPenaltyRule()), "values")
}

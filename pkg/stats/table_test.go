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
	"testing"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableQueries(t *testing.T) {
	e := newEnv(t)
	table, err := NewAggregator(e.enc, e.cats, DefaultPenaltyRule()).Build(e.idx, e.ing)
	require.NoError(t, err)

	avail := e.job(t, "Ham", "Cheese", "Bread")
	within := table.Within(avail)
	require.NotEmpty(t, within)
	for _, entry := range within {
		assert.True(t, entry.Cookjob.Within(avail))
	}
	assert.Len(t, within, len(e.idx.Within(avail)))

	for _, entry := range table.Known() {
		assert.True(t, entry.AllKnown)
	}
	assert.Len(t, table.Entries(), table.Len())

	_, ok := table.Get(e.job(t, "Vegetables"))
	assert.False(t, ok)
}

func TestNewTable(t *testing.T) {
	entries := []Entry{{Cookjob: 1}, {Cookjob: 4}}
	table, err := NewTable(entries, DefaultPenaltyRule())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	got, ok := table.Get(ingredient.Cookjob(4))
	require.True(t, ok)
	assert.Equal(t, ingredient.Cookjob(4), got.Cookjob)

	_, err = NewTable([]Entry{{Cookjob: 4}, {Cookjob: 1}}, DefaultPenaltyRule())
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))

	_, err = NewTable([]Entry{{Cookjob: 4}, {Cookjob: 4}}, DefaultPenaltyRule())
	assert.Error(t, err)
}

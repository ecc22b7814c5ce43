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

package ingredient

import (
	"testing"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategories(t *testing.T) {
	enc := newFixtureEncoder(t)
	cats, err := NewCategories(enc, fixture.Categories())
	require.NoError(t, err)

	assert.Equal(t, 5, cats.Len())
	assert.Equal(t, []string{"Alcohol", "Game", "Meat", "Mushroom", "Seasonings"}, cats.Names())
	assert.True(t, cats.Has("Meat"))
	assert.False(t, cats.Has("Ham"))
	assert.Equal(t, []string{"Bacon", "Ham"}, cats.Members("Meat"))
	assert.Nil(t, cats.Members("Fish"))

	want, err := enc.Encode("Beer", "Fruit Wine", "Liquor")
	require.NoError(t, err)
	assert.Equal(t, want, cats.Mask("Alcohol"))
	assert.Zero(t, cats.Mask("Fish"))

	assert.Equal(t, []string{"Meat"}, cats.Of("Ham"))
	assert.Empty(t, cats.Of("Water"))
}

func TestNewCategoriesDuplicateMember(t *testing.T) {
	enc := newFixtureEncoder(t)
	cats, err := NewCategories(enc, map[string][]string{"Meat": {"Ham", "Bacon", "Ham"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ham", "Bacon"}, cats.Members("Meat"))
	assert.Equal(t, []string{"Meat"}, cats.Of("Ham"))
}

func TestNewCategoriesRejects(t *testing.T) {
	enc := newFixtureEncoder(t)

	tests := []struct {
		name string
		defs map[string][]string
		code cjerrors.ErrorCode
	}{
		{"unknown member", map[string][]string{"Meat": {"Ham", "Unicorn"}}, cjerrors.ErrCodeUnknownIngredient},
		{"collides with ingredient", map[string][]string{"Ham": {"Ham"}}, cjerrors.ErrCodeInvalidRequest},
		{"empty name", map[string][]string{"": {"Ham"}}, cjerrors.ErrCodeInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategories(enc, tt.defs)
			require.Error(t, err)
			assert.Equal(t, tt.code, cjerrors.CodeOf(err))
		})
	}
}

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

package header

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindCookjobSet, true},
		{KindRecipeIndex, true},
		{KindRecipeProfiles, true},
		{KindStatsTable, true},
		{KindBuildReport, true},
		{Kind("Snapshot"), false},
		{Kind(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	h := New(WithKind(KindStatsTable), WithMetadata("recipes", "12"))
	assert.Equal(t, KindStatsTable, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "12", h.Metadata["recipes"])

	h = New(WithAPIVersion("cookjob.v0"))
	assert.Equal(t, "cookjob.v0", h.APIVersion)
}

func TestInitIsDeterministic(t *testing.T) {
	var a, b Header
	a.Init(KindRecipeIndex, APIVersion, "v1.2.3")
	b.Init(KindRecipeIndex, APIVersion, "v1.2.3")

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
	assert.NotContains(t, string(ja), "timestamp")

	var c Header
	c.Init(KindRecipeIndex, APIVersion, "")
	assert.Empty(t, c.Metadata)
}

func TestMatches(t *testing.T) {
	h := New(WithKind(KindCookjobSet))
	assert.True(t, h.Matches(KindCookjobSet))
	assert.False(t, h.Matches(KindStatsTable))

	old := New(WithKind(KindCookjobSet), WithAPIVersion("cookjob.v0"))
	assert.False(t, old.Matches(KindCookjobSet))

	var nilHeader *Header
	assert.False(t, nilHeader.Matches(KindCookjobSet))
}

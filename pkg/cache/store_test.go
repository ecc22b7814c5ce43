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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mchmarny/cookjob/pkg/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()

	jsonStore, err := NewFileStore(filepath.Join(t.TempDir(), "json"), serializer.FormatJSON)
	require.NoError(t, err)
	yamlStore, err := NewFileStore(filepath.Join(t.TempDir(), "yaml"), serializer.FormatYAML)
	require.NoError(t, err)
	sqliteStore, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "db", "cookjob.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		"file-json": jsonStore,
		"file-yaml": yamlStore,
		"sqlite":    sqliteStore,
		"memory":    NewMemoryStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, KeyCookjobs)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Put(ctx, KeyCookjobs, []byte("first")))
			got, ok, err := s.Get(ctx, KeyCookjobs)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("first"), got)

			require.NoError(t, s.Put(ctx, KeyCookjobs, []byte("second")))
			got, _, err = s.Get(ctx, KeyCookjobs)
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), got)

			_, ok, err = s.Get(ctx, KeyStats)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileStorePaths(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, serializer.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "valid_cookjobs.yaml"), s.Path(KeyCookjobs))

	require.NoError(t, s.Put(context.Background(), KeyOwners, []byte("x")))
	_, err = os.Stat(filepath.Join(dir, "cookjob_to_recipes.yaml"))
	assert.NoError(t, err)

	_, err = NewFileStore(dir, serializer.FormatTable)
	assert.Error(t, err)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cookjob.db")

	s, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, KeyProfiles, []byte("profiles")))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Get(ctx, KeyProfiles)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("profiles"), got)
	assert.Equal(t, path, s.Path())
}

func TestStoresHonorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Put(ctx, KeyCookjobs, []byte("x")))
			_, _, err := s.Get(ctx, KeyCookjobs)
			assert.Error(t, err)
		})
	}
}

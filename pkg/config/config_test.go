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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mchmarny/cookjob/pkg/defaults"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/serializer"
	"github.com/mchmarny/cookjob/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, defaults.DataFile, cfg.DataPath())
	assert.Equal(t, defaults.RecipesFile, cfg.RecipesPath())
	assert.Equal(t, "file", cfg.CacheBackend())
	assert.Equal(t, defaults.CacheDir, cfg.CacheDir())
	assert.Equal(t, serializer.FormatJSON, cfg.CacheFormat())
	assert.Equal(t, "|", cfg.Delimiter())
	assert.Equal(t, "?", cfg.OptionalMarker())
	assert.Equal(t, stats.DefaultPenaltyRule(), cfg.PenaltyRule())
	assert.Equal(t, defaults.BuildConcurrency, cfg.Concurrency())
	assert.Equal(t, "dev", cfg.Version())
	assert.NoError(t, cfg.Validate())
}

func TestOptions(t *testing.T) {
	cfg := NewConfig(
		WithDataPath("d.json"),
		WithRecipesPath("r.csv"),
		WithCacheBackend("SQLite"),
		WithCacheDir("/tmp/c"),
		WithCacheFormat(serializer.FormatYAML),
		WithGrammarSyntax(",", ""),
		WithPenaltyPreset(PenaltyLegacy),
		WithConcurrency(8),
		WithVersion("v1.2.3"),
	)

	assert.Equal(t, "d.json", cfg.DataPath())
	assert.Equal(t, "r.csv", cfg.RecipesPath())
	assert.Equal(t, "sqlite", cfg.CacheBackend())
	assert.Equal(t, "/tmp/c", cfg.CacheDir())
	assert.Equal(t, serializer.FormatYAML, cfg.CacheFormat())
	assert.Equal(t, ",", cfg.Delimiter())
	assert.Equal(t, "?", cfg.OptionalMarker())
	assert.Equal(t, stats.LegacyPenaltyRule(), cfg.PenaltyRule())
	assert.Equal(t, 8, cfg.Concurrency())
	assert.Equal(t, "v1.2.3", cfg.Version())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"empty data", []Option{WithDataPath("")}},
		{"empty recipes", []Option{WithRecipesPath("")}},
		{"bad backend", []Option{WithCacheBackend("redis")}},
		{"empty cache dir", []Option{WithCacheDir("")}},
		{"table cache format", []Option{WithCacheFormat(serializer.FormatTable)}},
		{"same syntax", []Option{WithGrammarSyntax("|", "|")}},
		{"zero min count", []Option{WithPenaltyRule(stats.PenaltyRule{})}},
		{"zero concurrency", []Option{WithConcurrency(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			require.Error(t, err)
			assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))
		})
	}

	t.Run("none backend ignores dir", func(t *testing.T) {
		assert.NoError(t, NewConfig(WithCacheBackend("none"), WithCacheDir("")).Validate())
	})
}

func TestPenaltyRuleFor(t *testing.T) {
	r, err := PenaltyRuleFor("")
	require.NoError(t, err)
	assert.Equal(t, stats.DefaultPenaltyRule(), r)

	r, err = PenaltyRuleFor(" Legacy ")
	require.NoError(t, err)
	assert.Equal(t, stats.LegacyPenaltyRule(), r)

	_, err = PenaltyRuleFor("harsh")
	assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))

	// unknown presets leave the rule untouched
	cfg := NewConfig(WithPenaltyPreset(PenaltyLegacy), WithPenaltyPreset("harsh"))
	assert.Equal(t, stats.LegacyPenaltyRule(), cfg.PenaltyRule())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "cookjob.yaml")
		content := `data: game/data.json
cache:
  backend: sqlite
  dir: .cookjob
grammar:
  delimiter: ","
penalty:
  preset: legacy
  rule:
    baseline:
      hunger: 0
      stress: -1
      sell_value: -2
    per_ingredient:
      hunger: 0
      stress: -3
      sell_value: -4
    min_count: 3
concurrency: 2
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		f, err := LoadFile(path)
		require.NoError(t, err)
		cfg := NewConfig(f.Options()...)

		assert.Equal(t, "game/data.json", cfg.DataPath())
		assert.Equal(t, defaults.RecipesFile, cfg.RecipesPath())
		assert.Equal(t, "sqlite", cfg.CacheBackend())
		assert.Equal(t, ".cookjob", cfg.CacheDir())
		assert.Equal(t, ",", cfg.Delimiter())
		assert.Equal(t, "?", cfg.OptionalMarker())
		assert.Equal(t, stats.PenaltyRule{
			Baseline:      stats.Triple{Stress: -1, SellValue: -2},
			PerIngredient: stats.Triple{Stress: -3, SellValue: -4},
			MinCount:      3,
		}, cfg.PenaltyRule())
		assert.Equal(t, 2, cfg.Concurrency())
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "cookjob.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"recipes":"r.csv","cache":{"format":"yaml"}}`), 0o600))

		f, err := LoadFile(path)
		require.NoError(t, err)
		cfg := NewConfig(f.Options()...)
		assert.Equal(t, "r.csv", cfg.RecipesPath())
		assert.Equal(t, serializer.FormatYAML, cfg.CacheFormat())
		assert.NoError(t, cfg.Validate())
	})

	t.Run("flags override file", func(t *testing.T) {
		f := &File{Data: "file.json", Concurrency: 3}
		cfg := NewConfig(append(f.Options(), WithDataPath("flag.json"))...)
		assert.Equal(t, "flag.json", cfg.DataPath())
		assert.Equal(t, 3, cfg.Concurrency())
	})

	t.Run("unknown preset", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("penalty:\n  preset: harsh\n"), 0o600))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.True(t, cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest))
	})

	t.Run("nil file", func(t *testing.T) {
		var f *File
		assert.Empty(t, f.Options())
	})
}

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
	"fmt"
	"strings"

	"github.com/mchmarny/cookjob/pkg/cache"
	"github.com/mchmarny/cookjob/pkg/defaults"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/serializer"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// Penalty presets accepted by WithPenaltyPreset.
const (
	PenaltyDefault = "default"
	PenaltyLegacy  = "legacy"
)

// PenaltyRuleFor returns the penalty rule registered under name.
func PenaltyRuleFor(name string) (stats.PenaltyRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PenaltyDefault:
		return stats.DefaultPenaltyRule(), nil
	case PenaltyLegacy:
		return stats.LegacyPenaltyRule(), nil
	default:
		return stats.PenaltyRule{}, cjerrors.New(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown penalty preset %q (must be %s or %s)", name, PenaltyDefault, PenaltyLegacy))
	}
}

// Config contains the settings for loading inputs, building the index and
// caching artifacts.
type Config struct {
	// dataPath is the game data JSON file.
	dataPath string

	// recipesPath is the recipe CSV file.
	recipesPath string

	// cacheBackend selects the artifact store: file, sqlite or none.
	cacheBackend string

	// cacheDir is where file and sqlite stores keep their records.
	cacheDir string

	// cacheFormat is the encoding of file store records.
	cacheFormat serializer.Format

	// delimiter separates grammar tokens.
	delimiter string

	// optionalMarker suffixes optional grammar tokens.
	optionalMarker string

	// penaltyRule drives the category penalty of the stats table.
	penaltyRule stats.PenaltyRule

	// concurrency bounds parallel template expansion.
	concurrency int

	// version is stamped on cached artifacts.
	version string
}

func (c *Config) DataPath() string {
	return c.dataPath
}

func (c *Config) RecipesPath() string {
	return c.recipesPath
}

func (c *Config) CacheBackend() string {
	return c.cacheBackend
}

func (c *Config) CacheDir() string {
	return c.cacheDir
}

func (c *Config) CacheFormat() serializer.Format {
	return c.cacheFormat
}

func (c *Config) Delimiter() string {
	return c.delimiter
}

func (c *Config) OptionalMarker() string {
	return c.optionalMarker
}

func (c *Config) PenaltyRule() stats.PenaltyRule {
	return c.penaltyRule
}

func (c *Config) Concurrency() int {
	return c.concurrency
}

func (c *Config) Version() string {
	return c.version
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.dataPath == "" {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "data path cannot be empty")
	}
	if c.recipesPath == "" {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "recipes path cannot be empty")
	}

	switch c.cacheBackend {
	case cache.BackendFile, cache.BackendSQLite, cache.BackendNone:
	default:
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid cache backend: %s (must be file, sqlite, or none)", c.cacheBackend))
	}
	if c.cacheBackend != cache.BackendNone && c.cacheDir == "" {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "cache directory cannot be empty")
	}
	if c.cacheFormat != serializer.FormatJSON && c.cacheFormat != serializer.FormatYAML {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid cache format: %s (must be json or yaml)", c.cacheFormat))
	}

	if c.delimiter == "" || c.optionalMarker == "" {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "grammar delimiter and optional marker cannot be empty")
	}
	if c.delimiter == c.optionalMarker {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "grammar delimiter and optional marker must differ")
	}

	if c.penaltyRule.MinCount < 1 {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "penalty min count must be at least 1")
	}
	if c.concurrency < 1 {
		return cjerrors.New(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid concurrency: %d (must be positive)", c.concurrency))
	}
	return nil
}

// Option is a functional option for configuring Config.
type Option func(*Config)

func WithDataPath(path string) Option {
	return func(c *Config) {
		c.dataPath = path
	}
}

func WithRecipesPath(path string) Option {
	return func(c *Config) {
		c.recipesPath = path
	}
}

func WithCacheBackend(backend string) Option {
	return func(c *Config) {
		c.cacheBackend = strings.ToLower(backend)
	}
}

func WithCacheDir(dir string) Option {
	return func(c *Config) {
		c.cacheDir = dir
	}
}

func WithCacheFormat(format serializer.Format) Option {
	return func(c *Config) {
		c.cacheFormat = format
	}
}

// WithGrammarSyntax sets the token delimiter and optional marker. Empty
// values keep the current setting.
func WithGrammarSyntax(delimiter, marker string) Option {
	return func(c *Config) {
		if delimiter != "" {
			c.delimiter = delimiter
		}
		if marker != "" {
			c.optionalMarker = marker
		}
	}
}

func WithPenaltyRule(rule stats.PenaltyRule) Option {
	return func(c *Config) {
		c.penaltyRule = rule
	}
}

// WithPenaltyPreset selects a named penalty rule. Unknown names are ignored
// here; use PenaltyRuleFor to validate user input first.
func WithPenaltyPreset(name string) Option {
	return func(c *Config) {
		if rule, err := PenaltyRuleFor(name); err == nil {
			c.penaltyRule = rule
		}
	}
}

func WithConcurrency(n int) Option {
	return func(c *Config) {
		c.concurrency = n
	}
}

func WithVersion(version string) Option {
	return func(c *Config) {
		c.version = version
	}
}

// NewConfig returns a Config with defaults applied, then modified by options.
func NewConfig(options ...Option) *Config {
	c := &Config{
		cacheBackend:   cache.BackendFile,
		cacheDir:       defaults.CacheDir,
		cacheFormat:    serializer.FormatJSON,
		concurrency:    defaults.BuildConcurrency,
		dataPath:       defaults.DataFile,
		delimiter:      defaults.GrammarDelimiter,
		optionalMarker: defaults.OptionalMarker,
		penaltyRule:    stats.DefaultPenaltyRule(),
		recipesPath:    defaults.RecipesFile,
		version:        "dev",
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

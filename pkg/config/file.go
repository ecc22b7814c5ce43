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
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/serializer"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// File is the on-disk configuration. Zero values mean "keep the default".
type File struct {
	Data        string      `json:"data,omitempty" yaml:"data,omitempty"`
	Recipes     string      `json:"recipes,omitempty" yaml:"recipes,omitempty"`
	Cache       CacheFile   `json:"cache,omitempty" yaml:"cache,omitempty"`
	Grammar     GrammarFile `json:"grammar,omitempty" yaml:"grammar,omitempty"`
	Penalty     PenaltyFile `json:"penalty,omitempty" yaml:"penalty,omitempty"`
	Concurrency int         `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
}

// CacheFile configures the artifact store.
type CacheFile struct {
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	Dir     string `json:"dir,omitempty" yaml:"dir,omitempty"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
}

// GrammarFile configures the recipe grammar syntax.
type GrammarFile struct {
	Delimiter      string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	OptionalMarker string `json:"optional_marker,omitempty" yaml:"optional_marker,omitempty"`
}

// PenaltyFile selects a preset and optionally replaces it with an explicit rule.
type PenaltyFile struct {
	Preset string             `json:"preset,omitempty" yaml:"preset,omitempty"`
	Rule   *stats.PenaltyRule `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// LoadFile reads a YAML or JSON config file. The format is detected from
// the file extension.
func LoadFile(path string) (*File, error) {
	f, err := serializer.FromFile[File](path)
	if err != nil {
		return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeInvalidRequest, "failed to load config", err,
			map[string]any{"path": path})
	}
	if f.Penalty.Preset != "" {
		if _, err := PenaltyRuleFor(f.Penalty.Preset); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Options converts the non-empty file settings into options.
func (f *File) Options() []Option {
	if f == nil {
		return nil
	}
	var opts []Option
	if f.Data != "" {
		opts = append(opts, WithDataPath(f.Data))
	}
	if f.Recipes != "" {
		opts = append(opts, WithRecipesPath(f.Recipes))
	}
	if f.Cache.Backend != "" {
		opts = append(opts, WithCacheBackend(f.Cache.Backend))
	}
	if f.Cache.Dir != "" {
		opts = append(opts, WithCacheDir(f.Cache.Dir))
	}
	if f.Cache.Format != "" {
		opts = append(opts, WithCacheFormat(serializer.Format(f.Cache.Format)))
	}
	if f.Grammar.Delimiter != "" || f.Grammar.OptionalMarker != "" {
		opts = append(opts, WithGrammarSyntax(f.Grammar.Delimiter, f.Grammar.OptionalMarker))
	}
	if f.Penalty.Preset != "" {
		opts = append(opts, WithPenaltyPreset(f.Penalty.Preset))
	}
	if f.Penalty.Rule != nil {
		opts = append(opts, WithPenaltyRule(*f.Penalty.Rule))
	}
	if f.Concurrency != 0 {
		opts = append(opts, WithConcurrency(f.Concurrency))
	}
	return opts
}

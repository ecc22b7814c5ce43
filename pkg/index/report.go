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

package index

import "time"

// SkippedRecipe records a recipe that was left out of the index.
type SkippedRecipe struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Token  string `json:"token,omitempty" yaml:"token,omitempty"`
	Reason string `json:"reason" yaml:"reason"`
}

// BuildReport summarizes an index build.
type BuildReport struct {
	// ID uniquely identifies the build.
	ID string `json:"id" yaml:"id"`
	// Recipes is the number of recipe sources supplied.
	Recipes int `json:"recipes" yaml:"recipes"`
	// Indexed is the number of recipes that parsed and were indexed.
	Indexed int `json:"indexed" yaml:"indexed"`
	// Skipped lists recipes left out of the index.
	Skipped []SkippedRecipe `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	// Cookjobs is the size of the cookjob set.
	Cookjobs int `json:"cookjobs" yaml:"cookjobs"`
	// Ambiguous counts cookjobs with more than one candidate recipe.
	Ambiguous int `json:"ambiguous" yaml:"ambiguous"`
	// Fallbacks counts ambiguous cookjobs where scoring disqualified every
	// candidate and the lowest recipe id was used.
	Fallbacks int `json:"fallbacks" yaml:"fallbacks"`
	// Restored is set when the index was loaded from cached artifacts.
	Restored bool `json:"restored" yaml:"restored"`
	// Duration is the wall time of the build.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

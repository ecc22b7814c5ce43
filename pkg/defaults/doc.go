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

// Package defaults provides centralized configuration constants for the
// cookjob engine.
//
// This package defines cookjob size bounds, recipe grammar syntax, the default
// category penalty rule, cache locations and build parallelism. Centralizing
// these values keeps the expander, the index builder and the stats aggregator
// in agreement.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/mchmarny/cookjob/pkg/defaults"
//
//	if n := job.Count(); n < defaults.MinIngredients || n > defaults.MaxIngredients {
//	    return false
//	}
//
// # Penalty Rule
//
// A cookjob that contains two or more members of the same category loses
// PenaltyStressPerIngredient stress and PenaltySellPerIngredient sell value per
// member of that category. Only the harshest single category applies.
package defaults

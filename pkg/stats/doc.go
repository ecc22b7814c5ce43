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

// Package stats derives per-cookjob statistics from per-ingredient stats.
//
// For every cookjob the aggregator sums hunger, stress and sell value over
// its ingredients, then applies the category penalty: each category with at
// least MinCount members present proposes PerIngredient times that count,
// and the elementwise minimum of the baseline and all proposals is added.
// Only the harshest category applies; penalties never stack.
//
// Missing ingredient stats are not errors. They count as zero and are listed
// in Entry.MissingIngredients.
//
//	agg := stats.NewAggregator(enc, cats, stats.DefaultPenaltyRule())
//	table, err := agg.Build(idx, ingredients)
//	entry, ok := table.Get(job)
//
// Refresh recomputes only the cookjobs that contain a changed ingredient and
// always yields the same table as Build.
package stats

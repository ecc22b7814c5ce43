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

// Package isolation finds cookjob pairs that differ by exactly one ingredient.
//
// Measuring both cookjobs of a pair in game lets the caller infer the
// marginal contribution of that ingredient as with minus without. The
// inference only holds when both cookjobs fall under the same category
// penalty; Pairs returns every structural pair and leaves that judgement to
// the caller.
//
//	pairs, err := isolation.Pairs(bit, idx.Within(inventory))
//	ranked := isolation.Rank(pairs, func(job ingredient.Cookjob) int {
//	    e, _ := table.Get(job)
//	    return e.Stress
//	})
//	delta := isolation.Infer(measuredWithout, measuredWith)
package isolation

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

// Package index builds the cookjob set and the canonical recipe index.
//
// Build parses every recipe source, expands the templates in parallel and
// unions the expansions into one sorted cookjob set. Every cookjob gets
// exactly one owning recipe. When several recipes can produce the same
// cookjob, each candidate is re-scored against that cookjob with a greedy
// slot walk and the best Score wins (see Compare).
//
// A recipe whose grammar does not resolve is skipped and recorded in the
// BuildReport; the build itself never fails because of one bad recipe.
//
//	idx, err := index.Build(parser, sources, index.WithConcurrency(8))
//	if err != nil {
//	    return err
//	}
//	for _, job := range idx.Within(inventory) {
//	    id, _ := idx.RecipeFor(job)
//	    fmt.Println(idx.RecipeName(id))
//	}
//
// An Index is immutable and safe for concurrent readers.
package index

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

// Package ingredient encodes the ingredient catalog as bit positions.
//
// Each catalog ingredient owns one bit of a uint64, assigned densely in
// catalog order. A Cookjob is the OR of the bits of its ingredients, so set
// membership, subset checks and isolation arithmetic are single machine-word
// operations:
//
//	enc, _ := ingredient.NewEncoder([]string{"Cheese", "Ham", "Water"})
//	job, _ := enc.Encode("Ham", "Cheese")   // 0b011
//	enc.Decode(job)                          // [Cheese Ham]
//	job.Within(enc.All())                    // true
//
// Categories group catalog ingredients under a name that recipe grammars can
// reference (for example "Meat" or "Alcohol"). A category name never collides
// with an ingredient name.
//
// Encoder and Categories are immutable after construction and safe for
// concurrent use.
package ingredient

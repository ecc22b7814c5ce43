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

// Package gamedata loads the game data file and the recipe list.
//
// The data file is JSON with an ordered ingredient catalog, category
// definitions and per-ingredient stats:
//
//	{
//	  "valid_ingredients": ["Cheese", "Ham", "Water"],
//	  "categories": {"Meat": ["Ham"]},
//	  "ingredient_stats": {"Ham": {"hunger": 100, "stress": 35, "sell_value": 155}}
//	}
//
// Stats entries missing a field load with zero for that field and are marked
// Partial. The recipe list is CSV with Recipe, Name and Ingredient columns,
// where Ingredient holds the grammar.
package gamedata

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

// Package fixture holds a small game data set shared by package tests.
// It contains plain data only so that any package can import it.
package fixture

// Catalog is the ingredient catalog in bit order.
var Catalog = []string{
	"Agaric", "Bacon", "Beer", "Bread", "Cheese",
	"Dried Vegetables", "Eggs", "Fruit Wine", "Ham", "Honey",
	"Liquor", "Matsutake", "Pheasant", "Rabbit", "Rations",
	"Salt", "Seasoning", "Vegetables", "Venison", "Water",
}

// Categories returns a fresh copy of the category definitions.
func Categories() map[string][]string {
	return map[string][]string{
		"Mushroom":   {"Agaric", "Matsutake"},
		"Alcohol":    {"Beer", "Fruit Wine", "Liquor"},
		"Game":       {"Pheasant", "Rabbit", "Venison"},
		"Meat":       {"Bacon", "Ham"},
		"Seasonings": {"Salt", "Seasoning"},
	}
}

// Recipe is a raw recipe record.
type Recipe struct {
	ID      int
	Name    string
	Grammar string
}

// BrokenRecipeID is the recipe whose grammar references an unknown token.
const BrokenRecipeID = 12

// Recipes is the recipe list. Recipe 12 references an unknown token.
var Recipes = []Recipe{
	{1, "Roast Game", "Game|Salt?|Water"},
	{2, "Boiled Egg", "Eggs|Water"},
	{3, "Brine", "Water|Salt|Eggs?"},
	{5, "Mushroom Stew", "Water|Eggs?|Salt?|Mushroom|Mushroom?"},
	{6, "Ploughman's", "Cheese|Ham?|Bread?"},
	{7, "Cold Cuts", "Meat|Cheese?"},
	{8, "Ham Slice", "Ham"},
	{9, "Cheese Plate", "Cheese"},
	{10, "Drinks", "Alcohol|Alcohol?|Alcohol?|Honey?|Cheese?"},
	{11, "Trail Mix", "Dried Vegetables|Ham?|Cheese?"},
	{12, "Broken", "Water|Unicorn"},
	{13, "Rations", "Rations|Water?"},
}

// Stat is a raw per-ingredient stats record.
type Stat struct {
	Hunger    int
	Stress    int
	SellValue int
}

// Stats returns a fresh copy of the per-ingredient stats.
// Vegetables intentionally has no entry.
func Stats() map[string]Stat {
	return map[string]Stat{
		"Agaric":           {20, 5, 30},
		"Bacon":            {90, 30, 140},
		"Beer":             {80, 72, 256},
		"Bread":            {80, 20, 60},
		"Cheese":           {100, 39, 167},
		"Dried Vegetables": {80, 28, 124},
		"Eggs":             {40, 10, 40},
		"Fruit Wine":       {80, 70, 250},
		"Ham":              {100, 35, 155},
		"Honey":            {20, 40, 100},
		"Liquor":           {80, 70, 250},
		"Matsutake":        {30, 10, 60},
		"Pheasant":         {70, 20, 90},
		"Rabbit":           {60, 18, 80},
		"Rations":          {50, 5, 20},
		"Salt":             {2, 1, 3},
		"Seasoning":        {4, 3, 8},
		"Venison":          {110, 30, 160},
		"Water":            {0, 0, 0},
	}
}

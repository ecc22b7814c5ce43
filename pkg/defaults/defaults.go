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

package defaults

import "time"

// Cookjob size bounds.
const (
	// MinIngredients is the smallest number of ingredients in a cookjob.
	MinIngredients = 1

	// MaxIngredients is the largest number of ingredients in a cookjob.
	MaxIngredients = 5

	// MaxCatalogSize is the largest ingredient catalog a bitmask can encode.
	MaxCatalogSize = 64
)

// Recipe grammar syntax.
const (
	// GrammarDelimiter separates slot tokens in a recipe grammar string.
	GrammarDelimiter = "|"

	// OptionalMarker suffixes a token to mark its slot optional.
	OptionalMarker = "?"
)

// Category penalty rule.
const (
	// PenaltyHungerPerIngredient is the hunger change per same-category member.
	PenaltyHungerPerIngredient = 0

	// PenaltyStressPerIngredient is the stress change per same-category member.
	PenaltyStressPerIngredient = -4

	// PenaltySellPerIngredient is the sell value change per same-category member.
	PenaltySellPerIngredient = -12

	// PenaltyMinCount is the number of members of one category that must be
	// present before the category penalty applies.
	PenaltyMinCount = 2
)

// Cache and build settings.
const (
	// CacheDir is the default directory for persisted cache artifacts.
	CacheDir = "cache"

	// CacheDBName is the default SQLite database file inside CacheDir.
	CacheDBName = "cookjob.db"

	// CacheIOTimeout bounds a single cache read or write.
	CacheIOTimeout = 30 * time.Second

	// BuildConcurrency is the default number of recipe templates expanded in
	// parallel during an index build.
	BuildConcurrency = 4
)

// Input files.
const (
	// DataFile is the default game data file (catalog, categories, stats).
	DataFile = "data.json"

	// RecipesFile is the default recipe source file.
	RecipesFile = "recipes.csv"
)

const (
	// ServerPort is the default listen port of the query server.
	ServerPort = 8080

	// ServerRateLimit is the sustained number of API requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the number of API requests allowed in a burst.
	ServerRateLimitBurst = 200

	// ServerReadHeaderTimeout bounds reading request headers.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerReadTimeout bounds reading a whole request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout bounds writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout bounds keep-alive connections between requests.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout bounds graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

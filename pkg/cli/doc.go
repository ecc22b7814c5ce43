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

// Package cli implements the command-line interface of the cookjob tool.
//
// # Overview
//
// cookjob enumerates every ingredient combination (cookjob) the game's
// recipes can produce, resolves each one to the recipe the game would pick,
// and derives its hunger, stress and sell value. Results are cached so
// repeat invocations only rebuild what their inputs changed.
//
// # Commands
//
// build - Load or rebuild the index and stats caches:
//
//	cookjob build [--force]
//
// cookjobs - List cookjobs craftable from an inventory:
//
//	cookjob cookjobs --have "Ham,Cheese,Bread" [--known-only]
//
// explain - Show how one cookjob resolves:
//
//	cookjob explain --cookjob "Ham,Cheese"
//
// isolate - Find cookjob pairs that differ only by one ingredient:
//
//	cookjob isolate --ingredient Honey --have "Beer,Cheese" [--without 160,112,423 --with 180,152,523]
//
// recipes - Summarize every indexed recipe:
//
//	cookjob recipes
//
// serve - Answer the same queries over HTTP (SIGHUP reloads inputs):
//
//	cookjob serve [--port 8080] [--rate-limit 100 --rate-burst 200]
//
// # Inventories
//
// Ingredient lists are comma separated. Names match exactly, then case
// insensitively, then by unique prefix. "-name" removes an ingredient,
// "all" selects the whole catalog and "clear" empties the list.
//
// # Global Flags
//
//	--config        YAML or JSON config file
//	--log-level     debug, info, warn, error (env LOG_LEVEL)
//	--data          game data JSON (env COOKJOB_DATA)
//	--recipes       recipe CSV (env COOKJOB_RECIPES)
//	--cache         file, sqlite or none (env COOKJOB_CACHE)
//	--cache-dir     cache directory (env COOKJOB_CACHE_DIR)
//	--penalty       default or legacy (env COOKJOB_PENALTY)
//	--metrics-out   write Prometheus metrics to this file on exit
//
// # Output Formats
//
// Every command accepts --format (json, yaml, table) and --output (file
// path, stdout by default).
package cli

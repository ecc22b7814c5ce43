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

// Package cache persists build artifacts keyed by an input fingerprint.
//
// Four artifacts are cached: the cookjob set, the cookjob to recipe map,
// per-recipe slot profiles and the stats table. Each is stored in an
// envelope that carries a header and the fingerprint of the inputs it was
// built from. Load treats a fingerprint mismatch as a miss; there is no other
// invalidation.
//
//	store, err := cache.NewFileStore("cache", serializer.FormatJSON)
//	jobs, ok, err := cache.Load[[]ingredient.Cookjob](ctx, store,
//	    cache.KeyCookjobs, header.KindCookjobSet, fp)
//	if !ok {
//	    // rebuild and cache.Save(...)
//	}
//
// Stores: FileStore (one file per key), SQLiteStore (single table, pure Go
// driver) and MemoryStore (in process).
package cache

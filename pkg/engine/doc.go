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

// Package engine ties the cookjob pipeline together.
//
// An Engine loads the game data and recipe list, restores the recipe index
// and stats table from the artifact cache when their fingerprints still
// match, and builds (then caches) whatever is missing or stale. The result
// is published as an immutable Snapshot:
//
//	store, err := engine.OpenStore(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	e := engine.New(cfg, store)
//	snap, err := e.Load(ctx, false)
//	if err != nil {
//	    return err
//	}
//	entries := snap.Craftable(avail, true)
//
// Readers call Current and work against the snapshot they received; a
// rebuild or stats update swaps in a new snapshot without blocking them.
// Writers are serialized.
package engine

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

package cache

import (
	"context"

	"github.com/mchmarny/cookjob/pkg/serializer"
)

// Artifact keys.
const (
	KeyCookjobs = "valid_cookjobs"
	KeyOwners   = "cookjob_to_recipes"
	KeyProfiles = "recipe_profiles"
	KeyStats    = "cookjob_stats"
)

// Keys lists every artifact key.
var Keys = []string{KeyCookjobs, KeyOwners, KeyProfiles, KeyStats}

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// Store holds raw artifact records.
type Store interface {
	// Get returns the record for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores the record for key, replacing any previous one.
	Put(ctx context.Context, key string, data []byte) error
	// Format is the encoding used for records in this store.
	Format() serializer.Format
	// Close releases resources held by the store.
	Close() error
}

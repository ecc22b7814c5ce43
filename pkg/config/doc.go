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

// Package config holds the runtime settings of the cookjob tool.
//
// Settings come from three layers, applied in order: built-in defaults,
// an optional YAML or JSON file, and explicit options (CLI flags and
// COOKJOB_* environment variables).
//
//	f, err := config.LoadFile("cookjob.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg := config.NewConfig(append(f.Options(), config.WithCacheBackend("sqlite"))...)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

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

// Package header provides the common header for persisted cookjob artifacts.
//
// Every cached artifact (cookjob set, recipe index, recipe profiles, stats
// table) and every build report starts with a Kubernetes-style header:
//
//	{
//	  "kind": "RecipeIndex",
//	  "apiVersion": "cookjob.v1",
//	  "metadata": {
//	    "version": "v0.3.0"
//	  }
//	}
//
// The header deliberately omits creation timestamps so that two builds over
// the same inputs write identical bytes.
//
// Readers should call Matches before decoding a payload:
//
//	if !env.Header.Matches(header.KindRecipeIndex) {
//	    return nil, false
//	}
package header

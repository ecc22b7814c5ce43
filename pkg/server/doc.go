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

// Package server exposes read-only cookjob queries over HTTP.
//
// Every request is answered from the engine snapshot current at the time
// it arrives, so a reload never blocks or tears an in-flight query.
//
// # Endpoints
//
//	GET /                          service info and routes
//	GET /health                    liveness
//	GET /ready                     readiness (503 until a snapshot is loaded)
//	GET /metrics                   Prometheus metrics
//	GET /v1/cookjobs?have=...      craftable cookjobs (known_only=true to drop partial stats)
//	GET /v1/explain?cookjob=...    canonical recipe, candidates and stats
//	GET /v1/isolate?ingredient=... isolation pairs (optional have=...)
//	GET /v1/recipes                recipe summaries
//
// Ingredient lists use the same syntax as the CLI: comma separated names,
// "-name" to remove, "all" and "clear".
//
// # Middleware
//
// API routes pass through, outermost first: metrics, API version
// negotiation, request ID, panic recovery, rate limiting and logging.
// Errors are JSON:
//
//	{
//	  "code": "UNKNOWN_INGREDIENT",
//	  "message": "unrecognized ingredients: Unicorn",
//	  "requestId": "0b6c8a9e-...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// # Usage
//
//	srv := server.NewServer(server.NewConfig(), eng)
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
package server

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

package index

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookjob_index_build_duration_seconds",
			Help:    "Duration of cookjob index builds in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
	cookjobsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cookjob_index_cookjobs",
			Help: "Number of cookjobs in the most recently built index",
		},
	)
	skippedRecipes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookjob_index_skipped_recipes_total",
			Help: "Total number of recipes skipped because their grammar did not resolve",
		},
	)
	ownerFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookjob_index_fallbacks_total",
			Help: "Total number of cookjobs whose candidates were all disqualified by scoring",
		},
	)
)

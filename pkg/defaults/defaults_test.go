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

import (
	"testing"
	"time"
)

func TestCookjobBounds(t *testing.T) {
	if MinIngredients < 1 {
		t.Errorf("MinIngredients = %d, must be at least 1", MinIngredients)
	}
	if MaxIngredients < MinIngredients {
		t.Errorf("MaxIngredients (%d) must not be below MinIngredients (%d)", MaxIngredients, MinIngredients)
	}
	if MaxCatalogSize != 64 {
		t.Errorf("MaxCatalogSize = %d, want 64 (uint64 bitmask)", MaxCatalogSize)
	}
}

func TestPenaltyConstants(t *testing.T) {
	if PenaltyHungerPerIngredient != 0 {
		t.Errorf("hunger penalty must be zero, got %d", PenaltyHungerPerIngredient)
	}
	if PenaltyStressPerIngredient >= 0 || PenaltySellPerIngredient >= 0 {
		t.Error("stress and sell penalties must be negative")
	}
	if PenaltyMinCount < 2 {
		t.Errorf("PenaltyMinCount = %d, want >= 2", PenaltyMinCount)
	}
}

func TestBuildSettings(t *testing.T) {
	if BuildConcurrency < 1 {
		t.Errorf("BuildConcurrency = %d, must be positive", BuildConcurrency)
	}
	if CacheIOTimeout < time.Second || CacheIOTimeout > 5*time.Minute {
		t.Errorf("CacheIOTimeout = %v out of range", CacheIOTimeout)
	}
	if GrammarDelimiter == OptionalMarker {
		t.Error("grammar delimiter and optional marker must differ")
	}
}

func TestServerTimeouts(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		min     time.Duration
		max     time.Duration
	}{
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, time.Second, 30 * time.Second},
		{"ServerReadTimeout", ServerReadTimeout, ServerReadHeaderTimeout, time.Minute},
		{"ServerWriteTimeout", ServerWriteTimeout, time.Second, 5 * time.Minute},
		{"ServerIdleTimeout", ServerIdleTimeout, time.Second, 10 * time.Minute},
		{"ServerShutdownTimeout", ServerShutdownTimeout, time.Second, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.min || tt.timeout > tt.max {
				t.Errorf("%s = %v, want between %v and %v", tt.name, tt.timeout, tt.min, tt.max)
			}
		})
	}

	if ServerRateLimitBurst < ServerRateLimit {
		t.Errorf("ServerRateLimitBurst (%d) must not be below ServerRateLimit (%d)", ServerRateLimitBurst, ServerRateLimit)
	}
}
